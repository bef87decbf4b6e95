package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Get(t *testing.T) {
	t.Run("Creates on first use", func(t *testing.T) {
		m := NewManager()

		s := m.Get("abc")
		require.NotNil(t, s)
		assert.Equal(t, "abc", s.ID)
		assert.NotNil(t, s.Cart)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("Returns the same session for the same id", func(t *testing.T) {
		m := NewManager()

		first := m.Get("abc")
		second := m.Get("abc")
		assert.Same(t, first, second)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("Empty id gets a generated one", func(t *testing.T) {
		m := NewManager()

		s := m.Get("")
		assert.NotEmpty(t, s.ID)

		other := m.Get("")
		assert.NotEqual(t, s.ID, other.ID)
	})
}

func TestManager_Drop(t *testing.T) {
	m := NewManager()
	m.Get("abc")

	m.Drop("abc")
	assert.Equal(t, 0, m.Len())

	// Unknown ids are ignored.
	m.Drop("never-existed")
}
