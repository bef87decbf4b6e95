package order

import (
	"context"
	"errors"
	"fmt"

	"mazaj-be/internal/geo"
	"mazaj-be/internal/logger"
	"mazaj-be/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	PlaceOrder(ctx context.Context, sess *session.Session, input PlaceOrderInput) (*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) error
	LoadHistory(ctx context.Context, userID *string) ([]Order, error)
	History() []Order
}

type PlaceOrderInput struct {
	Location      *geo.Point
	AddressNotes  string
	PaymentMethod string
	UserID        *string
}

type service struct {
	repo    Repository
	history *History
}

func NewService(repo Repository) Service {
	return &service{repo: repo, history: NewHistory()}
}

// PlaceOrder turns the session's cart into a persisted order. On success
// the order is prepended to the history and the cart is cleared; creating
// an order while retaining the cart would double-charge a retry, so the
// two go together. On failure the cart is left intact for re-attempt.
func (s *service) PlaceOrder(ctx context.Context, sess *session.Session, input PlaceOrderInput) (*Order, error) {
	log := logger.FromCtx(ctx)

	snapshot := sess.Cart.Snapshot()
	if len(snapshot) == 0 {
		return nil, ErrEmptyCart
	}
	if input.Location == nil {
		return nil, ErrNoLocation
	}

	totals := sess.Cart.ComputeTotals()

	o := &Order{
		OrderID:          "order-" + uuid.NewString(),
		Items:            snapshot,
		TotalPrice:       totals.Total,
		DeliveryLocation: *input.Location,
		AddressNotes:     input.AddressNotes,
		PaymentMethod:    input.PaymentMethod,
		Status:           StatusPending,
		UserID:           input.UserID,
	}

	if err := s.repo.Insert(ctx, o); err != nil {
		log.Error("order persistence failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	s.history.Prepend(*o)
	sess.Cart.Clear()

	log.Info("order placed",
		zap.String("order_id", o.OrderID),
		zap.String("session_id", sess.ID),
		zap.Int("items", len(o.Items)),
	)

	return o, nil
}

// UpdateStatus applies the given status unconditionally. The back office
// owns the lifecycle; no transition ordering is enforced here.
func (s *service) UpdateStatus(ctx context.Context, orderID string, status Status) error {
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}

	s.history.SetStatus(orderID, status)
	return nil
}

// LoadHistory refreshes the in-memory history from the remote store. On
// failure the last-known-good history is preserved.
func (s *service) LoadHistory(ctx context.Context, userID *string) ([]Order, error) {
	orders, err := s.repo.ListByDate(ctx, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("order history fetch failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}

	s.history.Replace(orders)
	return s.history.List(), nil
}

// History returns the cached order list, most recent first.
func (s *service) History() []Order {
	return s.history.List()
}
