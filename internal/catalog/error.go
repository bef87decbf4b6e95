package catalog

import "errors"

var (
	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")

	// -- Remote Store Failures --
	ErrRemote = errors.New("remote catalog unavailable")
)
