package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"mazaj-be/internal/geo"
	"mazaj-be/internal/order"
	"mazaj-be/internal/utils"

	"github.com/gorilla/mux"
)

type checkoutRequest struct {
	Location      *geo.Point `json:"location"`
	AddressNotes  string     `json:"address_notes"`
	PaymentMethod string     `json:"payment_method"`
	UserID        *string    `json:"user_id,omitempty"`
}

// checkout converts the session's cart into a persisted order. A request
// without a location gets the resolver's point instead of being blocked;
// the mobile flow does the same when location permission is denied.
func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	location := req.Location
	if location == nil {
		p := s.resolver.Resolve(r.Context())
		location = &p
	}

	if req.PaymentMethod == "" {
		req.PaymentMethod = "Cash"
	}

	o, err := s.orders.PlaceOrder(r.Context(), sess, order.PlaceOrderInput{
		Location:      location,
		AddressNotes:  req.AddressNotes,
		PaymentMethod: req.PaymentMethod,
		UserID:        req.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart), errors.Is(err, order.ErrNoLocation):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		default:
			// The cart stays intact; the client may retry checkout.
			utils.WriteJSONError(w, err.Error(), http.StatusBadGateway)
		}
		return
	}

	utils.WriteJSON(w, http.StatusCreated, o)
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	var userID *string
	if u := r.URL.Query().Get("user"); u != "" {
		userID = utils.StrPtr(u)
	}

	orders, err := s.orders.LoadHistory(r.Context(), userID)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, http.StatusOK, orders)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.orders.UpdateStatus(r.Context(), orderID, status); err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, err.Error(), http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"order_id": orderID,
		"status":   string(status),
	})
}
