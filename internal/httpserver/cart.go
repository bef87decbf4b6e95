package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"mazaj-be/internal/cart"
	"mazaj-be/internal/catalog"
	"mazaj-be/internal/pricing"
	"mazaj-be/internal/utils"

	"github.com/gorilla/mux"
)

type addCartItemRequest struct {
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	HeadType   string `json:"head_type"`
	ExtraCoals int    `json:"extra_coals"`
}

type cartResponse struct {
	Items  []cart.Line `json:"items"`
	Totals cart.Totals `json:"totals"`
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	utils.WriteJSON(w, http.StatusOK, cartResponse{
		Items:  sess.Cart.Snapshot(),
		Totals: sess.Cart.ComputeTotals(),
	})
}

// addCartItem prices the chosen configuration and appends it as a new
// line. Repeating the same request adds a second line; lines are never
// merged.
func (s *Server) addCartItem(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	head, err := pricing.ParseHeadType(req.HeadType)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity < 1 {
		utils.WriteJSONError(w, cart.ErrInvalidQuantity.Error(), http.StatusBadRequest)
		return
	}
	if req.ExtraCoals < 0 {
		utils.WriteJSONError(w, cart.ErrInvalidCoals.Error(), http.StatusBadRequest)
		return
	}

	product, ok := s.catalog.CachedByID(req.ProductID)
	if !ok {
		fetched, err := s.catalog.FetchByID(r.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
				return
			}
			utils.WriteJSONError(w, err.Error(), http.StatusBadGateway)
			return
		}
		product = *fetched
	}

	line, err := sess.Cart.AddLine(cart.Line{
		ProductID:  product.ID,
		Name:       product.Name,
		ImageURL:   product.ImageURL,
		Quantity:   req.Quantity,
		HeadType:   head,
		ExtraCoals: req.ExtraCoals,
		UnitPrice:  pricing.UnitPrice(product.Price, head, req.ExtraCoals),
		LineTotal:  pricing.LineTotal(product.Price, head, req.ExtraCoals, req.Quantity),
	})
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, line)
}

func (s *Server) removeCartItem(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	// Removing an unknown line id is a no-op, not an error.
	sess.Cart.RemoveLine(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.Cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}
