package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"mazaj-be/internal/catalog"
	"mazaj-be/internal/utils"

	"github.com/gorilla/mux"
)

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.FetchAll(r.Context())
	if err != nil {
		// The client keeps its last-known catalog and shows a retry.
		utils.WriteJSONError(w, err.Error(), http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	p, err := s.catalog.FetchByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, err.Error(), http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if p.Name == "" || p.Price < 0 {
		utils.WriteJSONError(w, "name required and price must not be negative", http.StatusBadRequest)
		return
	}

	created, err := s.catalog.Create(r.Context(), p)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, created)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p.ID = mux.Vars(r)["id"]

	if err := s.catalog.Update(r.Context(), p); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, err.Error(), http.StatusBadGateway)
		return
	}

	utils.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.catalog.Delete(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
