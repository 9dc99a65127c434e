package mockapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/solecraft/client-go/api"
)

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)
	s.lock.RLock()
	items := append([]api.CartItem(nil), s.carts[acc.ID]...)
	s.lock.RUnlock()
	writeJSON(w, http.StatusOK, api.CartResponse{Success: true, Items: items})
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)
	var req struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	var product *api.Product
	for i := range s.products {
		if s.products[i].ID == req.ProductID {
			product = &s.products[i]
			break
		}
	}
	if product == nil {
		writeMessage(w, http.StatusNotFound, "product not found")
		return
	}
	if !product.InStock {
		writeMessage(w, http.StatusConflict, "product is out of stock")
		return
	}

	for i, item := range s.carts[acc.ID] {
		if item.ProductID == req.ProductID {
			s.carts[acc.ID][i].Quantity += req.Quantity
			writeJSON(w, http.StatusOK, api.CartResponse{Success: true, Items: s.carts[acc.ID]})
			return
		}
	}
	s.carts[acc.ID] = append(s.carts[acc.ID], api.CartItem{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  req.Quantity,
	})
	writeJSON(w, http.StatusOK, api.CartResponse{Success: true, Items: s.carts[acc.ID]})
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)
	itemID := mux.Vars(r)["id"]
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Quantity < 1 {
		writeMessage(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	for i, item := range s.carts[acc.ID] {
		if item.ID == itemID {
			s.carts[acc.ID][i].Quantity = req.Quantity
			writeJSON(w, http.StatusOK, api.CartResponse{Success: true, Items: s.carts[acc.ID]})
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "cart item not found")
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)
	itemID := mux.Vars(r)["id"]

	s.lock.Lock()
	defer s.lock.Unlock()
	items := s.carts[acc.ID]
	for i, item := range items {
		if item.ID == itemID {
			s.carts[acc.ID] = append(items[:i], items[i+1:]...)
			writeJSON(w, http.StatusOK, api.CartResponse{Success: true, Items: s.carts[acc.ID]})
			return
		}
	}
	writeMessage(w, http.StatusNotFound, "cart item not found")
}

func (s *Server) handleWishlist(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)
	s.lock.RLock()
	defer s.lock.RUnlock()
	ids := make([]string, 0, len(s.wishlists[acc.ID]))
	for id := range s.wishlists[acc.ID] {
		ids = append(ids, id)
	}
	writeJSON(w, http.StatusOK, api.WishlistResponse{Success: true, Products: ids})
}

func (s *Server) handleWishlistAdd(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)
	productID := mux.Vars(r)["id"]

	s.lock.Lock()
	defer s.lock.Unlock()
	if s.wishlists[acc.ID] == nil {
		s.wishlists[acc.ID] = make(map[string]bool)
	}
	s.wishlists[acc.ID][productID] = true
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleWishlistRemove(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)
	productID := mux.Vars(r)["id"]

	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.wishlists[acc.ID], productID)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
