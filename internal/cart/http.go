package cart

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"Lebaba/internal/catalog"
	"Lebaba/pkg/kit"
)

// SessionHeader carries the cart session id. Mutations without the header
// mint a session and return its id in the same header.
const SessionHeader = "X-Cart-Session"

const maxBodyBytes = 1 << 20

type Server struct {
	Sessions *Sessions
	Catalog  catalog.Store
	Log      *zap.Logger
}

func (s *Server) Register(r chi.Router) {
	r.Get("/cart", s.handleView)
	r.Post("/cart/items", s.handleAdd)
	r.Put("/cart/items/{productID}", s.handleSetQuantity)
	r.Delete("/cart/items/{productID}", s.handleRemove)
	r.Post("/checkout", s.handleCheckout)
}

// View is the serialized cart state returned by every cart endpoint.
type View struct {
	Items      []Item  `json:"items"`
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

func snapshot(c *Cart) View {
	return View{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}

type addReq struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req addReq
	if !decodeBody(w, r, &req) {
		return
	}

	p, ok, err := s.Catalog.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("cart add: catalog lookup failed", zap.Error(err), zap.Int("product_id", req.ProductID))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"productId": req.ProductID})
		return
	}

	var view View
	sid := s.Sessions.Update(r.Header.Get(SessionHeader), func(c *Cart) {
		c.Add(p, req.Quantity)
		view = snapshot(c)
	})

	w.Header().Set(SessionHeader, sid)
	kit.WriteJSON(w, http.StatusCreated, view)
}

type setQuantityReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var req setQuantityReq
	if !decodeBody(w, r, &req) {
		return
	}

	var view View
	sid := s.Sessions.Update(r.Header.Get(SessionHeader), func(c *Cart) {
		c.SetQuantity(productID, req.Quantity)
		view = snapshot(c)
	})

	w.Header().Set(SessionHeader, sid)
	kit.WriteJSON(w, http.StatusOK, view)
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(w, r)
	if !ok {
		return
	}

	var view View
	sid := s.Sessions.Update(r.Header.Get(SessionHeader), func(c *Cart) {
		c.Remove(productID)
		view = snapshot(c)
	})

	w.Header().Set(SessionHeader, sid)
	kit.WriteJSON(w, http.StatusOK, view)
}

// handleView is read-only: an unknown session renders as an empty cart
// and is never stored, so polling the view cannot allocate server state.
// Only mutations mint sessions.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sid := r.Header.Get(SessionHeader)

	var view View
	s.Sessions.View(sid, func(c *Cart) {
		view = snapshot(c)
	})

	if sid != "" {
		w.Header().Set(SessionHeader, sid)
	}
	kit.WriteJSON(w, http.StatusOK, view)
}

type checkoutReq struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

type checkoutResp struct {
	Reference  string  `json:"reference"`
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

// handleCheckout validates the checkout form and clears the cart. No
// payment is taken and no order record survives the process.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if !decodeBody(w, r, &req) {
		return
	}

	if fieldErrs := kit.CheckStruct(req); fieldErrs != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "validation failed", fieldErrs)
		return
	}

	var resp checkoutResp
	empty := false
	sid := s.Sessions.Update(r.Header.Get(SessionHeader), func(c *Cart) {
		if len(c.Items()) == 0 {
			empty = true
			return
		}
		resp = checkoutResp{
			Reference:  "ord_" + uuid.NewString(),
			TotalItems: c.TotalItems(),
			TotalPrice: c.TotalPrice(),
		}
		c.Clear()
	})

	w.Header().Set(SessionHeader, sid)
	if empty {
		kit.WriteError(w, r, http.StatusBadRequest, "cart is empty", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, resp)
}

func productIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "productID")
	id, err := strconv.Atoi(raw)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid product id", map[string]any{"productId": raw})
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return false
	}
	return true
}
