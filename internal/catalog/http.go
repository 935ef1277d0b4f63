package catalog

import (
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Lebaba/pkg/kit"
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Register mounts the read-only catalog endpoints onto r.
func (s *Server) Register(r chi.Router) {
	r.Get("/products", s.list)
	r.Get("/products/search", s.search)
	r.Get("/products/category/{categoryID}", s.listByCategory)
	r.Get("/products/{id}", s.get)

	r.Get("/categories", s.listCategories)
	r.Get("/categories/{id}", s.getCategory)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.ListProducts(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list products failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.Atoi(raw)
	if err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid product id", map[string]any{"id": raw})
		return
	}

	p, ok, err := s.Store.GetProduct(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get product failed", zap.Error(err), zap.Int("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "product not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) listByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "categoryID")

	products, err := s.Store.ListProductsByCategory(r.Context(), categoryID)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list products by category failed", zap.Error(err), zap.String("category_id", categoryID))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if utf8.RuneCountInString(q) < MinSearchLength {
		kit.WriteError(w, r, http.StatusBadRequest, "search query must be at least 2 characters",
			map[string]any{"q": q})
		return
	}

	products, err := s.Store.SearchProducts(r.Context(), q)
	if err != nil {
		if err == ErrQueryTooShort {
			kit.WriteError(w, r, http.StatusBadRequest, "search query must be at least 2 characters", nil)
			return
		}
		if s.Log != nil {
			s.Log.Error("search products failed", zap.Error(err), zap.String("q", q))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.Store.ListCategories(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("list categories failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, categories)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	c, ok, err := s.Store.GetCategory(r.Context(), id)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("get category failed", zap.Error(err), zap.String("id", id))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "category not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}
