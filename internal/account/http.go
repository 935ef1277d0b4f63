package account

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Lebaba/pkg/kit"
)

const (
	maxBodyBytes = 1 << 20

	signupLimitPerMin = 3
	limitWindowSecs   = 60
)

type Server struct {
	Store Store
	Log   *zap.Logger
}

// Register mounts the signup endpoint. Signup is the only account
// operation; there is no login flow.
func (s *Server) Register(r chi.Router) {
	limiter := kit.NewIPRateLimiter(signupLimitPerMin, limitWindowSecs)
	r.With(limiter.Middleware).Post("/users", s.handleSignup)
}

type signupReq struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,email"`
}

type userResp struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req signupReq
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", map[string]any{"cause": err.Error()})
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if fieldErrs := kit.CheckStruct(req); fieldErrs != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "validation failed", fieldErrs)
		return
	}

	u, err := s.Store.Create(r.Context(), NewUser{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	switch err {
	case nil:
	case ErrUsernameExists, ErrEmailExists:
		kit.WriteError(w, r, http.StatusConflict, err.Error(), nil)
		return
	default:
		if s.Log != nil {
			s.Log.Error("create user failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	// The password never appears in a response body, hashed or otherwise.
	kit.WriteJSON(w, http.StatusCreated, userResp{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	})
}
