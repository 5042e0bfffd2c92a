package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/internal/service"
)

type authResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

type AuthHandler struct {
	users *service.UserService
}

func NewAuthHandler(users *service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/password-reset/request", h.RequestPasswordReset)
	r.Post("/auth/password-reset/confirm", h.ConfirmPasswordReset)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input model.RegisterInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}

	user, token, err := h.users.Register(r.Context(), &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	setAuthCookie(w, token)
	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input model.LoginInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}

	user, token, err := h.users.Login(r.Context(), &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	setAuthCookie(w, token)
	writeJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var input model.RequestPasswordResetInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}

	if err := h.users.RequestPasswordReset(r.Context(), &input); err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "ok"})
}

func (h *AuthHandler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var input model.ConfirmPasswordResetInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}

	if err := h.users.ConfirmPasswordReset(r.Context(), &input); err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// setAuthCookie mirrors the bearer token so in-browser file links work
// without an Authorization header.
func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
