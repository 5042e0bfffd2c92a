package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/users/me", h.GetMe)
		r.Patch("/users/me", h.UpdateMe)
		r.Get("/users/{user_id}", h.GetUser)
	})
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetMe(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var input model.UpdateUserInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}

	me, err := h.users.GetMe(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	updated, err := h.users.UpdateUser(r.Context(), me.Id, &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "user_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	user, err := h.users.GetUserPublic(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
