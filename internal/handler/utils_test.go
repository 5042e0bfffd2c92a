package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
)

func TestMapErr(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errdefs.ErrValidation, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("%w: too big", errdefs.ErrValidation), http.StatusBadRequest},
		{"authentication", errdefs.ErrAuthentication, http.StatusUnauthorized},
		{"permission denied", errdefs.ErrPermissionDenied, http.StatusForbidden},
		{"not found", errdefs.ErrNotFound, http.StatusNotFound},
		{"already exists", errdefs.ErrAlreadyExists, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mapErr(tc.err))
		})
	}
}

func TestParseListParams(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/discussions?search=go&page=3&limit=10", nil)
	params := parseListParams(r)
	assert.Equal(t, model.ListParams{Search: "go", Page: 3, Limit: 10}, params)
}

func TestParseListParams_Defaults(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/discussions", nil)
	params := parseListParams(r).Normalize()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, 0, params.Offset())
}

func TestWriteErrorJSON(t *testing.T) {
	w := httptest.NewRecorder()
	writeErrorJSON(w, http.StatusConflict, "Conflict")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"Conflict"}`, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}
