package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/pkg/logging"
)

var validate = validator.New()

// Cache is the response cache used by hot listing endpoints. Set and Delete
// report failures so handlers can log them; a failed cache write never fails
// the request itself.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func mapErr(err error) int {
	switch {
	case errors.Is(err, errdefs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errdefs.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, errdefs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errdefs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errdefs.ErrAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	w.Write(data)
}

func writeErrorJSON(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": message})
	w.Write(resp)
}

// writeErr logs the failure and answers with the mapped status. Internal
// details never leak to the client, only the generic status text does.
func writeErr(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	statusCode := mapErr(err)
	if logger, ok := logging.GetFromContext(ctx); ok {
		if statusCode >= http.StatusInternalServerError {
			logger.Error(ctx, "request failed", zap.String("path", r.URL.Path), zap.Error(err))
		} else {
			logger.Debug(ctx, "request rejected", zap.String("path", r.URL.Path), zap.Error(err))
		}
	}
	writeErrorJSON(w, statusCode, http.StatusText(statusCode))
}

// decodeJSON parses the body into dst and runs the validator tags.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid json body", errdefs.ErrValidation)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", errdefs.ErrValidation, err)
	}
	return nil
}

func parsePathID(r *http.Request, key string) (uuid.UUID, error) {
	raw := chi.URLParam(r, key)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: missing path param %s", errdefs.ErrValidation, key)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s", errdefs.ErrValidation, key)
	}
	return id, nil
}

func parseListParams(r *http.Request) model.ListParams {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return model.ListParams{
		Search: q.Get("search"),
		Page:   page,
		Limit:  limit,
	}
}
