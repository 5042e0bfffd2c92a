package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/internal/service"
	"github.com/nabin00012/codecommons-sub000/pkg/logging"
)

const (
	maxMultipartMemory = 8 << 20
	classroomCacheTTL  = 30 * time.Second
)

type ClassroomHandler struct {
	classrooms *service.ClassroomService
	cache      Cache
}

func NewClassroomHandler(classrooms *service.ClassroomService, cache Cache) *ClassroomHandler {
	return &ClassroomHandler{classrooms: classrooms, cache: cache}
}

func (h *ClassroomHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/classrooms", h.Create)
		r.Get("/classrooms", h.ListMine)
		r.Post("/classrooms/join", h.Join)
		r.Get("/classrooms/{classroom_id}", h.Get)
		r.Delete("/classrooms/{classroom_id}", h.Delete)
		r.Get("/classrooms/{classroom_id}/students", h.ListStudents)
		r.Post("/classrooms/{classroom_id}/materials", h.UploadMaterial)
		r.Get("/classrooms/{classroom_id}/materials", h.ListMaterials)
		r.Get("/classrooms/{classroom_id}/materials/{material_id}/download", h.DownloadMaterial)
	})
}

func (h *ClassroomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.CreateClassroomInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}
	classroom, err := h.classrooms.Create(r.Context(), &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, classroom)
}

func (h *ClassroomHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	classrooms, err := h.classrooms.ListMine(r.Context())
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if classrooms == nil {
		classrooms = []*model.Classroom{}
	}
	writeJSON(w, http.StatusOK, classrooms)
}

func (h *ClassroomHandler) Join(w http.ResponseWriter, r *http.Request) {
	var input model.JoinClassroomInput
	if err := decodeJSON(r, &input); err != nil {
		writeErr(w, r, err)
		return
	}
	classroom, err := h.classrooms.JoinByCode(r.Context(), &input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	// The roster changed, so the cached listing is stale.
	h.evictRoster(r.Context(), classroom.Id)
	writeJSON(w, http.StatusOK, classroom)
}

// Get serves from the short-lived response cache when possible; the cache key
// is per classroom and per caller role boundary is enforced downstream anyway.
func (h *ClassroomHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathID(r, "classroom_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}

	classroom, err := h.classrooms.Get(ctx, id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, classroom)
}

func (h *ClassroomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "classroom_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if err := h.classrooms.Delete(r.Context(), id); err != nil {
		writeErr(w, r, err)
		return
	}
	h.evictRoster(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ClassroomHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parsePathID(r, "classroom_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}

	cacheKey := rosterCacheKey(id)
	if h.cache != nil {
		if data, ok := h.cache.Get(ctx, cacheKey); ok {
			w.Header().Set("Content-Type", "application/json")
			w.Write(data)
			return
		}
	}

	students, err := h.classrooms.ListStudents(ctx, id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if students == nil {
		students = []*model.UserPublic{}
	}

	if h.cache != nil {
		if data, err := json.Marshal(students); err == nil {
			if err := h.cache.Set(ctx, cacheKey, data, classroomCacheTTL); err != nil {
				logCacheError(ctx, "failed to cache roster", err)
			}
		}
	}
	writeJSON(w, http.StatusOK, students)
}

func rosterCacheKey(classroomId uuid.UUID) string {
	return "students:" + classroomId.String()
}

// evictRoster drops the cached student listing after a membership change.
// Cache failures are logged and swallowed: the TTL bounds the staleness.
func (h *ClassroomHandler) evictRoster(ctx context.Context, classroomId uuid.UUID) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Delete(ctx, rosterCacheKey(classroomId)); err != nil {
		logCacheError(ctx, "failed to evict roster cache", err)
	}
}

func logCacheError(ctx context.Context, msg string, err error) {
	if logger, ok := logging.GetFromContext(ctx); ok {
		logger.Error(ctx, msg, zap.Error(err))
	}
}

func (h *ClassroomHandler) UploadMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "classroom_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}

	input, err := parseMaterialUpload(r)
	if err != nil {
		writeErr(w, r, err)
		return
	}

	material, err := h.classrooms.UploadMaterial(r.Context(), id, input)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, material)
}

func (h *ClassroomHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r, "classroom_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	materials, err := h.classrooms.ListMaterials(r.Context(), id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if materials == nil {
		materials = []*model.Material{}
	}
	writeJSON(w, http.StatusOK, materials)
}

func (h *ClassroomHandler) DownloadMaterial(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	classroomId, err := parsePathID(r, "classroom_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}
	materialId, err := parsePathID(r, "material_id")
	if err != nil {
		writeErr(w, r, err)
		return
	}

	material, rc, err := h.classrooms.OpenMaterial(ctx, classroomId, materialId)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", material.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+material.Title+`"`)
	if _, err := io.Copy(w, rc); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "failed to stream material", zap.Error(err))
		}
	}
}

func parseMaterialUpload(r *http.Request) (*model.UploadMaterialInput, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, fmt.Errorf("%w: invalid multipart form", errdefs.ErrValidation)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: missing file field", errdefs.ErrValidation)
	}
	return &model.UploadMaterialInput{
		Title: r.FormValue("title"),
		File: &model.FileUpload{
			Reader:      file,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
		},
	}, nil
}
