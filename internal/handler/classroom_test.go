package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/internal/service"
	"github.com/nabin00012/codecommons-sub000/internal/service/mocks"
	"github.com/nabin00012/codecommons-sub000/pkg/ctxdata"
)

type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	data, ok := f.entries[key]
	return data, ok
}

func (f *fakeCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	f.entries[key] = data
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

func TestJoin_EvictsCachedRoster(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()

	repo := mocks.NewMockClassroomRepository(ctrl)
	svc := service.NewClassroomService(repo, nil, nil)
	cache := newFakeCache()
	cache.entries[rosterCacheKey(classroomId)] = []byte(`[]`)
	h := NewClassroomHandler(svc, cache)

	repo.EXPECT().GetClassroomByCode(gomock.Any(), "ABC234").
		Return(&model.Classroom{Id: classroomId, Name: "Algorithms 101", Code: "ABC234", TeacherId: uuid.New()}, nil)
	repo.EXPECT().AddStudent(gomock.Any(), classroomId, studentId).Return(nil)

	r := httptest.NewRequest(http.MethodPost, "/classrooms/join", strings.NewReader(`{"code":"abc234"}`))
	r.Header.Set("Content-Type", "application/json")
	r = r.WithContext(ctxdata.WithIdentity(r.Context(), ctxdata.Identity{
		UserID: studentId.String(),
		Role:   model.RoleStudent.String(),
	}))
	w := httptest.NewRecorder()

	h.Join(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	_, ok := cache.Get(context.Background(), rosterCacheKey(classroomId))
	assert.False(t, ok, "roster cache entry should be gone after a join")
}
