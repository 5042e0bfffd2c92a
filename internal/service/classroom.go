package service

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/kafka"
	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/internal/storage"
)

// Join codes avoid 0/O and 1/I so they survive being read out loud.
const (
	joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	joinCodeLength   = 6
	joinCodeAttempts = 5
)

type ClassroomService struct {
	classrooms ClassroomRepository
	files      FileStore
	events     EventSender
}

func NewClassroomService(classrooms ClassroomRepository, files FileStore, events EventSender) *ClassroomService {
	return &ClassroomService{classrooms: classrooms, files: files, events: events}
}

func (s *ClassroomService) Create(ctx context.Context, input *model.CreateClassroomInput) (*model.Classroom, error) {
	userId, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if role != model.RoleTeacher {
		return nil, errdefs.ErrPermissionDenied
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	// Code collisions are rare at 32^6 keyspace but the unique index makes
	// them visible, so retry with a fresh code instead of failing the request.
	var lastErr error
	for i := 0; i < joinCodeAttempts; i++ {
		code, err := newJoinCode()
		if err != nil {
			return nil, err
		}
		classroom, err := s.classrooms.CreateClassroom(ctx, &model.Classroom{
			Id:          id,
			Name:        strings.TrimSpace(input.Name),
			Description: input.Description,
			Code:        code,
			Semester:    input.Semester,
			TeacherId:   userId,
		})
		if err == nil {
			return classroom, nil
		}
		if !errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *ClassroomService) Get(ctx context.Context, id uuid.UUID) (*model.Classroom, error) {
	m, err := resolveMembership(ctx, s.classrooms, id)
	if err != nil {
		return nil, err
	}
	return m.classroom, nil
}

func (s *ClassroomService) ListMine(ctx context.Context) ([]*model.Classroom, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.classrooms.ListClassroomsForUser(ctx, userId)
}

func (s *ClassroomService) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := resolveMembership(ctx, s.classrooms, id)
	if err != nil {
		return err
	}
	if !m.isTeacher {
		return errdefs.ErrPermissionDenied
	}
	return s.classrooms.DeleteClassroom(ctx, id)
}

func (s *ClassroomService) JoinByCode(ctx context.Context, input *model.JoinClassroomInput) (*model.Classroom, error) {
	userId, role, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if role != model.RoleStudent {
		return nil, errdefs.ErrPermissionDenied
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	classroom, err := s.classrooms.GetClassroomByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.classrooms.AddStudent(ctx, classroom.Id, userId); err != nil {
		return nil, err
	}
	classroom.StudentCount++

	emitEvent(ctx, s.events, kafka.Event{
		Type:        kafka.EventEnrollmentCreated,
		ClassroomID: classroom.Id.String(),
		UserID:      userId.String(),
		Title:       classroom.Name,
	})
	return classroom, nil
}

func (s *ClassroomService) ListStudents(ctx context.Context, classroomId uuid.UUID) ([]*model.UserPublic, error) {
	if _, err := resolveMembership(ctx, s.classrooms, classroomId); err != nil {
		return nil, err
	}
	return s.classrooms.ListStudents(ctx, classroomId)
}

func (s *ClassroomService) UploadMaterial(ctx context.Context, classroomId uuid.UUID, input *model.UploadMaterialInput) (*model.Material, error) {
	m, err := resolveMembership(ctx, s.classrooms, classroomId)
	if err != nil {
		return nil, err
	}
	if !m.isTeacher {
		return nil, errdefs.ErrPermissionDenied
	}
	if err := validateUpload(input.File); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = input.File.Filename
	}

	key := storage.NewKey("materials", input.File.Filename)
	if err := s.files.Save(ctx, key, input.File.ContentType, input.File.Reader, input.File.Size); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return s.classrooms.AddMaterial(ctx, &model.Material{
		Id:          id,
		ClassroomId: classroomId,
		Title:       title,
		ContentType: input.File.ContentType,
		Size:        humanSize(input.File.Size),
		FileKey:     key,
		FileURL:     s.files.URL(key),
	})
}

func (s *ClassroomService) ListMaterials(ctx context.Context, classroomId uuid.UUID) ([]*model.Material, error) {
	if _, err := resolveMembership(ctx, s.classrooms, classroomId); err != nil {
		return nil, err
	}
	return s.classrooms.ListMaterials(ctx, classroomId)
}

// OpenMaterial streams a stored material back to a classroom member.
func (s *ClassroomService) OpenMaterial(ctx context.Context, classroomId, materialId uuid.UUID) (*model.Material, io.ReadCloser, error) {
	if _, err := resolveMembership(ctx, s.classrooms, classroomId); err != nil {
		return nil, nil, err
	}
	material, err := s.classrooms.GetMaterial(ctx, classroomId, materialId)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.files.Open(ctx, material.FileKey)
	if err != nil {
		return nil, nil, err
	}
	return material, rc, nil
}

func newJoinCode() (string, error) {
	var b strings.Builder
	b.Grow(joinCodeLength)
	for i := 0; i < joinCodeLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(joinCodeAlphabet))))
		if err != nil {
			return "", err
		}
		b.WriteByte(joinCodeAlphabet[n.Int64()])
	}
	return b.String(), nil
}
