package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/pkg/ctxdata"
)

// ClassroomRepository is the classroom surface shared by every service that
// has to re-derive membership per request.
type ClassroomRepository interface {
	CreateClassroom(ctx context.Context, classroom *model.Classroom) (*model.Classroom, error)
	GetClassroom(ctx context.Context, id uuid.UUID) (*model.Classroom, error)
	GetClassroomByCode(ctx context.Context, code string) (*model.Classroom, error)
	ListClassroomsForUser(ctx context.Context, userId uuid.UUID) ([]*model.Classroom, error)
	DeleteClassroom(ctx context.Context, id uuid.UUID) error
	AddStudent(ctx context.Context, classroomId, studentId uuid.UUID) error
	IsStudent(ctx context.Context, classroomId, studentId uuid.UUID) (bool, error)
	ListStudents(ctx context.Context, classroomId uuid.UUID) ([]*model.UserPublic, error)
	AddMaterial(ctx context.Context, material *model.Material) (*model.Material, error)
	ListMaterials(ctx context.Context, classroomId uuid.UUID) ([]*model.Material, error)
	GetMaterial(ctx context.Context, classroomId, materialId uuid.UUID) (*model.Material, error)
}

func currentUser(ctx context.Context) (uuid.UUID, model.Role, error) {
	identity, ok := ctxdata.GetIdentity(ctx)
	if !ok {
		return uuid.Nil, "", errdefs.ErrAuthentication
	}
	id, err := uuid.Parse(identity.UserID)
	if err != nil {
		return uuid.Nil, "", errdefs.ErrAuthentication
	}
	role := model.Role(identity.Role)
	if !role.IsValid() {
		return uuid.Nil, "", errdefs.ErrAuthentication
	}
	return id, role, nil
}

// membership resolves the caller's relationship to a classroom. It is the
// shared precondition for every classroom-scoped operation: the classroom
// must exist and the caller must be its teacher or an enrolled student.
type membership struct {
	classroom *model.Classroom
	userId    uuid.UUID
	isTeacher bool
	isStudent bool
}

func resolveMembership(ctx context.Context, classrooms ClassroomRepository, classroomId uuid.UUID) (*membership, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	classroom, err := classrooms.GetClassroom(ctx, classroomId)
	if err != nil {
		return nil, err
	}

	m := &membership{classroom: classroom, userId: userId}
	if classroom.TeacherId == userId {
		m.isTeacher = true
		return m, nil
	}

	enrolled, err := classrooms.IsStudent(ctx, classroomId, userId)
	if err != nil {
		return nil, err
	}
	m.isStudent = enrolled
	if !m.isStudent {
		return nil, errdefs.ErrPermissionDenied
	}
	return m, nil
}
