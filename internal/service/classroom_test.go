package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/internal/service/mocks"
)

func TestCreateClassroom_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teacherId := uuid.New()
	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewClassroomService(classrooms, nil, nil)

	ctx := authCtx(teacherId, model.RoleTeacher)
	classrooms.EXPECT().CreateClassroom(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, c *model.Classroom) (*model.Classroom, error) {
			assert.Equal(t, teacherId, c.TeacherId)
			assert.Len(t, c.Code, 6)
			assert.Equal(t, strings.ToUpper(c.Code), c.Code)
			return c, nil
		})

	classroom, err := svc.Create(ctx, &model.CreateClassroomInput{Name: "Data Structures", Semester: "Fall 2026"})
	require.NoError(t, err)
	assert.Equal(t, "Data Structures", classroom.Name)
}

func TestCreateClassroom_StudentForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewClassroomService(classrooms, nil, nil)

	ctx := authCtx(uuid.New(), model.RoleStudent)
	_, err := svc.Create(ctx, &model.CreateClassroomInput{Name: "Nope", Semester: "Fall 2026"})
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestCreateClassroom_RetriesOnCodeCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teacherId := uuid.New()
	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewClassroomService(classrooms, nil, nil)

	ctx := authCtx(teacherId, model.RoleTeacher)
	first := classrooms.EXPECT().CreateClassroom(ctx, gomock.Any()).Return(nil, errdefs.ErrAlreadyExists)
	classrooms.EXPECT().CreateClassroom(ctx, gomock.Any()).After(first).DoAndReturn(
		func(_ context.Context, c *model.Classroom) (*model.Classroom, error) {
			return c, nil
		})

	_, err := svc.Create(ctx, &model.CreateClassroomInput{Name: "OS", Semester: "Spring 2027"})
	require.NoError(t, err)
}

func TestJoinByCode_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()
	classrooms := mocks.NewMockClassroomRepository(ctrl)
	events := mocks.NewMockEventSender(ctrl)
	svc := NewClassroomService(classrooms, nil, events)

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroomByCode(ctx, "ABC234").
		Return(&model.Classroom{Id: classroomId, Name: "Algo", Code: "ABC234", StudentCount: 4}, nil)
	classrooms.EXPECT().AddStudent(ctx, classroomId, studentId).Return(nil)
	events.EXPECT().Send(ctx, gomock.Any()).Return(nil)

	classroom, err := svc.JoinByCode(ctx, &model.JoinClassroomInput{Code: " abc234 "})
	require.NoError(t, err)
	assert.Equal(t, 5, classroom.StudentCount)
}

func TestJoinByCode_AlreadyEnrolled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()
	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewClassroomService(classrooms, nil, nil)

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroomByCode(ctx, "ABC234").
		Return(&model.Classroom{Id: classroomId, Code: "ABC234"}, nil)
	classrooms.EXPECT().AddStudent(ctx, classroomId, studentId).Return(errdefs.ErrAlreadyExists)

	_, err := svc.JoinByCode(ctx, &model.JoinClassroomInput{Code: "ABC234"})
	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
}

func TestJoinByCode_UnknownCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewClassroomService(classrooms, nil, nil)

	ctx := authCtx(uuid.New(), model.RoleStudent)
	classrooms.EXPECT().GetClassroomByCode(ctx, "ZZZZZZ").Return(nil, errdefs.ErrNotFound)

	_, err := svc.JoinByCode(ctx, &model.JoinClassroomInput{Code: "ZZZZZZ"})
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestJoinByCode_TeacherForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewClassroomService(classrooms, nil, nil)

	ctx := authCtx(uuid.New(), model.RoleTeacher)
	_, err := svc.JoinByCode(ctx, &model.JoinClassroomInput{Code: "ABC234"})
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestDeleteClassroom_OwnerOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teacherId := uuid.New()
	otherId := uuid.New()
	classroomId := uuid.New()
	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewClassroomService(classrooms, nil, nil)

	ctx := authCtx(otherId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, teacherId), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, otherId).Return(true, nil)

	err := svc.Delete(ctx, classroomId)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestUploadMaterial_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teacherId := uuid.New()
	classroomId := uuid.New()
	classrooms := mocks.NewMockClassroomRepository(ctrl)
	files := mocks.NewMockFileStore(ctrl)
	svc := NewClassroomService(classrooms, files, nil)

	ctx := authCtx(teacherId, model.RoleTeacher)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, teacherId), nil)
	files.EXPECT().Save(ctx, gomock.Any(), "application/pdf", gomock.Any(), int64(9)).Return(nil)
	files.EXPECT().URL(gomock.Any()).DoAndReturn(func(key string) string { return "/uploads/" + key })
	classrooms.EXPECT().AddMaterial(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, m *model.Material) (*model.Material, error) {
			assert.Equal(t, "Week 1 slides", m.Title)
			assert.Equal(t, "9 B", m.Size)
			assert.True(t, strings.HasPrefix(m.FileKey, "materials/"))
			return m, nil
		})

	material, err := svc.UploadMaterial(ctx, classroomId, &model.UploadMaterialInput{
		Title: "Week 1 slides",
		File: &model.FileUpload{
			Reader:      strings.NewReader("slides pdf"),
			Filename:    "week1.pdf",
			ContentType: "application/pdf",
			Size:        9,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, classroomId, material.ClassroomId)
}

func TestUploadMaterial_StudentForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()
	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewClassroomService(classrooms, nil, nil)

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(true, nil)

	_, err := svc.UploadMaterial(ctx, classroomId, &model.UploadMaterialInput{})
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestUploadMaterial_DisallowedType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teacherId := uuid.New()
	classroomId := uuid.New()
	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewClassroomService(classrooms, nil, nil)

	ctx := authCtx(teacherId, model.RoleTeacher)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, teacherId), nil)

	_, err := svc.UploadMaterial(ctx, classroomId, &model.UploadMaterialInput{
		File: &model.FileUpload{
			Reader:      strings.NewReader("MZ"),
			Filename:    "setup.exe",
			ContentType: "application/x-msdownload",
			Size:        2,
		},
	})
	assert.ErrorIs(t, err, errdefs.ErrValidation)
}

func TestGetClassroom_NonMemberForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userId := uuid.New()
	classroomId := uuid.New()
	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewClassroomService(classrooms, nil, nil)

	ctx := authCtx(userId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, userId).Return(false, nil)

	_, err := svc.Get(ctx, classroomId)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestGetClassroom_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewClassroomService(classrooms, nil, nil)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errdefs.ErrAuthentication)
}
