package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/internal/service/mocks"
	"github.com/nabin00012/codecommons-sub000/pkg/ctxdata"
)

func authCtx(userId uuid.UUID, role model.Role) context.Context {
	return ctxdata.WithIdentity(context.Background(), ctxdata.Identity{
		UserID: userId.String(),
		Role:   role.String(),
	})
}

func teacherClassroom(classroomId, teacherId uuid.UUID) *model.Classroom {
	return &model.Classroom{
		Id:        classroomId,
		Name:      "Algorithms 101",
		Code:      "ABC234",
		TeacherId: teacherId,
	}
}

func textAssignment(assignmentId, classroomId uuid.UUID) *model.Assignment {
	return &model.Assignment{
		Id:             assignmentId,
		ClassroomId:    classroomId,
		Title:          "Homework 1",
		DueDate:        time.Now().Add(24 * time.Hour),
		Points:         100,
		SubmissionType: model.SubmissionTypeText,
	}
}

func TestSubmit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teacherId := uuid.New()
	studentId := uuid.New()
	classroomId := uuid.New()
	assignmentId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	assignments := mocks.NewMockAssignmentRepository(ctrl)
	submissions := mocks.NewMockSubmissionRepository(ctrl)
	svc := NewAssignmentService(classrooms, assignments, submissions, nil, nil, nil)

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, teacherId), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(true, nil)
	assignments.EXPECT().GetAssignment(ctx, assignmentId).Return(textAssignment(assignmentId, classroomId), nil)
	submissions.EXPECT().GetSubmission(ctx, assignmentId, studentId).Return(nil, errdefs.ErrNotFound)
	submissions.EXPECT().CreateSubmission(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *model.Submission) (*model.Submission, error) {
			require.NotNil(t, s.Content)
			assert.Equal(t, "my answer", *s.Content)
			s.Status = model.SubmissionStatusSubmitted
			return s, nil
		})

	created, err := svc.Submit(ctx, classroomId, assignmentId, &model.SubmitAssignmentInput{Content: "  my answer  "})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusSubmitted, created.Status)
	assert.Equal(t, studentId, created.StudentId)
}

func TestSubmit_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()
	assignmentId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	assignments := mocks.NewMockAssignmentRepository(ctrl)
	submissions := mocks.NewMockSubmissionRepository(ctrl)
	svc := NewAssignmentService(classrooms, assignments, submissions, nil, nil, nil)

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(true, nil)
	assignments.EXPECT().GetAssignment(ctx, assignmentId).Return(textAssignment(assignmentId, classroomId), nil)
	submissions.EXPECT().GetSubmission(ctx, assignmentId, studentId).
		Return(&model.Submission{Id: uuid.New(), AssignmentId: assignmentId, StudentId: studentId}, nil)

	_, err := svc.Submit(ctx, classroomId, assignmentId, &model.SubmitAssignmentInput{Content: "again"})
	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
}

func TestSubmit_NonMemberForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewAssignmentService(classrooms, nil, nil, nil, nil, nil)

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(false, nil)

	_, err := svc.Submit(ctx, classroomId, uuid.New(), &model.SubmitAssignmentInput{Content: "x"})
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestSubmit_UnknownClassroom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	classroomId := uuid.New()
	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewAssignmentService(classrooms, nil, nil, nil, nil, nil)

	ctx := authCtx(uuid.New(), model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(nil, errdefs.ErrNotFound)

	_, err := svc.Submit(ctx, classroomId, uuid.New(), &model.SubmitAssignmentInput{Content: "x"})
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestSubmit_AssignmentFromOtherClassroom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()
	assignmentId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	assignments := mocks.NewMockAssignmentRepository(ctrl)
	svc := NewAssignmentService(classrooms, assignments, nil, nil, nil, nil)

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(true, nil)
	assignments.EXPECT().GetAssignment(ctx, assignmentId).Return(textAssignment(assignmentId, uuid.New()), nil)

	_, err := svc.Submit(ctx, classroomId, assignmentId, &model.SubmitAssignmentInput{Content: "x"})
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestSubmit_EmptyTextAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()
	assignmentId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	assignments := mocks.NewMockAssignmentRepository(ctrl)
	submissions := mocks.NewMockSubmissionRepository(ctrl)
	svc := NewAssignmentService(classrooms, assignments, submissions, nil, nil, nil)

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(true, nil)
	assignments.EXPECT().GetAssignment(ctx, assignmentId).Return(textAssignment(assignmentId, classroomId), nil)
	submissions.EXPECT().GetSubmission(ctx, assignmentId, studentId).Return(nil, errdefs.ErrNotFound)
	submissions.EXPECT().CreateSubmission(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *model.Submission) (*model.Submission, error) {
			require.NotNil(t, s.Content)
			assert.Equal(t, "", *s.Content)
			return s, nil
		})

	_, err := svc.Submit(ctx, classroomId, assignmentId, &model.SubmitAssignmentInput{Content: "   "})
	require.NoError(t, err)
}

func TestSubmit_EmptyCodeRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()
	assignmentId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	assignments := mocks.NewMockAssignmentRepository(ctrl)
	submissions := mocks.NewMockSubmissionRepository(ctrl)
	svc := NewAssignmentService(classrooms, assignments, submissions, nil, nil, nil)

	assignment := textAssignment(assignmentId, classroomId)
	assignment.SubmissionType = model.SubmissionTypeCode

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(true, nil)
	assignments.EXPECT().GetAssignment(ctx, assignmentId).Return(assignment, nil)
	submissions.EXPECT().GetSubmission(ctx, assignmentId, studentId).Return(nil, errdefs.ErrNotFound)

	_, err := svc.Submit(ctx, classroomId, assignmentId, &model.SubmitAssignmentInput{Content: "   "})
	assert.ErrorIs(t, err, errdefs.ErrValidation)
}

func TestSubmit_FileUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()
	assignmentId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	assignments := mocks.NewMockAssignmentRepository(ctrl)
	submissions := mocks.NewMockSubmissionRepository(ctrl)
	files := mocks.NewMockFileStore(ctrl)
	svc := NewAssignmentService(classrooms, assignments, submissions, nil, files, nil)

	assignment := textAssignment(assignmentId, classroomId)
	assignment.SubmissionType = model.SubmissionTypeFile

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(true, nil)
	assignments.EXPECT().GetAssignment(ctx, assignmentId).Return(assignment, nil)
	submissions.EXPECT().GetSubmission(ctx, assignmentId, studentId).Return(nil, errdefs.ErrNotFound)
	files.EXPECT().Save(ctx, gomock.Any(), "application/pdf", gomock.Any(), int64(12)).Return(nil)
	files.EXPECT().URL(gomock.Any()).DoAndReturn(func(key string) string { return "/uploads/" + key })
	submissions.EXPECT().CreateSubmission(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s *model.Submission) (*model.Submission, error) {
			require.NotNil(t, s.FileURL)
			assert.True(t, strings.HasPrefix(*s.FileURL, "/uploads/submissions/"))
			return s, nil
		})

	_, err := svc.Submit(ctx, classroomId, assignmentId, &model.SubmitAssignmentInput{
		File: &model.FileUpload{
			Reader:      strings.NewReader("hello report"),
			Filename:    "report.pdf",
			ContentType: "application/pdf",
			Size:        12,
		},
	})
	require.NoError(t, err)
}

func TestSubmit_OversizedFileRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()
	assignmentId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	assignments := mocks.NewMockAssignmentRepository(ctrl)
	submissions := mocks.NewMockSubmissionRepository(ctrl)
	svc := NewAssignmentService(classrooms, assignments, submissions, nil, nil, nil)

	assignment := textAssignment(assignmentId, classroomId)
	assignment.SubmissionType = model.SubmissionTypeFile

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(true, nil)
	assignments.EXPECT().GetAssignment(ctx, assignmentId).Return(assignment, nil)
	submissions.EXPECT().GetSubmission(ctx, assignmentId, studentId).Return(nil, errdefs.ErrNotFound)

	_, err := svc.Submit(ctx, classroomId, assignmentId, &model.SubmitAssignmentInput{
		File: &model.FileUpload{
			Reader:      strings.NewReader("x"),
			Filename:    "huge.zip",
			ContentType: "application/zip",
			Size:        25 << 20,
		},
	})
	assert.ErrorIs(t, err, errdefs.ErrValidation)
}

func TestGrade_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teacherId := uuid.New()
	studentId := uuid.New()
	classroomId := uuid.New()
	assignmentId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	assignments := mocks.NewMockAssignmentRepository(ctrl)
	submissions := mocks.NewMockSubmissionRepository(ctrl)
	events := mocks.NewMockEventSender(ctrl)
	svc := NewAssignmentService(classrooms, assignments, submissions, nil, nil, events)

	grade := 85
	ctx := authCtx(teacherId, model.RoleTeacher)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, teacherId), nil)
	assignments.EXPECT().GetAssignment(ctx, assignmentId).Return(textAssignment(assignmentId, classroomId), nil)
	submissions.EXPECT().SetGrade(ctx, assignmentId, studentId, grade, "well done").
		Return(&model.Submission{
			AssignmentId: assignmentId,
			StudentId:    studentId,
			Status:       model.SubmissionStatusGraded,
			Grade:        &grade,
		}, nil)
	events.EXPECT().Send(ctx, gomock.Any()).Return(nil)

	graded, err := svc.Grade(ctx, classroomId, assignmentId, &model.GradeSubmissionInput{
		StudentId: studentId,
		Grade:     grade,
		Feedback:  "well done",
	})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusGraded, graded.Status)
	require.NotNil(t, graded.Grade)
	assert.Equal(t, 85, *graded.Grade)
}

func TestGrade_BeforeSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teacherId := uuid.New()
	classroomId := uuid.New()
	assignmentId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	assignments := mocks.NewMockAssignmentRepository(ctrl)
	submissions := mocks.NewMockSubmissionRepository(ctrl)
	svc := NewAssignmentService(classrooms, assignments, submissions, nil, nil, nil)

	ctx := authCtx(teacherId, model.RoleTeacher)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, teacherId), nil)
	assignments.EXPECT().GetAssignment(ctx, assignmentId).Return(textAssignment(assignmentId, classroomId), nil)
	submissions.EXPECT().SetGrade(ctx, assignmentId, gomock.Any(), 50, "").Return(nil, errdefs.ErrNotFound)

	_, err := svc.Grade(ctx, classroomId, assignmentId, &model.GradeSubmissionInput{
		StudentId: uuid.New(),
		Grade:     50,
	})
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestGrade_ExceedsPoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teacherId := uuid.New()
	classroomId := uuid.New()
	assignmentId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	assignments := mocks.NewMockAssignmentRepository(ctrl)
	svc := NewAssignmentService(classrooms, assignments, nil, nil, nil, nil)

	ctx := authCtx(teacherId, model.RoleTeacher)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, teacherId), nil)
	assignments.EXPECT().GetAssignment(ctx, assignmentId).Return(textAssignment(assignmentId, classroomId), nil)

	_, err := svc.Grade(ctx, classroomId, assignmentId, &model.GradeSubmissionInput{
		StudentId: uuid.New(),
		Grade:     101,
	})
	assert.ErrorIs(t, err, errdefs.ErrValidation)
}

func TestGrade_StudentForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewAssignmentService(classrooms, nil, nil, nil, nil, nil)

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(true, nil)

	_, err := svc.Grade(ctx, classroomId, uuid.New(), &model.GradeSubmissionInput{StudentId: uuid.New(), Grade: 1})
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestGet_StudentSeesOnlyOwnSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()
	assignmentId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	assignments := mocks.NewMockAssignmentRepository(ctrl)
	submissions := mocks.NewMockSubmissionRepository(ctrl)
	questions := mocks.NewMockQuestionRepository(ctrl)
	svc := NewAssignmentService(classrooms, assignments, submissions, questions, nil, nil)

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(true, nil)
	assignments.EXPECT().GetAssignment(ctx, assignmentId).Return(textAssignment(assignmentId, classroomId), nil)
	submissions.EXPECT().GetSubmission(ctx, assignmentId, studentId).
		Return(&model.Submission{AssignmentId: assignmentId, StudentId: studentId}, nil)
	questions.EXPECT().ListQuestionsByAssignment(ctx, assignmentId).Return(nil, nil)

	assignment, err := svc.Get(ctx, classroomId, assignmentId)
	require.NoError(t, err)
	require.Len(t, assignment.Submissions, 1)
	assert.Equal(t, studentId, assignment.Submissions[0].StudentId)
}

func TestAskAndAnswerQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teacherId := uuid.New()
	studentId := uuid.New()
	classroomId := uuid.New()
	assignmentId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	assignments := mocks.NewMockAssignmentRepository(ctrl)
	questions := mocks.NewMockQuestionRepository(ctrl)
	svc := NewAssignmentService(classrooms, assignments, nil, questions, nil, nil)

	studentCtx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(studentCtx, classroomId).Return(teacherClassroom(classroomId, teacherId), nil)
	classrooms.EXPECT().IsStudent(studentCtx, classroomId, studentId).Return(true, nil)
	assignments.EXPECT().GetAssignment(studentCtx, assignmentId).Return(textAssignment(assignmentId, classroomId), nil)
	questions.EXPECT().CreateQuestion(studentCtx, gomock.Any()).DoAndReturn(
		func(_ context.Context, q *model.Question) (*model.Question, error) {
			assert.Equal(t, "why does this fail?", q.Question)
			return q, nil
		})

	question, err := svc.AskQuestion(studentCtx, classroomId, assignmentId, "  why does this fail?  ")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, question.Id)
	assert.NotNil(t, question.Answers)

	teacherCtx := authCtx(teacherId, model.RoleTeacher)
	classrooms.EXPECT().GetClassroom(teacherCtx, classroomId).Return(teacherClassroom(classroomId, teacherId), nil)
	assignments.EXPECT().GetAssignment(teacherCtx, assignmentId).Return(textAssignment(assignmentId, classroomId), nil)
	questions.EXPECT().GetQuestion(teacherCtx, question.Id).Return(question, nil)
	questions.EXPECT().CreateAnswer(teacherCtx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *model.Answer) (*model.Answer, error) {
			assert.Equal(t, question.Id, a.QuestionId)
			assert.Equal(t, "check the base case", a.Answer)
			return a, nil
		})

	answer, err := svc.AnswerQuestion(teacherCtx, classroomId, assignmentId, question.Id, "check the base case")
	require.NoError(t, err)
	assert.Equal(t, question.Id, answer.QuestionId)
}

func TestAnswerQuestion_StudentForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	questions := mocks.NewMockQuestionRepository(ctrl)
	svc := NewAssignmentService(classrooms, nil, nil, questions, nil, nil)

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(true, nil)

	_, err := svc.AnswerQuestion(ctx, classroomId, uuid.New(), uuid.New(), "only the teacher answers")
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestAskQuestion_TeacherForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teacherId := uuid.New()
	classroomId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewAssignmentService(classrooms, nil, nil, nil, nil, nil)

	ctx := authCtx(teacherId, model.RoleTeacher)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, teacherId), nil)

	_, err := svc.AskQuestion(ctx, classroomId, uuid.New(), "can I extend the deadline?")
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestAskQuestion_EmptyRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()
	assignmentId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	assignments := mocks.NewMockAssignmentRepository(ctrl)
	svc := NewAssignmentService(classrooms, assignments, nil, nil, nil, nil)

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(true, nil)
	assignments.EXPECT().GetAssignment(ctx, assignmentId).Return(textAssignment(assignmentId, classroomId), nil)

	_, err := svc.AskQuestion(ctx, classroomId, assignmentId, "   ")
	assert.ErrorIs(t, err, errdefs.ErrValidation)
}

func TestCreateAssignment_TeacherOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	studentId := uuid.New()
	classroomId := uuid.New()

	classrooms := mocks.NewMockClassroomRepository(ctrl)
	svc := NewAssignmentService(classrooms, nil, nil, nil, nil, nil)

	ctx := authCtx(studentId, model.RoleStudent)
	classrooms.EXPECT().GetClassroom(ctx, classroomId).Return(teacherClassroom(classroomId, uuid.New()), nil)
	classrooms.EXPECT().IsStudent(ctx, classroomId, studentId).Return(true, nil)

	_, err := svc.Create(ctx, classroomId, &model.CreateAssignmentInput{
		Title:          "hw",
		DueDate:        time.Now(),
		Points:         10,
		SubmissionType: model.SubmissionTypeText,
	})
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}
