package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/kafka"
	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/internal/storage"
)

type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, assignment *model.Assignment) (*model.Assignment, error)
	GetAssignment(ctx context.Context, id uuid.UUID) (*model.Assignment, error)
	ListAssignmentsByClassroom(ctx context.Context, classroomId uuid.UUID) ([]*model.Assignment, error)
}

type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission *model.Submission) (*model.Submission, error)
	GetSubmission(ctx context.Context, assignmentId, studentId uuid.UUID) (*model.Submission, error)
	ListSubmissionsByAssignment(ctx context.Context, assignmentId uuid.UUID) ([]*model.Submission, error)
	SetGrade(ctx context.Context, assignmentId, studentId uuid.UUID, grade int, feedback string) (*model.Submission, error)
}

type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question *model.Question) (*model.Question, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*model.Question, error)
	ListQuestionsByAssignment(ctx context.Context, assignmentId uuid.UUID) ([]*model.Question, error)
	CreateAnswer(ctx context.Context, answer *model.Answer) (*model.Answer, error)
	ListAnswersByQuestion(ctx context.Context, questionId uuid.UUID) ([]*model.Answer, error)
}

type AssignmentService struct {
	classrooms  ClassroomRepository
	assignments AssignmentRepository
	submissions SubmissionRepository
	questions   QuestionRepository
	files       FileStore
	events      EventSender
}

func NewAssignmentService(
	classrooms ClassroomRepository,
	assignments AssignmentRepository,
	submissions SubmissionRepository,
	questions QuestionRepository,
	files FileStore,
	events EventSender,
) *AssignmentService {
	return &AssignmentService{
		classrooms:  classrooms,
		assignments: assignments,
		submissions: submissions,
		questions:   questions,
		files:       files,
		events:      events,
	}
}

func (s *AssignmentService) Create(ctx context.Context, classroomId uuid.UUID, input *model.CreateAssignmentInput) (*model.Assignment, error) {
	m, err := resolveMembership(ctx, s.classrooms, classroomId)
	if err != nil {
		return nil, err
	}
	if !m.isTeacher {
		return nil, errdefs.ErrPermissionDenied
	}
	if !input.SubmissionType.IsValid() {
		return nil, errdefs.ErrValidation
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return s.assignments.CreateAssignment(ctx, &model.Assignment{
		Id:             id,
		ClassroomId:    classroomId,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		DueDate:        input.DueDate,
		Points:         input.Points,
		SubmissionType: input.SubmissionType,
		CodeTemplate:   input.CodeTemplate,
	})
}

func (s *AssignmentService) List(ctx context.Context, classroomId uuid.UUID) ([]*model.Assignment, error) {
	if _, err := resolveMembership(ctx, s.classrooms, classroomId); err != nil {
		return nil, err
	}
	return s.assignments.ListAssignmentsByClassroom(ctx, classroomId)
}

// Get returns the assignment with its Q&A thread. Teachers see every
// submission; students see only their own.
func (s *AssignmentService) Get(ctx context.Context, classroomId, assignmentId uuid.UUID) (*model.Assignment, error) {
	m, err := resolveMembership(ctx, s.classrooms, classroomId)
	if err != nil {
		return nil, err
	}
	assignment, err := s.getInClassroom(ctx, classroomId, assignmentId)
	if err != nil {
		return nil, err
	}

	if m.isTeacher {
		assignment.Submissions, err = s.submissions.ListSubmissionsByAssignment(ctx, assignmentId)
		if err != nil {
			return nil, err
		}
	} else {
		own, err := s.submissions.GetSubmission(ctx, assignmentId, m.userId)
		if err != nil && !errors.Is(err, errdefs.ErrNotFound) {
			return nil, err
		}
		if own != nil {
			assignment.Submissions = []*model.Submission{own}
		}
	}

	assignment.Questions, err = s.listQuestionsWithAnswers(ctx, assignmentId)
	if err != nil {
		return nil, err
	}
	return assignment, nil
}

// Submit runs its preconditions in a fixed order so each failure maps to one
// status: unknown classroom or assignment is not-found, a non-member is
// forbidden, a resubmission is a conflict, and only then is the payload
// validated. The unique index on (assignment_id, student_id) settles races
// between concurrent submits.
func (s *AssignmentService) Submit(ctx context.Context, classroomId, assignmentId uuid.UUID, input *model.SubmitAssignmentInput) (*model.Submission, error) {
	m, err := resolveMembership(ctx, s.classrooms, classroomId)
	if err != nil {
		return nil, err
	}
	if m.isTeacher {
		return nil, errdefs.ErrPermissionDenied
	}

	assignment, err := s.getInClassroom(ctx, classroomId, assignmentId)
	if err != nil {
		return nil, err
	}

	if _, err := s.submissions.GetSubmission(ctx, assignmentId, m.userId); err == nil {
		return nil, errdefs.ErrAlreadyExists
	} else if !errors.Is(err, errdefs.ErrNotFound) {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	submission := &model.Submission{
		Id:           id,
		AssignmentId: assignmentId,
		StudentId:    m.userId,
	}

	content := strings.TrimSpace(input.Content)
	switch assignment.SubmissionType {
	case model.SubmissionTypeCode:
		if content == "" {
			return nil, fmt.Errorf("%w: code submissions need content", errdefs.ErrValidation)
		}
		submission.Content = &content
	case model.SubmissionTypeText:
		// Text submissions accept whatever was sent, empty included.
		submission.Content = &content
	case model.SubmissionTypeFile:
		if err := validateUpload(input.File); err != nil {
			return nil, err
		}
		key := storage.NewKey("submissions", input.File.Filename)
		if err := s.files.Save(ctx, key, input.File.ContentType, input.File.Reader, input.File.Size); err != nil {
			return nil, err
		}
		url := s.files.URL(key)
		submission.FileURL = &url
		submission.FileType = &input.File.ContentType
		submission.FileSize = &input.File.Size
		if content != "" {
			submission.Content = &content
		}
	}

	created, err := s.submissions.CreateSubmission(ctx, submission)
	if err != nil {
		return nil, err
	}

	emitEvent(ctx, s.events, kafka.Event{
		Type:         kafka.EventSubmissionCreated,
		ClassroomID:  classroomId.String(),
		AssignmentID: assignmentId.String(),
		UserID:       m.userId.String(),
		Title:        assignment.Title,
	})
	return created, nil
}

func (s *AssignmentService) ListSubmissions(ctx context.Context, classroomId, assignmentId uuid.UUID) ([]*model.Submission, error) {
	m, err := resolveMembership(ctx, s.classrooms, classroomId)
	if err != nil {
		return nil, err
	}
	if !m.isTeacher {
		return nil, errdefs.ErrPermissionDenied
	}
	if _, err := s.getInClassroom(ctx, classroomId, assignmentId); err != nil {
		return nil, err
	}
	return s.submissions.ListSubmissionsByAssignment(ctx, assignmentId)
}

// Grade records or overwrites a student's grade. The grade is bounded by the
// assignment's points, and grading an assignment the student never submitted
// is not-found, not an implicit submission.
func (s *AssignmentService) Grade(ctx context.Context, classroomId, assignmentId uuid.UUID, input *model.GradeSubmissionInput) (*model.Submission, error) {
	m, err := resolveMembership(ctx, s.classrooms, classroomId)
	if err != nil {
		return nil, err
	}
	if !m.isTeacher {
		return nil, errdefs.ErrPermissionDenied
	}

	assignment, err := s.getInClassroom(ctx, classroomId, assignmentId)
	if err != nil {
		return nil, err
	}
	if input.Grade < 0 || input.Grade > assignment.Points {
		return nil, fmt.Errorf("%w: grade must be between 0 and %d", errdefs.ErrValidation, assignment.Points)
	}

	graded, err := s.submissions.SetGrade(ctx, assignmentId, input.StudentId, input.Grade, input.Feedback)
	if err != nil {
		return nil, err
	}

	emitEvent(ctx, s.events, kafka.Event{
		Type:         kafka.EventSubmissionGraded,
		ClassroomID:  classroomId.String(),
		AssignmentID: assignmentId.String(),
		UserID:       input.StudentId.String(),
		Title:        assignment.Title,
		Grade:        graded.Grade,
	})
	return graded, nil
}

// AskQuestion appends a student question to the assignment's thread. Teachers
// answer, they do not ask.
func (s *AssignmentService) AskQuestion(ctx context.Context, classroomId, assignmentId uuid.UUID, text string) (*model.Question, error) {
	m, err := resolveMembership(ctx, s.classrooms, classroomId)
	if err != nil {
		return nil, err
	}
	if m.isTeacher {
		return nil, errdefs.ErrPermissionDenied
	}
	if _, err := s.getInClassroom(ctx, classroomId, assignmentId); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: question must not be empty", errdefs.ErrValidation)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	question, err := s.questions.CreateQuestion(ctx, &model.Question{
		Id:           id,
		AssignmentId: assignmentId,
		StudentId:    m.userId,
		Question:     text,
	})
	if err != nil {
		return nil, err
	}
	question.Answers = []*model.Answer{}
	return question, nil
}

// AnswerQuestion is the teacher's side of the thread: only the classroom's
// teacher may append answers.
func (s *AssignmentService) AnswerQuestion(ctx context.Context, classroomId, assignmentId, questionId uuid.UUID, text string) (*model.Answer, error) {
	m, err := resolveMembership(ctx, s.classrooms, classroomId)
	if err != nil {
		return nil, err
	}
	if !m.isTeacher {
		return nil, errdefs.ErrPermissionDenied
	}
	if _, err := s.getInClassroom(ctx, classroomId, assignmentId); err != nil {
		return nil, err
	}

	question, err := s.questions.GetQuestion(ctx, questionId)
	if err != nil {
		return nil, err
	}
	if question.AssignmentId != assignmentId {
		return nil, errdefs.ErrNotFound
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: answer must not be empty", errdefs.ErrValidation)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return s.questions.CreateAnswer(ctx, &model.Answer{
		Id:         id,
		QuestionId: questionId,
		UserId:     m.userId,
		Answer:     text,
	})
}

func (s *AssignmentService) ListQuestions(ctx context.Context, classroomId, assignmentId uuid.UUID) ([]*model.Question, error) {
	if _, err := resolveMembership(ctx, s.classrooms, classroomId); err != nil {
		return nil, err
	}
	if _, err := s.getInClassroom(ctx, classroomId, assignmentId); err != nil {
		return nil, err
	}
	return s.listQuestionsWithAnswers(ctx, assignmentId)
}

// getInClassroom fetches the assignment and hides assignments that belong to
// another classroom behind not-found.
func (s *AssignmentService) getInClassroom(ctx context.Context, classroomId, assignmentId uuid.UUID) (*model.Assignment, error) {
	assignment, err := s.assignments.GetAssignment(ctx, assignmentId)
	if err != nil {
		return nil, err
	}
	if assignment.ClassroomId != classroomId {
		return nil, errdefs.ErrNotFound
	}
	return assignment, nil
}

func (s *AssignmentService) listQuestionsWithAnswers(ctx context.Context, assignmentId uuid.UUID) ([]*model.Question, error) {
	questions, err := s.questions.ListQuestionsByAssignment(ctx, assignmentId)
	if err != nil {
		return nil, err
	}
	for _, question := range questions {
		answers, err := s.questions.ListAnswersByQuestion(ctx, question.Id)
		if err != nil {
			return nil, err
		}
		if answers == nil {
			answers = []*model.Answer{}
		}
		question.Answers = answers
	}
	return questions, nil
}
