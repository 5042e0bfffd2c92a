package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
)

const submissionColumns = `
	s.id, s.assignment_id, s.student_id,
	u.name AS student_name, u.email AS student_email,
	s.content, s.file_url, s.file_type, s.file_size,
	s.status, s.grade, s.feedback, s.submitted_at, s.graded_at
`

type SubmissionRepository struct {
	db *pgxpool.Pool
}

func NewSubmissionRepository(db *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// CreateSubmission relies on the (assignment_id, student_id) unique index:
// a concurrent duplicate insert surfaces as ErrAlreadyExists, never a second row.
func (r *SubmissionRepository) CreateSubmission(ctx context.Context, submission *model.Submission) (*model.Submission, error) {
	query := `
INSERT INTO submissions (
	id, assignment_id, student_id, content,
	file_url, file_type, file_size, status
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := r.db.Exec(ctx, query,
		submission.Id,
		submission.AssignmentId,
		submission.StudentId,
		submission.Content,
		submission.FileURL,
		submission.FileType,
		submission.FileSize,
		model.SubmissionStatusSubmitted,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return r.GetSubmission(ctx, submission.AssignmentId, submission.StudentId)
}

func (r *SubmissionRepository) GetSubmission(ctx context.Context, assignmentId, studentId uuid.UUID) (*model.Submission, error) {
	query := `
SELECT ` + submissionColumns + `
FROM submissions s
JOIN users u ON u.id = s.student_id
WHERE s.assignment_id = $1 AND s.student_id = $2
`
	var submission model.Submission
	err := pgxscan.Get(ctx, r.db, &submission, query, assignmentId, studentId)
	if err != nil {
		return nil, handleError(err)
	}
	return &submission, nil
}

func (r *SubmissionRepository) ListSubmissionsByAssignment(ctx context.Context, assignmentId uuid.UUID) ([]*model.Submission, error) {
	query := `
SELECT ` + submissionColumns + `
FROM submissions s
JOIN users u ON u.id = s.student_id
WHERE s.assignment_id = $1
ORDER BY s.submitted_at
`
	var submissions []*model.Submission
	err := pgxscan.Select(ctx, r.db, &submissions, query, assignmentId)
	if err != nil {
		return nil, handleError(err)
	}
	return submissions, nil
}

// SetGrade overwrites grade and feedback; re-grading is an idempotent update
// of the same row, never a second submission entry.
func (r *SubmissionRepository) SetGrade(ctx context.Context, assignmentId, studentId uuid.UUID, grade int, feedback string) (*model.Submission, error) {
	query := `
UPDATE submissions
SET status = $1, grade = $2, feedback = $3, graded_at = NOW()
WHERE assignment_id = $4 AND student_id = $5
`
	tag, err := r.db.Exec(ctx, query,
		model.SubmissionStatusGraded,
		grade,
		feedback,
		assignmentId,
		studentId,
	)
	if err != nil {
		return nil, handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, errdefs.ErrNotFound
	}
	return r.GetSubmission(ctx, assignmentId, studentId)
}
