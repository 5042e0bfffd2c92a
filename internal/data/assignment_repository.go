package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nabin00012/codecommons-sub000/internal/model"
)

type AssignmentRepository struct {
	db *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) CreateAssignment(ctx context.Context, assignment *model.Assignment) (*model.Assignment, error) {
	query := `
INSERT INTO assignments (
	id, classroom_id, title, description, due_date,
	points, submission_type, code_template
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING
	id, classroom_id, title, description, due_date,
	points, submission_type, code_template, created_at, edited_at
`
	var created model.Assignment
	err := pgxscan.Get(ctx, r.db, &created, query,
		assignment.Id,
		assignment.ClassroomId,
		assignment.Title,
		assignment.Description,
		assignment.DueDate,
		assignment.Points,
		assignment.SubmissionType,
		assignment.CodeTemplate,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &created, nil
}

func (r *AssignmentRepository) GetAssignment(ctx context.Context, id uuid.UUID) (*model.Assignment, error) {
	query := `
SELECT
	id, classroom_id, title, description, due_date,
	points, submission_type, code_template, created_at, edited_at
FROM assignments
WHERE id = $1
`
	var assignment model.Assignment
	err := pgxscan.Get(ctx, r.db, &assignment, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &assignment, nil
}

func (r *AssignmentRepository) ListAssignmentsByClassroom(ctx context.Context, classroomId uuid.UUID) ([]*model.Assignment, error) {
	query := `
SELECT
	id, classroom_id, title, description, due_date,
	points, submission_type, code_template, created_at, edited_at
FROM assignments
WHERE classroom_id = $1
ORDER BY created_at DESC
`
	var assignments []*model.Assignment
	err := pgxscan.Select(ctx, r.db, &assignments, query, classroomId)
	if err != nil {
		return nil, handleError(err)
	}
	return assignments, nil
}
