package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nabin00012/codecommons-sub000/internal/model"
)

type QuestionRepository struct {
	db *pgxpool.Pool
}

func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) CreateQuestion(ctx context.Context, question *model.Question) (*model.Question, error) {
	query := `
INSERT INTO assignment_questions (id, assignment_id, student_id, question)
VALUES ($1, $2, $3, $4)
`
	_, err := r.db.Exec(ctx, query,
		question.Id,
		question.AssignmentId,
		question.StudentId,
		question.Question,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return r.GetQuestion(ctx, question.Id)
}

func (r *QuestionRepository) GetQuestion(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	query := `
SELECT q.id, q.assignment_id, q.student_id, u.name AS student_name, q.question, q.created_at
FROM assignment_questions q
JOIN users u ON u.id = q.student_id
WHERE q.id = $1
`
	var question model.Question
	err := pgxscan.Get(ctx, r.db, &question, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &question, nil
}

func (r *QuestionRepository) ListQuestionsByAssignment(ctx context.Context, assignmentId uuid.UUID) ([]*model.Question, error) {
	query := `
SELECT q.id, q.assignment_id, q.student_id, u.name AS student_name, q.question, q.created_at
FROM assignment_questions q
JOIN users u ON u.id = q.student_id
WHERE q.assignment_id = $1
ORDER BY q.created_at
`
	var questions []*model.Question
	err := pgxscan.Select(ctx, r.db, &questions, query, assignmentId)
	if err != nil {
		return nil, handleError(err)
	}
	return questions, nil
}

func (r *QuestionRepository) CreateAnswer(ctx context.Context, answer *model.Answer) (*model.Answer, error) {
	query := `
INSERT INTO assignment_answers (id, question_id, user_id, answer)
VALUES ($1, $2, $3, $4)
`
	_, err := r.db.Exec(ctx, query,
		answer.Id,
		answer.QuestionId,
		answer.UserId,
		answer.Answer,
	)
	if err != nil {
		return nil, handleError(err)
	}

	get := `
SELECT a.id, a.question_id, a.user_id, u.name AS user_name, a.answer, a.created_at
FROM assignment_answers a
JOIN users u ON u.id = a.user_id
WHERE a.id = $1
`
	var created model.Answer
	if err := pgxscan.Get(ctx, r.db, &created, get, answer.Id); err != nil {
		return nil, handleError(err)
	}
	return &created, nil
}

func (r *QuestionRepository) ListAnswersByQuestion(ctx context.Context, questionId uuid.UUID) ([]*model.Answer, error) {
	query := `
SELECT a.id, a.question_id, a.user_id, u.name AS user_name, a.answer, a.created_at
FROM assignment_answers a
JOIN users u ON u.id = a.user_id
WHERE a.question_id = $1
ORDER BY a.created_at
`
	var answers []*model.Answer
	err := pgxscan.Select(ctx, r.db, &answers, query, questionId)
	if err != nil {
		return nil, handleError(err)
	}
	return answers, nil
}
