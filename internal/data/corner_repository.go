package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
)

const cornerQuestionColumns = `
	q.id, q.author_id, u.name AS author, q.title, q.content, q.language, q.tags,
	COALESCE((SELECT SUM(v.value) FROM corner_votes v WHERE v.question_id = q.id), 0)::int AS votes,
	(SELECT COUNT(*) FROM corner_answers a WHERE a.question_id = q.id)::int AS answer_count,
	q.created_at
`

type CornerRepository struct {
	db *pgxpool.Pool
}

func NewCornerRepository(db *pgxpool.Pool) *CornerRepository {
	return &CornerRepository{db: db}
}

func (r *CornerRepository) CreateQuestion(ctx context.Context, question *model.CornerQuestion) (*model.CornerQuestion, error) {
	query := `
INSERT INTO corner_questions (id, author_id, title, content, language, tags)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.db.Exec(ctx, query,
		question.Id,
		question.AuthorId,
		question.Title,
		question.Content,
		question.Language,
		question.Tags,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return r.GetQuestion(ctx, question.Id)
}

func (r *CornerRepository) GetQuestion(ctx context.Context, id uuid.UUID) (*model.CornerQuestion, error) {
	query := `
SELECT ` + cornerQuestionColumns + `
FROM corner_questions q
JOIN users u ON u.id = q.author_id
WHERE q.id = $1
`
	var question model.CornerQuestion
	err := pgxscan.Get(ctx, r.db, &question, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &question, nil
}

func (r *CornerRepository) ListQuestions(ctx context.Context, params model.ListParams) ([]*model.CornerQuestion, error) {
	query := `
SELECT ` + cornerQuestionColumns + `
FROM corner_questions q
JOIN users u ON u.id = q.author_id
WHERE ($1 = '' OR q.title ILIKE '%' || $1 || '%' OR q.content ILIKE '%' || $1 || '%')
ORDER BY q.created_at DESC
OFFSET $2 LIMIT $3
`
	var questions []*model.CornerQuestion
	err := pgxscan.Select(ctx, r.db, &questions, query, params.Search, params.Offset(), params.Limit)
	if err != nil {
		return nil, handleError(err)
	}
	return questions, nil
}

func (r *CornerRepository) CreateAnswer(ctx context.Context, answer *model.CornerAnswer) (*model.CornerAnswer, error) {
	query := `
INSERT INTO corner_answers (id, question_id, author_id, content)
VALUES ($1, $2, $3, $4)
`
	_, err := r.db.Exec(ctx, query,
		answer.Id,
		answer.QuestionId,
		answer.AuthorId,
		answer.Content,
	)
	if err != nil {
		return nil, handleError(err)
	}

	get := `
SELECT a.id, a.question_id, a.author_id, u.name AS author, a.content, a.accepted, a.created_at
FROM corner_answers a
JOIN users u ON u.id = a.author_id
WHERE a.id = $1
`
	var created model.CornerAnswer
	if err := pgxscan.Get(ctx, r.db, &created, get, answer.Id); err != nil {
		return nil, handleError(err)
	}
	return &created, nil
}

func (r *CornerRepository) GetAnswer(ctx context.Context, id uuid.UUID) (*model.CornerAnswer, error) {
	query := `
SELECT a.id, a.question_id, a.author_id, u.name AS author, a.content, a.accepted, a.created_at
FROM corner_answers a
JOIN users u ON u.id = a.author_id
WHERE a.id = $1
`
	var answer model.CornerAnswer
	err := pgxscan.Get(ctx, r.db, &answer, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &answer, nil
}

func (r *CornerRepository) ListAnswersByQuestion(ctx context.Context, questionId uuid.UUID) ([]*model.CornerAnswer, error) {
	query := `
SELECT a.id, a.question_id, a.author_id, u.name AS author, a.content, a.accepted, a.created_at
FROM corner_answers a
JOIN users u ON u.id = a.author_id
WHERE a.question_id = $1
ORDER BY a.accepted DESC, a.created_at
`
	var answers []*model.CornerAnswer
	err := pgxscan.Select(ctx, r.db, &answers, query, questionId)
	if err != nil {
		return nil, handleError(err)
	}
	return answers, nil
}

// Vote upserts the caller's vote; value is +1 or -1.
func (r *CornerRepository) Vote(ctx context.Context, questionId, userId uuid.UUID, value int) (int, error) {
	query := `
INSERT INTO corner_votes (question_id, user_id, value)
VALUES ($1, $2, $3)
ON CONFLICT (question_id, user_id) DO UPDATE SET value = EXCLUDED.value
`
	_, err := r.db.Exec(ctx, query, questionId, userId, value)
	if err != nil {
		return 0, handleError(err)
	}

	var votes int
	err = pgxscan.Get(ctx, r.db, &votes, `
SELECT COALESCE(SUM(value), 0)::int FROM corner_votes WHERE question_id = $1
`, questionId)
	if err != nil {
		return 0, handleError(err)
	}
	return votes, nil
}

// AcceptAnswer marks one answer accepted and clears any prior acceptance.
func (r *CornerRepository) AcceptAnswer(ctx context.Context, questionId, answerId uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
UPDATE corner_answers
SET accepted = FALSE
WHERE question_id = $1
`, questionId)
	if err != nil {
		return handleError(err)
	}

	tag, err := r.db.Exec(ctx, `
UPDATE corner_answers
SET accepted = TRUE
WHERE id = $1 AND question_id = $2
`, answerId, questionId)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
