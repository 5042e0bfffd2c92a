package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
)

const discussionColumns = `
	d.id, d.author_id, u.name AS author, d.title, d.content, d.tags,
	(SELECT COUNT(*) FROM discussion_likes dl WHERE dl.discussion_id = d.id)::int AS likes,
	d.created_at, d.edited_at
`

type DiscussionRepository struct {
	db *pgxpool.Pool
}

func NewDiscussionRepository(db *pgxpool.Pool) *DiscussionRepository {
	return &DiscussionRepository{db: db}
}

func (r *DiscussionRepository) CreateDiscussion(ctx context.Context, discussion *model.Discussion) (*model.Discussion, error) {
	query := `
INSERT INTO discussions (id, author_id, title, content, tags)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := r.db.Exec(ctx, query,
		discussion.Id,
		discussion.AuthorId,
		discussion.Title,
		discussion.Content,
		discussion.Tags,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return r.GetDiscussion(ctx, discussion.Id)
}

func (r *DiscussionRepository) GetDiscussion(ctx context.Context, id uuid.UUID) (*model.Discussion, error) {
	query := `
SELECT ` + discussionColumns + `
FROM discussions d
JOIN users u ON u.id = d.author_id
WHERE d.id = $1
`
	var discussion model.Discussion
	err := pgxscan.Get(ctx, r.db, &discussion, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &discussion, nil
}

func (r *DiscussionRepository) ListDiscussions(ctx context.Context, params model.ListParams) ([]*model.Discussion, error) {
	query := `
SELECT ` + discussionColumns + `
FROM discussions d
JOIN users u ON u.id = d.author_id
WHERE ($1 = '' OR d.title ILIKE '%' || $1 || '%' OR d.content ILIKE '%' || $1 || '%')
ORDER BY d.created_at DESC
OFFSET $2 LIMIT $3
`
	var discussions []*model.Discussion
	err := pgxscan.Select(ctx, r.db, &discussions, query, params.Search, params.Offset(), params.Limit)
	if err != nil {
		return nil, handleError(err)
	}
	return discussions, nil
}

func (r *DiscussionRepository) UpdateDiscussion(ctx context.Context, id uuid.UUID, input *model.UpdateDiscussionInput) (*model.Discussion, error) {
	query, args, err := buildDiscussionUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	var discussion model.Discussion
	err = pgxscan.Get(ctx, r.db, &discussion, query, args...)
	if err != nil {
		return nil, handleError(err)
	}
	return &discussion, nil
}

func (r *DiscussionRepository) DeleteDiscussion(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM discussions WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

// ToggleLike flips the caller's like and reports the new state and count.
func (r *DiscussionRepository) ToggleLike(ctx context.Context, discussionId, userId uuid.UUID) (bool, int, error) {
	del, err := r.db.Exec(ctx, `
DELETE FROM discussion_likes
WHERE discussion_id = $1 AND user_id = $2
`, discussionId, userId)
	if err != nil {
		return false, 0, handleError(err)
	}

	liked := false
	if del.RowsAffected() == 0 {
		_, err = r.db.Exec(ctx, `
INSERT INTO discussion_likes (discussion_id, user_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`, discussionId, userId)
		if err != nil {
			return false, 0, handleError(err)
		}
		liked = true
	}

	var likes int
	err = pgxscan.Get(ctx, r.db, &likes, `
SELECT COUNT(*)::int FROM discussion_likes WHERE discussion_id = $1
`, discussionId)
	if err != nil {
		return false, 0, handleError(err)
	}
	return liked, likes, nil
}
