package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
)

const groupColumns = `
	g.id, g.creator_id, g.name, g.description, g.tags,
	(SELECT COUNT(*) FROM group_members gm WHERE gm.group_id = g.id)::int AS member_count,
	g.created_at
`

type GroupRepository struct {
	db *pgxpool.Pool
}

func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) CreateGroup(ctx context.Context, group *model.Group) (*model.Group, error) {
	query := `
INSERT INTO groups (id, creator_id, name, description, tags)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := r.db.Exec(ctx, query,
		group.Id,
		group.CreatorId,
		group.Name,
		group.Description,
		group.Tags,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return r.GetGroup(ctx, group.Id)
}

func (r *GroupRepository) GetGroup(ctx context.Context, id uuid.UUID) (*model.Group, error) {
	query := `
SELECT ` + groupColumns + `
FROM groups g
WHERE g.id = $1
`
	var group model.Group
	err := pgxscan.Get(ctx, r.db, &group, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &group, nil
}

func (r *GroupRepository) ListGroups(ctx context.Context, params model.ListParams) ([]*model.Group, error) {
	query := `
SELECT ` + groupColumns + `
FROM groups g
WHERE ($1 = '' OR g.name ILIKE '%' || $1 || '%' OR g.description ILIKE '%' || $1 || '%')
ORDER BY g.created_at DESC
OFFSET $2 LIMIT $3
`
	var groups []*model.Group
	err := pgxscan.Select(ctx, r.db, &groups, query, params.Search, params.Offset(), params.Limit)
	if err != nil {
		return nil, handleError(err)
	}
	return groups, nil
}

func (r *GroupRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (r *GroupRepository) ToggleMember(ctx context.Context, groupId, userId uuid.UUID) (bool, int, error) {
	del, err := r.db.Exec(ctx, `
DELETE FROM group_members
WHERE group_id = $1 AND user_id = $2
`, groupId, userId)
	if err != nil {
		return false, 0, handleError(err)
	}

	joined := false
	if del.RowsAffected() == 0 {
		_, err = r.db.Exec(ctx, `
INSERT INTO group_members (group_id, user_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`, groupId, userId)
		if err != nil {
			return false, 0, handleError(err)
		}
		joined = true
	}

	var members int
	err = pgxscan.Get(ctx, r.db, &members, `
SELECT COUNT(*)::int FROM group_members WHERE group_id = $1
`, groupId)
	if err != nil {
		return false, 0, handleError(err)
	}
	return joined, members, nil
}
