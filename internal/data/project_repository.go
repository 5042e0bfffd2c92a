package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
)

const projectColumns = `
	p.id, p.author_id, u.name AS author, p.title, p.description,
	p.repo_url, p.tags, p.created_at, p.edited_at
`

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) CreateProject(ctx context.Context, project *model.Project) (*model.Project, error) {
	query := `
INSERT INTO projects (id, author_id, title, description, repo_url, tags)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.db.Exec(ctx, query,
		project.Id,
		project.AuthorId,
		project.Title,
		project.Description,
		project.RepoURL,
		project.Tags,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return r.GetProject(ctx, project.Id)
}

func (r *ProjectRepository) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	query := `
SELECT ` + projectColumns + `
FROM projects p
JOIN users u ON u.id = p.author_id
WHERE p.id = $1
`
	var project model.Project
	err := pgxscan.Get(ctx, r.db, &project, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &project, nil
}

func (r *ProjectRepository) ListProjects(ctx context.Context, params model.ListParams) ([]*model.Project, error) {
	query := `
SELECT ` + projectColumns + `
FROM projects p
JOIN users u ON u.id = p.author_id
WHERE ($1 = '' OR p.title ILIKE '%' || $1 || '%' OR p.description ILIKE '%' || $1 || '%')
ORDER BY p.created_at DESC
OFFSET $2 LIMIT $3
`
	var projects []*model.Project
	err := pgxscan.Select(ctx, r.db, &projects, query, params.Search, params.Offset(), params.Limit)
	if err != nil {
		return nil, handleError(err)
	}
	return projects, nil
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
