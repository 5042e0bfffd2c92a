package data

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
)

const eventColumns = `
	e.id, e.creator_id, e.title, e.description, e.location, e.starts_at,
	(SELECT COUNT(*) FROM event_attendees ea WHERE ea.event_id = e.id)::int AS attendee_count,
	e.created_at
`

type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) CreateEvent(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
INSERT INTO events (id, creator_id, title, description, location, starts_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.db.Exec(ctx, query,
		event.Id,
		event.CreatorId,
		event.Title,
		event.Description,
		event.Location,
		event.StartsAt,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return r.GetEvent(ctx, event.Id)
}

func (r *EventRepository) GetEvent(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	query := `
SELECT ` + eventColumns + `
FROM events e
WHERE e.id = $1
`
	var event model.Event
	err := pgxscan.Get(ctx, r.db, &event, query, id)
	if err != nil {
		return nil, handleError(err)
	}
	return &event, nil
}

func (r *EventRepository) ListEvents(ctx context.Context, params model.ListParams) ([]*model.Event, error) {
	query := `
SELECT ` + eventColumns + `
FROM events e
WHERE ($1 = '' OR e.title ILIKE '%' || $1 || '%' OR e.description ILIKE '%' || $1 || '%')
ORDER BY e.starts_at
OFFSET $2 LIMIT $3
`
	var events []*model.Event
	err := pgxscan.Select(ctx, r.db, &events, query, params.Search, params.Offset(), params.Limit)
	if err != nil {
		return nil, handleError(err)
	}
	return events, nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return handleError(err)
	}
	if tag.RowsAffected() == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}

func (r *EventRepository) ToggleAttendee(ctx context.Context, eventId, userId uuid.UUID) (bool, int, error) {
	del, err := r.db.Exec(ctx, `
DELETE FROM event_attendees
WHERE event_id = $1 AND user_id = $2
`, eventId, userId)
	if err != nil {
		return false, 0, handleError(err)
	}

	attending := false
	if del.RowsAffected() == 0 {
		_, err = r.db.Exec(ctx, `
INSERT INTO event_attendees (event_id, user_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`, eventId, userId)
		if err != nil {
			return false, 0, handleError(err)
		}
		attending = true
	}

	var attendees int
	err = pgxscan.Get(ctx, r.db, &attendees, `
SELECT COUNT(*)::int FROM event_attendees WHERE event_id = $1
`, eventId)
	if err != nil {
		return false, 0, handleError(err)
	}
	return attending, attendees, nil
}
