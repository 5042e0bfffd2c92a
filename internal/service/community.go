package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
)

type DiscussionRepository interface {
	CreateDiscussion(ctx context.Context, discussion *model.Discussion) (*model.Discussion, error)
	GetDiscussion(ctx context.Context, id uuid.UUID) (*model.Discussion, error)
	ListDiscussions(ctx context.Context, params model.ListParams) ([]*model.Discussion, error)
	UpdateDiscussion(ctx context.Context, id uuid.UUID, input *model.UpdateDiscussionInput) (*model.Discussion, error)
	DeleteDiscussion(ctx context.Context, id uuid.UUID) error
	ToggleLike(ctx context.Context, discussionId, userId uuid.UUID) (bool, int, error)
}

type GroupRepository interface {
	CreateGroup(ctx context.Context, group *model.Group) (*model.Group, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*model.Group, error)
	ListGroups(ctx context.Context, params model.ListParams) ([]*model.Group, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error
	ToggleMember(ctx context.Context, groupId, userId uuid.UUID) (bool, int, error)
}

type EventRepository interface {
	CreateEvent(ctx context.Context, event *model.Event) (*model.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*model.Event, error)
	ListEvents(ctx context.Context, params model.ListParams) ([]*model.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	ToggleAttendee(ctx context.Context, eventId, userId uuid.UUID) (bool, int, error)
}

type ProjectRepository interface {
	CreateProject(ctx context.Context, project *model.Project) (*model.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error)
	ListProjects(ctx context.Context, params model.ListParams) ([]*model.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

// CommunityService covers the campus-wide surfaces: discussions, study
// groups, events and project showcase. Everything here is visible to any
// authenticated user; only mutations are restricted to the author.
type CommunityService struct {
	discussions DiscussionRepository
	groups      GroupRepository
	events      EventRepository
	projects    ProjectRepository
}

func NewCommunityService(
	discussions DiscussionRepository,
	groups GroupRepository,
	events EventRepository,
	projects ProjectRepository,
) *CommunityService {
	return &CommunityService{
		discussions: discussions,
		groups:      groups,
		events:      events,
		projects:    projects,
	}
}

// ── discussions ──

func (s *CommunityService) CreateDiscussion(ctx context.Context, input *model.CreateDiscussionInput) (*model.Discussion, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return s.discussions.CreateDiscussion(ctx, &model.Discussion{
		Id:       id,
		AuthorId: userId,
		Title:    strings.TrimSpace(input.Title),
		Content:  input.Content,
		Tags:     normalizeTags(input.Tags),
	})
}

func (s *CommunityService) GetDiscussion(ctx context.Context, id uuid.UUID) (*model.Discussion, error) {
	return s.discussions.GetDiscussion(ctx, id)
}

func (s *CommunityService) ListDiscussions(ctx context.Context, params model.ListParams) ([]*model.Discussion, error) {
	return s.discussions.ListDiscussions(ctx, params.Normalize())
}

func (s *CommunityService) UpdateDiscussion(ctx context.Context, id uuid.UUID, input *model.UpdateDiscussionInput) (*model.Discussion, error) {
	if err := s.requireDiscussionAuthor(ctx, id); err != nil {
		return nil, err
	}
	if input.Tags != nil {
		input.Tags = normalizeTags(input.Tags)
	}
	return s.discussions.UpdateDiscussion(ctx, id, input)
}

func (s *CommunityService) DeleteDiscussion(ctx context.Context, id uuid.UUID) error {
	if err := s.requireDiscussionAuthor(ctx, id); err != nil {
		return err
	}
	return s.discussions.DeleteDiscussion(ctx, id)
}

func (s *CommunityService) ToggleDiscussionLike(ctx context.Context, id uuid.UUID) (bool, int, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return false, 0, err
	}
	if _, err := s.discussions.GetDiscussion(ctx, id); err != nil {
		return false, 0, err
	}
	return s.discussions.ToggleLike(ctx, id, userId)
}

func (s *CommunityService) requireDiscussionAuthor(ctx context.Context, id uuid.UUID) error {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return err
	}
	discussion, err := s.discussions.GetDiscussion(ctx, id)
	if err != nil {
		return err
	}
	if discussion.AuthorId != userId {
		return errdefs.ErrPermissionDenied
	}
	return nil
}

// ── groups ──

func (s *CommunityService) CreateGroup(ctx context.Context, input *model.CreateGroupInput) (*model.Group, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	group, err := s.groups.CreateGroup(ctx, &model.Group{
		Id:          id,
		CreatorId:   userId,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Tags:        normalizeTags(input.Tags),
	})
	if err != nil {
		return nil, err
	}
	// The creator joins their own group.
	if _, _, err := s.groups.ToggleMember(ctx, group.Id, userId); err != nil {
		return nil, err
	}
	group.MemberCount = 1
	return group, nil
}

func (s *CommunityService) GetGroup(ctx context.Context, id uuid.UUID) (*model.Group, error) {
	return s.groups.GetGroup(ctx, id)
}

func (s *CommunityService) ListGroups(ctx context.Context, params model.ListParams) ([]*model.Group, error) {
	return s.groups.ListGroups(ctx, params.Normalize())
}

func (s *CommunityService) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return err
	}
	group, err := s.groups.GetGroup(ctx, id)
	if err != nil {
		return err
	}
	if group.CreatorId != userId {
		return errdefs.ErrPermissionDenied
	}
	return s.groups.DeleteGroup(ctx, id)
}

func (s *CommunityService) ToggleGroupMembership(ctx context.Context, id uuid.UUID) (bool, int, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return false, 0, err
	}
	if _, err := s.groups.GetGroup(ctx, id); err != nil {
		return false, 0, err
	}
	return s.groups.ToggleMember(ctx, id, userId)
}

// ── events ──

func (s *CommunityService) CreateEvent(ctx context.Context, input *model.CreateEventInput) (*model.Event, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return s.events.CreateEvent(ctx, &model.Event{
		Id:          id,
		CreatorId:   userId,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
	})
}

func (s *CommunityService) GetEvent(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	return s.events.GetEvent(ctx, id)
}

func (s *CommunityService) ListEvents(ctx context.Context, params model.ListParams) ([]*model.Event, error) {
	return s.events.ListEvents(ctx, params.Normalize())
}

func (s *CommunityService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return err
	}
	event, err := s.events.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	if event.CreatorId != userId {
		return errdefs.ErrPermissionDenied
	}
	return s.events.DeleteEvent(ctx, id)
}

func (s *CommunityService) ToggleEventAttendance(ctx context.Context, id uuid.UUID) (bool, int, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return false, 0, err
	}
	if _, err := s.events.GetEvent(ctx, id); err != nil {
		return false, 0, err
	}
	return s.events.ToggleAttendee(ctx, id, userId)
}

// ── projects ──

func (s *CommunityService) CreateProject(ctx context.Context, input *model.CreateProjectInput) (*model.Project, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return s.projects.CreateProject(ctx, &model.Project{
		Id:          id,
		AuthorId:    userId,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		RepoURL:     input.RepoURL,
		Tags:        normalizeTags(input.Tags),
	})
}

func (s *CommunityService) GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	return s.projects.GetProject(ctx, id)
}

func (s *CommunityService) ListProjects(ctx context.Context, params model.ListParams) ([]*model.Project, error) {
	return s.projects.ListProjects(ctx, params.Normalize())
}

func (s *CommunityService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return err
	}
	project, err := s.projects.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if project.AuthorId != userId {
		return errdefs.ErrPermissionDenied
	}
	return s.projects.DeleteProject(ctx, id)
}

// normalizeTags trims, lowercases and dedupes, preserving first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
