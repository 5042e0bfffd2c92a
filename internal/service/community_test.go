package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/internal/service/mocks"
)

func TestCreateDiscussion_NormalizesTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	discussions := mocks.NewMockDiscussionRepository(ctrl)
	svc := NewCommunityService(discussions, nil, nil, nil)

	userId := uuid.New()
	ctx := authCtx(userId, model.RoleStudent)
	discussions.EXPECT().CreateDiscussion(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, d *model.Discussion) (*model.Discussion, error) {
			assert.Equal(t, userId, d.AuthorId)
			assert.Equal(t, []string{"go", "generics"}, d.Tags)
			return d, nil
		})

	_, err := svc.CreateDiscussion(ctx, &model.CreateDiscussionInput{
		Title:   "Generics in Go",
		Content: "how do constraints work?",
		Tags:    []string{" Go ", "generics", "GO", ""},
	})
	require.NoError(t, err)
}

func TestUpdateDiscussion_AuthorOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	discussions := mocks.NewMockDiscussionRepository(ctrl)
	svc := NewCommunityService(discussions, nil, nil, nil)

	discussionId := uuid.New()
	ctx := authCtx(uuid.New(), model.RoleStudent)
	discussions.EXPECT().GetDiscussion(ctx, discussionId).
		Return(&model.Discussion{Id: discussionId, AuthorId: uuid.New()}, nil)

	_, err := svc.UpdateDiscussion(ctx, discussionId, &model.UpdateDiscussionInput{})
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestDeleteDiscussion_Author(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	discussions := mocks.NewMockDiscussionRepository(ctrl)
	svc := NewCommunityService(discussions, nil, nil, nil)

	authorId := uuid.New()
	discussionId := uuid.New()
	ctx := authCtx(authorId, model.RoleStudent)
	discussions.EXPECT().GetDiscussion(ctx, discussionId).
		Return(&model.Discussion{Id: discussionId, AuthorId: authorId}, nil)
	discussions.EXPECT().DeleteDiscussion(ctx, discussionId).Return(nil)

	assert.NoError(t, svc.DeleteDiscussion(ctx, discussionId))
}

func TestToggleDiscussionLike(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	discussions := mocks.NewMockDiscussionRepository(ctrl)
	svc := NewCommunityService(discussions, nil, nil, nil)

	userId := uuid.New()
	discussionId := uuid.New()
	ctx := authCtx(userId, model.RoleStudent)
	discussions.EXPECT().GetDiscussion(ctx, discussionId).
		Return(&model.Discussion{Id: discussionId}, nil)
	discussions.EXPECT().ToggleLike(ctx, discussionId, userId).Return(true, 7, nil)

	liked, likes, err := svc.ToggleDiscussionLike(ctx, discussionId)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 7, likes)
}

func TestCreateGroup_CreatorJoins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	groups := mocks.NewMockGroupRepository(ctrl)
	svc := NewCommunityService(nil, groups, nil, nil)

	creatorId := uuid.New()
	ctx := authCtx(creatorId, model.RoleStudent)
	groups.EXPECT().CreateGroup(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, g *model.Group) (*model.Group, error) {
			assert.Equal(t, creatorId, g.CreatorId)
			return g, nil
		})
	groups.EXPECT().ToggleMember(ctx, gomock.Any(), creatorId).Return(true, 1, nil)

	group, err := svc.CreateGroup(ctx, &model.CreateGroupInput{Name: "Night Owls"})
	require.NoError(t, err)
	assert.Equal(t, 1, group.MemberCount)
}

func TestDeleteEvent_CreatorOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventRepository(ctrl)
	svc := NewCommunityService(nil, nil, events, nil)

	eventId := uuid.New()
	ctx := authCtx(uuid.New(), model.RoleStudent)
	events.EXPECT().GetEvent(ctx, eventId).
		Return(&model.Event{Id: eventId, CreatorId: uuid.New()}, nil)

	err := svc.DeleteEvent(ctx, eventId)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestToggleEventAttendance_UnknownEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventRepository(ctrl)
	svc := NewCommunityService(nil, nil, events, nil)

	eventId := uuid.New()
	ctx := authCtx(uuid.New(), model.RoleStudent)
	events.EXPECT().GetEvent(ctx, eventId).Return(nil, errdefs.ErrNotFound)

	_, _, err := svc.ToggleEventAttendance(ctx, eventId)
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestDeleteProject_AuthorOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	projects := mocks.NewMockProjectRepository(ctrl)
	svc := NewCommunityService(nil, nil, nil, projects)

	projectId := uuid.New()
	ctx := authCtx(uuid.New(), model.RoleStudent)
	projects.EXPECT().GetProject(ctx, projectId).
		Return(&model.Project{Id: projectId, AuthorId: uuid.New()}, nil)

	err := svc.DeleteProject(ctx, projectId)
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestListDiscussions_NormalizesParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	discussions := mocks.NewMockDiscussionRepository(ctrl)
	svc := NewCommunityService(discussions, nil, nil, nil)

	ctx := authCtx(uuid.New(), model.RoleStudent)
	discussions.EXPECT().ListDiscussions(ctx, model.ListParams{Page: 1, Limit: 20}).Return(nil, nil)

	_, err := svc.ListDiscussions(ctx, model.ListParams{Page: -3, Limit: 999})
	require.NoError(t, err)
}
