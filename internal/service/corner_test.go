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

func TestCornerCreateQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	corner := mocks.NewMockCornerRepository(ctrl)
	svc := NewCornerService(corner)

	authorId := uuid.New()
	ctx := authCtx(authorId, model.RoleStudent)
	corner.EXPECT().CreateQuestion(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, q *model.CornerQuestion) (*model.CornerQuestion, error) {
			assert.Equal(t, authorId, q.AuthorId)
			assert.Equal(t, "Nil map assignment panics", q.Title)
			return q, nil
		})

	_, err := svc.CreateQuestion(ctx, &model.CreateCornerQuestionInput{
		Title:   "  Nil map assignment panics  ",
		Content: "why does writing to a nil map panic?",
	})
	require.NoError(t, err)
}

func TestCornerVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	corner := mocks.NewMockCornerRepository(ctrl)
	svc := NewCornerService(corner)

	userId := uuid.New()
	questionId := uuid.New()
	ctx := authCtx(userId, model.RoleStudent)
	corner.EXPECT().GetQuestion(ctx, questionId).Return(&model.CornerQuestion{Id: questionId}, nil)
	corner.EXPECT().Vote(ctx, questionId, userId, 1).Return(3, nil)

	votes, err := svc.Vote(ctx, questionId, &model.VoteInput{Value: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, votes)
}

func TestCornerVote_InvalidValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	corner := mocks.NewMockCornerRepository(ctrl)
	svc := NewCornerService(corner)

	ctx := authCtx(uuid.New(), model.RoleStudent)
	_, err := svc.Vote(ctx, uuid.New(), &model.VoteInput{Value: 2})
	assert.ErrorIs(t, err, errdefs.ErrValidation)
}

func TestCornerAcceptAnswer_AuthorOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	corner := mocks.NewMockCornerRepository(ctrl)
	svc := NewCornerService(corner)

	questionId := uuid.New()
	ctx := authCtx(uuid.New(), model.RoleStudent)
	corner.EXPECT().GetQuestion(ctx, questionId).
		Return(&model.CornerQuestion{Id: questionId, AuthorId: uuid.New()}, nil)

	err := svc.AcceptAnswer(ctx, questionId, uuid.New())
	assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
}

func TestCornerAcceptAnswer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	corner := mocks.NewMockCornerRepository(ctrl)
	svc := NewCornerService(corner)

	authorId := uuid.New()
	questionId := uuid.New()
	answerId := uuid.New()
	ctx := authCtx(authorId, model.RoleStudent)
	corner.EXPECT().GetQuestion(ctx, questionId).
		Return(&model.CornerQuestion{Id: questionId, AuthorId: authorId}, nil)
	corner.EXPECT().AcceptAnswer(ctx, questionId, answerId).Return(nil)

	assert.NoError(t, svc.AcceptAnswer(ctx, questionId, answerId))
}

func TestCornerGetQuestion_WithAnswers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	corner := mocks.NewMockCornerRepository(ctrl)
	svc := NewCornerService(corner)

	questionId := uuid.New()
	ctx := authCtx(uuid.New(), model.RoleStudent)
	corner.EXPECT().GetQuestion(ctx, questionId).Return(&model.CornerQuestion{Id: questionId}, nil)
	corner.EXPECT().ListAnswersByQuestion(ctx, questionId).Return([]*model.CornerAnswer{
		{Id: uuid.New(), QuestionId: questionId, Accepted: true},
		{Id: uuid.New(), QuestionId: questionId},
	}, nil)

	question, answers, err := svc.GetQuestion(ctx, questionId)
	require.NoError(t, err)
	assert.Equal(t, questionId, question.Id)
	require.Len(t, answers, 2)
	assert.True(t, answers[0].Accepted)
}

func TestCornerCreateAnswer_EmptyRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	corner := mocks.NewMockCornerRepository(ctrl)
	svc := NewCornerService(corner)

	questionId := uuid.New()
	ctx := authCtx(uuid.New(), model.RoleStudent)
	corner.EXPECT().GetQuestion(ctx, questionId).Return(&model.CornerQuestion{Id: questionId}, nil)

	_, err := svc.CreateAnswer(ctx, questionId, &model.CreateCornerAnswerInput{Content: "  "})
	assert.ErrorIs(t, err, errdefs.ErrValidation)
}
