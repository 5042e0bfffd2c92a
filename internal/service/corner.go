package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/model"
)

type CornerRepository interface {
	CreateQuestion(ctx context.Context, question *model.CornerQuestion) (*model.CornerQuestion, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (*model.CornerQuestion, error)
	ListQuestions(ctx context.Context, params model.ListParams) ([]*model.CornerQuestion, error)
	CreateAnswer(ctx context.Context, answer *model.CornerAnswer) (*model.CornerAnswer, error)
	GetAnswer(ctx context.Context, id uuid.UUID) (*model.CornerAnswer, error)
	ListAnswersByQuestion(ctx context.Context, questionId uuid.UUID) ([]*model.CornerAnswer, error)
	Vote(ctx context.Context, questionId, userId uuid.UUID, value int) (int, error)
	AcceptAnswer(ctx context.Context, questionId, answerId uuid.UUID) error
}

// CornerService is the code-corner Q&A board: voted questions with answers,
// one of which the question's author may mark as accepted.
type CornerService struct {
	corner CornerRepository
}

func NewCornerService(corner CornerRepository) *CornerService {
	return &CornerService{corner: corner}
}

func (s *CornerService) CreateQuestion(ctx context.Context, input *model.CreateCornerQuestionInput) (*model.CornerQuestion, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return s.corner.CreateQuestion(ctx, &model.CornerQuestion{
		Id:       id,
		AuthorId: userId,
		Title:    strings.TrimSpace(input.Title),
		Content:  input.Content,
		Language: input.Language,
		Tags:     normalizeTags(input.Tags),
	})
}

// GetQuestion returns the question with its answers, accepted answer first.
func (s *CornerService) GetQuestion(ctx context.Context, id uuid.UUID) (*model.CornerQuestion, []*model.CornerAnswer, error) {
	question, err := s.corner.GetQuestion(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	answers, err := s.corner.ListAnswersByQuestion(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if answers == nil {
		answers = []*model.CornerAnswer{}
	}
	return question, answers, nil
}

func (s *CornerService) ListQuestions(ctx context.Context, params model.ListParams) ([]*model.CornerQuestion, error) {
	return s.corner.ListQuestions(ctx, params.Normalize())
}

func (s *CornerService) CreateAnswer(ctx context.Context, questionId uuid.UUID, input *model.CreateCornerAnswerInput) (*model.CornerAnswer, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.corner.GetQuestion(ctx, questionId); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: answer must not be empty", errdefs.ErrValidation)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return s.corner.CreateAnswer(ctx, &model.CornerAnswer{
		Id:         id,
		QuestionId: questionId,
		AuthorId:   userId,
		Content:    content,
	})
}

// Vote upserts the caller's vote and returns the new total. Re-voting the
// same direction is idempotent, voting the other way flips it.
func (s *CornerService) Vote(ctx context.Context, questionId uuid.UUID, input *model.VoteInput) (int, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return 0, err
	}
	if input.Value != 1 && input.Value != -1 {
		return 0, errdefs.ErrValidation
	}
	if _, err := s.corner.GetQuestion(ctx, questionId); err != nil {
		return 0, err
	}
	return s.corner.Vote(ctx, questionId, userId, input.Value)
}

// AcceptAnswer is restricted to the question's author.
func (s *CornerService) AcceptAnswer(ctx context.Context, questionId, answerId uuid.UUID) error {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return err
	}
	question, err := s.corner.GetQuestion(ctx, questionId)
	if err != nil {
		return err
	}
	if question.AuthorId != userId {
		return errdefs.ErrPermissionDenied
	}
	return s.corner.AcceptAnswer(ctx, questionId, answerId)
}
