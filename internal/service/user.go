package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nabin00012/codecommons-sub000/internal/authorization"
	"github.com/nabin00012/codecommons-sub000/internal/errdefs"
	"github.com/nabin00012/codecommons-sub000/internal/kafka"
	"github.com/nabin00012/codecommons-sub000/internal/model"
	"github.com/nabin00012/codecommons-sub000/pkg/logging"
)

const passwordResetTTL = time.Hour

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *model.UpdateUserInput) (*model.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	CreatePasswordReset(ctx context.Context, reset *model.PasswordReset) error
	GetPasswordReset(ctx context.Context, token uuid.UUID) (*model.PasswordReset, error)
	DeletePasswordResets(ctx context.Context, userId uuid.UUID) error
}

// EventSender publishes domain events for the notifier. Delivery is best
// effort: a broker outage must never fail the request that produced the event.
type EventSender interface {
	Send(ctx context.Context, event kafka.Event) error
}

type UserService struct {
	users  UserRepository
	tokens *authorization.TokenManager
	events EventSender
}

func NewUserService(users UserRepository, tokens *authorization.TokenManager, events EventSender) *UserService {
	return &UserService{users: users, tokens: tokens, events: events}
}

func (s *UserService) Register(ctx context.Context, input *model.RegisterInput) (*model.User, string, error) {
	if !input.Role.IsValid() {
		return nil, "", errdefs.ErrValidation
	}

	hash, err := authorization.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.CreateUser(ctx, &model.User{
		Id:           id,
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		Role:         input.Role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.Id, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Login(ctx context.Context, input *model.LoginInput) (*model.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		// Same error for unknown email and bad password.
		return nil, "", errdefs.ErrAuthentication
	}

	if err := authorization.CheckPassword(user.PasswordHash, input.Password); err != nil {
		return nil, "", errdefs.ErrAuthentication
	}

	token, err := s.tokens.Issue(user.Id, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) GetMe(ctx context.Context) (*model.User, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.users.GetUser(ctx, userId)
}

func (s *UserService) GetUserPublic(ctx context.Context, id uuid.UUID) (*model.UserPublic, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.UserPublic{
		Id:         user.Id,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		Department: user.Department,
		AvatarURL:  user.AvatarURL,
	}, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input *model.UpdateUserInput) (*model.User, error) {
	userId, _, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if userId != id {
		return nil, errdefs.ErrPermissionDenied
	}
	return s.users.UpdateUser(ctx, id, input)
}

func (s *UserService) RequestPasswordReset(ctx context.Context, input *model.RequestPasswordResetInput) error {
	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		// Do not reveal whether the email exists.
		return nil
	}

	token, err := uuid.NewV7()
	if err != nil {
		return err
	}
	reset := &model.PasswordReset{
		Token:     token,
		UserId:    user.Id,
		ExpiresAt: time.Now().Add(passwordResetTTL),
	}
	if err := s.users.CreatePasswordReset(ctx, reset); err != nil {
		return err
	}

	emitEvent(ctx, s.events, kafka.Event{
		Type:       kafka.EventPasswordResetRequested,
		UserID:     user.Id.String(),
		ResetToken: token.String(),
	})
	return nil
}

func (s *UserService) ConfirmPasswordReset(ctx context.Context, input *model.ConfirmPasswordResetInput) error {
	token, err := uuid.Parse(input.Token)
	if err != nil {
		return errdefs.ErrValidation
	}

	reset, err := s.users.GetPasswordReset(ctx, token)
	if err != nil {
		return err
	}

	hash, err := authorization.HashPassword(input.Password)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, reset.UserId, hash); err != nil {
		return err
	}
	return s.users.DeletePasswordResets(ctx, reset.UserId)
}

// emitEvent publishes best effort: a broker failure is logged, never returned.
func emitEvent(ctx context.Context, events EventSender, event kafka.Event) {
	if events == nil {
		return
	}
	if err := events.Send(ctx, event); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "failed to send event", zap.String("type", event.Type), zap.Error(err))
		}
	}
}
