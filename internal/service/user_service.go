package service

import (
	"context"
	"time"

	"strength-coach-be/internal/entity"
	"strength-coach-be/internal/repository/specification"
	"strength-coach-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	// EnsureUser returns the user for a chat id, creating the row on first
	// contact. A non-empty display name that differs from the stored one
	// updates it in place.
	EnsureUser(ctx context.Context, chatID, displayName string) (*entity.User, error)

	// FindByChatID returns (nil, nil) for an unknown chat id.
	FindByChatID(ctx context.Context, chatID string) (*entity.User, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) EnsureUser(ctx context.Context, chatID, displayName string) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByChatID{ChatID: chatID})
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &entity.User{
			Id:          uuid.New(),
			ChatId:      chatID,
			DisplayName: displayName,
			CreatedAt:   time.Now(),
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	}

	if displayName != "" && displayName != user.DisplayName {
		user.DisplayName = displayName
		now := time.Now()
		user.UpdatedAt = &now
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *userService) FindByChatID(ctx context.Context, chatID string) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().FindOne(ctx, specification.ByChatID{ChatID: chatID})
}
