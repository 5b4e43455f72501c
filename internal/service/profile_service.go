package service

import (
	"context"

	"strength-coach-be/internal/dto"
	"strength-coach-be/internal/pkg/logger"
	"strength-coach-be/internal/pkg/serverutils"
	"strength-coach-be/internal/repository/memory"
	"strength-coach-be/internal/repository/unitofwork"
)

type IProfileService interface {
	// Get returns the user's stored strength profile, or a not-found error
	// when the user never completed the assessment.
	Get(ctx context.Context, chatID string) (*dto.ProfileResponse, error)

	// Reset erases the user's profile and all stored answers, and drops any
	// in-flight survey session. The user row itself stays.
	Reset(ctx context.Context, chatID string) error
}

type profileService struct {
	uowFactory  unitofwork.RepositoryFactory
	sessionRepo *memory.SessionRepository
	users       IUserService
	logger      logger.ILogger
}

func NewProfileService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo *memory.SessionRepository,
	users IUserService,
	log logger.ILogger,
) IProfileService {
	return &profileService{
		uowFactory:  uowFactory,
		sessionRepo: sessionRepo,
		users:       users,
		logger:      log,
	}
}

func (s *profileService) Get(ctx context.Context, chatID string) (*dto.ProfileResponse, error) {
	user, err := s.users.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("no profile for this chat")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.StrengthProfileRepository().FindByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, serverutils.NewNotFoundError("no profile for this chat")
	}
	return profileToResponse(chatID, profile), nil
}

func (s *profileService) Reset(ctx context.Context, chatID string) error {
	user, err := s.users.FindByChatID(ctx, chatID)
	if err != nil {
		return err
	}
	if user == nil {
		return serverutils.NewNotFoundError("unknown chat")
	}

	// Profile and answers go together or not at all.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.StrengthProfileRepository().DeleteByUser(ctx, user.Id); err != nil {
		return err
	}
	if err := uow.AnswerRepository().DeleteAllByUser(ctx, user.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.sessionRepo.Delete(chatID)
	s.logger.Info("profile", "profile reset", map[string]interface{}{
		"chat_id": chatID,
	})
	return nil
}
