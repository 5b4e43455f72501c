package service

import (
	"context"
	"fmt"
	"time"

	"strength-coach-be/internal/dto"
	"strength-coach-be/internal/entity"
	"strength-coach-be/internal/pkg/dispatch"
	"strength-coach-be/internal/pkg/logger"
	"strength-coach-be/internal/pkg/serverutils"
	"strength-coach-be/internal/repository/specification"
	"strength-coach-be/internal/repository/unitofwork"
	"strength-coach-be/internal/scheduler"

	"github.com/google/uuid"
)

type IReminderService interface {
	Enable(ctx context.Context, req *dto.EnableReminderRequest) (*dto.ReminderStatusResponse, error)
	Disable(ctx context.Context, req *dto.DisableReminderRequest) (*dto.ReminderStatusResponse, error)
	Reconfigure(ctx context.Context, req *dto.ReconfigureReminderRequest) (*dto.ReminderStatusResponse, error)
	Status(ctx context.Context, chatID string) (*dto.ReminderStatusResponse, error)

	// Restore rebuilds the trigger registry from the active settings in the
	// store. Called once at startup; triggers that would have fired while
	// the process was down are not replayed.
	Restore(ctx context.Context) error
}

// reminderService keeps the durable reminder settings and the in-process
// cron triggers in step. The store is authoritative; the registry is always
// writable from it, which is what makes enable and disable idempotent.
type reminderService struct {
	uowFactory      unitofwork.RepositoryFactory
	registry        scheduler.Registry
	dispatcher      dispatch.Dispatcher
	users           IUserService
	logger          logger.ILogger
	defaultTime     string
	defaultWeekdays []string
}

func NewReminderService(
	uowFactory unitofwork.RepositoryFactory,
	registry scheduler.Registry,
	dispatcher dispatch.Dispatcher,
	users IUserService,
	log logger.ILogger,
	defaultTime string,
	defaultWeekdays []string,
) IReminderService {
	return &reminderService{
		uowFactory:      uowFactory,
		registry:        registry,
		dispatcher:      dispatcher,
		users:           users,
		logger:          log,
		defaultTime:     defaultTime,
		defaultWeekdays: defaultWeekdays,
	}
}

func (s *reminderService) Enable(ctx context.Context, req *dto.EnableReminderRequest) (*dto.ReminderStatusResponse, error) {
	user, err := s.users.EnsureUser(ctx, req.ChatId, "")
	if err != nil {
		return nil, err
	}

	timeOfDay := req.TimeOfDay
	if timeOfDay == "" {
		timeOfDay = s.defaultTime
	}
	weekdays := req.Weekdays
	if len(weekdays) == 0 {
		weekdays = s.defaultWeekdays
	}

	setting, err := s.applySchedule(ctx, user, timeOfDay, weekdays)
	if err != nil {
		return nil, err
	}
	return settingToResponse(req.ChatId, setting), nil
}

func (s *reminderService) Disable(ctx context.Context, req *dto.DisableReminderRequest) (*dto.ReminderStatusResponse, error) {
	user, err := s.users.FindByChatID(ctx, req.ChatId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Disabling something that never existed is a successful no-op.
		return &dto.ReminderStatusResponse{ChatId: req.ChatId, Active: false}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	setting, err := uow.ReminderSettingRepository().FindByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return &dto.ReminderStatusResponse{ChatId: req.ChatId, Active: false}, nil
	}

	if setting.Active {
		setting.Active = false
		now := time.Now()
		setting.UpdatedAt = &now
		if err := uow.ReminderSettingRepository().Upsert(ctx, setting); err != nil {
			return nil, err
		}
	}
	s.registry.Unregister(req.ChatId)

	s.logger.Info("reminder", "reminders disabled", map[string]interface{}{
		"chat_id": req.ChatId,
	})
	return settingToResponse(req.ChatId, setting), nil
}

func (s *reminderService) Reconfigure(ctx context.Context, req *dto.ReconfigureReminderRequest) (*dto.ReminderStatusResponse, error) {
	user, err := s.users.FindByChatID(ctx, req.ChatId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("no reminder configured for this chat")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.ReminderSettingRepository().FindByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, serverutils.NewNotFoundError("no reminder configured for this chat")
	}

	timeOfDay := req.TimeOfDay
	if timeOfDay == "" {
		timeOfDay = existing.TimeOfDay
	}
	weekdays := req.Weekdays
	if len(weekdays) == 0 {
		weekdays = existing.Weekdays
	}

	if !existing.Active {
		// Changing the schedule of a disabled reminder updates the stored
		// configuration without waking it up.
		canonicalTime, normalized, err := s.validateSchedule(timeOfDay, weekdays)
		if err != nil {
			return nil, err
		}
		existing.TimeOfDay = canonicalTime
		existing.Weekdays = normalized
		now := time.Now()
		existing.UpdatedAt = &now
		if err := uow.ReminderSettingRepository().Upsert(ctx, existing); err != nil {
			return nil, err
		}
		return settingToResponse(req.ChatId, existing), nil
	}

	setting, err := s.applySchedule(ctx, user, timeOfDay, weekdays)
	if err != nil {
		return nil, err
	}
	return settingToResponse(req.ChatId, setting), nil
}

func (s *reminderService) Status(ctx context.Context, chatID string) (*dto.ReminderStatusResponse, error) {
	user, err := s.users.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &dto.ReminderStatusResponse{ChatId: chatID, Active: false}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	setting, err := uow.ReminderSettingRepository().FindByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return &dto.ReminderStatusResponse{ChatId: chatID, Active: false}, nil
	}
	return settingToResponse(chatID, setting), nil
}

func (s *reminderService) Restore(ctx context.Context) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.ReminderSettingRepository().FindAllActive(ctx)
	if err != nil {
		return err
	}

	restored := 0
	for _, setting := range settings {
		chatID, err := s.chatIDFor(ctx, uow, setting.UserId)
		if err != nil {
			s.logger.Error("reminder", "skipping trigger restore, owner lookup failed", map[string]interface{}{
				"user_id": setting.UserId.String(),
				"error":   err.Error(),
			})
			continue
		}
		if err := s.registry.Register(chatID, setting.TimeOfDay, setting.Weekdays, s.onTrigger); err != nil {
			s.logger.Error("reminder", "skipping trigger restore, bad stored schedule", map[string]interface{}{
				"chat_id": chatID,
				"error":   err.Error(),
			})
			continue
		}
		restored++
	}

	s.logger.Info("reminder", "trigger registry restored", map[string]interface{}{
		"active":   len(settings),
		"restored": restored,
	})
	return nil
}

// applySchedule validates, persists and (re)registers in that order, so a
// rejected schedule touches neither the store nor the registry, and a store
// failure leaves the previous trigger running.
func (s *reminderService) applySchedule(ctx context.Context, user *entity.User, timeOfDay string, weekdays []string) (*entity.ReminderSetting, error) {
	canonicalTime, normalized, err := s.validateSchedule(timeOfDay, weekdays)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	setting, err := uow.ReminderSettingRepository().FindByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = &entity.ReminderSetting{
			Id:        uuid.New(),
			UserId:    user.Id,
			CreatedAt: time.Now(),
		}
	} else {
		now := time.Now()
		setting.UpdatedAt = &now
	}
	setting.TimeOfDay = canonicalTime
	setting.Weekdays = normalized
	setting.Active = true

	if err := uow.ReminderSettingRepository().Upsert(ctx, setting); err != nil {
		return nil, err
	}

	if err := s.registry.Register(user.ChatId, canonicalTime, normalized, s.onTrigger); err != nil {
		return nil, err
	}

	s.logger.Info("reminder", "reminders enabled", map[string]interface{}{
		"chat_id":  user.ChatId,
		"time":     canonicalTime,
		"weekdays": normalized,
	})
	return setting, nil
}

// validateSchedule returns the canonical forms that get stored: zero-padded
// "HH:MM" and deduped week-ordered weekday tokens.
func (s *reminderService) validateSchedule(timeOfDay string, weekdays []string) (string, []string, error) {
	canonical, err := scheduler.NormalizeTimeOfDay(timeOfDay)
	if err != nil {
		return "", nil, serverutils.NewBadRequestError(err.Error())
	}
	normalized, err := scheduler.NormalizeWeekdays(weekdays)
	if err != nil {
		return "", nil, serverutils.NewBadRequestError(err.Error())
	}
	return canonical, normalized, nil
}

// onTrigger fires from the cron goroutine. Delivery is at most once per
// slot: a failure is logged and dropped, never queued or retried.
func (s *reminderService) onTrigger(chatID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	text, err := s.reminderText(ctx, chatID)
	if err != nil {
		s.logger.Warn("reminder", "falling back to generic reminder text", map[string]interface{}{
			"chat_id": chatID,
			"error":   err.Error(),
		})
		text = "Time for your strength practice! A few focused minutes today keep the habit alive."
	}

	if err := s.dispatcher.Deliver(ctx, chatID, text); err != nil {
		s.logger.Error("reminder", "delivery failed, dropping this slot", map[string]interface{}{
			"chat_id": chatID,
			"error":   err.Error(),
		})
		return
	}

	s.logger.Info("reminder", "reminder delivered", map[string]interface{}{
		"chat_id": chatID,
	})
}

func (s *reminderService) reminderText(ctx context.Context, chatID string) (string, error) {
	user, err := s.users.FindByChatID(ctx, chatID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("reminder: no user for chat %s", chatID)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.StrengthProfileRepository().FindByUser(ctx, user.Id)
	if err != nil {
		return "", err
	}

	name := user.DisplayName
	if name == "" {
		name = "there"
	}
	if profile != nil && len(profile.TopStrengths) > 0 {
		return fmt.Sprintf("Hi %s! Time for your strength practice. Lean on your %s today.",
			name, profile.TopStrengths[0]), nil
	}
	return fmt.Sprintf("Hi %s! Time for your strength practice. Complete the assessment to get personalized tips.",
		name), nil
}

func (s *reminderService) chatIDFor(ctx context.Context, uow unitofwork.UnitOfWork, userID uuid.UUID) (string, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userID})
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("reminder: setting owner %s not found", userID)
	}
	return user.ChatId, nil
}

func settingToResponse(chatID string, setting *entity.ReminderSetting) *dto.ReminderStatusResponse {
	return &dto.ReminderStatusResponse{
		ChatId:    chatID,
		Active:    setting.Active,
		TimeOfDay: setting.TimeOfDay,
		Weekdays:  setting.Weekdays,
	}
}
