package bootstrap

import (
	"context"
	"log"
	"time"

	"strength-coach-be/internal/catalog"
	"strength-coach-be/internal/config"
	"strength-coach-be/internal/constant"
	"strength-coach-be/internal/controller"
	"strength-coach-be/internal/pkg/dispatch"
	"strength-coach-be/internal/pkg/logger"
	"strength-coach-be/internal/pkg/mailer"
	"strength-coach-be/internal/repository/memory"
	"strength-coach-be/internal/repository/unitofwork"
	"strength-coach-be/internal/scheduler"
	"strength-coach-be/internal/service"
	"strength-coach-be/pkg/llm"
	"strength-coach-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

// Container wires every dependency once at startup. Construction order runs
// infrastructure first, then services, then controllers.
type Container struct {
	SurveyController   controller.ISurveyController
	ProfileController  controller.IProfileController
	ReminderController controller.IReminderController

	SurveyService   service.ISurveyService
	ReminderService service.IReminderService
	ConsumerService service.IConsumerService

	ReminderRegistry scheduler.Registry
	Logger           logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	reminderLogger := logger.NewIsolatedLogger(cfg.Reminder.LogFilePath)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Language model for the profile narrative. Startup survives a
	// missing model; completions just store profiles without a narrative.
	var llmProvider llm.LLMProvider
	provider, err := factory.NewLLMProvider(cfg.Ai.LLMProvider, cfg.Ai.LLMModel, cfg.Ai.OllamaBaseURL)
	if err != nil {
		log.Printf("[WARN] LLM provider unavailable, narratives disabled: %v", err)
	} else {
		llmProvider = provider
	}

	// 4. Question battery and transient session storage
	cat := catalog.Default()
	sessionRepo := memory.NewSessionRepository()

	// 5. Services
	userService := service.NewUserService(uowFactory)
	narrativeService := service.NewNarrativeService(llmProvider, cfg.Ai.NarrativeTimeout, sysLogger)
	publisherService := service.NewPublisherService(pubSub, constant.TopicSurveyCompleted)

	surveyService := service.NewSurveyService(
		uowFactory,
		sessionRepo,
		cat,
		userService,
		narrativeService,
		publisherService,
		sysLogger,
	)
	profileService := service.NewProfileService(uowFactory, sessionRepo, userService, sysLogger)

	// 6. Outbound delivery channel
	dispatcher := newDispatcher(cfg, userService)

	// 7. Reminder scheduling
	loc, err := time.LoadLocation(cfg.Reminder.Timezone)
	if err != nil {
		log.Printf("[WARN] Unknown timezone %q, reminders run in UTC", cfg.Reminder.Timezone)
		loc = time.UTC
	}
	registry := scheduler.NewCronRegistry(loc, reminderLogger)

	reminderService := service.NewReminderService(
		uowFactory,
		registry,
		dispatcher,
		userService,
		reminderLogger,
		cfg.Reminder.DefaultTime,
		cfg.Reminder.DefaultWeekdays,
	)

	registry.Start()
	if err := reminderService.Restore(context.Background()); err != nil {
		log.Printf("[WARN] Reminder trigger restore failed: %v", err)
	}

	consumerService := service.NewConsumerService(pubSub, constant.TopicSurveyCompleted, dispatcher, sysLogger)

	// 8. Controllers
	return &Container{
		SurveyController:   controller.NewSurveyController(surveyService),
		ProfileController:  controller.NewProfileController(profileService),
		ReminderController: controller.NewReminderController(reminderService),

		SurveyService:   surveyService,
		ReminderService: reminderService,
		ConsumerService: consumerService,

		ReminderRegistry: registry,
		Logger:           sysLogger,
	}
}

func newDispatcher(cfg *config.Config, users service.IUserService) dispatch.Dispatcher {
	if cfg.Dispatch.Provider == "email" {
		emailService := mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderEmail,
			cfg.SMTP.SenderName,
		)
		lookup := func(ctx context.Context, chatID string) (string, error) {
			user, err := users.FindByChatID(ctx, chatID)
			if err != nil {
				return "", err
			}
			if user == nil || user.Email == nil {
				return "", nil
			}
			return *user.Email, nil
		}
		return dispatch.NewEmailDispatcher(emailService, lookup)
	}
	return dispatch.NewWebhookDispatcher(cfg.Dispatch.WebhookURL, cfg.Dispatch.WebhookToken)
}
