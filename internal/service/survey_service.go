package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"strength-coach-be/internal/catalog"
	"strength-coach-be/internal/constant"
	"strength-coach-be/internal/dto"
	"strength-coach-be/internal/entity"
	"strength-coach-be/internal/pkg/logger"
	"strength-coach-be/internal/repository/memory"
	"strength-coach-be/internal/repository/unitofwork"
	"strength-coach-be/internal/scoring"
	"strength-coach-be/pkg/events"
	"strength-coach-be/pkg/store"

	"github.com/google/uuid"
)

type ISurveyService interface {
	Start(ctx context.Context, req *dto.StartSurveyRequest) (*dto.SurveyTurnResponse, error)
	SubmitAnswer(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.SurveyTurnResponse, error)
	Cancel(ctx context.Context, chatID string) (*dto.SurveyTurnResponse, error)
	Status(ctx context.Context, chatID string) (*dto.SurveyStatusResponse, error)
}

// surveyService drives the two-phase questionnaire. All mutation of a user's
// session goes through a per-chat mutex, so two racing messages from the
// same chat serialize instead of double-advancing the question index.
type surveyService struct {
	uowFactory  unitofwork.RepositoryFactory
	sessionRepo *memory.SessionRepository
	catalog     *catalog.Catalog
	users       IUserService
	narrative   INarrativeService
	publisher   IPublisherService
	logger      logger.ILogger
	locks       sync.Map // chat id -> *sync.Mutex
}

func NewSurveyService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo *memory.SessionRepository,
	cat *catalog.Catalog,
	users IUserService,
	narrative INarrativeService,
	publisher IPublisherService,
	log logger.ILogger,
) ISurveyService {
	return &surveyService{
		uowFactory:  uowFactory,
		sessionRepo: sessionRepo,
		catalog:     cat,
		users:       users,
		narrative:   narrative,
		publisher:   publisher,
		logger:      log,
	}
}

func (s *surveyService) lock(chatID string) func() {
	v, _ := s.locks.LoadOrStore(chatID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *surveyService) Start(ctx context.Context, req *dto.StartSurveyRequest) (*dto.SurveyTurnResponse, error) {
	unlock := s.lock(req.ChatId)
	defer unlock()

	user, err := s.users.EnsureUser(ctx, req.ChatId, req.DisplayName)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Restarting over a finished profile destroys it on the next
	// completion, so that path asks for an explicit confirmation first.
	// Restarting a merely in-progress attempt does not.
	if _, inProgress := s.sessionRepo.Get(req.ChatId); !inProgress && !req.ConfirmRestart {
		profile, err := uow.StrengthProfileRepository().FindByUser(ctx, user.Id)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			return &dto.SurveyTurnResponse{
				Status:     constant.TurnStatusConfirmRequired,
				NextPrompt: constant.MsgConfirmRestart,
			}, nil
		}
	}

	// Every start is a clean slate. Leftover answers from an abandoned or
	// restarted attempt would otherwise leak into the next scoring run.
	if err := uow.AnswerRepository().DeleteAllByUser(ctx, user.Id); err != nil {
		return nil, err
	}

	session := &store.SurveySession{
		ChatID: req.ChatId,
		Phase:  store.PhaseDemographic,
		Index:  0,
	}
	if s.catalog.DemographicCount() == 0 {
		session.Phase = store.PhaseScored
	}
	s.sessionRepo.Save(session)

	question, ok := s.currentQuestion(session)
	if !ok {
		return nil, fmt.Errorf("survey: catalog has no questions")
	}

	prompt := question.Text
	if session.Phase == store.PhaseScored {
		prompt = constant.MsgScaleExplanation + "\n\n" + prompt
	}
	return &dto.SurveyTurnResponse{
		Status:     constant.TurnStatusPrompt,
		NextPrompt: prompt,
	}, nil
}

func (s *surveyService) SubmitAnswer(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.SurveyTurnResponse, error) {
	unlock := s.lock(req.ChatId)
	defer unlock()

	session, ok := s.sessionRepo.Get(req.ChatId)
	if !ok {
		return &dto.SurveyTurnResponse{
			Status:     constant.TurnStatusNoActiveSurvey,
			NextPrompt: constant.MsgNoActiveSurvey,
		}, nil
	}

	user, err := s.users.FindByChatID(ctx, req.ChatId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Session without a user row means the store was reset under us.
		s.sessionRepo.Delete(req.ChatId)
		return &dto.SurveyTurnResponse{
			Status:     constant.TurnStatusNoActiveSurvey,
			NextPrompt: constant.MsgNoActiveSurvey,
		}, nil
	}

	question, ok := s.currentQuestion(session)
	if !ok {
		return nil, fmt.Errorf("survey: session for %s points past the catalog", req.ChatId)
	}

	answer := strings.TrimSpace(req.Text)
	switch question.Phase {
	case catalog.PhaseDemographic:
		if answer == "" {
			return &dto.SurveyTurnResponse{
				Status:       constant.TurnStatusRejected,
				RejectReason: constant.MsgEmptyAnswer,
				NextPrompt:   question.Text,
			}, nil
		}
	case catalog.PhaseScored:
		if _, valid := catalog.ParseScaleAnswer(answer); !valid {
			return &dto.SurveyTurnResponse{
				Status:       constant.TurnStatusRejected,
				RejectReason: constant.MsgInvalidScaleAnswer,
				NextPrompt:   question.Text,
			}, nil
		}
	}

	// Persist before advancing. If the write fails the session stays where
	// it was and the user can simply resend the same answer.
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AnswerRepository().Upsert(ctx, &entity.Answer{
		UserId:     user.Id,
		QuestionId: question.ID,
		Value:      answer,
		CreatedAt:  time.Now(),
	}); err != nil {
		return nil, err
	}

	// The cached session is shared, so the new position is computed on a
	// copy and stored only once the rest of the turn has succeeded. If
	// completion fails mid-way the session still points at the last
	// question and resending the same answer retries it.
	advanced := store.SurveySession{
		ChatID: session.ChatID,
		Phase:  session.Phase,
		Index:  session.Index + 1,
	}

	if advanced.Phase == store.PhaseDemographic && advanced.Index >= s.catalog.DemographicCount() {
		advanced.Phase = store.PhaseScored
		advanced.Index = 0
		if s.catalog.ScoredCount() == 0 {
			return s.complete(ctx, uow, user)
		}
		s.sessionRepo.Save(&advanced)
		return &dto.SurveyTurnResponse{
			Status:     constant.TurnStatusPrompt,
			NextPrompt: constant.MsgScaleExplanation + "\n\n" + s.catalog.Scored()[0].Text,
		}, nil
	}

	if advanced.Phase == store.PhaseScored && advanced.Index >= s.catalog.ScoredCount() {
		return s.complete(ctx, uow, user)
	}

	s.sessionRepo.Save(&advanced)
	next, _ := s.currentQuestion(&advanced)
	return &dto.SurveyTurnResponse{
		Status:     constant.TurnStatusPrompt,
		NextPrompt: next.Text,
	}, nil
}

func (s *surveyService) Cancel(ctx context.Context, chatID string) (*dto.SurveyTurnResponse, error) {
	unlock := s.lock(chatID)
	defer unlock()

	if _, ok := s.sessionRepo.Get(chatID); !ok {
		return &dto.SurveyTurnResponse{
			Status:     constant.TurnStatusNoActiveSurvey,
			NextPrompt: constant.MsgNoActiveSurvey,
		}, nil
	}

	s.sessionRepo.Delete(chatID)
	return &dto.SurveyTurnResponse{
		Status:     constant.TurnStatusCancelled,
		NextPrompt: constant.MsgCancelled,
	}, nil
}

func (s *surveyService) Status(ctx context.Context, chatID string) (*dto.SurveyStatusResponse, error) {
	resp := &dto.SurveyStatusResponse{
		ChatId: chatID,
		Total:  s.catalog.DemographicCount() + s.catalog.ScoredCount(),
	}

	user, err := s.users.FindByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if session, ok := s.sessionRepo.Get(chatID); ok {
		resp.InProgress = true
		resp.Phase = session.Phase
		resp.QuestionIndex = session.Index
		resp.Answered = session.Index
		if session.Phase == store.PhaseScored {
			resp.Answered += s.catalog.DemographicCount()
		}
	}

	if user == nil {
		return resp, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if !resp.InProgress {
		answers, err := uow.AnswerRepository().FindAllByUser(ctx, user.Id)
		if err != nil {
			return nil, err
		}
		resp.Answered = len(answers)
	}

	profile, err := uow.StrengthProfileRepository().FindByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	resp.HasProfile = profile != nil
	return resp, nil
}

func (s *surveyService) currentQuestion(session *store.SurveySession) (catalog.Question, bool) {
	var questions []catalog.Question
	switch session.Phase {
	case store.PhaseDemographic:
		questions = s.catalog.Demographic()
	case store.PhaseScored:
		questions = s.catalog.Scored()
	}
	if session.Index < 0 || session.Index >= len(questions) {
		return catalog.Question{}, false
	}
	return questions[session.Index], true
}

// complete scores the finished questionnaire, stores the profile, ends the
// session and announces the completion on the event bus. The session is
// removed only after the profile write succeeded, so a failed write leaves
// the survey resumable.
func (s *surveyService) complete(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User) (*dto.SurveyTurnResponse, error) {
	rows, err := uow.AnswerRepository().FindAllByUser(ctx, user.Id)
	if err != nil {
		return nil, err
	}

	answers := make(map[string]string, len(rows))
	demographic := make(map[string]string)
	for _, row := range rows {
		answers[row.QuestionId] = row.Value
		if q, ok := s.catalog.ByID(row.QuestionId); ok && q.Phase == catalog.PhaseDemographic {
			demographic[row.QuestionId] = row.Value
		}
	}

	result := scoring.Compute(answers, s.catalog)
	narrative := s.narrative.Compose(ctx, user.DisplayName, result, demographic)

	completedAt := time.Now()
	profile := &entity.StrengthProfile{
		Id:           uuid.New(),
		UserId:       user.Id,
		Scores:       result.Scores,
		TopStrengths: result.Top,
		Narrative:    narrative,
		CompletedAt:  completedAt,
	}
	if err := uow.StrengthProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, err
	}

	s.sessionRepo.Delete(user.ChatId)

	if s.publisher != nil {
		evt := events.SurveyCompleted{
			ChatID:       user.ChatId,
			DisplayName:  user.DisplayName,
			TopStrengths: result.Top,
			Scores:       result.Scores,
			CompletedAt:  completedAt,
		}
		if err := s.publisher.Publish(ctx, evt); err != nil {
			// The profile is already stored; a lost event only costs the
			// congratulation message.
			s.logger.Warn("survey", "completion event not published", map[string]interface{}{
				"chat_id": user.ChatId,
				"error":   err.Error(),
			})
		}
	}

	s.logger.Info("survey", "assessment completed", map[string]interface{}{
		"chat_id":       user.ChatId,
		"top_strengths": result.Top,
	})

	return &dto.SurveyTurnResponse{
		Status:  constant.TurnStatusCompleted,
		Profile: profileToResponse(user.ChatId, profile),
	}, nil
}

func profileToResponse(chatID string, profile *entity.StrengthProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ChatId:       chatID,
		Scores:       profile.Scores,
		TopStrengths: profile.TopStrengths,
		Narrative:    profile.Narrative,
		CompletedAt:  profile.CompletedAt,
	}
}
