package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"strength-coach-be/internal/catalog"
	"strength-coach-be/internal/constant"
	"strength-coach-be/internal/dto"
	"strength-coach-be/internal/repository/memory"
	"strength-coach-be/pkg/events"
	"strength-coach-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

type surveyHarness struct {
	svc       ISurveyService
	uow       *fakeUnitOfWork
	sessions  *memory.SessionRepository
	narrative *fakeNarrative
	publisher *fakePublisher
	catalog   *catalog.Catalog
}

func newSurveyHarness(t *testing.T) *surveyHarness {
	t.Helper()
	uow := newFakeUnitOfWork()
	factory := &fakeFactory{uow: uow}
	sessions := memory.NewSessionRepository()
	narrative := &fakeNarrative{}
	publisher := &fakePublisher{}
	cat := catalog.Default()

	svc := NewSurveyService(
		factory,
		sessions,
		cat,
		NewUserService(factory),
		narrative,
		publisher,
		nopLogger{},
	)
	return &surveyHarness{
		svc:       svc,
		uow:       uow,
		sessions:  sessions,
		narrative: narrative,
		publisher: publisher,
		catalog:   cat,
	}
}

// runToCompletion starts a survey and answers every question: free text for
// the demographic phase, the given ratings for the scored one.
func (h *surveyHarness) runToCompletion(t *testing.T, chatID string, rating func(i int) string) *dto.SurveyTurnResponse {
	t.Helper()
	ctx := context.Background()

	resp, err := h.svc.Start(ctx, &dto.StartSurveyRequest{ChatId: chatID, DisplayName: "Dana"})
	assert.NoError(t, err)
	assert.Equal(t, constant.TurnStatusPrompt, resp.Status)

	for i := 0; i < h.catalog.DemographicCount(); i++ {
		resp, err = h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: chatID, Text: fmt.Sprintf("answer %d", i)})
		assert.NoError(t, err)
	}
	for i := 0; i < h.catalog.ScoredCount(); i++ {
		resp, err = h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: chatID, Text: rating(i)})
		assert.NoError(t, err)
	}
	return resp
}

func TestSurveyCompletesAfterAllAnswers(t *testing.T) {
	h := newSurveyHarness(t)

	resp := h.runToCompletion(t, "chat-1", func(int) string { return "4" })

	assert.Equal(t, constant.TurnStatusCompleted, resp.Status)
	if assert.NotNil(t, resp.Profile) {
		assert.Len(t, resp.Profile.TopStrengths, 3)
		for _, category := range h.catalog.Categories() {
			assert.Equal(t, 4.0, resp.Profile.Scores[category])
		}
	}

	// Session is gone, profile persisted, completion event out.
	_, inProgress := h.sessions.Get("chat-1")
	assert.False(t, inProgress)
	if assert.Len(t, h.publisher.events, 1) {
		assert.Equal(t, events.TypeSurveyCompleted, h.publisher.events[0].EventType())
	}

	user, err := h.uow.userRepo.FindOne(context.Background())
	assert.NoError(t, err)
	stored, err := h.uow.profileRepo.FindByUser(context.Background(), user.Id)
	assert.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestScaleExplanationShownAtPhaseSwitch(t *testing.T) {
	h := newSurveyHarness(t)
	ctx := context.Background()

	_, err := h.svc.Start(ctx, &dto.StartSurveyRequest{ChatId: "chat-2"})
	assert.NoError(t, err)

	var resp *dto.SurveyTurnResponse
	for i := 0; i < h.catalog.DemographicCount(); i++ {
		resp, err = h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-2", Text: "something"})
		assert.NoError(t, err)
	}

	assert.Equal(t, constant.TurnStatusPrompt, resp.Status)
	assert.True(t, strings.HasPrefix(resp.NextPrompt, constant.MsgScaleExplanation))
	assert.Contains(t, resp.NextPrompt, h.catalog.Scored()[0].Text)
}

func TestInvalidScaleAnswerRepromptsWithoutAdvancing(t *testing.T) {
	h := newSurveyHarness(t)
	ctx := context.Background()

	_, err := h.svc.Start(ctx, &dto.StartSurveyRequest{ChatId: "chat-3"})
	assert.NoError(t, err)
	for i := 0; i < h.catalog.DemographicCount(); i++ {
		_, err = h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-3", Text: "x"})
		assert.NoError(t, err)
	}

	firstScored := h.catalog.Scored()[0].Text
	for _, bad := range []string{"9", "0", "maybe", "3.5", ""} {
		resp, err := h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-3", Text: bad})
		assert.NoError(t, err)
		assert.Equal(t, constant.TurnStatusRejected, resp.Status, "input %q", bad)
		assert.Equal(t, constant.MsgInvalidScaleAnswer, resp.RejectReason, "input %q", bad)
		assert.Equal(t, firstScored, resp.NextPrompt, "input %q", bad)
	}

	session, ok := h.sessions.Get("chat-3")
	if assert.True(t, ok) {
		assert.Equal(t, 0, session.Index)
	}
}

func TestSubmitWithoutActiveSurvey(t *testing.T) {
	h := newSurveyHarness(t)

	resp, err := h.svc.SubmitAnswer(context.Background(), &dto.SubmitAnswerRequest{ChatId: "nobody", Text: "3"})
	assert.NoError(t, err)
	assert.Equal(t, constant.TurnStatusNoActiveSurvey, resp.Status)
	assert.Equal(t, constant.MsgNoActiveSurvey, resp.NextPrompt)
}

func TestRestartMidSurveyDiscardsPriorAnswers(t *testing.T) {
	h := newSurveyHarness(t)
	ctx := context.Background()

	_, err := h.svc.Start(ctx, &dto.StartSurveyRequest{ChatId: "chat-4"})
	assert.NoError(t, err)
	_, err = h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-4", Text: "Dana"})
	assert.NoError(t, err)

	resp, err := h.svc.Start(ctx, &dto.StartSurveyRequest{ChatId: "chat-4"})
	assert.NoError(t, err)
	assert.Equal(t, constant.TurnStatusPrompt, resp.Status)
	assert.Equal(t, h.catalog.Demographic()[0].Text, resp.NextPrompt)

	user, err := h.uow.userRepo.FindOne(ctx)
	assert.NoError(t, err)
	answers, err := h.uow.answerRepo.FindAllByUser(ctx, user.Id)
	assert.NoError(t, err)
	assert.Empty(t, answers)
}

func TestRestartOverProfileNeedsConfirmation(t *testing.T) {
	h := newSurveyHarness(t)
	ctx := context.Background()

	h.runToCompletion(t, "chat-5", func(int) string { return "3" })

	resp, err := h.svc.Start(ctx, &dto.StartSurveyRequest{ChatId: "chat-5"})
	assert.NoError(t, err)
	assert.Equal(t, constant.TurnStatusConfirmRequired, resp.Status)
	assert.Equal(t, constant.MsgConfirmRestart, resp.NextPrompt)

	resp, err = h.svc.Start(ctx, &dto.StartSurveyRequest{ChatId: "chat-5", ConfirmRestart: true})
	assert.NoError(t, err)
	assert.Equal(t, constant.TurnStatusPrompt, resp.Status)
}

func TestFailedAnswerWriteDoesNotAdvance(t *testing.T) {
	h := newSurveyHarness(t)
	ctx := context.Background()

	_, err := h.svc.Start(ctx, &dto.StartSurveyRequest{ChatId: "chat-6"})
	assert.NoError(t, err)

	h.uow.answerRepo.failUpsert = fmt.Errorf("connection reset")
	_, err = h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-6", Text: "Dana"})
	assert.Error(t, err)

	session, ok := h.sessions.Get("chat-6")
	if assert.True(t, ok) {
		assert.Equal(t, 0, session.Index)
	}

	// Same answer again once the store recovers.
	h.uow.answerRepo.failUpsert = nil
	resp, err := h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-6", Text: "Dana"})
	assert.NoError(t, err)
	assert.Equal(t, constant.TurnStatusPrompt, resp.Status)
	assert.Equal(t, h.catalog.Demographic()[1].Text, resp.NextPrompt)
}

func TestFailedProfileWriteLeavesSurveyResumable(t *testing.T) {
	h := newSurveyHarness(t)
	ctx := context.Background()

	_, err := h.svc.Start(ctx, &dto.StartSurveyRequest{ChatId: "chat-10", DisplayName: "Dana"})
	assert.NoError(t, err)
	for i := 0; i < h.catalog.DemographicCount(); i++ {
		_, err = h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-10", Text: "x"})
		assert.NoError(t, err)
	}
	for i := 0; i < h.catalog.ScoredCount()-1; i++ {
		_, err = h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-10", Text: "4"})
		assert.NoError(t, err)
	}

	// The last answer triggers completion and the profile write fails.
	h.uow.profileRepo.failUpsert = fmt.Errorf("connection reset")
	_, err = h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-10", Text: "4"})
	assert.Error(t, err)

	// The session must still point at the last question, not past it.
	session, ok := h.sessions.Get("chat-10")
	if assert.True(t, ok) {
		assert.Equal(t, store.PhaseScored, session.Phase)
		assert.Equal(t, h.catalog.ScoredCount()-1, session.Index)
	}

	// Resending the same answer once the store recovers finishes the survey.
	h.uow.profileRepo.failUpsert = nil
	resp, err := h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-10", Text: "4"})
	assert.NoError(t, err)
	assert.Equal(t, constant.TurnStatusCompleted, resp.Status)

	_, inProgress := h.sessions.Get("chat-10")
	assert.False(t, inProgress)
}

func TestEmptyDemographicAnswerRejected(t *testing.T) {
	h := newSurveyHarness(t)
	ctx := context.Background()

	_, err := h.svc.Start(ctx, &dto.StartSurveyRequest{ChatId: "chat-11"})
	assert.NoError(t, err)

	resp, err := h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-11", Text: "   "})
	assert.NoError(t, err)
	assert.Equal(t, constant.TurnStatusRejected, resp.Status)
	assert.Equal(t, constant.MsgEmptyAnswer, resp.RejectReason)
	assert.Equal(t, h.catalog.Demographic()[0].Text, resp.NextPrompt)

	session, ok := h.sessions.Get("chat-11")
	if assert.True(t, ok) {
		assert.Equal(t, 0, session.Index)
	}
}

func TestProfileStoredWithoutNarrativeWhenGenerationTimesOut(t *testing.T) {
	h := newSurveyHarness(t)
	text := "you are great"
	h.narrative.text = &text
	h.narrative.delay = 50 * time.Millisecond

	// The fake honours context cancellation; a tight deadline simulates a
	// slow model.
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Millisecond)
	defer cancel()

	_, err := h.svc.Start(ctx, &dto.StartSurveyRequest{ChatId: "chat-7"})
	assert.NoError(t, err)
	for i := 0; i < h.catalog.DemographicCount(); i++ {
		_, err = h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-7", Text: "x"})
		assert.NoError(t, err)
	}
	var resp *dto.SurveyTurnResponse
	for i := 0; i < h.catalog.ScoredCount(); i++ {
		resp, err = h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-7", Text: "5"})
		assert.NoError(t, err)
	}

	assert.Equal(t, constant.TurnStatusCompleted, resp.Status)
	if assert.NotNil(t, resp.Profile) {
		assert.Nil(t, resp.Profile.Narrative)
	}
}

func TestCancelEndsSessionAndKeepsAnswers(t *testing.T) {
	h := newSurveyHarness(t)
	ctx := context.Background()

	_, err := h.svc.Start(ctx, &dto.StartSurveyRequest{ChatId: "chat-8"})
	assert.NoError(t, err)
	_, err = h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-8", Text: "Dana"})
	assert.NoError(t, err)

	resp, err := h.svc.Cancel(ctx, "chat-8")
	assert.NoError(t, err)
	assert.Equal(t, constant.TurnStatusCancelled, resp.Status)

	_, inProgress := h.sessions.Get("chat-8")
	assert.False(t, inProgress)

	user, err := h.uow.userRepo.FindOne(ctx)
	assert.NoError(t, err)
	answers, err := h.uow.answerRepo.FindAllByUser(ctx, user.Id)
	assert.NoError(t, err)
	assert.Len(t, answers, 1)

	resp, err = h.svc.Cancel(ctx, "chat-8")
	assert.NoError(t, err)
	assert.Equal(t, constant.TurnStatusNoActiveSurvey, resp.Status)
}

func TestStatusTracksProgress(t *testing.T) {
	h := newSurveyHarness(t)
	ctx := context.Background()

	status, err := h.svc.Status(ctx, "chat-9")
	assert.NoError(t, err)
	assert.False(t, status.InProgress)
	assert.False(t, status.HasProfile)
	assert.Equal(t, 0, status.Answered)

	_, err = h.svc.Start(ctx, &dto.StartSurveyRequest{ChatId: "chat-9"})
	assert.NoError(t, err)
	_, err = h.svc.SubmitAnswer(ctx, &dto.SubmitAnswerRequest{ChatId: "chat-9", Text: "Dana"})
	assert.NoError(t, err)

	status, err = h.svc.Status(ctx, "chat-9")
	assert.NoError(t, err)
	assert.True(t, status.InProgress)
	assert.Equal(t, 1, status.Answered)
	assert.Equal(t, h.catalog.DemographicCount()+h.catalog.ScoredCount(), status.Total)

	h.runToCompletion(t, "chat-9", func(int) string { return "2" })

	status, err = h.svc.Status(ctx, "chat-9")
	assert.NoError(t, err)
	assert.False(t, status.InProgress)
	assert.True(t, status.HasProfile)
	assert.Equal(t, status.Total, status.Answered)
}
