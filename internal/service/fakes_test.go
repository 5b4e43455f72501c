package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"strength-coach-be/internal/entity"
	"strength-coach-be/internal/repository/contract"
	"strength-coach-be/internal/repository/specification"
	"strength-coach-be/internal/repository/unitofwork"
	"strength-coach-be/internal/scheduler"
	"strength-coach-be/internal/scoring"
	"strength-coach-be/pkg/events"

	"github.com/google/uuid"
)

// In-memory doubles for the persistence boundary. They implement the same
// contracts the GORM repositories do, minus the specification filtering the
// services under test never rely on.

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *user
	r.users = append(r.users, &clone)
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.Id == user.Id {
			clone := *user
			r.users[i] = &clone
			return nil
		}
	}
	return fmt.Errorf("user %s not found", user.Id)
}

func (r *fakeUserRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if matchUser(u, specs) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		if matchUser(u, specs) {
			clone := *u
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	users, err := r.FindAll(ctx, specs...)
	return int64(len(users)), err
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByChatID:
			if u.ChatId != spec.ChatID {
				return false
			}
		case specification.ByID:
			if u.Id != spec.ID {
				return false
			}
		}
	}
	return true
}

type fakeAnswerRepo struct {
	mu         sync.Mutex
	answers    []*entity.Answer
	failUpsert error
}

func (r *fakeAnswerRepo) Upsert(_ context.Context, answer *entity.Answer) error {
	if r.failUpsert != nil {
		return r.failUpsert
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, a := range r.answers {
		if a.UserId == answer.UserId && a.QuestionId == answer.QuestionId {
			clone := *answer
			clone.Id = a.Id
			r.answers[i] = &clone
			return nil
		}
	}
	clone := *answer
	if clone.Id == uuid.Nil {
		clone.Id = uuid.New()
	}
	r.answers = append(r.answers, &clone)
	return nil
}

func (r *fakeAnswerRepo) FindAllByUser(_ context.Context, userID uuid.UUID) ([]*entity.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Answer
	for _, a := range r.answers {
		if a.UserId == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeAnswerRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.Answer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Answer, len(r.answers))
	copy(out, r.answers)
	return out, nil
}

func (r *fakeAnswerRepo) DeleteAllByUser(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.answers[:0]
	for _, a := range r.answers {
		if a.UserId != userID {
			kept = append(kept, a)
		}
	}
	r.answers = kept
	return nil
}

type fakeProfileRepo struct {
	mu         sync.Mutex
	profiles   map[uuid.UUID]*entity.StrengthProfile
	failUpsert error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*entity.StrengthProfile)}
}

func (r *fakeProfileRepo) Upsert(_ context.Context, profile *entity.StrengthProfile) error {
	if r.failUpsert != nil {
		return r.failUpsert
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *profile
	r.profiles[profile.UserId] = &clone
	return nil
}

func (r *fakeProfileRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.StrengthProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProfileRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, userID)
	return nil
}

type fakeReminderRepo struct {
	mu       sync.Mutex
	settings map[uuid.UUID]*entity.ReminderSetting
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{settings: make(map[uuid.UUID]*entity.ReminderSetting)}
}

func (r *fakeReminderRepo) Upsert(_ context.Context, setting *entity.ReminderSetting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *setting
	r.settings[setting.UserId] = &clone
	return nil
}

func (r *fakeReminderRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.ReminderSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.settings[userID]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *fakeReminderRepo) FindAllActive(_ context.Context) ([]*entity.ReminderSetting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ReminderSetting
	for _, s := range r.settings {
		if s.Active {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeReminderRepo) DeleteByUser(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.settings, userID)
	return nil
}

// fakeUnitOfWork hands out the shared in-memory repositories. Begin, Commit
// and Rollback only count invocations; the fakes have no transactions.
type fakeUnitOfWork struct {
	userRepo     *fakeUserRepo
	answerRepo   *fakeAnswerRepo
	profileRepo  *fakeProfileRepo
	reminderRepo *fakeReminderRepo

	begun      int
	committed  int
	rolledBack int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		userRepo:     &fakeUserRepo{},
		answerRepo:   &fakeAnswerRepo{},
		profileRepo:  newFakeProfileRepo(),
		reminderRepo: newFakeReminderRepo(),
	}
}

func (u *fakeUnitOfWork) Begin(context.Context) error { u.begun++; return nil }
func (u *fakeUnitOfWork) Commit() error               { u.committed++; return nil }
func (u *fakeUnitOfWork) Rollback() error             { u.rolledBack++; return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return u.userRepo }
func (u *fakeUnitOfWork) AnswerRepository() contract.AnswerRepository {
	return u.answerRepo
}
func (u *fakeUnitOfWork) StrengthProfileRepository() contract.StrengthProfileRepository {
	return u.profileRepo
}
func (u *fakeUnitOfWork) ReminderSettingRepository() contract.ReminderSettingRepository {
	return u.reminderRepo
}

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeNarrative struct {
	text  *string
	delay time.Duration
	calls int
}

func (n *fakeNarrative) Compose(ctx context.Context, _ string, _ scoring.Result, _ map[string]string) *string {
	n.calls++
	if n.delay > 0 {
		select {
		case <-time.After(n.delay):
		case <-ctx.Done():
			return nil
		}
	}
	return n.text
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
	fail   error
}

func (p *fakePublisher) Publish(_ context.Context, evt events.Event) error {
	if p.fail != nil {
		return p.fail
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

type delivery struct {
	chatID string
	text   string
}

type fakeDispatcher struct {
	mu         sync.Mutex
	deliveries []delivery
	fail       error
}

func (d *fakeDispatcher) Deliver(_ context.Context, chatID, text string) error {
	if d.fail != nil {
		return d.fail
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deliveries = append(d.deliveries, delivery{chatID: chatID, text: text})
	return nil
}

type registration struct {
	timeOfDay string
	weekdays  []string
	cb        scheduler.Callback
}

type fakeRegistry struct {
	mu        sync.Mutex
	triggers  map[string]registration
	registers int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{triggers: make(map[string]registration)}
}

func (r *fakeRegistry) Register(chatID, timeOfDay string, weekdays []string, cb scheduler.Callback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registers++
	r.triggers[chatID] = registration{timeOfDay: timeOfDay, weekdays: weekdays, cb: cb}
	return nil
}

func (r *fakeRegistry) Unregister(chatID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.triggers, chatID)
}

func (r *fakeRegistry) IsRegistered(chatID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.triggers[chatID]
	return ok
}

func (r *fakeRegistry) Start() {}
func (r *fakeRegistry) Stop()  {}
