// Package scheduler owns the recurring reminder triggers. The cron entries
// here are a pure in-process cache: the durable source of truth is the
// reminder-settings store, and the registry is rebuilt from it at startup.
package scheduler

import (
	"sync"
	"time"

	"strength-coach-be/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Callback runs when a user's trigger fires.
type Callback func(chatID string)

type Registry interface {
	Register(chatID, timeOfDay string, weekdays []string, cb Callback) error
	Unregister(chatID string)
	IsRegistered(chatID string) bool
	Start()
	Stop()
}

type CronRegistry struct {
	cron    *cron.Cron
	logger  logger.ILogger
	mu      sync.Mutex
	entries map[string]cron.EntryID
}

var _ Registry = &CronRegistry{}

func NewCronRegistry(loc *time.Location, log logger.ILogger) *CronRegistry {
	return &CronRegistry{
		cron:    cron.New(cron.WithLocation(loc)),
		logger:  log,
		entries: make(map[string]cron.EntryID),
	}
}

// Register installs the user's trigger, replacing any existing one. The
// remove and the add happen under one lock, so there is never a moment with
// two live triggers for the same user.
func (r *CronRegistry) Register(chatID, timeOfDay string, weekdays []string, cb Callback) error {
	spec, err := cronSpec(timeOfDay, weekdays)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.entries[chatID]; ok {
		r.cron.Remove(id)
		delete(r.entries, chatID)
	}

	id, err := r.cron.AddFunc(spec, func() {
		cb(chatID)
	})
	if err != nil {
		return err
	}
	r.entries[chatID] = id

	r.logger.Info("scheduler", "trigger registered", map[string]interface{}{
		"chat_id": chatID,
		"spec":    spec,
	})
	return nil
}

// Unregister removes the user's trigger. Calling it for an unknown user is
// a no-op, matching disable-when-disabled semantics.
func (r *CronRegistry) Unregister(chatID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.entries[chatID]; ok {
		r.cron.Remove(id)
		delete(r.entries, chatID)
		r.logger.Info("scheduler", "trigger removed", map[string]interface{}{
			"chat_id": chatID,
		})
	}
}

func (r *CronRegistry) IsRegistered(chatID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[chatID]
	return ok
}

func (r *CronRegistry) Start() {
	r.cron.Start()
}

// Stop halts trigger evaluation. Triggers missed while stopped are gone;
// there is no catch-up queue.
func (r *CronRegistry) Stop() {
	<-r.cron.Stop().Done()
}
