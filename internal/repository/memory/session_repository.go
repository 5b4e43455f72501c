package memory

import (
	"time"

	"strength-coach-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps survey sessions in process memory only. Abandoned
// attempts expire on their own; a restart of the process drops them all,
// which is fine because start() wipes leftover answers anyway.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// A survey takes minutes; 24h of idle time is more than an abandoned
	// attempt deserves. Expired entries are purged hourly.
	c := cache.New(24*time.Hour, 1*time.Hour)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *store.SurveySession) {
	r.cache.Set(session.ChatID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(chatID string) (*store.SurveySession, bool) {
	if x, found := r.cache.Get(chatID); found {
		return x.(*store.SurveySession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(chatID string) {
	r.cache.Delete(chatID)
}
