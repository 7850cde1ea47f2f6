package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/go-trip-itinerary/app/observability/metrics"
	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

// Store keeps sessions in memory and drops them after ttl without access.
type Store struct {
	logger  *slog.Logger
	cache   *cache.Cache
	metrics *metrics.AppMetrics
	now     func() time.Time
}

func NewStore(logger *slog.Logger, ttl, cleanupInterval time.Duration, m *metrics.AppMetrics) *Store {
	s := &Store{
		logger:  logger,
		cache:   cache.New(ttl, cleanupInterval),
		metrics: m,
		now:     time.Now,
	}
	s.cache.OnEvicted(func(id string, _ interface{}) {
		s.logger.Debug("Session evicted", slog.String("session_id", id))
		if s.metrics != nil {
			s.metrics.ActiveSessions.Add(context.Background(), -1)
		}
	})
	return s
}

// Create starts an empty session with a random id.
func (s *Store) Create(ctx context.Context) *Session {
	sess := newSession(uuid.NewString(), s.now)
	s.cache.Set(sess.ID, sess, cache.DefaultExpiration)
	if s.metrics != nil {
		s.metrics.ActiveSessions.Add(ctx, 1)
	}
	s.logger.DebugContext(ctx, "Session created", slog.String("session_id", sess.ID))
	return sess
}

// Get returns the session and extends its lifetime.
func (s *Store) Get(id string) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, types.ErrSessionNotFound
	}
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, types.ErrSessionNotFound
	}
	sess := v.(*Session)
	if !s.refresh(id, sess) {
		return nil, types.ErrSessionNotFound
	}
	return sess, nil
}

// refresh restarts the session's expiry. It fails when the janitor removed the
// session after it was read, so an evicted session is never stored again.
func (s *Store) refresh(id string, sess *Session) bool {
	return s.cache.Replace(id, sess, cache.DefaultExpiration) == nil
}

func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

func (s *Store) Count() int {
	return s.cache.ItemCount()
}
