package session

import (
	"sync"
	"time"

	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

// Token ties an in-flight request to the plan it was started for. Results carrying
// a token from before the latest reset or plan replacement are stale.
type Token struct {
	epoch uint64
}

// Session is one user's trip state: the current plan, the chat transcript and a
// busy flag per request cycle. All methods are safe for concurrent use.
type Session struct {
	ID string

	mu         sync.Mutex
	plan       *types.TripPlan
	transcript []types.ChatMessage
	generating bool
	chatting   bool
	epoch      uint64
	createdAt  time.Time
	updatedAt  time.Time
	now        func() time.Time
}

func newSession(id string, now func() time.Time) *Session {
	t := now()
	return &Session{ID: id, createdAt: t, updatedAt: t, now: now}
}

// Snapshot is a copy of the session state at one point in time.
type Snapshot struct {
	ID         string              `json:"session_id"`
	Plan       *types.TripPlan     `json:"plan,omitempty"`
	HasPlan    bool                `json:"has_plan"`
	Transcript []types.ChatMessage `json:"transcript"`
	Generating bool                `json:"generating"`
	Chatting   bool                `json:"chatting"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func (s *Session) touch() { s.updatedAt = s.now() }

// BeginGeneration moves the itinerary cycle to in-flight.
func (s *Session) BeginGeneration() (Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generating {
		return Token{}, types.ErrBusy
	}
	s.generating = true
	s.touch()
	return Token{epoch: s.epoch}, nil
}

// FinishGeneration installs plan as the current plan and starts a fresh transcript.
// A chat still running for the old plan becomes stale and no longer blocks new ones.
// A token from before a reset gets ErrStaleResult and leaves the session untouched.
func (s *Session) FinishGeneration(tok Token, plan *types.TripPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.epoch != s.epoch {
		return types.ErrStaleResult
	}
	s.epoch++
	s.plan = plan
	s.transcript = nil
	s.generating = false
	s.chatting = false
	s.touch()
	return nil
}

// AbortGeneration returns the itinerary cycle to idle after a failure.
func (s *Session) AbortGeneration(tok Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.epoch == s.epoch {
		s.generating = false
		s.touch()
	}
}

// BeginChat moves the chat cycle to in-flight and returns the plan and a copy of the
// transcript to send along with the new message.
func (s *Session) BeginChat() (Token, *types.TripPlan, []types.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.plan == nil {
		return Token{}, nil, nil, types.ErrNoPlan
	}
	if s.chatting {
		return Token{}, nil, nil, types.ErrBusy
	}
	s.chatting = true
	s.touch()
	return Token{epoch: s.epoch}, s.plan, append([]types.ChatMessage(nil), s.transcript...), nil
}

// FinishChat appends the user's message and the reply, unless the plan was reset or
// replaced meanwhile.
func (s *Session) FinishChat(tok Token, userText, reply string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.epoch != s.epoch {
		return types.ErrStaleResult
	}
	s.transcript = append(s.transcript,
		types.ChatMessage{Role: types.ChatRoleUser, Text: userText},
		types.ChatMessage{Role: types.ChatRoleModel, Text: reply},
	)
	s.chatting = false
	s.touch()
	return nil
}

// Reset drops the plan and transcript. Requests still in flight become stale and
// both cycles are idle again.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.plan = nil
	s.transcript = nil
	s.generating = false
	s.chatting = false
	s.touch()
}

func (s *Session) Plan() *types.TripPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan
}

func (s *Session) Transcript() []types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.ChatMessage{}, s.transcript...)
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:         s.ID,
		Plan:       s.plan,
		HasPlan:    s.plan != nil,
		Transcript: append([]types.ChatMessage{}, s.transcript...),
		Generating: s.generating,
		Chatting:   s.chatting,
		CreatedAt:  s.createdAt,
		UpdatedAt:  s.updatedAt,
	}
}
