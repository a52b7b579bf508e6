package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/llm"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/sentiment"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/triage"
	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/twin"
)

// ErrEmptyIdentity rejects a login with a missing name or vehicle
// registration. The state machine does not transition on rejection.
var ErrEmptyIdentity = errors.New("login requires a non-empty name and vehicle registration")

// ErrNotAuthenticated is returned when turn processing is attempted on an
// anonymous session.
var ErrNotAuthenticated = errors.New("session is not authenticated")

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message of the conversation. Immutable once appended.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is one customer interaction context. It exclusively owns its turns,
// sentiment history and vehicle snapshot; a session is processed strictly
// sequentially, one full turn pipeline at a time.
type Session struct {
	ID string

	CustomerName string
	VehicleReg   string
	Vehicle      twin.VehicleState

	Turns            []Turn
	SentimentHistory []sentiment.Reading
	CurrentIssue     *triage.Classification
	Escalated        bool

	authenticated bool
}

func New() *Session {
	return &Session{ID: uuid.NewString()}
}

func (s *Session) Authenticated() bool {
	return s.authenticated
}

// Login binds a customer identity and vehicle snapshot to the session. Both
// identifiers must be non-empty; on rejection no state changes.
func (s *Session) Login(name, vehicleReg string, state twin.VehicleState) error {
	if name == "" || vehicleReg == "" {
		return ErrEmptyIdentity
	}
	s.CustomerName = name
	s.VehicleReg = vehicleReg
	s.Vehicle = state
	s.authenticated = true
	return nil
}

// Logout discards the identity binding along with the conversational state:
// turns, sentiment history, current issue and the escalation flag all reset.
// The session id survives.
func (s *Session) Logout() {
	s.CustomerName = ""
	s.VehicleReg = ""
	s.Vehicle = twin.VehicleState{}
	s.Turns = nil
	s.SentimentHistory = nil
	s.CurrentIssue = nil
	s.Escalated = false
	s.authenticated = false
}

// FrustrationScore is the score of the most recent sentiment reading, 0 when
// no reading exists yet.
func (s *Session) FrustrationScore() int {
	if len(s.SentimentHistory) == 0 {
		return 0
	}
	return s.SentimentHistory[len(s.SentimentHistory)-1].FrustrationScore
}

// historyMessages converts the turn sequence to generation-call messages.
func (s *Session) historyMessages() []llm.Message {
	out := make([]llm.Message, 0, len(s.Turns))
	for _, t := range s.Turns {
		out = append(out, llm.Message{Role: string(t.Role), Content: t.Content})
	}
	return out
}
