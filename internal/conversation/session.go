package conversation

import (
	"context"
	"mammacheck/internal/completion"
	"mammacheck/internal/model"
	"mammacheck/internal/script"
	"sync"
	"time"

	"github.com/google/uuid"
)

// State identifies where a session is in its lifecycle.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateAwaiting State = "awaiting_answer"
	StateComplete State = "complete"
)

// Delays groups the scripted pacing of the conversation.
type Delays struct {
	Initial     time.Duration // Before the first node after Initialize
	Message     time.Duration // Typing before a message without its own delay
	Question    time.Duration // Typing before a question
	Settle      time.Duration // After a message, before the next node
	AnswerPause time.Duration // After an answer, before the next node
}

// DefaultDelays returns the production pacing.
func DefaultDelays() Delays {
	return Delays{
		Initial:     300 * time.Millisecond,
		Message:     500 * time.Millisecond,
		Question:    400 * time.Millisecond,
		Settle:      200 * time.Millisecond,
		AnswerPause: 300 * time.Millisecond,
	}
}

// Responder answers free-text side questions about the current step. It must
// always return a usable reply; failures are absorbed inside it.
type Responder interface {
	Clarify(ctx context.Context, freeText, languageCode, stepID string, history []completion.Message) model.ClarifyReply
}

// clarifyHistoryMax caps the prior exchange turns forwarded to the responder.
const clarifyHistoryMax = 8

// Session drives one self-check conversation: it walks a step script,
// paces reveals with timers, collects answers and keeps the transcript.
// All mutation is serialized by an internal mutex; timers carry a generation
// token so Reset and Initialize invalidate anything still pending.
type Session struct {
	id        string
	registry  script.Registry
	responder Responder
	listener  Listener
	delays    Delays

	// after schedules a continuation; swapped out in tests.
	after func(d time.Duration, fn func())

	mu         sync.Mutex
	gen        uint64
	state      State
	typing     bool
	stepID     string
	queue      []model.ConversationNode
	answers    model.AnswerMap
	transcript []model.ChatBubble
	active     *model.Question
	clarifyLog []completion.Message
}

// SessionOption configures optional collaborators on a Session.
type SessionOption func(*Session)

// WithListener streams session events to l.
func WithListener(l Listener) SessionOption {
	return func(s *Session) { s.listener = l }
}

// WithDelays overrides the pacing.
func WithDelays(d Delays) SessionOption {
	return func(s *Session) { s.delays = d }
}

// NewSession creates an idle session over the given script registry.
func NewSession(id string, registry script.Registry, responder Responder, opts ...SessionOption) *Session {
	s := &Session{
		id:        id,
		registry:  registry,
		responder: responder,
		listener:  NopListener{},
		delays:    DefaultDelays(),
		state:     StateIdle,
		answers:   make(model.AnswerMap),
	}
	s.after = func(d time.Duration, fn func()) { time.AfterFunc(d, fn) }
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Initialize loads the script for stepID, clears prior conversation state
// and starts revealing nodes after a short pause. Unknown step ids are a
// silent no-op so stale clients cannot wedge a session.
func (s *Session) Initialize(stepID string) {
	sc, ok := s.registry.Get(stepID)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.stepID = stepID
	s.queue = sc.Nodes
	s.answers = make(model.AnswerMap)
	s.transcript = nil
	s.active = nil
	s.clarifyLog = nil
	s.setTyping(false)
	s.setState(StateRunning)
	s.schedule(s.delays.Initial, s.advance)
}

// Reset returns the session to idle, clearing the transcript and answers.
// Pending timers from before the reset can never fire into the new state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.stepID = ""
	s.queue = nil
	s.answers = make(model.AnswerMap)
	s.transcript = nil
	s.active = nil
	s.clarifyLog = nil
	s.setTyping(false)
	s.setState(StateIdle)
}

// SubmitAnswer records the quick-reply answer for the active question and
// resumes the conversation. Calls outside awaiting_answer, or for any other
// question, are ignored without side effects.
func (s *Session) SubmitAnswer(questionID, value, labelKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAwaiting || s.active == nil || s.active.ID != questionID {
		return
	}

	s.answers[questionID] = value
	s.appendBubble(model.ChatBubble{
		Kind:        model.BubbleUser,
		TextKey:     labelKey,
		QuestionID:  questionID,
		AnswerValue: value,
	})
	s.active = nil
	s.setState(StateRunning)
	s.schedule(s.delays.AnswerPause, s.advance)
}

// Clarify answers a free-text side question on the same transcript. It works
// in any state and never fails: exactly one assistant bubble comes back, no
// matter how the responder fares. The responder runs outside the session
// lock so scripted reveals keep flowing while it thinks.
func (s *Session) Clarify(ctx context.Context, freeText, languageCode string) (model.ChatBubble, model.ClarifySource) {
	s.mu.Lock()
	stepID := s.stepID
	history := append([]completion.Message(nil), s.clarifyLog...)
	s.appendBubble(model.ChatBubble{Kind: model.BubbleUser, Text: freeText})
	s.setTyping(true)
	s.mu.Unlock()

	reply := s.responder.Clarify(ctx, freeText, languageCode, stepID, history)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.setTyping(false)
	bubble := s.appendBubble(model.ChatBubble{
		Kind:    model.BubbleAssistant,
		Text:    reply.Text,
		TextKey: reply.TextKey,
	})
	if reply.Text != "" {
		s.clarifyLog = append(s.clarifyLog,
			completion.Message{Role: completion.RoleUser, Content: freeText},
			completion.Message{Role: completion.RoleAssistant, Content: reply.Text},
		)
		if len(s.clarifyLog) > clarifyHistoryMax {
			s.clarifyLog = s.clarifyLog[len(s.clarifyLog)-clarifyHistoryMax:]
		}
	}
	return bubble, reply.Source
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// StepID returns the step the session is running, or "" when idle.
func (s *Session) StepID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepID
}

// Transcript returns a copy of the bubbles appended so far.
func (s *Session) Transcript() []model.ChatBubble {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ChatBubble, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Answers returns a copy of the answers recorded for the current step.
func (s *Session) Answers() model.AnswerMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answers.Clone()
}

// ActiveQuestion returns the question awaiting an answer, or nil.
func (s *Session) ActiveQuestion() *model.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil
	}
	q := *s.active
	return &q
}

// advance consumes the next renderable node from the queue, or completes the
// step when nothing is left. Must be called with the lock held.
func (s *Session) advance() {
	head, rest, ok := popFirst(s.queue, s.answers)
	if !ok {
		s.queue = nil
		s.setState(StateComplete)
		s.listener.StepCompleted(s.stepID, s.answers.Clone())
		return
	}
	s.queue = rest

	switch node := head.(type) {
	case model.AssistantMessage:
		delay := s.delays.Message
		if node.DelayMs > 0 {
			delay = time.Duration(node.DelayMs) * time.Millisecond
		}
		s.setTyping(true)
		s.schedule(delay, func() { s.revealMessage(node) })
	case model.Question:
		s.setTyping(true)
		s.schedule(s.delays.Question, func() { s.revealQuestion(node) })
	}
}

func (s *Session) revealMessage(node model.AssistantMessage) {
	s.setTyping(false)
	s.appendBubble(model.ChatBubble{Kind: model.BubbleAssistant, TextKey: node.TextKey})
	s.schedule(s.delays.Settle, s.advance)
}

func (s *Session) revealQuestion(node model.Question) {
	s.setTyping(false)
	s.appendBubble(model.ChatBubble{Kind: model.BubbleAssistant, TextKey: node.TextKey, QuestionID: node.ID})
	s.active = &node
	s.setState(StateAwaiting)
	s.listener.OptionsPresented(node)
}

// schedule runs fn on the session timeline after d unless the generation
// changes first. Must be called with the lock held.
func (s *Session) schedule(d time.Duration, fn func()) {
	gen := s.gen
	s.after(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen {
			return
		}
		fn()
	})
}

func (s *Session) appendBubble(b model.ChatBubble) model.ChatBubble {
	b.ID = uuid.New().String()
	b.Timestamp = time.Now()
	s.transcript = append(s.transcript, b)
	s.listener.BubbleAppended(b)
	return b
}

func (s *Session) setState(st State) {
	s.state = st
	s.listener.StateChanged(st)
}

func (s *Session) setTyping(active bool) {
	if s.typing == active {
		return
	}
	s.typing = active
	s.listener.TypingChanged(active)
}
