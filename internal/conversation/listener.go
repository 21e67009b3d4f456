package conversation

import "mammacheck/internal/model"

// Listener receives transcript and lifecycle events as a session advances.
// Methods are invoked with the session lock held, so implementations must
// return quickly and must not call back into the session synchronously.
type Listener interface {
	BubbleAppended(b model.ChatBubble)
	TypingChanged(active bool)
	OptionsPresented(q model.Question)
	StateChanged(state State)
	// StepCompleted delivers the finished step's answers as an owned copy.
	StepCompleted(stepID string, answers model.AnswerMap)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) BubbleAppended(model.ChatBubble)       {}
func (NopListener) TypingChanged(bool)                    {}
func (NopListener) OptionsPresented(model.Question)       {}
func (NopListener) StateChanged(State)                    {}
func (NopListener) StepCompleted(string, model.AnswerMap) {}
