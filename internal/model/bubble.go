package model

import "time"

// BubbleKind identifies who a transcript bubble belongs to.
type BubbleKind string

const (
	BubbleAssistant BubbleKind = "assistant"
	BubbleUser      BubbleKind = "user"
	BubbleTyping    BubbleKind = "typing" // Ephemeral indicator state, never stored
)

// ChatBubble is one append-only transcript entry. Scripted bubbles carry a
// TextKey resolved by the client's locale bundle; free-text bubbles carry
// literal Text.
type ChatBubble struct {
	ID          string     `json:"id"`
	Kind        BubbleKind `json:"kind"`
	TextKey     string     `json:"textKey,omitempty"`
	Text        string     `json:"text,omitempty"`
	QuestionID  string     `json:"questionId,omitempty"`
	AnswerValue string     `json:"answerValue,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
}
