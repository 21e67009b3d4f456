package model

import "time"

// SessionMeta is the redis-cached wrapper state for an API session. The
// conversation itself lives in process memory only.
type SessionMeta struct {
	ID         string    `json:"id"`
	Language   string    `json:"language"`
	CreatedAt  time.Time `json:"createdAt"`
	LastStepID string    `json:"lastStepId,omitempty"`
}

// StepInfo lists one self-check step for clients.
type StepInfo struct {
	StepID   string `json:"stepId"`
	TitleKey string `json:"titleKey"`
}

// SessionCreated is returned when a new anonymous session is opened.
type SessionCreated struct {
	SessionID string     `json:"sessionId"`
	Token     string     `json:"token"`
	Steps     []StepInfo `json:"steps"`
}

// ActiveQuestion is the question a session is waiting on, if any.
type ActiveQuestion struct {
	QuestionID string   `json:"questionId"`
	TextKey    string   `json:"textKey"`
	Options    []Option `json:"options"`
}

// TranscriptView is the snapshot served to reconnecting clients.
type TranscriptView struct {
	SessionID      string          `json:"sessionId"`
	StepID         string          `json:"stepId,omitempty"`
	State          string          `json:"state"`
	Bubbles        []ChatBubble    `json:"bubbles"`
	ActiveQuestion *ActiveQuestion `json:"activeQuestion,omitempty"`
}
