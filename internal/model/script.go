package model

// ConversationNode is one element of a step script. The concrete types are
// AssistantMessage, Question and Conditional; the interface is sealed so a
// type switch over nodes covers every case.
type ConversationNode interface {
	conversationNode()
}

// RenderableNode is the subset of nodes that survives resolution and can be
// shown to the user: AssistantMessage or Question, never Conditional.
type RenderableNode interface {
	ConversationNode
	renderableNode()
}

// AssistantMessage is a scripted assistant line revealed after a typing delay.
type AssistantMessage struct {
	ID      string `json:"id"`
	TextKey string `json:"textKey"`
	DelayMs int    `json:"delayMs,omitempty"` // Overrides the default typing delay when > 0
}

// Option is one quick-reply choice attached to a Question.
type Option struct {
	Value     string `json:"value"`
	LabelKey  string `json:"labelKey"`
	IsConcern bool   `json:"-"` // Scoring detail, never sent to clients
}

// Question pauses the conversation until the user picks one of its options.
type Question struct {
	ID      string   `json:"id"`
	TextKey string   `json:"textKey"`
	Options []Option `json:"options"`
	Weight  int      `json:"-"` // Risk contribution when a concern option is chosen
}

// Conditional expands to its children when the recorded answer for DependsOn
// is one of ShowWhen. It is structural only and is never rendered itself.
// DependsOn must name a question that appears earlier in the same script.
type Conditional struct {
	DependsOn string
	ShowWhen  []string
	Children  []ConversationNode
}

func (AssistantMessage) conversationNode() {}
func (Question) conversationNode()         {}
func (Conditional) conversationNode()      {}

func (AssistantMessage) renderableNode() {}
func (Question) renderableNode()         {}

// Script is the static ordered node forest for one self-check step.
type Script struct {
	StepID   string
	TitleKey string
	Nodes    []ConversationNode
}

// AnswerMap records the chosen option value per answered question.
type AnswerMap map[string]string

// Clone returns an independent copy of the map.
func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
