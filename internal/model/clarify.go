package model

// ClarifySource tags how a clarification reply was produced.
type ClarifySource string

const (
	ClarifyRemote   ClarifySource = "remote"
	ClarifyFallback ClarifySource = "fallback"
	ClarifyCached   ClarifySource = "cached"
)

// ClarifyReply is the outcome of a clarification lookup: literal remote text
// or a localization key, never both.
type ClarifyReply struct {
	Text    string        `json:"text,omitempty"`
	TextKey string        `json:"textKey,omitempty"`
	Source  ClarifySource `json:"-"`
}
