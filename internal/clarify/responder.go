package clarify

import (
	"context"
	"fmt"
	"log"
	"mammacheck/internal/completion"
	"mammacheck/internal/model"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const cacheSize = 256

// Disclaimer is the fixed closing sentence every remote reply must end with.
const Disclaimer = "This guidance is educational and is not a medical diagnosis; please discuss any concern with a healthcare professional."

// Responder produces clarification replies: remote completion when a
// provider is configured, deterministic keyword fallback otherwise. One
// responder is shared by all sessions; only questions asked with an empty
// history are memoized.
type Responder struct {
	client completion.Client
	cache  *lru.Cache[string, model.ClarifyReply]
}

// NewResponder creates a responder. client may be nil, in which case every
// reply comes from the fallback tables.
func NewResponder(client completion.Client) *Responder {
	cache, _ := lru.New[string, model.ClarifyReply](cacheSize)
	return &Responder{client: client, cache: cache}
}

// Clarify resolves one free-text question. It never fails: any remote
// problem degrades to the keyword fallback for the step.
func (r *Responder) Clarify(ctx context.Context, freeText, languageCode, stepID string, history []completion.Message) model.ClarifyReply {
	cacheKey := ""
	if len(history) == 0 {
		cacheKey = stepID + "|" + languageCode + "|" + normalize(freeText)
		if reply, ok := r.cache.Get(cacheKey); ok {
			reply.Source = model.ClarifyCached
			return reply
		}
	}

	if r.client != nil {
		text, err := r.client.Complete(ctx, systemPrompt(stepID, languageCode), history, freeText)
		if err == nil {
			text = strings.TrimSpace(text)
			if text != "" {
				reply := model.ClarifyReply{Text: text, Source: model.ClarifyRemote}
				if cacheKey != "" {
					r.cache.Add(cacheKey, reply)
				}
				return reply
			}
		} else {
			// Failure signal only; the question text stays out of the logs.
			log.Printf("clarify: completion failed for step %q: %v", stepID, err)
		}
	}

	return model.ClarifyReply{TextKey: fallbackKey(stepID, freeText), Source: model.ClarifyFallback}
}

func normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// languageNames maps supported UI language codes to the name used in the
// completion prompt.
var languageNames = map[string]string{
	"en": "English",
	"fr": "French",
	"ar": "Arabic",
}

var stepFocus = map[string]string{
	"visual_examination": "the visual examination: standing in front of a mirror and looking for changes in size, shape, skin or contour",
	"palpation":          "the palpation step: feeling the breast and armpit with the pads of the fingers in small circular motions",
	"nipple_check":       "the nipple check: gently examining each nipple for discharge or changes in shape",
}

func systemPrompt(stepID, languageCode string) string {
	focus, ok := stepFocus[stepID]
	if !ok {
		focus = "a guided breast self-examination"
	}
	lang, ok := languageNames[languageCode]
	if !ok {
		lang = "English"
	}
	return fmt.Sprintf(`You are the in-app guide of a breast self-examination companion. The user is currently on %s.
Explain technique and what to look for, in two or three short sentences. Keep a calm, reassuring tone.
Never diagnose, never estimate risk, never name a disease as likely.
Answer in %s.
End your reply with exactly this sentence: %q`, focus, lang, Disclaimer)
}
