package clarify

import "strings"

// GenericKey is the canned answer used when no step entry matches.
const GenericKey = "clarify.generic"

// fallbackEntry maps trigger keywords to a canned localized answer.
type fallbackEntry struct {
	keywords []string
	key      string
}

// stepFallbacks holds the deterministic per-step answer tables used when the
// completion provider is unavailable. Matching is a lowercase substring
// check; the first matching entry wins.
var stepFallbacks = map[string][]fallbackEntry{
	"visual_examination": {
		{keywords: []string{"mirror", "light", "see", "look"}, key: "clarify.visual.mirror"},
		{keywords: []string{"arm", "raise", "posture", "stand"}, key: "clarify.visual.posture"},
		{keywords: []string{"dimple", "skin", "redness", "rash", "texture", "peel"}, key: "clarify.visual.skin"},
		{keywords: []string{"size", "shape", "symmetr", "bigger", "smaller"}, key: "clarify.visual.symmetry"},
	},
	"palpation": {
		{keywords: []string{"finger", "pad", "press", "pressure", "hard", "firm"}, key: "clarify.palpation.pressure"},
		{keywords: []string{"circle", "circular", "pattern", "motion", "cover", "where"}, key: "clarify.palpation.pattern"},
		{keywords: []string{"lie", "lying", "down", "shower", "position"}, key: "clarify.palpation.position"},
		{keywords: []string{"lump", "bump", "thick", "knot", "hurt", "pain"}, key: "clarify.palpation.lump"},
	},
	"nipple_check": {
		{keywords: []string{"squeeze", "press", "gentle", "how"}, key: "clarify.nipple.squeeze"},
		{keywords: []string{"discharge", "fluid", "liquid", "blood", "leak"}, key: "clarify.nipple.discharge"},
		{keywords: []string{"inverted", "inward", "shape", "turn"}, key: "clarify.nipple.shape"},
	},
}

// fallbackKey returns the canned answer key for a free-text question on the
// given step. Unknown steps and unmatched questions get the generic key.
func fallbackKey(stepID, freeText string) string {
	text := strings.ToLower(freeText)
	for _, entry := range stepFallbacks[stepID] {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.key
			}
		}
	}
	return GenericKey
}
