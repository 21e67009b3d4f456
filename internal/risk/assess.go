package risk

import "mammacheck/internal/model"

// Tier thresholds, evaluated high before moderate. They are absolute rather
// than normalized against the maximum score: one strong flag always lands in
// the same tier regardless of how many normal answers surround it.
const (
	highScore        = 5
	highConcerns     = 3
	moderateScore    = 2
	moderateConcerns = 1
)

// Tier returns the risk level for a score and concern count.
func Tier(score, concernCount int) model.RiskLevel {
	switch {
	case score >= highScore || concernCount >= highConcerns:
		return model.RiskHigh
	case score >= moderateScore || concernCount >= moderateConcerns:
		return model.RiskModerate
	default:
		return model.RiskLow
	}
}

// Assess scores the collected answers against the static scripts. It is
// pure and total: missing answers simply do not contribute, and MaxScore
// sums every question weight whether or not the question was shown, so
// score/maxScore is comparable across different conversation paths.
func Assess(scripts []model.Script, answers model.AnswerMap) model.RiskResult {
	result := model.RiskResult{Concerns: []string{}}
	for _, s := range scripts {
		walk(s.Nodes, answers, &result)
	}

	result.RiskLevel = Tier(result.Score, len(result.Concerns))
	switch result.RiskLevel {
	case model.RiskHigh:
		result.RecommendationKey = "risk.high.recommendation"
		result.MessageKey = "risk.high.message"
	case model.RiskModerate:
		result.RecommendationKey = "risk.moderate.recommendation"
		result.MessageKey = "risk.moderate.message"
	default:
		result.RecommendationKey = "risk.low.recommendation"
		result.MessageKey = "risk.low.message"
	}
	return result
}

// walk descends through every node unconditionally, including conditional
// branches that were never revealed.
func walk(nodes []model.ConversationNode, answers model.AnswerMap, result *model.RiskResult) {
	for _, n := range nodes {
		switch node := n.(type) {
		case model.AssistantMessage:
		case model.Question:
			result.MaxScore += node.Weight
			value, ok := answers[node.ID]
			if !ok {
				continue
			}
			for _, opt := range node.Options {
				if opt.Value == value && opt.IsConcern {
					result.Score += node.Weight
					result.Concerns = append(result.Concerns, node.ID)
					break
				}
			}
		case model.Conditional:
			walk(node.Children, answers, result)
		}
	}
}
