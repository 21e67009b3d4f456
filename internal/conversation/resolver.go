package conversation

import "mammacheck/internal/model"

// Resolve expands conditionals against the recorded answers into the flat
// ordered sequence of renderable nodes. It is pure: the same nodes and
// answers always yield the same sequence, so callers can re-resolve after
// every recorded answer.
func Resolve(nodes []model.ConversationNode, answers model.AnswerMap) []model.RenderableNode {
	out := make([]model.RenderableNode, 0, len(nodes))
	for _, n := range nodes {
		switch node := n.(type) {
		case model.AssistantMessage:
			out = append(out, node)
		case model.Question:
			out = append(out, node)
		case model.Conditional:
			if conditionMet(node, answers) {
				out = append(out, Resolve(node.Children, answers)...)
			}
		}
	}
	return out
}

// popFirst returns the first renderable node along with the unconsumed
// remainder. Children of a satisfied conditional are spliced to the front of
// the remainder unresolved, so conditionals deeper in the queue still see
// answers recorded later. An unsatisfied conditional is discarded: its
// question was either answered differently or sat on a branch that was never
// shown, so the condition cannot become true afterwards.
func popFirst(nodes []model.ConversationNode, answers model.AnswerMap) (model.RenderableNode, []model.ConversationNode, bool) {
	rest := nodes
	for len(rest) > 0 {
		head, tail := rest[0], rest[1:]
		switch node := head.(type) {
		case model.AssistantMessage:
			return node, tail, true
		case model.Question:
			return node, tail, true
		case model.Conditional:
			if !conditionMet(node, answers) {
				rest = tail
				continue
			}
			merged := make([]model.ConversationNode, 0, len(node.Children)+len(tail))
			merged = append(merged, node.Children...)
			merged = append(merged, tail...)
			rest = merged
		}
	}
	return nil, nil, false
}

// conditionMet reports whether the answer recorded for the conditional's
// question is one of its trigger values. Unknown question ids never match.
func conditionMet(c model.Conditional, answers model.AnswerMap) bool {
	v, ok := answers[c.DependsOn]
	if !ok {
		return false
	}
	for _, w := range c.ShowWhen {
		if w == v {
			return true
		}
	}
	return false
}
