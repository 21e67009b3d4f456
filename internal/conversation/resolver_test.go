package conversation

import (
	"mammacheck/internal/model"
	"testing"
)

func nodeID(n model.RenderableNode) string {
	switch v := n.(type) {
	case model.AssistantMessage:
		return v.ID
	case model.Question:
		return v.ID
	}
	return ""
}

func resolvedIDs(nodes []model.ConversationNode, answers model.AnswerMap) []string {
	resolved := Resolve(nodes, answers)
	ids := make([]string, 0, len(resolved))
	for _, n := range resolved {
		ids = append(ids, nodeID(n))
	}
	return ids
}

func testForest() []model.ConversationNode {
	return []model.ConversationNode{
		model.AssistantMessage{ID: "a", TextKey: "t.a"},
		model.Question{ID: "b", TextKey: "t.b", Options: []model.Option{
			{Value: "yes", LabelKey: "common.yes"},
			{Value: "no", LabelKey: "common.no"},
		}},
		model.Conditional{DependsOn: "b", ShowWhen: []string{"yes"}, Children: []model.ConversationNode{
			model.AssistantMessage{ID: "c", TextKey: "t.c"},
			model.Conditional{DependsOn: "b", ShowWhen: []string{"yes"}, Children: []model.ConversationNode{
				model.AssistantMessage{ID: "d", TextKey: "t.d"},
			}},
		}},
		model.AssistantMessage{ID: "e", TextKey: "t.e"},
	}
}

func TestResolveSplicesSatisfiedBranches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		answers model.AnswerMap
		want    []string
	}{
		{"no answers", model.AnswerMap{}, []string{"a", "b", "e"}},
		{"branch taken", model.AnswerMap{"b": "yes"}, []string{"a", "b", "c", "d", "e"}},
		{"branch skipped", model.AnswerMap{"b": "no"}, []string{"a", "b", "e"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolvedIDs(testForest(), tc.answers)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestResolveDropsUnknownDependsOn(t *testing.T) {
	t.Parallel()

	nodes := []model.ConversationNode{
		model.AssistantMessage{ID: "a", TextKey: "t.a"},
		model.Conditional{DependsOn: "ghost", ShowWhen: []string{"yes"}, Children: []model.ConversationNode{
			model.AssistantMessage{ID: "x", TextKey: "t.x"},
		}},
	}

	got := resolvedIDs(nodes, model.AnswerMap{"other": "yes"})
	if len(got) != 1 || got[0] != "a" {
		t.Fatalf("got %v, want [a]", got)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	answers := model.AnswerMap{"b": "yes"}
	once := Resolve(testForest(), answers)

	again := make([]model.ConversationNode, 0, len(once))
	for _, n := range once {
		again = append(again, n)
	}
	twice := Resolve(again, answers)

	if len(once) != len(twice) {
		t.Fatalf("resolving resolved output changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if nodeID(once[i]) != nodeID(twice[i]) {
			t.Fatalf("node %d: %q vs %q", i, nodeID(once[i]), nodeID(twice[i]))
		}
	}
}

func TestPopFirstMatchesResolve(t *testing.T) {
	t.Parallel()

	answerSets := []model.AnswerMap{
		{},
		{"b": "yes"},
		{"b": "no"},
	}

	for _, answers := range answerSets {
		want := resolvedIDs(testForest(), answers)

		var got []string
		queue := testForest()
		for {
			head, rest, ok := popFirst(queue, answers)
			if !ok {
				break
			}
			got = append(got, nodeID(head))
			queue = rest
		}

		if len(got) != len(want) {
			t.Fatalf("answers %v: popFirst walk %v, Resolve %v", answers, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("answers %v: popFirst walk %v, Resolve %v", answers, got, want)
			}
		}
	}
}
