package risk

import (
	"mammacheck/internal/model"
	"mammacheck/internal/script"
	"testing"
)

func TestTierBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		score    int
		concerns int
		want     model.RiskLevel
	}{
		{"zero", 0, 0, model.RiskLow},
		{"score one no concerns", 1, 0, model.RiskLow},
		{"single concern", 2, 1, model.RiskModerate},
		{"score two alone", 2, 0, model.RiskModerate},
		{"score four two concerns", 4, 2, model.RiskModerate},
		{"score five alone", 5, 0, model.RiskHigh},
		{"three weak concerns", 1, 3, model.RiskHigh},
		{"both high", 9, 4, model.RiskHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Tier(tc.score, tc.concerns); got != tc.want {
				t.Fatalf("Tier(%d, %d) = %s, want %s", tc.score, tc.concerns, got, tc.want)
			}
		})
	}
}

func loadScripts(t *testing.T) []model.Script {
	t.Helper()
	reg, err := script.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg.All()
}

func TestAssessNoAnswersIsLow(t *testing.T) {
	t.Parallel()

	result := Assess(loadScripts(t), model.AnswerMap{})
	if result.RiskLevel != model.RiskLow {
		t.Fatalf("level = %s, want low", result.RiskLevel)
	}
	if result.Score != 0 {
		t.Fatalf("score = %d, want 0", result.Score)
	}
	if result.MaxScore == 0 {
		t.Fatal("maxScore must count every question, including hidden branches")
	}
	if len(result.Concerns) != 0 {
		t.Fatalf("concerns = %v", result.Concerns)
	}
	if result.RecommendationKey != "risk.low.recommendation" {
		t.Fatalf("recommendation = %q", result.RecommendationKey)
	}
}

func TestAssessMaxScoreIncludesHiddenBranches(t *testing.T) {
	t.Parallel()

	// The branch questions carry weights 2, 3 and 4; a maxScore without
	// them would stop being comparable across paths.
	withAnswers := Assess(loadScripts(t), model.AnswerMap{"visual_q_skin_changes": "no"})
	without := Assess(loadScripts(t), model.AnswerMap{})
	if withAnswers.MaxScore != without.MaxScore {
		t.Fatalf("maxScore depends on answers: %d vs %d", withAnswers.MaxScore, without.MaxScore)
	}
}

func TestAssessSingleStrongFinding(t *testing.T) {
	t.Parallel()

	// A lump alone outweighs everything else.
	result := Assess(loadScripts(t), model.AnswerMap{"palpation_q_lump": "yes"})
	if result.RiskLevel != model.RiskHigh {
		t.Fatalf("level = %s, want high", result.RiskLevel)
	}
	if result.Score != 5 {
		t.Fatalf("score = %d, want 5", result.Score)
	}
	if len(result.Concerns) != 1 || result.Concerns[0] != "palpation_q_lump" {
		t.Fatalf("concerns = %v", result.Concerns)
	}
	if result.RecommendationKey != "risk.high.recommendation" {
		t.Fatalf("recommendation = %q", result.RecommendationKey)
	}
}

func TestAssessModerateFinding(t *testing.T) {
	t.Parallel()

	result := Assess(loadScripts(t), model.AnswerMap{"palpation_q_pain": "yes"})
	if result.RiskLevel != model.RiskModerate {
		t.Fatalf("level = %s, want moderate", result.RiskLevel)
	}
	if result.Score != 2 || len(result.Concerns) != 1 {
		t.Fatalf("score = %d, concerns = %v", result.Score, result.Concerns)
	}
}

func TestAssessAllConcernsHitsMaxScore(t *testing.T) {
	t.Parallel()

	answers := model.AnswerMap{
		"visual_q_skin_changes":    "yes",
		"visual_q_skin_type":       "dimpling",
		"visual_q_symmetry":        "yes",
		"palpation_q_lump":         "yes",
		"palpation_q_lump_mobile":  "fixed",
		"palpation_q_pain":         "yes",
		"palpation_q_armpit":       "yes",
		"nipple_q_discharge":       "yes",
		"nipple_q_discharge_color": "bloody",
		"nipple_q_inversion":       "yes",
	}

	result := Assess(loadScripts(t), answers)
	if result.RiskLevel != model.RiskHigh {
		t.Fatalf("level = %s, want high", result.RiskLevel)
	}
	if result.Score != result.MaxScore {
		t.Fatalf("score = %d, maxScore = %d", result.Score, result.MaxScore)
	}
	if len(result.Concerns) != len(answers) {
		t.Fatalf("concerns = %v, want one per answer", result.Concerns)
	}
}

func TestAssessNonConcernAnswersDoNotScore(t *testing.T) {
	t.Parallel()

	answers := model.AnswerMap{
		"visual_q_skin_changes": "unsure",
		"palpation_q_lump":      "no",
		"nipple_q_discharge":    "no",
	}

	result := Assess(loadScripts(t), answers)
	if result.Score != 0 || len(result.Concerns) != 0 {
		t.Fatalf("score = %d, concerns = %v", result.Score, result.Concerns)
	}
	if result.RiskLevel != model.RiskLow {
		t.Fatalf("level = %s, want low", result.RiskLevel)
	}
}
