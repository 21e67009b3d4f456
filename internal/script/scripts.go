package script

import "mammacheck/internal/model"

// Step ids, in the order the app presents them.
const (
	StepVisual  = "visual_examination"
	StepPalpate = "palpation"
	StepNipple  = "nipple_check"
)

// builtinScripts returns the static conversation for each step. Content is
// addressed by localization key; the engine never sees display text.
func builtinScripts() []model.Script {
	return []model.Script{
		{
			StepID:   StepVisual,
			TitleKey: "steps.visual.title",
			Nodes: []model.ConversationNode{
				model.AssistantMessage{ID: "visual_intro", TextKey: "visual.intro", DelayMs: 800},
				model.AssistantMessage{ID: "visual_posture", TextKey: "visual.posture"},
				model.Question{
					ID:      "visual_q_skin_changes",
					TextKey: "visual.q.skinChanges",
					Weight:  3,
					Options: []model.Option{
						{Value: "yes", LabelKey: "common.yes", IsConcern: true},
						{Value: "no", LabelKey: "common.no"},
						{Value: "unsure", LabelKey: "common.notSure"},
					},
				},
				model.Conditional{
					DependsOn: "visual_q_skin_changes",
					ShowWhen:  []string{"yes"},
					Children: []model.ConversationNode{
						model.AssistantMessage{ID: "visual_skin_yes_ack", TextKey: "visual.skinYesAck"},
						model.Question{
							ID:      "visual_q_skin_type",
							TextKey: "visual.q.skinType",
							Weight:  2,
							Options: []model.Option{
								{Value: "dimpling", LabelKey: "visual.skinType.dimpling", IsConcern: true},
								{Value: "redness", LabelKey: "visual.skinType.redness", IsConcern: true},
								{Value: "scaling", LabelKey: "visual.skinType.scaling", IsConcern: true},
								{Value: "other", LabelKey: "visual.skinType.other"},
							},
						},
					},
				},
				model.Conditional{
					DependsOn: "visual_q_skin_changes",
					ShowWhen:  []string{"no"},
					Children: []model.ConversationNode{
						model.AssistantMessage{ID: "visual_skin_no_ack", TextKey: "visual.skinNoAck"},
					},
				},
				model.Conditional{
					DependsOn: "visual_q_skin_changes",
					ShowWhen:  []string{"unsure"},
					Children: []model.ConversationNode{
						model.AssistantMessage{ID: "visual_skin_unsure_help", TextKey: "visual.skinUnsureHelp"},
					},
				},
				model.AssistantMessage{ID: "visual_arms_raised", TextKey: "visual.armsRaised"},
				model.Question{
					ID:      "visual_q_symmetry",
					TextKey: "visual.q.symmetry",
					Weight:  2,
					Options: []model.Option{
						{Value: "yes", LabelKey: "common.yes", IsConcern: true},
						{Value: "no", LabelKey: "common.no"},
					},
				},
				model.Conditional{
					DependsOn: "visual_q_symmetry",
					ShowWhen:  []string{"yes"},
					Children: []model.ConversationNode{
						model.AssistantMessage{ID: "visual_symmetry_ack", TextKey: "visual.symmetryAck"},
					},
				},
				model.AssistantMessage{ID: "visual_done", TextKey: "visual.done"},
			},
		},
		{
			StepID:   StepPalpate,
			TitleKey: "steps.palpation.title",
			Nodes: []model.ConversationNode{
				model.AssistantMessage{ID: "palpation_intro", TextKey: "palpation.intro", DelayMs: 800},
				model.AssistantMessage{ID: "palpation_technique", TextKey: "palpation.technique"},
				model.AssistantMessage{ID: "palpation_pattern", TextKey: "palpation.pattern"},
				model.Question{
					ID:      "palpation_q_lump",
					TextKey: "palpation.q.lump",
					Weight:  5,
					Options: []model.Option{
						{Value: "yes", LabelKey: "common.yes", IsConcern: true},
						{Value: "no", LabelKey: "common.no"},
						{Value: "unsure", LabelKey: "common.notSure"},
					},
				},
				model.Conditional{
					DependsOn: "palpation_q_lump",
					ShowWhen:  []string{"yes"},
					Children: []model.ConversationNode{
						model.AssistantMessage{ID: "palpation_lump_ack", TextKey: "palpation.lumpAck"},
						model.Question{
							ID:      "palpation_q_lump_mobile",
							TextKey: "palpation.q.lumpMobile",
							Weight:  3,
							Options: []model.Option{
								{Value: "fixed", LabelKey: "palpation.lumpMobile.fixed", IsConcern: true},
								{Value: "movable", LabelKey: "palpation.lumpMobile.movable"},
								{Value: "unsure", LabelKey: "common.notSure"},
							},
						},
					},
				},
				model.Conditional{
					DependsOn: "palpation_q_lump",
					ShowWhen:  []string{"unsure"},
					Children: []model.ConversationNode{
						model.AssistantMessage{ID: "palpation_unsure_help", TextKey: "palpation.unsureHelp"},
					},
				},
				model.Question{
					ID:      "palpation_q_pain",
					TextKey: "palpation.q.pain",
					Weight:  2,
					Options: []model.Option{
						{Value: "yes", LabelKey: "common.yes", IsConcern: true},
						{Value: "no", LabelKey: "common.no"},
					},
				},
				model.AssistantMessage{ID: "palpation_armpit", TextKey: "palpation.armpit"},
				model.Question{
					ID:      "palpation_q_armpit",
					TextKey: "palpation.q.armpit",
					Weight:  3,
					Options: []model.Option{
						{Value: "yes", LabelKey: "common.yes", IsConcern: true},
						{Value: "no", LabelKey: "common.no"},
					},
				},
				model.AssistantMessage{ID: "palpation_done", TextKey: "palpation.done"},
			},
		},
		{
			StepID:   StepNipple,
			TitleKey: "steps.nipple.title",
			Nodes: []model.ConversationNode{
				model.AssistantMessage{ID: "nipple_intro", TextKey: "nipple.intro", DelayMs: 800},
				model.Question{
					ID:      "nipple_q_discharge",
					TextKey: "nipple.q.discharge",
					Weight:  4,
					Options: []model.Option{
						{Value: "yes", LabelKey: "common.yes", IsConcern: true},
						{Value: "no", LabelKey: "common.no"},
					},
				},
				model.Conditional{
					DependsOn: "nipple_q_discharge",
					ShowWhen:  []string{"yes"},
					Children: []model.ConversationNode{
						model.AssistantMessage{ID: "nipple_discharge_ack", TextKey: "nipple.dischargeAck"},
						model.Question{
							ID:      "nipple_q_discharge_color",
							TextKey: "nipple.q.dischargeColor",
							Weight:  4,
							Options: []model.Option{
								{Value: "bloody", LabelKey: "nipple.discharge.bloody", IsConcern: true},
								{Value: "clear", LabelKey: "nipple.discharge.clear", IsConcern: true},
								{Value: "milky", LabelKey: "nipple.discharge.milky"},
							},
						},
					},
				},
				model.Question{
					ID:      "nipple_q_inversion",
					TextKey: "nipple.q.inversion",
					Weight:  3,
					Options: []model.Option{
						{Value: "yes", LabelKey: "common.yes", IsConcern: true},
						{Value: "no", LabelKey: "common.no"},
					},
				},
				model.Conditional{
					DependsOn: "nipple_q_inversion",
					ShowWhen:  []string{"yes"},
					Children: []model.ConversationNode{
						model.AssistantMessage{ID: "nipple_inversion_ack", TextKey: "nipple.inversionAck"},
					},
				},
				model.AssistantMessage{ID: "nipple_done", TextKey: "nipple.done"},
				model.AssistantMessage{ID: "exam_complete", TextKey: "nipple.examComplete"},
			},
		},
	}
}
