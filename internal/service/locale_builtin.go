package service

// DefaultLanguage is served when a requested language has no bundle.
const DefaultLanguage = "en"

// builtinBundles ships the full key tables for the supported languages.
// Stored bundles override these key by key; unknown languages fall back to
// English.
var builtinBundles = map[string]map[string]string{
	"en": {
		"steps.visual.title":    "Visual examination",
		"steps.palpation.title": "Palpation",
		"steps.nipple.title":    "Nipple check",

		"common.yes":     "Yes",
		"common.no":      "No",
		"common.notSure": "Not sure",

		"visual.intro":             "Let's start with a visual check. You won't need anything except a mirror and good lighting.",
		"visual.posture":           "Stand in front of the mirror with your shoulders straight and your hands on your hips. Take a moment to look at both breasts.",
		"visual.q.skinChanges":     "Do you notice any change in the skin, like dimpling, redness or a rash?",
		"visual.skinYesAck":        "Thank you for telling me. Noting where the change is will help when you talk to a professional.",
		"visual.q.skinType":        "Which of these best describes what you see?",
		"visual.skinType.dimpling": "Dimpling or puckering",
		"visual.skinType.redness":  "Redness or warmth",
		"visual.skinType.scaling":  "Scaling or flaky skin",
		"visual.skinType.other":    "Something else",
		"visual.skinNoAck":         "Good. Smooth, evenly colored skin is what we want to see.",
		"visual.skinUnsureHelp":    "That's okay. Try moving closer to the mirror and checking under each breast as well. You can always redo this step later.",
		"visual.armsRaised":        "Now raise both arms above your head and look again, including the area toward your armpits.",
		"visual.q.symmetry":        "With your arms raised, does one breast look noticeably different in size or shape than before?",
		"visual.symmetryAck":       "Noted. A new difference in shape is worth mentioning to a professional, even if it turns out to be nothing.",
		"visual.done":              "The visual check is done. Whenever you're ready, move on to the palpation step.",

		"palpation.intro":              "Next is the touch examination. Many people find this easiest lying down or in the shower.",
		"palpation.technique":          "Use the pads of your three middle fingers, not the tips. Move them in small circles, first with light pressure, then medium, then firm.",
		"palpation.pattern":            "Cover the whole breast: from the collarbone down to the top of the abdomen, and from the armpit across to the breastbone.",
		"palpation.q.lump":             "Did you feel a lump or a hard knot anywhere?",
		"palpation.lumpAck":            "Thank you. Most lumps are not cancer, but every new lump deserves a professional look.",
		"palpation.q.lumpMobile":       "When you press gently, does the lump move under your fingers, or does it feel fixed in place?",
		"palpation.lumpMobile.fixed":   "It feels fixed",
		"palpation.lumpMobile.movable": "It moves",
		"palpation.unsureHelp":         "If you're not sure, try the same spot lying down with your arm behind your head. The tissue spreads out and is easier to feel.",
		"palpation.q.pain":             "Is any area unusually painful or tender when you press?",
		"palpation.armpit":             "Finally, check your armpit and the area up to your collarbone with the same circular motions.",
		"palpation.q.armpit":           "Did you feel any swelling or lump in the armpit area?",
		"palpation.done":               "That completes the touch examination. Well done for taking the time.",

		"nipple.intro":            "Last step: the nipples. This one is quick.",
		"nipple.q.discharge":      "Gently squeeze each nipple between your thumb and finger. Does any fluid come out?",
		"nipple.dischargeAck":     "Okay. The color of the fluid matters, so let me ask about that.",
		"nipple.q.dischargeColor": "What does the fluid look like?",
		"nipple.discharge.bloody": "Bloody or brownish",
		"nipple.discharge.clear":  "Clear and watery",
		"nipple.discharge.milky":  "Milky or white",
		"nipple.q.inversion":      "Has either nipple recently turned inward or changed direction?",
		"nipple.inversionAck":     "Noted. A recent change like this is worth a professional opinion.",
		"nipple.done":             "The nipple check is complete.",
		"nipple.examComplete":     "You've finished all three steps. Open your summary to see what your answers suggest.",

		"clarify.generic":            "I can help with questions about the current step, like where to look or how to press. Could you rephrase your question? This guidance is educational and is not a medical diagnosis; please discuss any concern with a healthcare professional.",
		"clarify.visual.mirror":      "Stand about an arm's length from the mirror in a well-lit room, facing it straight on. Daylight or a bright lamp from the front works best. This guidance is educational and is not a medical diagnosis; please discuss any concern with a healthcare professional.",
		"clarify.visual.posture":     "Start with your hands on your hips and your shoulders relaxed, then repeat the look with both arms raised overhead. The two positions stretch the skin differently. This guidance is educational and is not a medical diagnosis; please discuss any concern with a healthcare professional.",
		"clarify.visual.skin":        "You're looking for anything new: dimpling like an orange peel, redness, a rash, or skin that pulls inward. Compare both sides; they are rarely perfectly identical. This guidance is educational and is not a medical diagnosis; please discuss any concern with a healthcare professional.",
		"clarify.visual.symmetry":    "Small differences between breasts are normal and common. What matters is a change from how they usually look for you. This guidance is educational and is not a medical diagnosis; please discuss any concern with a healthcare professional.",
		"clarify.palpation.pressure": "Use three levels of pressure in each spot: light for tissue just under the skin, medium for the middle, and firm enough to feel down toward the ribs. It should not hurt. This guidance is educational and is not a medical diagnosis; please discuss any concern with a healthcare professional.",
		"clarify.palpation.pattern":  "Pick a pattern you can repeat, like vertical strips from your armpit to the middle of your chest, and cover the area from the collarbone to below the breast. This guidance is educational and is not a medical diagnosis; please discuss any concern with a healthcare professional.",
		"clarify.palpation.position": "Lying down spreads the breast tissue evenly over your chest, which makes deeper tissue easier to feel. In the shower, wet skin lets your fingers glide smoothly. Both work. This guidance is educational and is not a medical diagnosis; please discuss any concern with a healthcare professional.",
		"clarify.palpation.lump":     "Normal breast tissue can feel lumpy or rope-like, especially before a period. A distinct hard knot that stands out from its surroundings is what you note down and have checked. This guidance is educational and is not a medical diagnosis; please discuss any concern with a healthcare professional.",
		"clarify.nipple.squeeze":     "Hold the nipple gently between your thumb and index finger and press with light, steady pressure. There is no need to squeeze hard. This guidance is educational and is not a medical diagnosis; please discuss any concern with a healthcare professional.",
		"clarify.nipple.discharge":   "Note the color and whether it comes from one breast or both. Discharge without squeezing, or any bloody fluid, is the kind to mention promptly. This guidance is educational and is not a medical diagnosis; please discuss any concern with a healthcare professional.",
		"clarify.nipple.shape":       "Some nipples are naturally inverted, and that's fine. What matters is a nipple that recently changed direction or shape. This guidance is educational and is not a medical diagnosis; please discuss any concern with a healthcare professional.",

		"risk.high.recommendation":     "Please arrange an urgent consultation with a healthcare professional.",
		"risk.high.message":            "Some of your answers describe changes that should be looked at soon. This is not a diagnosis, but please don't wait for the next routine checkup.",
		"risk.moderate.recommendation": "Schedule a checkup with a healthcare professional.",
		"risk.moderate.message":        "You noticed something worth showing to a professional. Most findings like this turn out to be harmless, and a checkup will give you certainty.",
		"risk.low.recommendation":      "Continue monthly self-checks.",
		"risk.low.message":             "Nothing in your answers stands out. Keep up the routine and repeat the self-check about once a month.",
	},
	"fr": {
		"steps.visual.title":    "Examen visuel",
		"steps.palpation.title": "Palpation",
		"steps.nipple.title":    "Contrôle des mamelons",

		"common.yes":     "Oui",
		"common.no":      "Non",
		"common.notSure": "Je ne sais pas",

		"visual.intro":             "Commençons par un contrôle visuel. Vous n'avez besoin que d'un miroir et d'un bon éclairage.",
		"visual.posture":           "Placez-vous devant le miroir, épaules droites et mains sur les hanches. Prenez le temps d'observer vos deux seins.",
		"visual.q.skinChanges":     "Remarquez-vous un changement de la peau, comme des capitons, une rougeur ou une éruption ?",
		"visual.skinYesAck":        "Merci de me l'avoir signalé. Noter l'endroit du changement aidera lors d'une consultation.",
		"visual.q.skinType":        "Laquelle de ces descriptions correspond le mieux à ce que vous voyez ?",
		"visual.skinType.dimpling": "Capitons ou peau qui se rétracte",
		"visual.skinType.redness":  "Rougeur ou chaleur",
		"visual.skinType.scaling":  "Peau qui pèle ou squameuse",
		"visual.skinType.other":    "Autre chose",
		"visual.skinNoAck":         "Très bien. Une peau lisse et de couleur uniforme est ce que l'on souhaite voir.",
		"visual.skinUnsureHelp":    "Ce n'est pas grave. Rapprochez-vous du miroir et vérifiez aussi sous chaque sein. Vous pourrez refaire cette étape plus tard.",
		"visual.armsRaised":        "Levez maintenant les deux bras au-dessus de la tête et observez à nouveau, y compris vers les aisselles.",
		"visual.q.symmetry":        "Bras levés, un sein vous paraît-il nettement différent en taille ou en forme ?",
		"visual.symmetryAck":       "C'est noté. Une différence nouvelle mérite d'être mentionnée à un professionnel, même si elle s'avère sans gravité.",
		"visual.done":              "L'examen visuel est terminé. Quand vous êtes prête, passez à la palpation.",

		"palpation.intro":              "Passons à l'examen par le toucher. Beaucoup le trouvent plus facile allongée ou sous la douche.",
		"palpation.technique":          "Utilisez la pulpe de vos trois doigts du milieu, pas le bout. Faites de petits cercles, d'abord avec une pression légère, puis moyenne, puis ferme.",
		"palpation.pattern":            "Couvrez tout le sein : de la clavicule jusqu'en haut de l'abdomen, et de l'aisselle jusqu'au sternum.",
		"palpation.q.lump":             "Avez-vous senti une boule ou un nodule dur quelque part ?",
		"palpation.lumpAck":            "Merci. La plupart des boules ne sont pas un cancer, mais toute boule nouvelle mérite un avis professionnel.",
		"palpation.q.lumpMobile":       "En appuyant doucement, la boule bouge-t-elle sous vos doigts ou semble-t-elle fixée ?",
		"palpation.lumpMobile.fixed":   "Elle semble fixée",
		"palpation.lumpMobile.movable": "Elle bouge",
		"palpation.unsureHelp":         "En cas de doute, réessayez allongée, le bras derrière la tête. Le tissu s'étale et devient plus facile à palper.",
		"palpation.q.pain":             "Une zone est-elle anormalement douloureuse ou sensible quand vous appuyez ?",
		"palpation.armpit":             "Pour finir, vérifiez l'aisselle et la zone jusqu'à la clavicule avec les mêmes mouvements circulaires.",
		"palpation.q.armpit":           "Avez-vous senti un gonflement ou une boule au niveau de l'aisselle ?",
		"palpation.done":               "L'examen par le toucher est terminé. Bravo d'avoir pris ce temps.",

		"nipple.intro":            "Dernière étape : les mamelons. C'est rapide.",
		"nipple.q.discharge":      "Pressez doucement chaque mamelon entre le pouce et l'index. Un liquide s'écoule-t-il ?",
		"nipple.dischargeAck":     "D'accord. La couleur du liquide est importante, je vais donc vous poser la question.",
		"nipple.q.dischargeColor": "À quoi ressemble le liquide ?",
		"nipple.discharge.bloody": "Sanglant ou brunâtre",
		"nipple.discharge.clear":  "Clair et aqueux",
		"nipple.discharge.milky":  "Laiteux ou blanc",
		"nipple.q.inversion":      "Un mamelon s'est-il récemment rétracté ou a-t-il changé de direction ?",
		"nipple.inversionAck":     "C'est noté. Un changement récent de ce type mérite un avis professionnel.",
		"nipple.done":             "Le contrôle des mamelons est terminé.",
		"nipple.examComplete":     "Vous avez terminé les trois étapes. Ouvrez votre récapitulatif pour voir ce que suggèrent vos réponses.",

		"clarify.generic":            "Je peux répondre aux questions sur l'étape en cours, par exemple où regarder ou comment appuyer. Pouvez-vous reformuler ? Ces conseils sont éducatifs et ne constituent pas un diagnostic médical ; parlez de toute inquiétude à un professionnel de santé.",
		"clarify.visual.mirror":      "Placez-vous à environ un bras du miroir, bien en face, dans une pièce lumineuse. La lumière du jour ou une lampe éclairant de face convient le mieux. Ces conseils sont éducatifs et ne constituent pas un diagnostic médical ; parlez de toute inquiétude à un professionnel de santé.",
		"clarify.visual.posture":     "Commencez mains sur les hanches, épaules détendues, puis recommencez l'observation bras levés. Les deux positions étirent la peau différemment. Ces conseils sont éducatifs et ne constituent pas un diagnostic médical ; parlez de toute inquiétude à un professionnel de santé.",
		"clarify.visual.skin":        "Cherchez tout ce qui est nouveau : capitons en peau d'orange, rougeur, éruption, ou peau qui se rétracte. Comparez les deux côtés ; ils sont rarement parfaitement identiques. Ces conseils sont éducatifs et ne constituent pas un diagnostic médical ; parlez de toute inquiétude à un professionnel de santé.",
		"clarify.visual.symmetry":    "De petites différences entre les seins sont normales et fréquentes. Ce qui compte, c'est un changement par rapport à leur aspect habituel chez vous. Ces conseils sont éducatifs et ne constituent pas un diagnostic médical ; parlez de toute inquiétude à un professionnel de santé.",
		"clarify.palpation.pressure": "Utilisez trois niveaux de pression à chaque endroit : légère pour le tissu sous la peau, moyenne pour le milieu, et ferme pour sentir vers les côtes. Cela ne doit pas faire mal. Ces conseils sont éducatifs et ne constituent pas un diagnostic médical ; parlez de toute inquiétude à un professionnel de santé.",
		"clarify.palpation.pattern":  "Choisissez un schéma que vous pouvez répéter, comme des bandes verticales de l'aisselle au milieu de la poitrine, en couvrant de la clavicule jusqu'en dessous du sein. Ces conseils sont éducatifs et ne constituent pas un diagnostic médical ; parlez de toute inquiétude à un professionnel de santé.",
		"clarify.palpation.position": "Allongée, le tissu mammaire s'étale uniformément sur la poitrine, ce qui facilite la palpation en profondeur. Sous la douche, la peau mouillée laisse glisser les doigts. Les deux conviennent. Ces conseils sont éducatifs et ne constituent pas un diagnostic médical ; parlez de toute inquiétude à un professionnel de santé.",
		"clarify.palpation.lump":     "Un tissu mammaire normal peut sembler granuleux, surtout avant les règles. Un nodule dur et net qui se distingue de son environnement est ce qu'il faut noter et faire vérifier. Ces conseils sont éducatifs et ne constituent pas un diagnostic médical ; parlez de toute inquiétude à un professionnel de santé.",
		"clarify.nipple.squeeze":     "Tenez le mamelon doucement entre le pouce et l'index et exercez une pression légère et régulière. Inutile de serrer fort. Ces conseils sont éducatifs et ne constituent pas un diagnostic médical ; parlez de toute inquiétude à un professionnel de santé.",
		"clarify.nipple.discharge":   "Notez la couleur et si l'écoulement vient d'un sein ou des deux. Un écoulement spontané, ou tout liquide sanglant, est à signaler rapidement. Ces conseils sont éducatifs et ne constituent pas un diagnostic médical ; parlez de toute inquiétude à un professionnel de santé.",
		"clarify.nipple.shape":       "Certains mamelons sont naturellement invaginés, c'est sans gravité. Ce qui compte, c'est un mamelon qui a récemment changé de direction ou de forme. Ces conseils sont éducatifs et ne constituent pas un diagnostic médical ; parlez de toute inquiétude à un professionnel de santé.",

		"risk.high.recommendation":     "Veuillez prendre rendez-vous rapidement avec un professionnel de santé.",
		"risk.high.message":            "Certaines de vos réponses décrivent des changements à faire examiner sans tarder. Ce n'est pas un diagnostic, mais n'attendez pas le prochain contrôle de routine.",
		"risk.moderate.recommendation": "Planifiez un contrôle avec un professionnel de santé.",
		"risk.moderate.message":        "Vous avez remarqué quelque chose qui mérite d'être montré à un professionnel. La plupart de ces découvertes sont bénignes, et un contrôle vous apportera une certitude.",
		"risk.low.recommendation":      "Continuez vos auto-examens mensuels.",
		"risk.low.message":             "Rien ne ressort de vos réponses. Gardez cette habitude et refaites l'auto-examen environ une fois par mois.",
	},
}

// BuiltinBundles returns a deep copy of the built-in tables, for seeding.
func BuiltinBundles() map[string]map[string]string {
	out := make(map[string]map[string]string, len(builtinBundles))
	for lang, entries := range builtinBundles {
		table := make(map[string]string, len(entries))
		for k, v := range entries {
			table[k] = v
		}
		out[lang] = table
	}
	return out
}
