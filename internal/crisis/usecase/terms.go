package usecase

import "support-srv/pkg/locale"

// defaultTerms are the built-in crisis term lists, lowercased. Substring
// matching means short phrases catch inflected forms; false positives are
// accepted.
var defaultTerms = map[string][]string{
	locale.EN: {
		"suicide",
		"suicidal",
		"kill myself",
		"end my life",
		"end it all",
		"want to die",
		"wish i was dead",
		"self-harm",
		"self harm",
		"hurt myself",
		"cutting myself",
		"no reason to live",
		"better off dead",
		"overdose",
	},
	locale.VI: {
		"tự tử",
		"tự sát",
		"kết thúc cuộc đời",
		"muốn chết",
		"không muốn sống",
		"tự làm đau",
		"tự hại",
	},
	locale.JA: {
		"自殺",
		"死にたい",
		"消えたい",
		"自傷",
	},
}

// safetyMessages are the fixed safety-resource texts, one per locale.
// Never produced by a model.
var safetyMessages = map[string]string{
	locale.EN: "It sounds like you may be going through something very difficult right now. You don't have to face this alone. " +
		"Please reach out to a crisis counselor: call or text 988 (Suicide & Crisis Lifeline), or contact your local emergency services. " +
		"If you are in immediate danger, please call emergency services right away.",
	locale.VI: "Có vẻ bạn đang trải qua giai đoạn rất khó khăn. Bạn không phải đối mặt một mình. " +
		"Hãy liên hệ đường dây nóng hỗ trợ tâm lý 1900 0115, hoặc gọi cấp cứu 115 nếu bạn đang gặp nguy hiểm.",
	locale.JA: "今、とてもつらい状況にいらっしゃるようです。ひとりで抱え込まないでください。" +
		"いのちの電話（0570-783-556）にご相談いただくか、緊急の場合は119番に連絡してください。",
}
