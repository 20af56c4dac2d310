package usecase

import (
	"support-srv/pkg/locale"
)

const (
	DefaultOfferScore    = 0.72
	DefaultOfferStreak   = 2
	DefaultHistoryWindow = 12
)

// validationNotices are re-emitted with the unchanged question when an
// answer fails local validation.
var validationNotices = map[string]string{
	locale.EN: "That answer doesn't look valid for this question. Please try again.",
	locale.VI: "Câu trả lời này không hợp lệ cho câu hỏi. Vui lòng thử lại.",
	locale.JA: "この質問に対する回答が有効ではないようです。もう一度お試しください。",
}

// completionIntros precede the ranked suggestions at the end of a run.
var completionIntros = map[string]string{
	locale.EN: "Thank you for completing the assessment. Based on your answers, here are some things that may help:",
	locale.VI: "Cảm ơn bạn đã hoàn thành bài đánh giá. Dựa trên câu trả lời của bạn, đây là một số điều có thể giúp ích:",
	locale.JA: "アセスメントの完了ありがとうございます。回答に基づき、役立ちそうなことをいくつかご紹介します:",
}

// pausedNotices confirm the run is kept while free chat continues.
var pausedNotices = map[string]string{
	locale.EN: "Okay, the assessment is paused. We can keep talking, and you can say \"resume\" whenever you're ready.",
	locale.VI: "Được rồi, bài đánh giá đã tạm dừng. Chúng ta có thể tiếp tục trò chuyện, khi nào sẵn sàng bạn hãy nói \"tiếp tục\".",
	locale.JA: "わかりました。アセスメントを一時停止します。会話は続けられます。再開したいときは「再開」と言ってください。",
}

func localized(messages map[string]string, lang string) string {
	if msg, ok := messages[lang]; ok {
		return msg
	}
	return messages[locale.EN]
}
