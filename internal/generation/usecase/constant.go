package usecase

import (
	"time"

	"support-srv/pkg/locale"
)

const (
	DefaultAttemptTimeout = 30 * time.Second

	// eventBuffer absorbs short bursts so slow readers do not stall the
	// provider stream immediately.
	eventBuffer = 16
)

// degradedReplies is the canned completion used when every provider failed.
var degradedReplies = map[string]string{
	locale.EN: "I'm sorry, I'm having trouble responding right now. Please try again in a moment.",
	locale.VI: "Xin lỗi, hiện tại tôi đang gặp sự cố khi phản hồi. Vui lòng thử lại sau giây lát.",
	locale.JA: "申し訳ありませんが、現在応答に問題が発生しています。しばらくしてからもう一度お試しください。",
}

func degradedReply(lang string) string {
	if msg, ok := degradedReplies[lang]; ok {
		return msg
	}
	return degradedReplies[locale.EN]
}
