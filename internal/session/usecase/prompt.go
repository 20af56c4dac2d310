package usecase

import (
	"fmt"
	"strings"

	"support-srv/internal/model"
	"support-srv/pkg/locale"
)

const systemPrompt = `You are a supportive, empathetic companion for someone working through everyday emotional difficulties. Listen carefully, validate feelings, and keep replies short and warm. You are not a medical professional and never give diagnoses or medication advice.`

var langNames = map[string]string{
	locale.EN: "English",
	locale.VI: "Vietnamese",
	locale.JA: "Japanese",
}

// buildPrompt assembles the generation prompt from the rolling history
// window and the current user message.
func (uc *implUseCase) buildPrompt(sess *model.Session, content string) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n")

	if name, ok := langNames[sess.PreferredLanguage]; ok {
		fmt.Fprintf(&b, "Respond in %s.\n", name)
	}
	if sess.DetectedCategory != "" {
		fmt.Fprintf(&b, "The user seems to be dealing with: %s.\n", sess.DetectedCategory)
	}

	history := sess.RecentHistory(uc.cfg.HistoryWindow)
	if len(history) > 0 {
		b.WriteString("\nConversation so far:\n")
		for _, m := range history {
			role := "User"
			if m.Role == model.RoleAssistant {
				role = "Assistant"
			}
			fmt.Fprintf(&b, "%s: %s\n", role, m.Content)
		}
	}

	fmt.Fprintf(&b, "\nUser: %s\nAssistant:", content)
	return b.String()
}
