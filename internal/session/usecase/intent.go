package usecase

import (
	"regexp"
	"strings"
	"unicode"
)

// Lightweight keyword intent detection for assessment control phrases.
// Deliberately permissive: a missed control phrase falls through to free
// chat, which is always safe.

var affirmativeTerms = []string{
	"yes", "yeah", "sure", "ok", "okay", "let's do it", "i accept", "start",
	"có", "đồng ý", "bắt đầu",
	"はい", "お願いします", "始め",
}

var declineTerms = []string{
	"no", "not now", "no thanks", "maybe later", "skip",
	"không", "để sau", "thôi",
	"いいえ", "やめ", "また今度",
}

var pauseTerms = []string{
	"pause", "hold on", "take a break",
	"tạm dừng", "dừng lại một chút",
	"一時停止", "休憩",
}

var resumeTerms = []string{
	"resume", "continue", "keep going",
	"tiếp tục",
	"再開", "続け",
}

var exitTerms = []string{
	"exit", "stop the assessment", "quit", "cancel the assessment",
	"thoát", "hủy đánh giá",
	"終了", "中止",
}

var assessmentRequestTerms = []string{
	"assessment", "take the assessment", "evaluate me", "questionnaire",
	"bài đánh giá", "đánh giá",
	"アセスメント", "診断",
}

var intentToken = regexp.MustCompile(`[\p{L}\p{N}']+`)

// matchesAny matches Latin-script terms on token boundaries so that short
// terms like "no" or "ok" cannot fire inside ordinary words ("now",
// "looking"). Japanese terms have no word separators and keep substring
// matching.
func matchesAny(text string, terms []string) bool {
	lowered := strings.ToLower(strings.TrimSpace(text))
	tokenized := " " + strings.Join(intentToken.FindAllString(lowered, -1), " ") + " "
	for _, term := range terms {
		if latinTerm(term) {
			if strings.Contains(tokenized, " "+term+" ") {
				return true
			}
			continue
		}
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

func latinTerm(term string) bool {
	for _, r := range term {
		if r > unicode.MaxASCII && !unicode.Is(unicode.Latin, r) {
			return false
		}
	}
	return true
}

func isAffirmative(text string) bool      { return matchesAny(text, affirmativeTerms) }
func isDecline(text string) bool          { return matchesAny(text, declineTerms) }
func wantsPause(text string) bool         { return matchesAny(text, pauseTerms) }
func wantsResume(text string) bool        { return matchesAny(text, resumeTerms) }
func wantsExit(text string) bool          { return matchesAny(text, exitTerms) }
func requestsAssessment(text string) bool { return matchesAny(text, assessmentRequestTerms) }
