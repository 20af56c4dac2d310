package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"support-srv/internal/model"
)

// textRangePattern matches a numeric range embedded in question text, e.g.
// "on a scale of 1-10" or "from 0 to 5".
var textRangePattern = regexp.MustCompile(`(\d+)\s*(?:-|to)\s*(\d+)`)

// scaleRange resolves the accepted bounds for a scale question: declared
// bounds win, then a range parsed from the question text, then 1..10.
func scaleRange(q *model.Question) (int, int) {
	if q.ScaleMax > q.ScaleMin {
		return q.ScaleMin, q.ScaleMax
	}
	if m := textRangePattern.FindStringSubmatch(q.Text); m != nil {
		lo, errLo := strconv.Atoi(m[1])
		hi, errHi := strconv.Atoi(m[2])
		if errLo == nil && errHi == nil && hi > lo {
			return lo, hi
		}
	}
	return DefaultScaleMin, DefaultScaleMax
}

// validateAnswer checks the raw answer against the question's response type
// and returns the numeric value for scale answers (0 for free text).
func validateAnswer(q *model.Question, answer string) (float64, bool) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return 0, false
	}
	if q.ResponseType != model.ResponseTypeScale {
		return 0, true
	}

	value, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, false
	}
	lo, hi := scaleRange(q)
	if value < float64(lo) || value > float64(hi) {
		return 0, false
	}
	return value, true
}
