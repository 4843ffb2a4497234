package quote

import (
	"regexp"
)

var (
	isoDatePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	longDatePattern = regexp.MustCompile(`^(\d{4})年(\d{1,2})月(\d{1,2})日$`)
)

// NormalizeDate converts a user-entered date into the canonical YYYY-MM-DD
// form. Anything already shaped YYYY-MM-DD is returned unchanged and the
// Japanese long form "2026年2月6日" is zero padded. Only the shape is checked,
// not the calendar, so a stored value always survives a re-save. Empty input
// and anything else yield ("", false); an absent date is not an error.
func NormalizeDate(input string) (string, bool) {
	if input == "" {
		return "", false
	}
	if isoDatePattern.MatchString(input) {
		return input, true
	}

	m := longDatePattern.FindStringSubmatch(input)
	if m == nil {
		return "", false
	}
	return m[1] + "-" + pad2(m[2]) + "-" + pad2(m[3]), true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
