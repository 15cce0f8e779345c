package domain

import (
	"fmt"
	"unicode/utf8"
)

// Field length limits shared by lists and items.
const (
	TitleMaxLen       = 100
	DescriptionMaxLen = 200
)

// CheckTitle records a violation in fields if title is empty or longer than
// TitleMaxLen characters.
func CheckTitle(fields map[string]string, title string) {
	checkLength(fields, "title", title, TitleMaxLen)
}

// CheckDescription records a violation in fields if a present description is
// empty or longer than DescriptionMaxLen characters. A nil description is
// always valid.
func CheckDescription(fields map[string]string, description *string) {
	if description == nil {
		return
	}
	checkLength(fields, "description", *description, DescriptionMaxLen)
}

// checkLength counts characters, not bytes.
func checkLength(fields map[string]string, name, value string, maxLen int) {
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0:
		fields[name] = MsgRequired
	case n > maxLen:
		fields[name] = fmt.Sprintf("must be at most %d characters, got %d", maxLen, n)
	}
}
