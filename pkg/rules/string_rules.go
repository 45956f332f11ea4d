package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/validation/pkg/shape"
)

// runeLen counts characters of the NFC form of s.
func runeLen(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// NotBlank rejects strings that are empty after trimming whitespace.
func NotBlank() shape.RuleFunc[string] {
	return New(func(v string) bool {
		return strings.TrimSpace(v) != ""
	}, "Value cannot be blank!")
}

func MinLen(min int) shape.RuleFunc[string] {
	return New(func(v string) bool {
		return runeLen(v) >= min
	}, fmt.Sprintf("Value must be at least %d characters long!", min))
}

func MaxLen(max int) shape.RuleFunc[string] {
	return New(func(v string) bool {
		return runeLen(v) <= max
	}, fmt.Sprintf("Value must be at most %d characters long!", max))
}

func Len(exact int) shape.RuleFunc[string] {
	return New(func(v string) bool {
		return runeLen(v) == exact
	}, fmt.Sprintf("Value must be exactly %d characters long!", exact))
}

// LenBetween checks min <= length <= max.
func LenBetween(min, max int) shape.RuleFunc[string] {
	return New(func(v string) bool {
		n := runeLen(v)
		return n >= min && n <= max
	}, fmt.Sprintf("Value must be between %d and %d characters long!", min, max))
}

func HasPrefix(prefix string) shape.RuleFunc[string] {
	return New(func(v string) bool {
		return strings.HasPrefix(v, prefix)
	}, fmt.Sprintf("Value must start with %q!", prefix))
}

func HasSuffix(suffix string) shape.RuleFunc[string] {
	return New(func(v string) bool {
		return strings.HasSuffix(v, suffix)
	}, fmt.Sprintf("Value must end with %q!", suffix))
}

// Matches checks the whole string against pattern. description completes
// the message "Value must be <description>!". It panics on an invalid
// pattern.
func Matches(pattern, description string) shape.RuleFunc[string] {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return New(re.MatchString, fmt.Sprintf("Value must be %s!", description))
}

func NoWhitespace() shape.RuleFunc[string] {
	return New(func(v string) bool {
		return !strings.ContainsFunc(v, unicode.IsSpace)
	}, "Value cannot contain whitespace!")
}

// Printable rejects control characters and other non-printable runes.
func Printable() shape.RuleFunc[string] {
	return New(func(v string) bool {
		for _, r := range v {
			if !unicode.IsPrint(r) {
				return false
			}
		}
		return true
	}, "Value must contain printable characters only!")
}
