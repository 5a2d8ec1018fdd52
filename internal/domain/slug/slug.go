package slug

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fallback is returned by Slugify when nothing usable remains.
const Fallback = "untitled"

// space is Unicode whitespace. RE2's \s alone misses \v, the \x1c-\x1f
// separators and NEL.
const space = `\s\v\x1c-\x1f\x{85}\p{Z}`

var (
	disallowed  = regexp.MustCompile(`[^\p{L}\p{N}_` + space + `-]`)
	separators  = regexp.MustCompile(`[-` + space + `]+`)
	underscores = regexp.MustCompile(`_+`)
	fragments   = regexp.MustCompile(`[_` + space + `]+`)
)

// Slugify turns free text into a filesystem-safe identifier.
func Slugify(text string) string {
	text = strings.ToLower(strings.TrimSpace(norm.NFC.String(text)))
	text = disallowed.ReplaceAllString(text, "")
	text = separators.ReplaceAllString(text, "_")
	text = underscores.ReplaceAllString(text, "_")
	if text == "" {
		return Fallback
	}
	return text
}

// TitleCase renders a slug for display, e.g. "linear_equations" -> "Linear Equations".
// Only the first rune of each word is upper-cased, so "3d_shapes" -> "3d Shapes".
func TitleCase(s string) string {
	words := make([]string, 0, 4)
	for _, part := range fragments.Split(s, -1) {
		if part == "" {
			continue
		}
		words = append(words, capitalize(part))
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	_, size := utf8.DecodeRuneInString(word)
	return cases.Upper(language.Und).String(word[:size]) + cases.Lower(language.Und).String(word[size:])
}
