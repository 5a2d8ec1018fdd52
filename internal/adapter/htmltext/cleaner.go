package htmltext

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"learnlog/internal/domain/ports"
)

// markup detects text pasted from a rendered problem page. Plain text such as
// "x < 5" must not be sent through the HTML parser.
var markup = regexp.MustCompile(`(?i)</?(p|br|li|ul|ol|div|span|code|pre|em|strong|b|i|sup|sub|a)(\s[^<>]*)?/?>`)

// Cleaner implements ports.TextCleaner.
type Cleaner struct{}

var _ ports.TextCleaner = (*Cleaner)(nil)

// New creates a Cleaner.
func New() *Cleaner {
	return &Cleaner{}
}

// Clean strips HTML markup and folds whitespace into single spaces.
func (c *Cleaner) Clean(input string) string {
	if markup.MatchString(input) {
		input = htmlToText(input)
	}
	return strings.Join(strings.Fields(input), " ")
}

func htmlToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "br" || node.Data == "p" || node.Data == "li" {
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "li") {
		builder.WriteRune('\n')
	}
}
