package markdown

import (
	"regexp"
	"strings"

	"learnlog/internal/domain/model"
	"learnlog/internal/domain/ports"
)

const (
	// TableHeader opens every problem table.
	TableHeader = "| Problem | Description |"
	// TableRule is the separator line below TableHeader.
	TableRule = "|---------|-------------|"
	// PlaceholderDescription is written when a section is created implicitly.
	PlaceholderDescription = "Description coming soon."

	sectionPrefix = "### "
)

var tableHeaderRe = regexp.MustCompile(`\| Problem \| Description \|`)

// Editor edits problem tables with plain text search. It does not parse
// markdown; unusual documents may produce unusual output.
type Editor struct{}

var _ ports.TableEditor = (*Editor)(nil)

// NewEditor creates an Editor.
func NewEditor() *Editor {
	return &Editor{}
}

// EnsureSection appends "### title", description and an empty table when
// the heading is not present yet.
func (e *Editor) EnsureSection(doc, title, description string) (string, bool) {
	if findHeading(doc, title) != nil {
		return doc, false
	}
	return appendBlock(doc, section(title, description, "")), true
}

// AppendRow adds row under the "### title" section of an index document.
func (e *Editor) AppendRow(doc, title string, row model.Row) string {
	loc := findHeading(doc, title)
	if loc == nil {
		return appendBlock(doc, section(title, PlaceholderDescription, row.String()))
	}

	before, after := doc[:loc[1]], doc[loc[1]:]
	body, rest := after, ""
	if next := strings.Index(after, "\n"+sectionPrefix); next >= 0 {
		body, rest = after[:next], after[next:]
	}

	if idx := tableHeaderRe.FindStringIndex(body); idx != nil {
		return before + insertIntoTable(body, idx[0], row.String()) + rest
	}

	fresh := "\n" + PlaceholderDescription + "\n\n" + TableHeader + "\n" + TableRule + "\n" + row.String()
	if after == "" {
		fresh += "\n"
	}
	return before + fresh + after
}

// AppendTableRow adds row to the first problem table in doc, appending a
// new table when there is none.
func (e *Editor) AppendTableRow(doc string, row model.Row) string {
	idx := tableHeaderRe.FindStringIndex(doc)
	if idx == nil {
		return appendBlock(doc, TableHeader+"\n"+TableRule+"\n"+row.String()+"\n")
	}
	return insertIntoTable(doc, idx[0], row.String())
}

func findHeading(doc, title string) []int {
	re := regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(sectionPrefix+title) + `[ \t]*$`)
	return re.FindStringIndex(doc)
}

func section(title, description, row string) string {
	var b strings.Builder
	b.WriteString(sectionPrefix + title + "\n")
	b.WriteString(description + "\n\n")
	b.WriteString(TableHeader + "\n" + TableRule + "\n")
	if row != "" {
		b.WriteString(row + "\n")
	}
	return b.String()
}

// appendBlock separates block from existing content by one blank line.
func appendBlock(doc, block string) string {
	if doc != "" && !strings.HasSuffix(doc, "\n") {
		doc += "\n"
	}
	return doc + "\n" + block
}

// insertIntoTable places row after the last "|" line of the table whose
// header starts at offset at.
func insertIntoTable(text string, at int, row string) string {
	end := at
	for end < len(text) {
		line, next := text[end:], len(text)
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line, next = line[:nl], end+nl+1
		}
		if !strings.HasPrefix(strings.TrimSpace(line), "|") {
			break
		}
		end = next
	}

	head := text[:end]
	if !strings.HasSuffix(head, "\n") {
		head += "\n"
	}
	return head + row + "\n" + text[end:]
}
