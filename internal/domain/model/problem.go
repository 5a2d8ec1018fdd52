package model

import (
	"fmt"
	"path"
	"strings"
)

// Problem is a numbered unit of work stored under a topic.
type Problem struct {
	Number      int
	Title       string
	Slug        string
	Description string
	Topic       string
}

// FolderName returns the directory name, e.g. "problem_03_ratios".
func (p Problem) FolderName() string {
	return fmt.Sprintf("problem_%02d_%s", p.Number, p.Slug)
}

// ReadmeLink is the README path relative to the topic folder.
func (p Problem) ReadmeLink() string {
	return path.Join(p.FolderName(), "README.md")
}

// IndexLink is the README path relative to the subject root.
func (p Problem) IndexLink() string {
	return path.Join(p.Topic, p.FolderName(), "README.md")
}

// Row is one line of a Problem | Description table.
type Row struct {
	Number      int
	Title       string
	Link        string
	Description string
}

// String renders the row as a markdown table line.
func (r Row) String() string {
	return fmt.Sprintf("| [Problem %02d – %s](%s) | %s |", r.Number, cell(r.Title), r.Link, cell(r.Description))
}

var cellReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "|", `\|`)

func cell(s string) string {
	return strings.TrimSpace(cellReplacer.Replace(s))
}
