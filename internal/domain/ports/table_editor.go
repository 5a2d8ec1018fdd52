package ports

import "learnlog/internal/domain/model"

// TableEditor inserts topic sections and problem rows into markdown documents.
type TableEditor interface {
	// EnsureSection appends a heading and an empty table for title unless one exists.
	EnsureSection(doc, title, description string) (string, bool)
	// AppendRow adds row to the table under the title heading, creating whatever is missing.
	AppendRow(doc, title string, row model.Row) string
	// AppendTableRow adds row to the first table of doc.
	AppendTableRow(doc string, row model.Row) string
}
