package model

// Topic is a category folder grouping related problems.
type Topic struct {
	Slug        string
	Title       string
	Description string
}
