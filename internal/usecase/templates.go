package usecase

import (
	"fmt"
	"strings"
	"text/template"
)

// TemplateSources holds text/template sources. Empty fields use the built-in defaults.
type TemplateSources struct {
	Index    string
	Topic    string
	Problem  string
	Solution string
}

const defaultIndexTemplate = `# {{.SubjectTitle}} Learning Hub

This folder contains all the topics and practice problems I'm learning.

## Topics

(Topics will be listed below.)
`

const defaultTopicTemplate = `# {{.Title}}

{{.Description}}

## Problems

| Problem | Description |
|---------|-------------|
`

const defaultProblemTemplate = `# Problem {{.Number}} — {{.Title}}

Added: {{.Created}}
{{- if .NextReview}}
Next review: {{.NextReview}}
{{- end}}

## Problem Description
(Write the problem statement here.)

## Notes / Math Explanation
(Add reasoning, math steps, examples.)

## Implementation
See ` + "`{{.SolutionFile}}`" + `.
`

// The solution placeholder is empty unless configured.
const defaultSolutionTemplate = ``

type indexData struct {
	SubjectTitle string
}

type topicData struct {
	Title       string
	Description string
}

type problemData struct {
	Number       int
	Padded       string
	Title        string
	Description  string
	Topic        string
	Created      string
	NextReview   string
	SolutionFile string
}

type templates struct {
	index    *template.Template
	topic    *template.Template
	problem  *template.Template
	solution *template.Template
}

func parseTemplates(src TemplateSources) (*templates, error) {
	var (
		set templates
		err error
	)
	if set.index, err = parseTemplate("index", src.Index, defaultIndexTemplate); err != nil {
		return nil, err
	}
	if set.topic, err = parseTemplate("topic", src.Topic, defaultTopicTemplate); err != nil {
		return nil, err
	}
	if set.problem, err = parseTemplate("problem", src.Problem, defaultProblemTemplate); err != nil {
		return nil, err
	}
	if set.solution, err = parseTemplate("solution", src.Solution, defaultSolutionTemplate); err != nil {
		return nil, err
	}
	return &set, nil
}

func parseTemplate(name, source, fallback string) (*template.Template, error) {
	if source == "" {
		source = fallback
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %w", name, err)
	}
	return tmpl, nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}
