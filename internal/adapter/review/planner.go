package review

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"learnlog/internal/domain/ports"
)

// Planner implements ports.ReviewPlanner with a standard five-field cron spec.
type Planner struct {
	schedule cron.Schedule
}

var _ ports.ReviewPlanner = (*Planner)(nil)

// New parses spec. An empty spec disables reviews.
func New(spec string) (*Planner, error) {
	if spec == "" {
		return &Planner{}, nil
	}

	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse review schedule %q: %w", spec, err)
	}
	return &Planner{schedule: schedule}, nil
}

// NextReview returns the first scheduled time after the given one, or the
// zero time when reviews are disabled.
func (p *Planner) NextReview(after time.Time) time.Time {
	if p.schedule == nil {
		return time.Time{}
	}
	return p.schedule.Next(after)
}
