// Package validate is the caller-side input check that runs before any core
// mutation. The state manager itself validates nothing structurally; a view
// or CLI that skips this package gets whatever it persisted back.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"capstone-hub/internal/model"
	"capstone-hub/internal/state"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()
	_ = val.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = val.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return parsesAsDate(fl.Field().String())
	})
	return val
}

func parsesAsDate(s string) bool {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// Strings trims every entry and drops the blank ones. Mirrors the attendee
// and member cleanup the original form layer did before submitting.
func Strings(vals []string) []string {
	var out []string
	for _, s := range vals {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func firstError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%s failed %s validation", strings.ToLower(fe.Field()), fe.Tag())
	}
	return err
}

// Team checks a team create input. Members should already be cleaned via
// Strings.
func Team(in state.TeamInput) error {
	return firstError(v.Struct(in))
}

// Task checks a task create input.
func Task(in state.TaskInput) error {
	return firstError(v.Struct(in))
}

// Meeting checks a meeting create input, including start < end.
func Meeting(in state.MeetingInput) error {
	if err := firstError(v.Struct(in)); err != nil {
		return err
	}
	// zero-padded HH:MM orders lexically
	if in.StartTime >= in.EndTime {
		return errors.New("end time must be after start time")
	}
	return nil
}

// TeamPatch checks only the fields present.
func TeamPatch(p state.TeamPatch) error {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return errors.New("name must not be empty")
	}
	if p.Members != nil {
		if len(Strings(*p.Members)) == 0 {
			return errors.New("at least one member is required")
		}
	}
	return nil
}

// TaskPatch checks only the fields present.
func TaskPatch(p state.TaskPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return errors.New("title must not be empty")
	}
	if p.Status != nil {
		switch *p.Status {
		case model.StatusPending, model.StatusInProgress, model.StatusCompleted, model.StatusReview:
		default:
			return fmt.Errorf("unknown status %q", *p.Status)
		}
	}
	if p.Priority != nil {
		switch *p.Priority {
		case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		default:
			return fmt.Errorf("unknown priority %q", *p.Priority)
		}
	}
	if p.Deadline != nil && !parsesAsDate(*p.Deadline) {
		return errors.New("deadline must be an ISO date")
	}
	return nil
}

// MeetingPatch checks only the fields present. The start/end ordering is
// checked when both times are supplied; a partial time change is compared
// by the caller against the stored record.
func MeetingPatch(p state.MeetingPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return errors.New("title must not be empty")
	}
	if p.Location != nil && strings.TrimSpace(*p.Location) == "" {
		return errors.New("location must not be empty")
	}
	if p.Date != nil {
		if _, err := time.Parse("2006-01-02", *p.Date); err != nil {
			return errors.New("date must be 2006-01-02")
		}
	}
	for _, t := range []*string{p.StartTime, p.EndTime} {
		if t != nil {
			if _, err := time.Parse("15:04", *t); err != nil {
				return errors.New("times must be 15:04")
			}
		}
	}
	if p.StartTime != nil && p.EndTime != nil && *p.StartTime >= *p.EndTime {
		return errors.New("end time must be after start time")
	}
	if p.Attendees != nil {
		if len(Strings(*p.Attendees)) == 0 {
			return errors.New("at least one attendee is required")
		}
	}
	return nil
}
