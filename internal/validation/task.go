package validation

import (
	"regexp"
	"strings"
	"time"

	"contacthub/internal/models"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// nowFunc is swapped out in tests to pin "today" for due-date checks.
var nowFunc = time.Now

func checkContactID(v string) (string, bool) {
	if strings.TrimSpace(v) == "" {
		return "is required", false
	}
	return "", true
}

func checkTitle(v string) (string, bool) {
	n := len([]rune(strings.TrimSpace(v)))
	if n < 2 || n > 200 {
		return "must be between 2 and 200 characters", false
	}
	return "", true
}

func checkDescription(v string) (string, bool) {
	if len([]rune(strings.TrimSpace(v))) > 500 {
		return "must be at most 500 characters", false
	}
	return "", true
}

// checkDueDate accepts a YYYY-MM-DD string naming a real calendar date that
// is not earlier than today. Time of day is ignored on both sides.
func checkDueDate(v string) (string, bool) {
	if !datePattern.MatchString(v) {
		return "must be a date in YYYY-MM-DD format", false
	}
	due, err := time.Parse("2006-01-02", v)
	if err != nil {
		return "must be a valid calendar date", false
	}
	now := nowFunc().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if due.Before(today) {
		return "must not be in the past", false
	}
	return "", true
}

// ValidateTaskCreate checks every field of a create payload. Description and
// dueDate are optional: empty means absent and passes.
func ValidateTaskCreate(in models.CreateTaskInput) Result {
	var r Result
	if msg, ok := checkContactID(in.ContactID); !ok {
		r.add("contactId", msg)
	}
	if msg, ok := checkTitle(in.Title); !ok {
		r.add("title", msg)
	}
	if in.Description != "" {
		if msg, ok := checkDescription(in.Description); !ok {
			r.add("description", msg)
		}
	}
	if in.DueDate != "" {
		if msg, ok := checkDueDate(in.DueDate); !ok {
			r.add("dueDate", msg)
		}
	}
	return r
}

// ValidateTaskUpdate checks only the fields present in the partial payload.
// A present-but-empty description or dueDate clears the field and passes.
func ValidateTaskUpdate(in models.UpdateTaskInput) Result {
	var r Result
	if in.Title != nil {
		if msg, ok := checkTitle(*in.Title); !ok {
			r.add("title", msg)
		}
	}
	if in.Description != nil && *in.Description != "" {
		if msg, ok := checkDescription(*in.Description); !ok {
			r.add("description", msg)
		}
	}
	if in.DueDate != nil && *in.DueDate != "" {
		if msg, ok := checkDueDate(*in.DueDate); !ok {
			r.add("dueDate", msg)
		}
	}
	return r
}
