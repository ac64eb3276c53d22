package validation

import (
	"regexp"
	"strings"

	"contacthub/internal/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{3}-\d{4}$`)
)

func checkName(v string) (string, bool) {
	n := len([]rune(strings.TrimSpace(v)))
	if n < 2 || n > 100 {
		return "must be between 2 and 100 characters", false
	}
	return "", true
}

func checkEmail(v string) (string, bool) {
	if len(v) < 1 || len(v) > 100 {
		return "must be between 1 and 100 characters", false
	}
	if !emailPattern.MatchString(v) {
		return "must be a valid email address", false
	}
	return "", true
}

func checkPhone(v string) (string, bool) {
	if len(v) != 8 {
		return "must be exactly 8 characters", false
	}
	if !phonePattern.MatchString(v) {
		return "must be in the format NNN-NNNN", false
	}
	return "", true
}

func checkAddress(v string) (string, bool) {
	n := len([]rune(strings.TrimSpace(v)))
	if n < 5 || n > 200 {
		return "must be between 5 and 200 characters", false
	}
	return "", true
}

// ValidateContactCreate checks every field of a create payload.
func ValidateContactCreate(in models.CreateContactInput) Result {
	var r Result
	if msg, ok := checkName(in.Name); !ok {
		r.add("name", msg)
	}
	if msg, ok := checkEmail(in.Email); !ok {
		r.add("email", msg)
	}
	if msg, ok := checkPhone(in.Phone); !ok {
		r.add("phone", msg)
	}
	if msg, ok := checkAddress(in.Address); !ok {
		r.add("address", msg)
	}
	return r
}

// ValidateContactUpdate checks only the fields present in the partial payload.
func ValidateContactUpdate(in models.UpdateContactInput) Result {
	var r Result
	if in.Name != nil {
		if msg, ok := checkName(*in.Name); !ok {
			r.add("name", msg)
		}
	}
	if in.Email != nil {
		if msg, ok := checkEmail(*in.Email); !ok {
			r.add("email", msg)
		}
	}
	if in.Phone != nil {
		if msg, ok := checkPhone(*in.Phone); !ok {
			r.add("phone", msg)
		}
	}
	if in.Address != nil {
		if msg, ok := checkAddress(*in.Address); !ok {
			r.add("address", msg)
		}
	}
	return r
}
