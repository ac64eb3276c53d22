package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"contacthub/internal/models"
)

func validTaskInput() models.CreateTaskInput {
	return models.CreateTaskInput{
		ContactID: "1",
		Title:     "Call back",
	}
}

// pinToday fixes "today" for due-date checks and restores the clock afterwards.
func pinToday(t *testing.T, day time.Time) {
	t.Helper()
	nowFunc = func() time.Time { return day }
	t.Cleanup(func() { nowFunc = time.Now })
}

func TestValidateDueDate(t *testing.T) {
	pinToday(t, time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC))

	cases := []struct {
		dueDate string
		valid   bool
	}{
		{"", true},           // optional
		{"2099-12-31", true}, // future
		{"2025-06-01", true}, // today passes: only strictly earlier is rejected
		{"2025-01-01", false},
		{"2025-13-01", false}, // no thirteenth month
		{"2025-02-30", false}, // not a real calendar date
		{"01-01-2025", false}, // wrong shape
		{"2025-6-1", false},
	}
	for _, tc := range cases {
		in := validTaskInput()
		in.DueDate = tc.dueDate
		res := ValidateTaskCreate(in)
		if tc.valid {
			assert.True(t, res.Valid(), "dueDate %q should be accepted", tc.dueDate)
		} else {
			assert.False(t, res.Valid(), "dueDate %q should be rejected", tc.dueDate)
			assert.Equal(t, "dueDate", res.Errors[0].Field)
		}
	}
}

func TestValidateTitle(t *testing.T) {
	in := validTaskInput()

	in.Title = " x "
	assert.False(t, ValidateTaskCreate(in).Valid())

	in.Title = strings.Repeat("x", 201)
	assert.False(t, ValidateTaskCreate(in).Valid())

	in.Title = "Do"
	assert.True(t, ValidateTaskCreate(in).Valid())
}

func TestValidateDescription(t *testing.T) {
	in := validTaskInput()

	in.Description = ""
	assert.True(t, ValidateTaskCreate(in).Valid(), "description is optional")

	in.Description = strings.Repeat("x", 500)
	assert.True(t, ValidateTaskCreate(in).Valid())

	in.Description = strings.Repeat("x", 501)
	assert.False(t, ValidateTaskCreate(in).Valid())
}

func TestValidateContactIDRequired(t *testing.T) {
	in := validTaskInput()
	in.ContactID = "   "
	res := ValidateTaskCreate(in)
	assert.False(t, res.Valid())
	assert.Equal(t, "contactId", res.Errors[0].Field)
}

func TestValidateTaskCreateAggregatesAllErrors(t *testing.T) {
	pinToday(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	res := ValidateTaskCreate(models.CreateTaskInput{
		ContactID:   "",
		Title:       "x",
		Description: strings.Repeat("x", 501),
		DueDate:     "2020-01-01",
	})
	fields := make([]string, len(res.Errors))
	for i, e := range res.Errors {
		fields[i] = e.Field
	}
	assert.Equal(t, []string{"contactId", "title", "description", "dueDate"}, fields)
}

func TestValidateTaskUpdateSkipsAbsentFields(t *testing.T) {
	assert.True(t, ValidateTaskUpdate(models.UpdateTaskInput{}).Valid())

	badTitle := "x"
	res := ValidateTaskUpdate(models.UpdateTaskInput{Title: &badTitle})
	assert.False(t, res.Valid())
	assert.Len(t, res.Errors, 1)

	// Clearing an optional field with an empty string passes.
	empty := ""
	assert.True(t, ValidateTaskUpdate(models.UpdateTaskInput{Description: &empty, DueDate: &empty}).Valid())

	done := true
	assert.True(t, ValidateTaskUpdate(models.UpdateTaskInput{Completed: &done}).Valid())
}
