// Package forms holds the task form view-model and the field validation run
// before anything is submitted to the remote API.
package forms

import (
	"strconv"
	"time"
)

// TaskForm carries the raw field values back into a re-rendered form, plus any
// field errors keyed by field name. It lives for one request/render cycle.
type TaskForm struct {
	ID          string
	Title       string
	Description string
	Status      string
	Day         string
	Month       string
	Year        string
	Errors      map[string]string
}

// Validate checks the task form fields. status is nil on forms without a
// status input (create); a non-nil pointer to an empty string means the field
// was present but left blank. Field checks are independent, so several errors
// can coexist. An empty map means the form is valid.
func Validate(title, day, month, year string, status *string) map[string]string {
	errs := map[string]string{}

	if title == "" {
		errs["title"] = "Enter a title"
	}

	if day == "" || month == "" || year == "" {
		errs["dueDate"] = "Enter a due date"
	} else {
		dayNum, dayErr := strconv.Atoi(day)
		monthNum, monthErr := strconv.Atoi(month)
		_, yearErr := strconv.Atoi(year)

		switch {
		case dayErr != nil || dayNum < 1 || dayNum > 31,
			monthErr != nil || monthNum < 1 || monthNum > 12,
			yearErr != nil || len(year) != 4:
			errs["dueDate"] = "Enter a real due date"
		default:
			// time.Date normalises overflow (31 April becomes 1 May), so a
			// changed month or day means the entered date does not exist.
			yearNum, _ := strconv.Atoi(year)
			t := time.Date(yearNum, time.Month(monthNum), dayNum, 0, 0, 0, 0, time.UTC)
			if int(t.Month()) != monthNum || t.Day() != dayNum {
				errs["dueDate"] = "Enter a real due date"
			}
		}
	}

	if status != nil && *status == "" {
		errs["status"] = "Select a status"
	}

	return errs
}

// RemoteFieldErrors maps the API's 400 validationErrors payload onto the
// canned messages the form templates show. Unknown field names are dropped;
// the API may grow fields this UI does not know how to present.
func RemoteFieldErrors(validationErrors map[string]string) map[string]string {
	errs := map[string]string{}

	if validationErrors["title"] != "" {
		errs["title"] = "Enter a title"
	}
	if validationErrors["description"] != "" {
		errs["description"] = "Enter a description"
	}
	if validationErrors["dueDate"] != "" {
		errs["dueDate"] = "Enter a valid due date"
	}
	if validationErrors["status"] != "" {
		errs["status"] = "Select a status"
	}

	return errs
}
