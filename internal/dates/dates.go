// Package dates converts between the split day/month/year form fields used on
// GOV.UK-style date inputs and the remote API's ISO datetime strings, and
// renders those strings for display.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const isoLayout = "2006-01-02T15:04:05"

// ParseParts builds an ISO datetime string (YYYY-MM-DDT00:00:00) from the
// three form fields. ok is false when any field is empty. This is a pure
// formatter: calendar validity is the form validator's job.
//
// ParseParts("15", "3", "2024") -> "2024-03-15T00:00:00"
func ParseParts(day, month, year string) (string, bool) {
	if day == "" || month == "" || year == "" {
		return "", false
	}
	return fmt.Sprintf("%s-%s-%sT00:00:00", year, pad2(month), pad2(day)), true
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// ExtractParts splits an ISO datetime into the form field values, dropping
// leading zeros from day and month the way the date inputs display them.
//
// ExtractParts("2024-03-15T00:00:00") -> "15", "3", "2024"
func ExtractParts(iso string) (day, month, year string) {
	datePart, _, _ := strings.Cut(iso, "T")
	fields := strings.SplitN(datePart, "-", 3)
	if len(fields) != 3 {
		return "", "", ""
	}
	year = fields[0]
	month = trimZeros(fields[1])
	day = trimZeros(fields[2])
	return day, month, year
}

func trimZeros(s string) string {
	if n, err := strconv.Atoi(s); err == nil {
		return strconv.Itoa(n)
	}
	return s
}

// FormatDate renders an ISO datetime as a UK date without time, e.g.
// "15 March 2024". Timestamps without an explicit zone are read as UTC so the
// displayed day never drifts with the server's local timezone.
func FormatDate(iso string) string {
	t, err := parseUTC(iso)
	if err != nil {
		return iso
	}
	return t.Format("2 January 2006")
}

// FormatDateTime is FormatDate plus 24-hour time, e.g. "15 March 2024, 10:30:00".
func FormatDateTime(iso string) string {
	t, err := parseUTC(iso)
	if err != nil {
		return iso
	}
	return t.Format("2 January 2006, 15:04:05")
}

func parseUTC(iso string) (time.Time, error) {
	if strings.HasSuffix(iso, "Z") || strings.Contains(iso, "+") {
		return time.Parse(time.RFC3339, iso)
	}
	return time.ParseInLocation(isoLayout, iso, time.UTC)
}
