package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/domain"
)

func TestExtractSearchParams_Defaults(t *testing.T) {
	params := extractSearchParams(url.Values{})
	assert.Equal(t, 0, params.Page)
	assert.Equal(t, 20, params.Size)
	assert.Empty(t, params.Search)
	assert.Empty(t, params.DueDateFrom)
	assert.Empty(t, params.DueDateTo)
}

func TestExtractSearchParams_InvalidNumbersFallBack(t *testing.T) {
	query := url.Values{"page": {"abc"}, "size": {"-5"}}
	params := extractSearchParams(query)
	assert.Equal(t, 0, params.Page)
	assert.Equal(t, 20, params.Size)
}

func TestExtractSearchParams_FullQuery(t *testing.T) {
	query := url.Values{
		"page":              {"3"},
		"size":              {"10"},
		"search":            {"  report  "},
		"status":            {"PENDING"},
		"dueDateFrom-day":   {"1"},
		"dueDateFrom-month": {"2"},
		"dueDateFrom-year":  {"2024"},
		"dueDateTo-day":     {"28"},
		"dueDateTo-month":   {"2"},
		"dueDateTo-year":    {"2024"},
	}
	params := extractSearchParams(query)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 10, params.Size)
	assert.Equal(t, "report", params.Search)
	assert.Equal(t, "PENDING", params.Status)
	assert.Equal(t, "2024-02-01T00:00:00", params.DueDateFrom)
	assert.Equal(t, "2024-02-28T00:00:00", params.DueDateTo)
}

func TestExtractSearchParams_PartialDateIgnored(t *testing.T) {
	query := url.Values{
		"dueDateFrom-day":   {"1"},
		"dueDateFrom-month": {"2"},
		// year missing
	}
	params := extractSearchParams(query)
	assert.Empty(t, params.DueDateFrom)
}

func TestBuildPagination(t *testing.T) {
	query := url.Values{"search": {"report"}, "page": {"1"}}
	p := buildPagination(query, domain.PageMeta{Size: 10, Number: 1, TotalElements: 25, TotalPages: 3})

	assert.Equal(t, 1, p.CurrentPage)
	assert.False(t, p.IsFirst)
	assert.False(t, p.IsLast)
	assert.Equal(t, 11, p.StartItem)
	assert.Equal(t, 20, p.EndItem)
	assert.Len(t, p.Items, 3)
	assert.True(t, p.Items[1].Current)

	// page links keep the active filters
	assert.Contains(t, p.PreviousURL, "search=report")
	assert.Contains(t, p.PreviousURL, "page=0")
	assert.Contains(t, p.NextURL, "page=2")
}

func TestBuildPagination_EdgePages(t *testing.T) {
	first := buildPagination(url.Values{}, domain.PageMeta{Size: 10, Number: 0, TotalElements: 25, TotalPages: 3})
	assert.True(t, first.IsFirst)
	assert.Empty(t, first.PreviousURL)
	assert.Equal(t, 1, first.StartItem)
	assert.Equal(t, 10, first.EndItem)

	last := buildPagination(url.Values{}, domain.PageMeta{Size: 10, Number: 2, TotalElements: 25, TotalPages: 3})
	assert.True(t, last.IsLast)
	assert.Empty(t, last.NextURL)
	assert.Equal(t, 21, last.StartItem)
	// the final page shows only what is left
	assert.Equal(t, 25, last.EndItem)
}

func TestDigitsOnly(t *testing.T) {
	assert.True(t, digitsOnly("123"))
	assert.False(t, digitsOnly("12a"))
	assert.False(t, digitsOnly("new"))
	assert.False(t, digitsOnly(""))
}
