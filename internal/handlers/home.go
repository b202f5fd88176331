package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/dates"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/domain"
)

type paginationView struct {
	CurrentPage   int
	TotalPages    int
	TotalElements int
	Size          int
	IsFirst       bool
	IsLast        bool
	PreviousURL   string
	NextURL       string
	Items         []pageItem
	StartItem     int
	EndItem       int
}

type pageItem struct {
	Number  int
	Current bool
	Href    string
}

// Home renders the task list with filters, pagination and any flash banner.
// On a failed fetch it renders the same page with an empty list and a generic
// error banner rather than an error page.
func (h *TaskHandler) Home(c *gin.Context) {
	query := c.Request.URL.Query()
	params := extractSearchParams(query)

	page, err := h.svc.Search(c.Request.Context(), params)
	if err != nil {
		h.log.Error("fetch tasks", zap.Error(err))
		c.HTML(http.StatusOK, "home.html", gin.H{
			"Title":         "Tasks",
			"Tasks":         nil,
			"Pagination":    nil,
			"Filters":       query,
			"StatusOptions": domain.StatusOptions,
			"Error":         problemBanner("Unable to load tasks. Please try again later."),
		})
		return
	}

	tasks := make([]taskView, 0, len(page.Content))
	for _, t := range page.Content {
		tasks = append(tasks, newTaskView(t))
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":         "Tasks",
		"Tasks":         tasks,
		"Pagination":    buildPagination(query, page.Page),
		"Filters":       query,
		"StatusOptions": domain.StatusOptions,
		"FlashText":     c.Query("flashMessageText"),
		"FlashType":     c.Query("flashMessageType"),
		"Error":         nil,
	})
}

// extractSearchParams builds TaskSearchParams from the query string: page
// defaults to 0, size to 20, the due date bounds come from split
// day/month/year fields.
func extractSearchParams(query url.Values) domain.TaskSearchParams {
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err := strconv.Atoi(query.Get("size"))
	if err != nil || size <= 0 {
		size = 20
	}

	params := domain.TaskSearchParams{
		Page:   page,
		Size:   size,
		Search: strings.TrimSpace(query.Get("search")),
		Status: query.Get("status"),
	}
	if from, ok := dates.ParseParts(query.Get("dueDateFrom-day"), query.Get("dueDateFrom-month"), query.Get("dueDateFrom-year")); ok {
		params.DueDateFrom = from
	}
	if to, ok := dates.ParseParts(query.Get("dueDateTo-day"), query.Get("dueDateTo-month"), query.Get("dueDateTo-year")); ok {
		params.DueDateTo = to
	}
	return params
}

func buildPagination(query url.Values, meta domain.PageMeta) *paginationView {
	pageURL := func(n int) string {
		q := url.Values{}
		for k, vs := range query {
			q[k] = vs
		}
		q.Set("page", strconv.Itoa(n))
		return "/?" + q.Encode()
	}

	isFirst := meta.Number == 0
	isLast := meta.Number == meta.TotalPages-1

	items := make([]pageItem, 0, meta.TotalPages)
	for i := 0; i < meta.TotalPages; i++ {
		items = append(items, pageItem{Number: i + 1, Current: i == meta.Number, Href: pageURL(i)})
	}

	p := &paginationView{
		CurrentPage:   meta.Number,
		TotalPages:    meta.TotalPages,
		TotalElements: meta.TotalElements,
		Size:          meta.Size,
		IsFirst:       isFirst,
		IsLast:        isLast,
		Items:         items,
		StartItem:     meta.Number*meta.Size + 1,
		EndItem:       min((meta.Number+1)*meta.Size, meta.TotalElements),
	}
	if !isFirst {
		p.PreviousURL = pageURL(meta.Number - 1)
	}
	if !isLast {
		p.NextURL = pageURL(meta.Number + 1)
	}
	return p
}
