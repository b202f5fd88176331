// Package handlers contains the gin route handlers. Each handler is stateless
// per invocation: it parses input, calls the task service, classifies any
// failure and picks a template plus view-model to render. No task state is
// held between requests.
package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/dates"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/domain"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/service"
)

type TaskHandler struct {
	svc *service.TaskService
	log *zap.Logger
}

func NewTaskHandler(svc *service.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: log}
}

// taskView is a task with its dates formatted for display.
type taskView struct {
	ID            int64
	Title         string
	Description   string
	Status        domain.TaskStatus
	StatusDisplay string
	DueDate       string
	CreatedAt     string
	UpdatedAt     string
}

func newTaskView(t domain.Task) taskView {
	return taskView{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		Status:        t.Status,
		StatusDisplay: t.Status.Display(),
		DueDate:       dates.FormatDate(t.DueDate),
		CreatedAt:     dates.FormatDateTime(t.CreatedAt),
		UpdatedAt:     dates.FormatDateTime(t.UpdatedAt),
	}
}

// banner is the generic inline error shown when the remote API is unreachable.
type banner struct {
	Title   string
	Message string
}

func problemBanner(message string) *banner {
	return &banner{Title: "There is a problem", Message: message}
}

// redirectWithFlash sends the user to target with the flash message encoded in
// the query string. The receiving page reads it once; nothing is stored
// server-side.
func redirectWithFlash(c *gin.Context, target, message, kind string) {
	params := url.Values{}
	params.Set("flashMessageText", message)
	params.Set("flashMessageType", kind)
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	c.Redirect(http.StatusFound, target+sep+params.Encode())
}

// taskID validates the numeric-only path segment. Non-numeric ids get the
// not-found page, which also keeps /tasks/new unshadowed by the :id routes.
func taskID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !digitsOnly(id) {
		renderNotFound(c, "")
		return "", false
	}
	return id, true
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func renderNotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Task not found"
	}
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{
		"Title":   "Page not found",
		"Message": message,
	})
}

func renderError(c *gin.Context, message string) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Title":   "Sorry, there is a problem with the service",
		"Message": message,
	})
}

// NotFound is the fallback for unmatched routes.
func NotFound(c *gin.Context) {
	renderNotFound(c, "")
}
