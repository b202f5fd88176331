package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/api"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/dates"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/domain"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/forms"
)

// NewForm shows the blank create form.
func (h *TaskHandler) NewForm(c *gin.Context) {
	h.renderCreate(c, forms.TaskForm{}, nil)
}

// Create handles the create form submission. Validation failures re-render the
// form with the entered values kept; new tasks always start as PENDING.
func (h *TaskHandler) Create(c *gin.Context) {
	form := forms.TaskForm{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Day:         c.PostForm("dueDate-day"),
		Month:       c.PostForm("dueDate-month"),
		Year:        c.PostForm("dueDate-year"),
	}

	if errs := forms.Validate(form.Title, form.Day, form.Month, form.Year, nil); len(errs) > 0 {
		h.renderCreate(c, form, errs)
		return
	}

	dueDate, _ := dates.ParseParts(form.Day, form.Month, form.Year)

	created, err := h.svc.Create(c.Request.Context(), domain.TaskRequest{
		Title:       form.Title,
		Description: optional(form.Description),
		DueDate:     dueDate,
		Status:      domain.StatusPending,
	})
	if err != nil {
		h.log.Error("create task", zap.Error(err))

		switch result := api.Classify(err); result.Kind {
		case api.KindValidation:
			h.renderCreate(c, form, remoteErrors(result))
		default:
			h.renderCreate(c, form, map[string]string{"_message": "Unable to create task. Please try again."})
		}
		return
	}

	redirectWithFlash(c, fmt.Sprintf("/tasks/%d", created.ID), "Task created successfully", "success")
}

func (h *TaskHandler) renderCreate(c *gin.Context, form forms.TaskForm, errs map[string]string) {
	c.HTML(statusFor(errs), "task_new.html", gin.H{
		"Title":  "Create task",
		"Form":   form,
		"Errors": errs,
	})
}

// remoteErrors turns a 400 classification into form field errors, falling back
// to the API's message when no field detail came back.
func remoteErrors(result api.Classification) map[string]string {
	if result.Fields != nil {
		return forms.RemoteFieldErrors(result.Fields)
	}
	return map[string]string{"_message": result.Message}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func statusFor(errs map[string]string) int {
	if len(errs) > 0 {
		return http.StatusBadRequest
	}
	return http.StatusOK
}
