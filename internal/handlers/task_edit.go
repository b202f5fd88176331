package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/api"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/dates"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/domain"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/forms"
)

// EditForm shows the edit form prefilled from a fresh fetch.
func (h *TaskHandler) EditForm(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("fetch task for edit", zap.String("id", id), zap.Error(err))

		if api.Classify(err).Kind == api.KindNotFound {
			renderNotFound(c, "Task not found")
			return
		}
		renderError(c, "Unable to load task for editing")
		return
	}

	day, month, year := dates.ExtractParts(task.DueDate)
	h.renderEdit(c, forms.TaskForm{
		ID:          strconv.FormatInt(task.ID, 10),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Day:         day,
		Month:       month,
		Year:        year,
	}, nil)
}

// Update handles the edit form submission. Unlike create, the status field is
// on the form, so a blank status is a validation error.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	status := c.PostForm("status")
	form := forms.TaskForm{
		ID:          id,
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Status:      status,
		Day:         c.PostForm("dueDate-day"),
		Month:       c.PostForm("dueDate-month"),
		Year:        c.PostForm("dueDate-year"),
	}

	if errs := forms.Validate(form.Title, form.Day, form.Month, form.Year, &status); len(errs) > 0 {
		h.renderEdit(c, form, errs)
		return
	}

	dueDate, _ := dates.ParseParts(form.Day, form.Month, form.Year)

	_, err := h.svc.Update(c.Request.Context(), id, domain.TaskRequest{
		Title:       form.Title,
		Description: optional(form.Description),
		DueDate:     dueDate,
		Status:      domain.TaskStatus(status),
	})
	if err != nil {
		h.log.Error("update task", zap.String("id", id), zap.Error(err))

		switch result := api.Classify(err); result.Kind {
		case api.KindValidation:
			h.renderEdit(c, form, remoteErrors(result))
		default:
			h.renderEdit(c, form, map[string]string{"_message": "Unable to update task. Please try again."})
		}
		return
	}

	redirectWithFlash(c, "/tasks/"+id, "Task updated successfully", "success")
}

func (h *TaskHandler) renderEdit(c *gin.Context, form forms.TaskForm, errs map[string]string) {
	c.HTML(statusFor(errs), "task_edit.html", gin.H{
		"Title":         "Edit task",
		"Form":          form,
		"StatusOptions": domain.StatusOptions,
		"Errors":        errs,
	})
}
