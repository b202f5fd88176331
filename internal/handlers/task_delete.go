package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/api"
)

// ConfirmDelete shows the delete confirmation page for a task.
func (h *TaskHandler) ConfirmDelete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("fetch task for delete", zap.String("id", id), zap.Error(err))

		if api.Classify(err).Kind == api.KindNotFound {
			renderNotFound(c, "Task not found")
			return
		}
		renderError(c, "Unable to load task")
		return
	}

	c.HTML(http.StatusOK, "task_delete.html", gin.H{
		"Title": "Delete task",
		"Task":  newTaskView(task),
		"Error": nil,
	})
}

// Delete performs the deletion. It is a POST because HTML forms cannot send a
// DELETE; the service issues the real DELETE to the API. If deleting fails for
// a reason other than 404, the task is re-fetched so the confirmation page can
// be re-rendered with an error; only when that also fails does the user get
// the generic error page.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.log.Error("delete task", zap.String("id", id), zap.Error(err))

		if api.Classify(err).Kind == api.KindNotFound {
			renderNotFound(c, "Task not found")
			return
		}

		task, fetchErr := h.svc.GetByID(c.Request.Context(), id)
		if fetchErr != nil {
			h.log.Error("refetch task after failed delete", zap.String("id", id), zap.Error(fetchErr))
			renderError(c, "Unable to delete task")
			return
		}
		c.HTML(http.StatusOK, "task_delete.html", gin.H{
			"Title": "Delete task",
			"Task":  newTaskView(task),
			"Error": problemBanner("Unable to delete task. Please try again later."),
		})
		return
	}

	redirectWithFlash(c, "/", "Task deleted successfully", "success")
}
