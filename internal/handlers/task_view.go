package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/api"
)

// View renders a single task. A 404 from the API gets the not-found page; any
// other failure keeps the page but shows an inline error banner.
func (h *TaskHandler) View(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}

	task, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log.Error("fetch task", zap.String("id", id), zap.Error(err))

		if api.Classify(err).Kind == api.KindNotFound {
			renderNotFound(c, "Task not found")
			return
		}
		c.HTML(http.StatusOK, "task_view.html", gin.H{
			"Title": "Task",
			"Task":  nil,
			"Error": problemBanner("Unable to load task. Please try again later."),
		})
		return
	}

	view := newTaskView(task)
	c.HTML(http.StatusOK, "task_view.html", gin.H{
		"Title":     view.Title,
		"Task":      view,
		"FlashText": c.Query("flashMessageText"),
		"FlashType": c.Query("flashMessageType"),
		"Error":     nil,
	})
}
