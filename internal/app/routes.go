package app

import (
	"github.com/gin-gonic/gin"

	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/config"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/handlers"
)

// Setup registers all routes on the given engine. The table is static and in
// one place so registration order is deterministic.
func Setup(r *gin.Engine, cfg config.Config, tasks *handlers.TaskHandler) {
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))

	r.GET("/", tasks.Home)
	r.GET("/tasks/new", tasks.NewForm)
	r.POST("/tasks", tasks.Create)
	r.GET("/tasks/:id", tasks.View)
	r.GET("/tasks/:id/edit", tasks.EditForm)
	r.POST("/tasks/:id", tasks.Update)
	r.GET("/tasks/:id/delete", tasks.ConfirmDelete)
	r.POST("/tasks/:id/delete", tasks.Delete)

	r.NoRoute(handlers.NotFound)
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}
