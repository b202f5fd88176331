package app

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/api"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/config"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/handlers"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/service"
	"github.com/jordanbarnes94/hmcts-tasks-frontend/internal/web"
)

type App struct {
	cfg    config.Config
	log    *zap.Logger
	router *gin.Engine
}

// New wires the client, service and handlers into a router. The API client is
// the only outbound dependency; there is no database and no cache here.
func New(cfg config.Config, log *zap.Logger) *App {
	client := api.New(cfg.API)
	svc := service.NewTaskService(client)
	taskHandler := handlers.NewTaskHandler(svc, log)

	return &App{
		cfg:    cfg,
		log:    log,
		router: newRouter(cfg, log, taskHandler),
	}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func newRouter(cfg config.Config, log *zap.Logger, taskHandler *handlers.TaskHandler) *gin.Engine {
	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(log), noStore())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	r.SetHTMLTemplate(web.Templates())

	Setup(r, cfg, taskHandler)
	return r
}
