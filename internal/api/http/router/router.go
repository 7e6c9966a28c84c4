package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plushealth/plushealth-server/internal/api/http/handler"
	"github.com/plushealth/plushealth-server/internal/api/http/middleware"
	"github.com/plushealth/plushealth-server/internal/logger"
	"github.com/plushealth/plushealth-server/internal/model"
	"github.com/plushealth/plushealth-server/internal/service"
)

// Router wires the HTTP handlers onto the route table.
type Router struct {
	accountService     *service.Account
	activityService    *service.Activity
	weightService      *service.Weight
	goalService        *service.Goal
	leaderboardService *service.Leaderboard
	logger             *logger.Logger
}

// New creates a new Router instance over the domain services.
func New(
	accountService *service.Account,
	activityService *service.Activity,
	weightService *service.Weight,
	goalService *service.Goal,
	leaderboardService *service.Leaderboard,
	logger *logger.Logger,
) *Router {
	return &Router{
		accountService:     accountService,
		activityService:    activityService,
		weightService:      weightService,
		goalService:        goalService,
		leaderboardService: leaderboardService,
		logger:             logger,
	}
}

// Register builds the gin engine with middleware and all routes.
func (r *Router) Register() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.NewLogging(r.logger).Handle)

	account := handler.NewAccount(r.accountService, r.logger)
	activity := handler.NewActivity(r.activityService, r.logger)
	weight := handler.NewWeight(r.weightService, r.logger)
	goal := handler.NewGoal(r.goalService, r.logger)
	leaderboard := handler.NewLeaderboard(r.leaderboardService, r.logger)

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Plus Health API")
	})

	engine.POST("/usuarios", account.Register)
	engine.POST("/login", account.Login)
	engine.GET("/usuarios/:id", account.GetProfile)
	engine.PUT("/usuarios/:id", account.UpdateProfile)
	engine.PUT("/usuarios/:id/senha", account.ChangePassword)
	engine.PUT("/redefinir-senha/:id", account.ResetPassword)
	engine.POST("/verificar-email", account.LookupByEmail)
	engine.GET("/verificar-email", account.ConfirmVerification)
	engine.POST("/usuarios/:id/solicitar-exclusao", account.RequestDeletion)
	engine.GET("/confirmar-exclusao", account.ConfirmDeletion)

	engine.POST("/alimentacao", activity.LogEntry(model.ActivityKindFood))
	engine.GET("/alimentacao/:userId", activity.ListEntries(model.ActivityKindFood))
	engine.PUT("/alimentacao/:id", activity.MarkComplete(model.ActivityKindFood))
	engine.POST("/exercicios", activity.LogEntry(model.ActivityKindExercise))
	engine.GET("/exercicios/:userId", activity.ListEntries(model.ActivityKindExercise))
	engine.PUT("/exercicios/:id", activity.MarkComplete(model.ActivityKindExercise))

	dashboard := engine.Group("/dashboard")
	{
		dashboard.POST("/exercicio/concluido", activity.LogCompletedExercise)
		dashboard.POST("/peso", weight.RecordWeight)
		dashboard.GET("/peso", weight.GetHistory)
		dashboard.GET("/evolucao-peso/:userId", weight.GetHistory)
		dashboard.GET("/metas/:userId", goal.ListGoals)
		dashboard.GET("/ranking", leaderboard.GetRanking)
	}

	engine.POST("/metas", goal.CreateGoal)
	engine.PUT("/metas/:id", goal.MarkComplete)
	engine.GET("/metas/:userId", goal.ListGoals)

	return engine
}
