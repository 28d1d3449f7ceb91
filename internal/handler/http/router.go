package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/acmchapter/portal-api/internal/handler/http/middleware"
	usecasecontract "github.com/acmchapter/portal-api/internal/usecase/contract"
)

type Router struct {
	upvoteHandler *UpvoteHandler
	healthHandler *HealthHandler
	config        usecasecontract.IConfigProvider
}

func NewRouter(upvoteUsecase usecasecontract.IUpvoteUseCase, store Pinger, config usecasecontract.IConfigProvider) *Router {
	return &Router{
		upvoteHandler: NewUpvoteHandler(upvoteUsecase),
		healthHandler: NewHealthHandler(store),
		config:        config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.GetCORSAllowOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiter for the mutating upvote route, keyed by the same header
	// chain the identity resolver trusts.
	lmt := tollbooth.NewLimiter(r.config.GetUpvoteRateLimit(), &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"X-Client-IP", "X-Forwarded-For", "X-Real-IP", "RemoteAddr"})
	lmt.SetMessage("Too many requests, please try again later.")

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", r.healthHandler.HealthzHandler)

	api := router.Group("/api")
	blog := api.Group("/blog")
	{
		blog.GET("/:id/upvote-check", r.upvoteHandler.CheckUpvoteHandler)
		blog.GET("/:id/upvotes", r.upvoteHandler.GetUpvoteCountHandler)
		blog.POST("/:id/upvote", middleware.RateLimiter(lmt), r.upvoteHandler.RecordUpvoteHandler)
	}
}
