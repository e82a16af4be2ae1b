package server

import (
	"context"
	"net/http"

	"gymdesk/internal/checkin"
	"gymdesk/internal/config"
	"gymdesk/internal/export"
	"gymdesk/internal/member"
	"gymdesk/internal/notify"
	"gymdesk/internal/payment"
	"gymdesk/internal/report"
	"gymdesk/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, reminders *notify.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	settingsRepo := settings.NewRepository(db)
	memberRepo := member.NewRepository(db)
	memberService := member.NewService(memberRepo, settingsRepo)
	memberHandler := member.NewHandler(memberService)

	paymentRepo := payment.NewRepository(db)
	paymentService := payment.NewService(paymentRepo, memberRepo)
	paymentHandler := payment.NewHandler(paymentService)

	checkinRepo := checkin.NewRepository(db)
	checkinService := checkin.NewService(checkinRepo, memberRepo)
	checkinHandler := checkin.NewHandler(checkinService)

	settingsHandler := settings.NewHandler(settingsRepo)
	reportHandler := report.NewHandler(report.NewRepository(db))
	exportHandler := export.NewHandler(export.NewService(memberRepo, paymentRepo, settingsRepo))
	notifyHandler := notify.NewHandler(reminders)

	members := router.Group("/members")
	{
		members.POST("", memberHandler.Register)
		members.GET("", memberHandler.List)
		members.GET("/:memberID", memberHandler.Get)
		members.PUT("/:memberID", memberHandler.Update)
		members.DELETE("/:memberID", memberHandler.Delete)
		members.POST("/:memberID/checkin", checkinHandler.Create)
		members.GET("/:memberID/checkins", checkinHandler.ListByMember)
		members.GET("/:memberID/payments", paymentHandler.ListByMember)
	}

	router.POST("/payments", paymentHandler.Record)
	router.GET("/payments", paymentHandler.List)
	router.GET("/checkins", checkinHandler.ListRecent)

	reports := router.Group("/reports")
	{
		reports.GET("/revenue", reportHandler.Revenue)
		reports.GET("/checkins", reportHandler.CheckIns)
		reports.GET("/summary", reportHandler.Summary)
	}

	router.GET("/settings", settingsHandler.Get)
	router.PUT("/settings", settingsHandler.Update)
	router.POST("/settings/verify-pin", settingsHandler.VerifyPin)

	router.GET("/export/csv", exportHandler.CSV)
	router.GET("/export/json", exportHandler.JSON)

	router.POST("/notify/sweep", notifyHandler.Sweep)
	router.GET("/notify/queue", notifyHandler.Queue)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Settings-Pin, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
