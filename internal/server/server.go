package server

import (
	"context"
	"net/http"

	"eventpass/internal/auth"
	"eventpass/internal/config"
	"eventpass/internal/email"
	"eventpass/internal/enrollment"
	"eventpass/internal/event"
	"eventpass/internal/user"
	"eventpass/internal/wallet"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo, cfg.JWTSecret)
	userHandler := user.NewHandler(userService)

	eventRepo := event.NewRepository(db)
	eventHandler := event.NewHandler(eventRepo)

	walletService := wallet.NewService(wallet.NewPostgresStore(db))
	walletHandler := wallet.NewHandler(walletService)

	enrollmentRepo := enrollment.NewRepository(db)
	enrollmentService := enrollment.NewService(enrollmentRepo, eventRepo, walletService, userRepo, emailService)
	enrollmentHandler := enrollment.NewHandler(enrollmentService)

	public := router.Group("/auth")
	public.Use(RateLimitMiddleware(5, 10))
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/events", eventHandler.ListEvents)
		protected.GET("/events/:eventID", eventHandler.GetEvent)
		protected.POST("/events/:eventID/enroll", enrollmentHandler.Enroll)
		protected.POST("/enrollments/:enrollmentID/cancel", enrollmentHandler.Cancel)
		protected.GET("/enrollments", enrollmentHandler.ListMyEnrollments)
		protected.GET("/wallet", walletHandler.GetState)
		protected.POST("/wallet/topup", walletHandler.TopUp)
		protected.GET("/packages", walletHandler.ListPackages)
		protected.POST("/packages/:packageID/purchase", walletHandler.PurchasePackage)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/events", eventHandler.CreateEvent)
		admin.GET("/events", eventHandler.ListEvents)
		admin.GET("/events/:eventID/enrollments", enrollmentHandler.ListByEvent)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
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
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
