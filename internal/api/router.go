package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/hand-recorder/internal/config"
	"github.com/wfunc/hand-recorder/internal/hand"
	"github.com/wfunc/hand-recorder/internal/middleware"
	"github.com/wfunc/hand-recorder/internal/repository"
	"github.com/wfunc/hand-recorder/internal/service"
	"github.com/wfunc/hand-recorder/internal/utils"
	ws "github.com/wfunc/hand-recorder/internal/websocket"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Router API路由器
type Router struct {
	engine         *gin.Engine
	db             *gorm.DB
	handService    service.HandService
	authService    service.AuthService
	authHandler    *AuthHandler
	sessionHandler *SessionHandler
	historyHandler *HistoryHandler
	wsHandler      *WebSocketHandler
	authMiddleware *middleware.AuthMiddleware
	log            *zap.Logger
}

// NewRouter 创建路由器
func NewRouter(db *gorm.DB, manager *hand.Manager, hub *ws.Hub, cfg *config.Config, log *zap.Logger) *Router {
	// 创建Gin引擎
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	engine := gin.New()

	// 全局中间件
	engine.Use(gin.Recovery())
	engine.Use(gin.Logger())

	// 创建服务
	jwtManager := utils.NewJWTManager(
		cfg.Security.JWT.Secret,
		time.Duration(cfg.Security.JWT.ExpireHours)*time.Hour,
		time.Duration(cfg.Security.JWT.RefreshHours)*time.Hour,
	)
	handRepo := repository.NewHandRepository(db)
	handService := service.NewHandService(manager, handRepo, log)
	authService := service.NewAuthService(cfg.Security.Passcode, jwtManager, log)

	// 创建处理器
	authHandler := NewAuthHandler(authService)
	sessionHandler := NewSessionHandler(handService, hub)
	historyHandler := NewHistoryHandler(handService)
	wsHandler := NewWebSocketHandler(hub, log)

	// 创建中间件
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	router := &Router{
		engine:         engine,
		db:             db,
		handService:    handService,
		authService:    authService,
		authHandler:    authHandler,
		sessionHandler: sessionHandler,
		historyHandler: historyHandler,
		wsHandler:      wsHandler,
		authMiddleware: authMiddleware,
		log:            log,
	}

	// 设置路由
	router.setupRoutes()

	return router
}

// setupRoutes 设置路由
func (r *Router) setupRoutes() {
	// 健康检查
	r.engine.GET("/health", r.healthCheck)

	// API文档
	registerOpenAPIRoutes(r.engine)
	registerSwaggerRoutes(r.engine)

	// API v1路由组
	v1 := r.engine.Group("/api/v1")
	{
		// 认证相关路由（不需要认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/refresh", r.authHandler.RefreshToken)
		}

		// 录入会话路由（需要认证）
		sessions := v1.Group("/sessions")
		sessions.Use(r.authMiddleware.RequireAuth())
		{
			sessions.POST("", r.sessionHandler.CreateSession)
			sessions.GET("/:id", r.sessionHandler.GetSession)
			sessions.DELETE("/:id", r.sessionHandler.DeleteSession)
			sessions.PUT("/:id/seats", r.sessionHandler.ConfigureSeats)
			sessions.PUT("/:id/street", r.sessionHandler.SetStreet)
			sessions.PUT("/:id/actor", r.sessionHandler.SelectActor)
			sessions.POST("/:id/actions", r.sessionHandler.RecordAction)
			sessions.POST("/:id/undo", r.sessionHandler.Undo)
			sessions.POST("/:id/save", r.sessionHandler.SaveHand)
			sessions.POST("/:id/reset", r.sessionHandler.ResetHand)
		}

		// 手牌历史路由（需要认证）
		hands := v1.Group("/hands")
		hands.Use(r.authMiddleware.RequireAuth())
		{
			hands.GET("", r.historyHandler.ListHands)
			hands.GET("/:id", r.historyHandler.GetHand)
			hands.DELETE("/:id", r.historyHandler.DeleteHand)
		}

		// WebSocket统计（需要认证）
		v1.GET("/ws/online", r.authMiddleware.RequireAuth(), r.wsHandler.GetOnlineCount)
	}

	// WebSocket路由。握手时从query携带token
	wsGroup := r.engine.Group("/ws")
	wsGroup.Use(r.authMiddleware.RequireAuth())
	{
		wsGroup.GET("", r.wsHandler.SessionWebSocket)
	}

	// 404处理
	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"code":    "NOT_FOUND",
			"message": "接口不存在",
		})
	})
}

// healthCheck 健康检查
func (r *Router) healthCheck(c *gin.Context) {
	// 检查数据库连接
	sqlDB, err := r.db.DB()
	if err != nil {
		c.JSON(500, gin.H{
			"status":  "unhealthy",
			"message": "数据库连接失败",
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(500, gin.H{
			"status":  "unhealthy",
			"message": "数据库ping失败",
		})
		return
	}

	c.JSON(200, gin.H{
		"status":  "healthy",
		"message": "服务运行正常",
	})
}

// Run 运行服务器
func (r *Router) Run(addr string) error {
	r.log.Info("Starting API server", zap.String("address", addr))
	return r.engine.Run(addr)
}

// GetEngine 获取Gin引擎（用于测试）
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
