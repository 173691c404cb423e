package web

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vip_gate_bot/internal/config"
	"vip_gate_bot/internal/service"
)

type Server struct {
	router   *gin.Engine
	handlers *WebHandlers
	config   *config.Config
}

func NewServer(config *config.Config, userService service.UserService) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	handlers := NewWebHandlers(userService, config)

	api := router.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		admin := api.Group("/admin")
		admin.Use(handlers.AdminAuthMiddleware())
		{
			admin.GET("/users/:id", handlers.GetUser)
			admin.POST("/users/:id/vip", handlers.SetVIP)
			admin.GET("/stats", handlers.GetStats)
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return &Server{
		router:   router,
		handlers: handlers,
		config:   config,
	}
}

func (s *Server) Start() error {
	log.Printf("Starting web server on port %s", s.config.ServerPort)
	return s.router.Run(":" + s.config.ServerPort)
}
