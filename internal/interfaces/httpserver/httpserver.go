package httpserver

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"giphy-gateway/internal/infrastructure/config"
	"giphy-gateway/internal/interfaces/httpserver/middlewares"
	v1 "giphy-gateway/internal/interfaces/httpserver/routes/v1"
)

type HTTPServer struct {
	router    *gin.Engine
	config    *config.Config
	gifRoute  *v1.GifRoute
	setupOnce sync.Once
}

func NewHTTPServer(
	cfg *config.Config,
	gifRoute *v1.GifRoute,
) *HTTPServer {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger())
	router.Use(middlewares.CORS())
	router.Use(middlewares.MetricsRecorder())

	return &HTTPServer{
		router:   router,
		config:   cfg,
		gifRoute: gifRoute,
	}
}

func (s *HTTPServer) setupRoutes() {
	s.setupOnce.Do(s.registerRoutes)
}

func (s *HTTPServer) registerRoutes() {
	// Health check endpoints
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "giphy-gateway"})
	})

	s.router.GET("/readyz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ready", "service": "giphy-gateway"})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register versioned routes
	group := s.router.Group("/v1")
	s.gifRoute.RegisterRouter(group)
}

func (s *HTTPServer) Run() error {
	s.setupRoutes()
	addr := fmt.Sprintf(":%s", s.config.HTTPPort)
	return s.router.Run(addr)
}

// Handler exposes the configured engine, used by tests.
func (s *HTTPServer) Handler() *gin.Engine {
	s.setupRoutes()
	return s.router
}
