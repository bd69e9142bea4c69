package stubapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	apiPrefix = "/api/v1"

	defaultCORSOrigin = "http://localhost:3000"
)

func (s *Server) mapHandlers() {
	s.gin.Use(recovery(s.l))
	s.gin.Use(cors.New(cors.Config{
		AllowOrigins:     s.corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-CSRFToken", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	s.gin.Use(s.csrf())

	s.gin.GET("/health", s.healthCheck)

	auth := s.gin.Group("/api/auth/session")
	{
		auth.GET("/check/", s.handleSessionCheck)
		auth.POST("/login/", s.handleLogin)
		auth.POST("/logout/", s.requireSession(), s.handleLogout)
	}

	api := s.gin.Group(apiPrefix, s.requireSession())
	{
		api.GET("/:resource/", s.handleList)
		api.POST("/:resource/", s.handleCreate)
		api.GET("/:resource/:id/", s.handleRetrieve)
		api.PATCH("/:resource/:id/", s.handleUpdate)
		api.DELETE("/:resource/:id/", s.handleDelete)
		api.POST("/:resource/:id/:action/", s.handleAction)
	}
}

// corsOrigins sanitizes the configured origin list. cors.New rejects
// empty entries outright, so blanks are dropped and an unset config
// falls back to the local admin front-end origin.
func (s *Server) corsOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(s.cfg.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = []string{defaultCORSOrigin}
	}
	return origins
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "printduka-stub",
		"version": "1.0.0",
	})
}
