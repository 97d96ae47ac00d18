package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfchat/internal/api/middleware"
	"pdfchat/internal/domain"
	"pdfchat/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins   []string
	MaxUploadBytes int64
}

// SetupRouter sets up the Gin router
func SetupRouter(rag *service.RagService, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		resp := domain.HealthResponse{Status: "ok"}
		if gen, ok := rag.CurrentGeneration(); ok {
			resp.Generation = &gen
		}
		c.JSON(http.StatusOK, resp)
	})

	SetupStaticRoutes(r)

	handler := NewHandler(rag, cfg.MaxUploadBytes)
	handler.RegisterRoutes(r)

	return r
}
