package v1

import (
	"net/http"

	"github.com/perf-studios/waitlist-backend/internal/config"
	"github.com/perf-studios/waitlist-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// @title Waitlist API
// @version 1.0
// @description Email-capture waitlist backend for the coming soon site

// @BasePath /api/v1

type Handler struct {
	services *service.Services
	config   *config.Config
}

func NewHandler(services *service.Services, config *config.Config) *Handler {
	return &Handler{
		services: services,
		config:   config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	v1.GET("/ping", h.ping)

	h.initSignupsRoutes(v1)
}

// @Summary Ping
// @Tags Ping
// @Description Liveness probe
// @Produce plain
// @Success 200
// @Router /ping [get]
func (h *Handler) ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}
