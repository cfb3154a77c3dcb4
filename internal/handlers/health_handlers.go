package handlers

import (
	"context"
	"net/http"
	"time"

	"peerswap-api/internal/client/lightning"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const readyTimeout = 3 * time.Second

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	node  lightning.Caller
	stage string
	log   *zap.Logger
}

// NewHealthHandler creates a health handler. node may be nil, in which case
// readiness only reports the process as up.
func NewHealthHandler(node lightning.Caller, stage string, log *zap.Logger) *HealthHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HealthHandler{
		node:  node,
		stage: stage,
		log:   log,
	}
}

// HealthResponse is the body of both health endpoints.
type HealthResponse struct {
	Status string `json:"status"`
	Stage  string `json:"stage,omitempty"`
	Node   string `json:"node,omitempty"`
}

// Health godoc
// @Summary      Health check
// @Description  Checks if the server is running
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse   "Returns health status"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Stage:  h.stage,
	})
}

// Ready godoc
// @Summary      Readiness check
// @Description  Checks that the Lightning node answers RPC calls
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  HealthResponse
// @Router       /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.node == nil {
		c.JSON(http.StatusOK, HealthResponse{Status: "ok", Stage: h.stage})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if _, err := h.node.Call(ctx, "getinfo", nil); err != nil {
		requestLogger(c, h.log).Warn("lightning node not ready", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status: "unavailable",
			Stage:  h.stage,
			Node:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Stage: h.stage, Node: "reachable"})
}
