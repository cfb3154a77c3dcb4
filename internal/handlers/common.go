package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"peerswap-api/internal/client/lightning"
	"peerswap-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the failure envelope. Error holds the node's JSON-RPC
// error object when there is one, otherwise the error message.
type ErrorResponse struct {
	Error interface{} `json:"error" swaggertype:"object"`
}

// rpcCall performs one node call on behalf of a request.
type rpcCall func(ctx context.Context) (json.RawMessage, error)

// errorValue is what goes into the error envelope for err.
func errorValue(err error) interface{} {
	if rpcErr, ok := lightning.AsRPCError(err); ok {
		return rpcErr
	}
	return err.Error()
}

// requestLogger returns log annotated with the request's correlation ID.
func requestLogger(c *gin.Context, log *zap.Logger) *zap.Logger {
	return middleware.LogWithCorrelationID(c.Request.Context(), log)
}

// forward runs call and writes its outcome: 200 with the raw result or 500
// with the error envelope. One entry is logged per request before the
// response is written.
func forward(c *gin.Context, log *zap.Logger, operation string, call rpcCall, fields ...zap.Field) {
	log = requestLogger(c, log).With(zap.String("operation", operation))

	result, err := call(c.Request.Context())
	if err != nil {
		log.Warn("peerswap call failed", append(fields, zap.Error(err))...)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: errorValue(err)})
		return
	}

	log.Info("peerswap call succeeded", fields...)
	if len(result) == 0 {
		result = json.RawMessage("null")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

// sendError logs a request failure that happened before any node call and
// responds with the error envelope.
func sendError(c *gin.Context, log *zap.Logger, statusCode int, operation string, err error, fields ...zap.Field) {
	requestLogger(c, log).Warn("peerswap request rejected",
		append(fields,
			zap.String("operation", operation),
			zap.Int("status", statusCode),
			zap.Error(err),
		)...,
	)
	c.JSON(statusCode, ErrorResponse{Error: err.Error()})
}
