//go:build lambda
// +build lambda

package main

import (
	"context"
	"strings"

	"peerswap-api/internal/auth"
	"peerswap-api/internal/config"
	"peerswap-api/internal/logger"
	"peerswap-api/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var ginLambda *ginadapter.GinLambda

func init() {
	cfg, err := config.Load(config.New())
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}
	logger.InitLogger(cfg.Stage)

	srv, err := server.Bootstrap(context.Background(), cfg, logger.Log)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}

	engine, ok := srv.Handler().(*gin.Engine)
	if !ok {
		logger.Fatal("Server handler is not a gin engine")
	}
	ginLambda = ginadapter.New(engine)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if ce := logger.Log.Check(zap.DebugLevel, "Received Lambda request"); ce != nil {
		ce.Write(
			zap.String("path", req.Path),
			zap.String("request", spew.Sdump(redact(req))),
		)
	}

	return ginLambda.ProxyWithContext(ctx, req)
}

// redact drops the macaroon from a copy of req before it is logged.
func redact(req events.APIGatewayProxyRequest) events.APIGatewayProxyRequest {
	headers := make(map[string]string, len(req.Headers))
	for k, v := range req.Headers {
		if strings.EqualFold(k, auth.MacaroonHeader) {
			v = "[REDACTED]"
		}
		headers[k] = v
	}
	req.Headers = headers
	req.MultiValueHeaders = nil
	return req
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
