//go:build lambda
// +build lambda

package main

import (
	"context"

	_ "globe-api/docs" // This will be generated
	"globe-api/internal/logger"
	"globe-api/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           GloBE Compliance API
// @version         1.0
// @description     Pillar Two top-up tax, safe harbour and GIR filing calculators
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @host      localhost:8000
// @BasePath  /api/v1

var ginLambda *ginadapter.GinLambda

func init() {
	// Initialize logger
	logger.InitLogger()

	// Initialize your Gin router
	r := gin.Default()

	// Initialize Handlers
	server.InitializeHandlers()

	// Initialize routes
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Add debug logging
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.Any("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
