package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"

	"github.com/flounderx/presale-backend/internal/aws"
	"github.com/flounderx/presale-backend/internal/gateway"
	"github.com/flounderx/presale-backend/internal/handlers"
	"github.com/flounderx/presale-backend/internal/notify"
)

func setupRouter(cfg handlers.HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "Server is running"})
	})

	handlers.RegisterPaymentRoutes(r, cfg)

	return r
}

func main() {
	clients, err := aws.NewAWSClients(context.Background())
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		log.Fatal("STRIPE_SECRET_KEY is required")
	}

	smtpPort := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			smtpPort = n
		}
	}
	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}

	cfg := handlers.HandlerConfig{
		Gateway:          gateway.NewStripeGateway(stripeKey),
		DynamoDBClient:   clients.DynamoDB,
		SQSClient:        clients.SQS,
		CloudWatchClient: clients.CloudWatch,
		OrdersTable:      os.Getenv("ORDERS_TABLE"),
		QueueURL:         os.Getenv("NOTIFY_QUEUE_URL"),
		MetricsNamespace: metricsNamespace(),
		GiveawayNotifier: notify.NewSMTPNotifier(smtpHost, smtpPort, os.Getenv("EMAIL_USER"), os.Getenv("EMAIL_PASSWORD")),
	}

	r := setupRouter(cfg)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3001"
		}
		addr := ":" + port
		log.Printf("running local server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		// the adapter handles proxying; use adapter.ProxyWithContext for proper context propagation
		return adapter.ProxyWithContext(ctx, req)
	})
}

func metricsNamespace() string {
	if ns := os.Getenv("METRICS_NAMESPACE"); ns != "" {
		return ns
	}
	return "FlounderxPresale"
}
