package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flounderx/presale-backend/internal/aws"
	"github.com/flounderx/presale-backend/internal/gateway"
	"github.com/flounderx/presale-backend/internal/notify"
	"github.com/flounderx/presale-backend/internal/orders"
	"github.com/flounderx/presale-backend/internal/payments"
	"github.com/flounderx/presale-backend/internal/validation"
)

// HandlerConfig groups dependencies for the payment API.
type HandlerConfig struct {
	Gateway          gateway.Gateway
	DynamoDBClient   aws.DynamoDBAPI
	SQSClient        aws.SQSAPI
	CloudWatchClient aws.CloudWatchAPI
	OrdersTable      string
	QueueURL         string
	MetricsNamespace string
	// GiveawayNotifier delivers giveaway confirmations synchronously; the
	// giveaway flow has no ledger, so it does not go through the queue.
	GiveawayNotifier notify.Notifier
}

// RegisterPaymentRoutes wires the payment and giveaway endpoints.
func RegisterPaymentRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	ledger := orders.NewStore(cfg.DynamoDBClient, cfg.OrdersTable)
	publisher := aws.NewPublisher(cfg.SQSClient, cfg.QueueURL)
	var metrics *aws.MetricsEmitter
	if cfg.CloudWatchClient != nil {
		metrics = aws.NewMetricsEmitter(cfg.CloudWatchClient, cfg.MetricsNamespace)
	}
	orchestrator := payments.NewOrchestrator(cfg.Gateway, ledger, notify.NewQueueNotifier(publisher), metrics)

	r.POST("/api/create-payment-intent", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.CreateIntentRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}

		res, err := orchestrator.RequestIntent(ctx, payments.IntentRequest{
			Email:    req.Email,
			Amount:   req.Amount,
			CardName: req.CardName,
		})
		if err != nil {
			status, body := intentErrorResponse(err)
			c.JSON(status, body)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"clientSecret":    res.ClientSecret,
			"paymentIntentId": res.Reference,
		})
	})

	r.POST("/api/confirm-payment", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.ConfirmPaymentRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		res, err := orchestrator.ConfirmPayment(ctx, payments.ConfirmRequest{
			Reference: req.PaymentIntentID,
			CardToken: req.CardToken,
			Email:     req.Email,
			Amount:    req.Amount,
			CardName:  req.CardName,
		})
		if err != nil {
			status, body := confirmErrorResponse(err)
			c.JSON(status, body)
			return
		}

		if !res.Settled {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Payment was not completed.",
				"outcome": res.Outcome,
				"reason":  res.DeclineReason,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Payment confirmed and order recorded.",
			"order":   res.Order,
		})
	})

	r.GET("/api/orders", func(c *gin.Context) {
		list, err := orchestrator.ListOrders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
			return
		}
		if list == nil {
			list = []orders.Order{}
		}
		c.JSON(http.StatusOK, list)
	})

	r.POST("/api/giveaway", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.GiveawayRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		msg := notify.GiveawayMessage(notify.GiveawayEntry{
			Email:          req.Email,
			Username:       req.Username,
			Amount:         req.Amount,
			BaseCoins:      req.BaseCoins,
			BonusCoins:     req.BonusCoins,
			TotalCoins:     req.TotalCoins,
			EstimatedValue: req.EstimatedValue,
		})
		if outcome := cfg.GiveawayNotifier.Send(ctx, msg); outcome == notify.OutcomeFailed {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error. Email not sent."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully!"})
	})
}

// intentErrorResponse maps RequestIntent failures onto the HTTP surface:
// validation problems are the client's 400, everything at the processor
// boundary is a 500.
func intentErrorResponse(err error) (int, gin.H) {
	switch {
	case errors.Is(err, payments.ErrMissingFields),
		errors.Is(err, payments.ErrBelowMinimum),
		errors.Is(err, gateway.ErrInvalidAmount):
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	default:
		return http.StatusInternalServerError, gin.H{"error": "payment service unavailable"}
	}
}

func confirmErrorResponse(err error) (int, gin.H) {
	if errors.Is(err, payments.ErrMissingPaymentDetails) {
		return http.StatusBadRequest, gin.H{"success": false, "error": err.Error()}
	}
	return http.StatusInternalServerError, gin.H{"success": false, "error": "payment confirmation failed"}
}
