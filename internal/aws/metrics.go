package aws

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// Metric names emitted by the payment flow.
const (
	MetricOrdersSettled        = "OrdersSettled"
	MetricPaymentsDeclined     = "PaymentsDeclined"
	MetricNotificationFailures = "NotificationFailures"
)

// MetricsEmitter publishes best-effort counters to CloudWatch.
// A nil emitter is valid and drops everything; emit failures are logged, never surfaced.
type MetricsEmitter struct {
	client    CloudWatchAPI
	namespace string
}

// NewMetricsEmitter returns an emitter bound to a namespace.
func NewMetricsEmitter(client CloudWatchAPI, namespace string) *MetricsEmitter {
	return &MetricsEmitter{
		client:    client,
		namespace: namespace,
	}
}

// Count adds 1 to the named counter.
func (m *MetricsEmitter) Count(ctx context.Context, name string) {
	if m == nil || m.client == nil {
		return
	}
	input := &cloudwatch.PutMetricDataInput{
		Namespace: &m.namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: &name,
				Value:      awsFloat64(1),
				Unit:       cwtypes.StandardUnitCount,
			},
		},
	}
	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		log.Printf("metrics: put %s failed: %v", name, err)
	}
}

func awsFloat64(f float64) *float64 { return &f }
