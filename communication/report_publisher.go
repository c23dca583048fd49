package communication

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/stats"
)

const (
	contentTypeJson = "application/json"
	publishTimeout  = 5 * time.Second
)

type queuePublisher interface {
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error
}

// ReportPublisher publishes each generated report as JSON in a RabbitMQ queue
type ReportPublisher struct {
	publisher queuePublisher
	queueName string
	closer    func() error
}

// NewReportPublisher declares the output queue and returns a publisher that writes on it
func NewReportPublisher(rabbitMQ *RabbitMQ, queueConfig QueueDeclarationConfig) (*ReportPublisher, error) {
	err := rabbitMQ.DeclareNonAnonymousQueues([]QueueDeclarationConfig{queueConfig})
	if err != nil {
		return nil, err
	}

	log.Infof("[publisher: report][queue: %s][status: OK] queue declared correctly!", queueConfig.Name)
	return &ReportPublisher{
		publisher: rabbitMQ,
		queueName: queueConfig.Name,
		closer:    rabbitMQ.KillBadBunny,
	}, nil
}

func (rp *ReportPublisher) Publish(ctx context.Context, report *stats.Report) error {
	reportBytes, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("error marshalling report: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = rp.publisher.PublishMessageInQueue(ctx, rp.queueName, reportBytes, contentTypeJson)
	if err != nil {
		return fmt.Errorf("error publishing report in queue %s: %w", rp.queueName, err)
	}

	log.Debugf("[publisher: report][queue: %s][session: %s] report published", rp.queueName, report.Metadata.GetSessionID())
	return nil
}

func (rp *ReportPublisher) Close() error {
	if rp.closer == nil {
		return nil
	}
	return rp.closer()
}
