package queue

import (
	"context"
	"fmt"
	"time"

	"netrca/pkg/ingest"
	"netrca/pkg/logger"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RunConsumer consumes the index queue until ctx is done. Messages are
// processed one at a time; failures go to the retry queue and, after ten
// attempts, to the dead-letter queue.
func RunConsumer(
	ctx context.Context,
	conn *amqp.Connection,
	s3Client *awss3.Client,
	pipeline *ingest.Pipeline,
) error {
	consumerCh, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open consumer channel: %w", err)
	}
	defer consumerCh.Close()

	if err := consumerCh.Qos(1, 0, true); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	consumerTag := fmt.Sprintf("%s_consumer", IndexQueue)
	msgs, err := consumerCh.Consume(
		IndexQueue,
		consumerTag,
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	logger.Info("Listening for messages", "queue", IndexQueue)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopping consumer", "queue", IndexQueue)
			return nil
		case msg, ok := <-msgs:
			if !ok {
				logger.Info("Message channel closed", "queue", IndexQueue)
				return nil
			}

			startTime := time.Now()
			logger.Info("Received message", "queue", IndexQueue)

			processingErr := ProcessIndexMessage(ctx, s3Client, pipeline, string(msg.Body))
			if processingErr != nil {
				logger.Error("Error processing message", "queue", IndexQueue, "err", processingErr)
				handleProcessingError(consumerCh, msg, IndexQueue)
			} else {
				if err := msg.Ack(false); err != nil {
					logger.Error("Failed to ack message", "err", err)
				}
				logger.Info("Message processed successfully", "queue", IndexQueue)
			}

			processingDuration := time.Since(startTime)
			hours := int(processingDuration.Hours())
			minutes := int(processingDuration.Minutes()) % 60
			seconds := int(processingDuration.Seconds()) % 60
			logger.Info(
				"Processing time",
				"duration", fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds),
			)
			logger.Info("Waiting for next message")
		}
	}
}

func handleProcessingError(ch *amqp.Channel, msg amqp.Delivery, queueName string) {
	retries := 0
	if val, ok := msg.Headers["x-retries"]; ok {
		if v, ok := val.(int32); ok {
			retries = int(v)
		}
	}

	// If message has been retried 10 times, send to dead-letter
	if retries >= 10 {
		dlqName := queueName + "_dlq"
		logger.Info("Sending message to DLQ", "dlq", dlqName)
		pubErr := ch.Publish(
			"",
			dlqName,
			false,
			false,
			amqp.Publishing{
				ContentType: "text/plain",
				Body:        msg.Body,
				Headers:     msg.Headers,
			},
		)
		if pubErr != nil {
			logger.Error("Failed to publish to DLQ", "dlq", dlqName, "err", pubErr)
			msg.Nack(false, true)
			return
		}
		msg.Ack(false)
		return
	}

	retryName := queueName + "_retry"
	headers := msg.Headers
	if headers == nil {
		headers = amqp.Table{}
	}
	headers["x-retries"] = retries + 1

	pubErr := ch.Publish(
		"",
		retryName,
		false,
		false,
		amqp.Publishing{
			ContentType: "text/plain",
			Body:        msg.Body,
			Headers:     headers,
		},
	)
	if pubErr != nil {
		logger.Error("Failed to publish to retry queue", "retry_queue", retryName, "err", pubErr)
		msg.Nack(false, true)
		return
	}
	msg.Ack(false)
}
