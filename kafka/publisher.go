package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/stockly/stock-management/pkg/logger"
)

// Publisher wraps a synchronous Kafka producer
type Publisher struct {
	producer sarama.SyncProducer
	brokers  []string
}

// NewPublisher creates a new Kafka publisher
func NewPublisher(brokers []string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Retry.Max = 3
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.MaxMessageBytes = 1000000

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Msg("Kafka publisher initialized")

	return &Publisher{
		producer: producer,
		brokers:  brokers,
	}, nil
}

// PublishStockReplaced publishes a stock.replaced event
func (p *Publisher) PublishStockReplaced(ctx context.Context, event StockReplacedEvent) error {
	event.EventType = EventTypeStockReplaced
	return p.publish(ctx, TopicStockEvents, "stock_"+event.StockID, event.EventType, &event.EventID, &event.Timestamp, &event)
}

// PublishStockDeleted publishes a stock.deleted event
func (p *Publisher) PublishStockDeleted(ctx context.Context, event StockDeletedEvent) error {
	event.EventType = EventTypeStockDeleted
	return p.publish(ctx, TopicStockEvents, "stock_"+event.StockID, event.EventType, &event.EventID, &event.Timestamp, &event)
}

// PublishProductDeleted publishes a product.deleted event
func (p *Publisher) PublishProductDeleted(ctx context.Context, event ProductDeletedEvent) error {
	event.EventType = EventTypeProductDeleted
	return p.publish(ctx, TopicCatalogEvents, "product_"+event.ProductID, event.EventType, &event.EventID, &event.Timestamp, &event)
}

// PublishVariantStockChanged publishes a variant.stock.changed event
func (p *Publisher) PublishVariantStockChanged(ctx context.Context, event VariantStockChangedEvent) error {
	event.EventType = EventTypeVariantStockChanged
	return p.publish(ctx, TopicCatalogEvents, "variant_"+event.ProductVariantID, event.EventType, &event.EventID, &event.Timestamp, &event)
}

func (p *Publisher) publish(ctx context.Context, topic, key, eventType string, eventID *string, timestamp *time.Time, payload interface{}) error {
	tracer := otel.Tracer("kafka-publisher")
	ctx, span := tracer.Start(ctx, "kafka.publish."+eventType,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.destination", topic),
			attribute.String("messaging.destination_kind", "topic"),
			attribute.String("event.type", eventType),
		),
	)
	defer span.End()

	if *eventID == "" {
		*eventID = uuid.NewString()
	}
	*timestamp = time.Now()
	span.SetAttributes(attribute.String("event.id", *eventID))

	eventBytes, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Inject trace context into Kafka headers
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	headers := []sarama.RecordHeader{
		{Key: []byte("event_type"), Value: []byte(eventType)},
		{Key: []byte("event_id"), Value: []byte(*eventID)},
	}
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte(k),
			Value: []byte(v),
		})
	}

	msg := &sarama.ProducerMessage{
		Topic:   topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(eventBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to send message")
		logger.Logger.Error().
			Err(err).
			Str("topic", topic).
			Str("event_type", eventType).
			Msg("Failed to publish event")
		return fmt.Errorf("failed to send message: %w", err)
	}

	logger.Logger.Info().
		Str("topic", topic).
		Str("event_type", eventType).
		Str("event_id", *eventID).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Event published")

	return nil
}

// Close closes the Kafka producer
func (p *Publisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
