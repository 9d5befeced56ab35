package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

const contentTypeJSON = "application/json"

// Publisher hands fresh lookups to the updates topic without blocking the caller.
type Publisher interface {
	PublishJSON(key string, obj any)
}

// Producer writes JSON records keyed by cache key. Records are produced
// asynchronously; Close flushes whatever is still buffered.
type Producer struct {
	topic        string
	client       *kgo.Client
	flushTimeout time.Duration
}

func NewProducer(brokers []string, topic string) (*Producer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerLinger(50*time.Millisecond),
		kgo.RecordRetries(3),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	log.Printf("Kafka producer ready, topic %s", topic)
	return &Producer{topic: topic, client: client, flushTimeout: 10 * time.Second}, nil
}

// PublishJSON marshals obj and queues it. Failures are only logged: the
// response has already been served and the next miss will publish again.
func (p *Producer) PublishJSON(key string, obj any) {
	rec, err := jsonRecord(key, obj)
	if err != nil {
		log.Printf("Kafka: %v", err)
		return
	}
	p.client.Produce(context.Background(), rec, func(r *kgo.Record, err error) {
		if err != nil {
			log.Printf("Kafka publish %s failed: %v", r.Key, err)
			return
		}
		log.Printf("Published %s to %s[%d]@%d", r.Key, r.Topic, r.Partition, r.Offset)
	})
}

func (p *Producer) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), p.flushTimeout)
	defer cancel()
	if err := p.client.Flush(ctx); err != nil {
		log.Printf("Kafka flush: %v", err)
	}
	p.client.Close()
}

func jsonRecord(key string, obj any) (*kgo.Record, error) {
	value, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", key, err)
	}
	return &kgo.Record{
		Key:     []byte(key),
		Value:   value,
		Headers: []kgo.RecordHeader{{Key: "content-type", Value: []byte(contentTypeJSON)}},
	}, nil
}
