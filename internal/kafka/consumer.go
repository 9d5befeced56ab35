package kafka

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/twmb/franz-go/pkg/kgo"
)

type Consumer struct {
	client *kgo.Client
	topic  string
	cancel context.CancelFunc
	done   chan struct{}
}

func NewConsumer(brokers []string, topic, group string) (*Consumer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumerGroup(group),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer: %w", err)
	}

	log.Printf("Kafka consumer ready, topic %s group %s", topic, group)
	return &Consumer{client: client, topic: topic}, nil
}

// Start polls in a goroutine and calls handler for every record until Stop.
func (c *Consumer) Start(handler func(key, value []byte)) {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.done = make(chan struct{})

	go func() {
		defer close(c.done)
		for {
			fetches := c.client.PollFetches(ctx)
			if ctx.Err() != nil {
				return
			}
			for _, fe := range fetches.Errors() {
				if !errors.Is(fe.Err, context.Canceled) {
					log.Printf("Kafka fetch error (%s/%d): %v", fe.Topic, fe.Partition, fe.Err)
				}
			}
			fetches.EachRecord(func(r *kgo.Record) {
				if !isJSON(r) {
					log.Printf("Kafka: skipping %s@%d, not JSON", r.Key, r.Offset)
					return
				}
				handler(r.Key, r.Value)
			})
		}
	}()
}

// isJSON accepts records without a content-type header, as older
// producers did not set one.
func isJSON(r *kgo.Record) bool {
	for _, h := range r.Headers {
		if h.Key == "content-type" {
			return string(h.Value) == contentTypeJSON
		}
	}
	return true
}

func (c *Consumer) Stop() {
	if c.cancel != nil {
		c.cancel()
		<-c.done
	}
	c.client.Close()
}
