package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"hmi-backend/handlers"
	"hmi-backend/utils"

	"github.com/segmentio/kafka-go"
)

// SubmissionEvent mirrors the payload published by the handlers. Data is
// the serialized client-facing record for *_submitted events and absent
// for deletes.
type SubmissionEvent struct {
	Event string          `json:"event"`
	ID    uint            `json:"id"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// SubmissionConsumer mirrors accepted submissions into Elasticsearch so
// the admin console can search them without touching the primary store.
type SubmissionConsumer struct {
	es       utils.ElasticsearchClient
	reader   *kafka.Reader
	shutdown chan struct{}
}

func NewSubmissionConsumer(broker string, es utils.ElasticsearchClient) *SubmissionConsumer {
	return &SubmissionConsumer{
		es: es,
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: []string{broker},
			Topic:   handlers.SubmissionTopic,
			GroupID: "hmi-backend-group",
			MaxWait: 10 * time.Second,
		}),
		shutdown: make(chan struct{}),
	}
}

func (c *SubmissionConsumer) Start(ctx context.Context) {
	log.Println("Starting submission consumer...")

	go func() {
		for {
			select {
			case <-c.shutdown:
				return
			default:
				c.processMessage(ctx)
			}
		}
	}()
}

func (c *SubmissionConsumer) Stop() {
	close(c.shutdown)
	if err := c.reader.Close(); err != nil {
		log.Printf("Error closing Kafka reader: %v", err)
	}
}

func (c *SubmissionConsumer) processMessage(ctx context.Context) {
	msg, err := c.reader.ReadMessage(ctx)
	if err != nil {
		if err == context.Canceled {
			return
		}
		log.Printf("Kafka read error: %v (will retry)", err)
		time.Sleep(5 * time.Second)
		return
	}

	var event SubmissionEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Printf("Failed to unmarshal submission event: %v", err)
		return
	}

	c.handleEvent(ctx, event)
}

func (c *SubmissionConsumer) handleEvent(ctx context.Context, event SubmissionEvent) {
	switch event.Event {
	case "application_submitted":
		c.index(ctx, "applications", event)
	case "application_deleted":
		c.delete(ctx, "applications", event.ID)
	case "request_submitted":
		c.index(ctx, "requests", event)
	case "request_deleted":
		c.delete(ctx, "requests", event.ID)
	case "review_submitted":
		c.index(ctx, "reviews", event)
	case "contact_info_updated":
		// Singleton row, nothing to search.
	default:
		log.Printf("Unknown event type: %s", event.Event)
	}
}

func (c *SubmissionConsumer) index(ctx context.Context, index string, event SubmissionEvent) {
	if c.es == nil || len(event.Data) == 0 {
		return
	}
	docID := fmt.Sprintf("%d", event.ID)
	if err := c.es.IndexDocument(ctx, index, docID, event.Data); err != nil {
		log.Printf("Failed to index %s document %s: %v", index, docID, err)
		return
	}
	log.Printf("Processed %s event for id %d", event.Event, event.ID)
}

func (c *SubmissionConsumer) delete(ctx context.Context, index string, id uint) {
	if c.es == nil {
		return
	}
	docID := fmt.Sprintf("%d", id)
	if err := c.es.DeleteDocument(ctx, index, docID); err != nil {
		log.Printf("Failed to delete %s document %s: %v", index, docID, err)
		return
	}
	log.Printf("Removed %s document %s", index, docID)
}
