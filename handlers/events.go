package handlers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hmi-backend/utils"
)

// SubmissionTopic carries one message per accepted mutation; the consumer
// mirrors them into Elasticsearch for the admin console's search.
const SubmissionTopic = "submission_events"

type submissionEvent struct {
	Event string      `json:"event"`
	ID    uint        `json:"id"`
	Data  interface{} `json:"data,omitempty"`
}

func publishEvent(producer utils.KafkaProducer, event string, id uint, data interface{}) {
	if producer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload, err := json.Marshal(submissionEvent{Event: event, ID: id, Data: data})
	if err != nil {
		log.Printf("Failed to marshal Kafka event: %v", err)
		return
	}

	if err := producer.SendMessage(ctx, SubmissionTopic, nil, payload); err != nil {
		log.Printf("Failed to send Kafka message: %v", err)
	}
}
