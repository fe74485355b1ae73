package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

// ReservationEvent is published whenever a reservation is created.
type ReservationEvent struct {
	Event         string   `json:"event"`
	UserID        string   `json:"user_id"`
	ReservationID string   `json:"reservation_id"`
	Course        string   `json:"course"`
	Date          string   `json:"date"`
	ClubIDs       []string `json:"club_ids"`
	Timestamp     string   `json:"timestamp"`
}

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(brokers []string, topic string) *Producer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Producer{
		writer: writer,
		topic:  topic,
	}
}

func (p *Producer) SendReservationEvent(event ReservationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}
	return p.writer.WriteMessages(context.Background(), msg)
}

func (p *Producer) Close() {
	_ = p.writer.Close()
}
