package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/nabin00012/codecommons-sub000/pkg/utils"
)

type Event struct {
	Type         string    `json:"type"`
	ClassroomID  string    `json:"classroom_id,omitempty"`
	AssignmentID string    `json:"assignment_id,omitempty"`
	UserID       string    `json:"user_id,omitempty"`
	Title        string    `json:"title,omitempty"`
	Grade        *int      `json:"grade,omitempty"`
	ResetToken   string    `json:"reset_token,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

const (
	EventSubmissionCreated      = "submission.created"
	EventSubmissionGraded       = "submission.graded"
	EventEnrollmentCreated      = "enrollment.created"
	EventPasswordResetRequested = "password.reset.requested"
)

type EventSender struct {
	writer *kafka.Writer
}

func NewEventSender(brokers []string, topic string) *EventSender {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &EventSender{writer: writer}
}

func (s *EventSender) Close() error {
	return s.writer.Close()
}

func (s *EventSender) Send(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(event.Type),
		Value: data,
		Time:  time.Now(),
	}

	_, err = utils.RetryWithBackoff(ctx, 3, 100*time.Millisecond, func() (struct{}, error) {
		return struct{}{}, s.writer.WriteMessages(ctx, message)
	})
	if err != nil {
		return fmt.Errorf("failed to send event: %w", err)
	}
	return nil
}
