package email

import (
	"context"

	"github.com/Domenick1991/flynow/internal/kafka"
	"github.com/Domenick1991/flynow/pkg/logger"
)

// Sender is the notification sink for record events. Delivery is a log line
// until a real mail provider is wired in.
type Sender struct {
	log logger.Logger
}

func NewSender(log logger.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.RecordEvent) error {
	s.log.Info("sending record notification", "type", event.Type, "record_id", event.RecordID, "title", event.Title, "passenger", event.Passenger)
	return nil
}
