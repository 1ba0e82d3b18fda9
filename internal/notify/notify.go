// Package notify is the boundary to the SMS gateway. No transport exists
// yet; LogSender records what would be sent so the handler and tests can
// exercise the flow end to end.
package notify

import (
	"fmt"

	"go.uber.org/zap"
)

// Sender delivers an assignment notification to one staff member.
type Sender interface {
	Send(name, phone, message string) error
}

// Compose builds the assignment message for a site.
func Compose(site string) string {
	return fmt.Sprintf("You are assigned to %s", site)
}

// LogSender is the stand-in gateway used until a real SMS provider is wired.
type LogSender struct {
	Log *zap.Logger
}

func (s *LogSender) Send(name, phone, message string) error {
	s.Log.Info("sms would be sent",
		zap.String("name", name),
		zap.String("phone", phone),
		zap.String("message", message),
	)
	return nil
}
