package notifier

import (
	"fmt"
	"log/slog"
	"strings"

	"attendance-verify-backend/internal/model"

	"gopkg.in/gomail.v2"
)

// Mailer emails the security admin whenever a persisted attendance event
// carries suspicion flags. Best effort: a send failure is logged, never
// propagated back into the check-in flow.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
	logger *slog.Logger
}

func NewMailer(host string, port int, username, password, from, to string, logger *slog.Logger) *Mailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		to:     to,
		logger: logger,
	}
}

func (m *Mailer) NotifySuspicious(event *model.AttendanceEvent, reasons []string) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", fmt.Sprintf("[Attendance] Suspicious %s oleh pegawai #%d", event.Kind, event.EmployeeID))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Event %s\nPegawai: %d\nWaktu: %s\nJarak: %.0fm (akurasi %.0fm)\nIP: %s\nAlasan: %s\n",
		event.ReferenceID,
		event.EmployeeID,
		event.Timestamp.Format("2006-01-02 15:04:05"),
		event.DistanceMeters,
		event.AccuracyMeters,
		event.EgressIP,
		strings.Join(reasons, ", "),
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("failed to send suspicious-event alert", "reference_id", event.ReferenceID, "error", err)
	}
}
