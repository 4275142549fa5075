package volunteerdata

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/jordan-wright/email"
)

type SmtpConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// Notifier mails the organizers whenever a certificate PDF is
// requested, so they know to generate and send it. Sends are
// best-effort: a failure is logged and never fails the request that
// triggered it.
type Notifier struct {
	cfg SmtpConfig
}

func NewNotifier(cfg SmtpConfig) *Notifier {
	if cfg.Host == "" {
		return nil
	}
	return &Notifier{cfg: cfg}
}

func (n *Notifier) PdfRequested(ctx context.Context, fullName, citizenId, recipientEmail string) {
	if n == nil {
		return
	}

	e := email.NewEmail()
	e.From = n.cfg.From
	e.To = []string{n.cfg.To}
	e.Subject = "Yêu cầu cấp file PDF chứng nhận"
	e.Text = []byte(fmt.Sprintf(
		"Tình nguyện viên %s (CCCD: %s) vừa yêu cầu file PDF chứng nhận.\nEmail nhận: %s\n",
		fullName, citizenId, recipientEmail,
	))

	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	err := e.Send(addr, smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host))
	if err != nil {
		slog.WarnContext(ctx, "failed to send pdf request notification", "err", err)
		return
	}
	slog.InfoContext(ctx, "sent pdf request notification", "to", n.cfg.To)
}
