package mail

import (
	"context"
	"log/slog"

	"github.com/vos-crm/crm/internal/crm/service"
)

// LogSender writes invitations to the log instead of sending them. It is
// used when no SMTP host is configured.
type LogSender struct {
	Logger *slog.Logger
}

func (s *LogSender) SendInvite(_ context.Context, msg service.InviteMessage) error {
	m, err := RenderInvite(msg)
	if err != nil {
		return err
	}
	s.Logger.Warn("smtp not configured, invite mail not sent",
		slog.String("to", msg.To),
		slog.String("subject", m.Subject),
		slog.String("link", msg.Link),
		slog.Time("expires_at", msg.ExpiresAt),
	)
	return nil
}
