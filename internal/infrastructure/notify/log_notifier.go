// Package notify implementa la entrega de notificaciones. La entrega real de
// correo es un colaborador externo; este adaptador registra cada mensaje en el
// log estructurado, que es suficiente para desarrollo y auditoría.
package notify

import (
	"context"

	appnotify "github.com/mesharis-cell/platform-api/internal/application/notify"
	"github.com/mesharis-cell/platform-api/pkg/logger"
)

// Asegura que LogSender implementa notify.Sender.
var _ appnotify.Sender = (*LogSender)(nil)

// LogSender registra los mensajes de notificación en el log.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender construye el adaptador.
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send registra cada mensaje. Nunca falla: perder una notificación jamás debe
// revertir la operación comercial que la disparó.
func (s *LogSender) Send(_ context.Context, msgs []appnotify.Message) error {
	for _, m := range msgs {
		s.log.Info().
			Str("audience", string(m.Audience)).
			Str("to", m.To).
			Str("subject", m.Subject).
			Msg("notificación")
	}
	return nil
}
