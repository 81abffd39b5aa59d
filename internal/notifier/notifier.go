// Package notifier routes account operation outcomes to a zerolog logger.
package notifier

import (
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// LogNotifier writes one log line per account operation.
type LogNotifier struct {
	logger zerolog.Logger
}

// New returns a notifier that logs through logger.
func New(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs accepted operations at info level and rejected ones at warn level.
func (n *LogNotifier) Notify(notification domain.Notification) {
	var event *zerolog.Event
	if notification.Err != nil {
		event = n.logger.Warn().Str("reason", domain.ClassifyError(notification.Err))
	} else {
		event = n.logger.Info()
	}

	event.
		Str("kind", notification.Kind.String()).
		Int64("account", notification.Account).
		Str("amount", notification.Amount.String()).
		Msg(notification.Message())
}
