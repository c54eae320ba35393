package telemetry

import (
	"log/slog"

	"github.com/veldt-labs/detent/pkg/domain"
)

// LogHooks returns lifecycle callbacks that log every event through the
// given structured logger, one record per event.
func LogHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnEnter: func(e *domain.EnterEvent) {
			logger.Info(string(domain.EventStateEnter),
				"state", e.State,
				"ready_count", e.ReadyCount,
			)
		},
		OnExit: func(e *domain.ExitEvent) {
			logger.Info(string(domain.EventStateExit),
				"state", e.State,
				"dwell", e.Dwell,
			)
		},
		OnReject: func(e *domain.RejectEvent) {
			logger.Warn(string(domain.EventRejection),
				"state", e.State,
				"op", string(e.Op),
			)
		},
	}
}
