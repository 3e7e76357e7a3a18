// Package notification bridges domain events to the team notification queue.
// Domain modules publish events on the bus; this module turns them into asynq
// tasks so email delivery happens outside the request path.
package notification

import (
	"context"
	"fmt"

	contactservice "monjoel_backend/internal/contact/service"
	diagnosticservice "monjoel_backend/internal/diagnostic/service"
	partnersservice "monjoel_backend/internal/partners/service"
	"monjoel_backend/internal/scheduler"
	"monjoel_backend/platform/events"
	"monjoel_backend/platform/logger"
)

type Module struct {
	enqueuer scheduler.NotificationEnqueuer
	log      *logger.Logger
}

// New wires the notification module. The enqueuer may be nil when no redis is
// configured; events are then logged and dropped.
func New(enqueuer scheduler.NotificationEnqueuer, log *logger.Logger) *Module {
	return &Module{
		enqueuer: enqueuer,
		log:      log,
	}
}

// RegisterHandlers subscribes to all relevant domain events on the event bus.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(diagnosticservice.EventRequestAnalyzed, m)
	bus.Subscribe(contactservice.EventContactSubmitted, m)
	bus.Subscribe(partnersservice.EventApplicationSubmitted, m)

	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	if m.enqueuer == nil {
		m.log.Warn("notification dropped, no task queue configured", "event", event.EventName())
		return nil
	}

	switch e := event.(type) {
	case diagnosticservice.RequestAnalyzedEvent:
		return m.handleRequestAnalyzed(ctx, e)
	case contactservice.ContactSubmittedEvent:
		return m.handleContactSubmitted(ctx, e)
	case partnersservice.ApplicationSubmittedEvent:
		return m.handleApplicationSubmitted(ctx, e)
	default:
		return fmt.Errorf("unhandled event type: %s", event.EventName())
	}
}

func (m *Module) handleRequestAnalyzed(ctx context.Context, e diagnosticservice.RequestAnalyzedEvent) error {
	return m.enqueuer.EnqueueDiagnosticNotification(ctx, scheduler.DiagnosticNotificationPayload{
		RequestID:    e.RequestID.String(),
		TicketID:     e.TicketID.String(),
		ProblemType:  e.ProblemType,
		City:         e.City,
		Zip:          e.Zip,
		ContactName:  e.ContactName,
		ContactPhone: e.ContactPhone,
		Urgent:       e.Urgent,
		PriceLabel:   e.PriceLabel,
		EtaLabel:     e.EtaLabel,
	})
}

func (m *Module) handleContactSubmitted(ctx context.Context, e contactservice.ContactSubmittedEvent) error {
	return m.enqueuer.EnqueueContactNotification(ctx, scheduler.ContactNotificationPayload{
		SubmissionID: e.SubmissionID.String(),
		Name:         e.Name,
		Email:        e.Email,
		Subject:      e.Subject,
	})
}

func (m *Module) handleApplicationSubmitted(ctx context.Context, e partnersservice.ApplicationSubmittedEvent) error {
	return m.enqueuer.EnqueuePartnerNotification(ctx, scheduler.PartnerNotificationPayload{
		ApplicationID: e.ApplicationID.String(),
		CompanyName:   e.CompanyName,
		Email:         e.Email,
	})
}

var _ events.Handler = (*Module)(nil)
