package service

import (
	"monjoel_backend/platform/events"

	"github.com/google/uuid"
)

// EventRequestAnalyzed is published once a diagnostic request has been
// classified and quoted.
const EventRequestAnalyzed = "diagnostic.request_analyzed"

// RequestAnalyzedEvent carries the bus payload for a quoted request.
type RequestAnalyzedEvent struct {
	events.BaseEvent
	RequestID    uuid.UUID
	TicketID     uuid.UUID
	ProblemType  string
	City         string
	Zip          string
	ContactName  string
	ContactPhone string
	Urgent       bool
	PriceLabel   string
	EtaLabel     string
}

// EventName returns the bus topic for this event.
func (e RequestAnalyzedEvent) EventName() string {
	return EventRequestAnalyzed
}
