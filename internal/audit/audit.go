// Package audit delivers state-transition events to an external audit sink.
//
// Delivery is fire-and-forget: Emit never blocks the caller and a failing
// sink is logged, never surfaced to the operation that produced the event.
package audit

import (
	"context"
	"time"
)

type Action string

const (
	ActionAccountCreated         Action = "account.created"
	ActionJournalPosted          Action = "journal.posted"
	ActionJournalUnposted        Action = "journal.unposted"
	ActionJournalDeleted         Action = "journal.deleted"
	ActionStatementRecorded      Action = "statement.recorded"
	ActionStartingBalanceFixed   Action = "account.starting_balance_fixed"
	ActionReconciliationComplete Action = "reconciliation.completed"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Event is one audited state transition.
type Event struct {
	Actor      string         `json:"actor"`
	Action     Action         `json:"action_type"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Before     any            `json:"before,omitempty"`
	After      any            `json:"after,omitempty"`
	Context    map[string]any `json:"context,omitempty"`
	Status     Status         `json:"status"`
	Timestamp  time.Time      `json:"timestamp"`
}

// Emitter accepts events for asynchronous delivery.
//
//go:generate mockgen -source=audit.go -destination=emitter_mock.go -package=audit -exclude_interfaces=Sink
type Emitter interface {
	Emit(ctx context.Context, e Event)
}

// Sink writes a single event to its destination.
type Sink interface {
	Write(ctx context.Context, e Event) error
}

type nopEmitter struct{}

func (nopEmitter) Emit(context.Context, Event) {}

// Nop discards every event.
var Nop Emitter = nopEmitter{}
