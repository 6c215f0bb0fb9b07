// Package reminder implements the hydration reminder state machine: a
// self-perpetuating schedule driven by the configured interval, an
// independent one-shot snooze, and graceful degradation when the platform
// denies exact-timing permission.
package reminder

import (
	"errors"
	"time"
)

// Alarm identifiers. At most one request per identifier is active at a time,
// scheduling under an identifier supersedes the previous request.
const (
	AlarmRegular = "hydration-regular"
	AlarmSnooze  = "hydration-snooze"
)

const NotificationID = "hydration"

// Notification action labels. MarkDone dismisses, RemindLater dismisses and
// snoozes.
const (
	ActionMarkDone    = "Mark as Done"
	ActionRemindLater = "Remind Later"
)

// ErrPermissionDenied is returned by an Alarm when the platform refuses
// exact-timing scheduling.
var ErrPermissionDenied = errors.New("alarm permission denied")

// Alarm is the platform timer facility. Requests are fire-and-forget: the
// platform may coalesce or delay delivery, and does not expose the pending
// fire time for a given identifier.
type Alarm interface {
	// ScheduleOneShot requests a single delivery at the given time,
	// superseding any pending request under the same identifier.
	ScheduleOneShot(id string, at time.Time, exact bool) error
	// ScheduleRepeating requests inexact repeated delivery starting at first.
	ScheduleRepeating(id string, first time.Time, interval time.Duration) error
	Cancel(id string) error
}

// Notification is a user-facing reminder message.
type Notification struct {
	ID      string
	Title   string
	Body    string
	Actions []string
}

// Notifier delivers notifications to the user.
type Notifier interface {
	Post(n Notification) error
}

// Event is an inbound platform callback dispatched to the scheduler.
type Event interface {
	isEvent()
}

// Fired reports that the alarm with the given identifier went off, or that a
// test reminder was requested when IsTest is set.
type Fired struct {
	AlarmID string
	IsTest  bool
}

// SnoozeRequested is the "Remind Later" notification action.
type SnoozeRequested struct{}

// MarkDoneRequested is the "Mark as Done" notification action.
type MarkDoneRequested struct{}

func (Fired) isEvent()             {}
func (SnoozeRequested) isEvent()   {}
func (MarkDoneRequested) isEvent() {}
