package reminder

import (
	"fmt"
	"time"

	"github.com/jcallahan/wellnest/internal/logger"
	"github.com/jcallahan/wellnest/internal/storage"
	"github.com/jcallahan/wellnest/internal/utils"
)

// Scheduler owns the hydration reminder schedule. It reads the enabled flag,
// interval, and snooze duration from settings, issues alarm requests, and
// reacts to fired alarms and notification actions.
type Scheduler struct {
	store    storage.Provider
	alarm    Alarm
	notifier Notifier

	now        func() time.Time
	messageIdx int
}

func NewScheduler(store storage.Provider, alarm Alarm, notifier Notifier) *Scheduler {
	return &Scheduler{
		store:    store,
		alarm:    alarm,
		notifier: notifier,
		now:      time.Now,
	}
}

// SetEnabled persists the enabled flag and schedules or cancels the regular
// reminder accordingly.
func (s *Scheduler) SetEnabled(enabled bool) error {
	settings, err := s.store.GetSettings()
	if err != nil {
		return err
	}

	settings.HydrationEnabled = enabled
	if err := s.store.SaveSettings(settings); err != nil {
		return err
	}

	if enabled {
		s.scheduleRegular(settings.HydrationIntervalMin)
		return nil
	}

	if err := s.alarm.Cancel(AlarmRegular); err != nil {
		logger.Warn("Failed to cancel reminder", "error", err)
	}
	return nil
}

// SetInterval persists a new interval and, when reminders are enabled,
// replaces the pending request with one timed from now.
func (s *Scheduler) SetInterval(minutes int) error {
	settings, err := s.store.GetSettings()
	if err != nil {
		return err
	}

	settings.HydrationIntervalMin = minutes
	if err := s.store.SaveSettings(settings); err != nil {
		return err
	}

	if settings.HydrationEnabled {
		if err := s.alarm.Cancel(AlarmRegular); err != nil {
			logger.Warn("Failed to cancel reminder", "error", err)
		}
		s.scheduleRegular(minutes)
	}
	return nil
}

// Snooze schedules an additional one-shot reminder at now plus the snooze
// duration. The regular schedule is left untouched and continues on its own
// cadence.
func (s *Scheduler) Snooze() error {
	settings, err := s.store.GetSettings()
	if err != nil {
		return err
	}

	at := s.now().Add(time.Duration(settings.SnoozeDurationMin) * time.Minute)
	s.request(AlarmSnooze, at, time.Duration(settings.SnoozeDurationMin)*time.Minute)
	return nil
}

// SendTest delivers a notification immediately without touching the
// schedule.
func (s *Scheduler) SendTest() error {
	return s.notifier.Post(Notification{
		ID:      NotificationID,
		Title:   hydrationTitle,
		Body:    testMessage,
		Actions: []string{ActionMarkDone, ActionRemindLater},
	})
}

// Deliver posts a regular hydration reminder immediately without touching
// the schedule. Used by out-of-band schedulers such as cron.
func (s *Scheduler) Deliver() error {
	return s.notifier.Post(Notification{
		ID:      NotificationID,
		Title:   hydrationTitle,
		Body:    s.nextMessage(),
		Actions: []string{ActionMarkDone, ActionRemindLater},
	})
}

// HandleEvent dispatches a platform callback to the state machine.
func (s *Scheduler) HandleEvent(ev Event) error {
	switch e := ev.(type) {
	case Fired:
		return s.handleFired(e)
	case SnoozeRequested:
		return s.Snooze()
	case MarkDoneRequested:
		// Dismiss only
		return nil
	default:
		return fmt.Errorf("unknown reminder event: %T", ev)
	}
}

func (s *Scheduler) handleFired(e Fired) error {
	if e.IsTest {
		return s.SendTest()
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		return err
	}

	// A stale callback after disabling is dropped, not delivered.
	if !settings.HydrationEnabled {
		logger.Debug("Dropping reminder fired while disabled", "alarm", e.AlarmID)
		return nil
	}

	if err := s.notifier.Post(Notification{
		ID:      NotificationID,
		Title:   hydrationTitle,
		Body:    s.nextMessage(),
		Actions: []string{ActionMarkDone, ActionRemindLater},
	}); err != nil {
		logger.Warn("Failed to deliver reminder", "error", err)
	}

	// Only the regular alarm perpetuates itself. The schedule is rebuilt from
	// the current interval each time so interval changes take effect on the
	// next firing.
	if e.AlarmID == AlarmRegular {
		s.scheduleRegular(settings.HydrationIntervalMin)
	}
	return nil
}

// NextReminderTime estimates when the next regular reminder fires. The
// platform does not expose the pending fire time, so this is computed as
// now plus the interval at query time and drifts forward on each call.
func (s *Scheduler) NextReminderTime() (time.Time, bool) {
	settings, err := s.store.GetSettings()
	if err != nil || !settings.HydrationEnabled {
		return time.Time{}, false
	}
	return s.now().Add(time.Duration(settings.HydrationIntervalMin) * time.Minute), true
}

// NextReminderText renders the estimate for display, in the configured
// timezone.
func (s *Scheduler) NextReminderText() string {
	next, ok := s.NextReminderTime()
	if !ok {
		return "Reminders are disabled"
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		return "Reminders are disabled"
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		loc = time.Local
	}

	return fmt.Sprintf("Next reminder around %s (every %s)",
		next.In(loc).Format("15:04"),
		utils.FormatInterval(settings.HydrationIntervalMin))
}

func (s *Scheduler) nextMessage() string {
	msg := hydrationMessages[s.messageIdx%len(hydrationMessages)]
	s.messageIdx++
	return msg
}

func (s *Scheduler) scheduleRegular(intervalMin int) {
	interval := time.Duration(intervalMin) * time.Minute
	s.request(AlarmRegular, s.now().Add(interval), interval)
}

// request issues an alarm request, degrading when exact timing is denied:
// exact one-shot, then inexact repeating, then plain one-shot. Failures are
// logged, never propagated.
func (s *Scheduler) request(id string, at time.Time, interval time.Duration) {
	err := s.alarm.ScheduleOneShot(id, at, true)
	if err == nil {
		return
	}
	logger.Warn("Exact alarm unavailable, falling back to repeating", "alarm", id, "error", err)

	err = s.alarm.ScheduleRepeating(id, at, interval)
	if err == nil {
		return
	}
	logger.Warn("Repeating alarm unavailable, falling back to inexact one-shot", "alarm", id, "error", err)

	if err := s.alarm.ScheduleOneShot(id, at, false); err != nil {
		logger.Error("All alarm scheduling attempts failed", "alarm", id, "error", err)
	}
}
