// Package alarm provides an in-process timer implementation of the reminder
// alarm facility, used when running the reminder loop in the foreground.
package alarm

import (
	"sync"
	"time"
)

// FireFunc is invoked when a scheduled alarm goes off, with the alarm
// identifier. It runs on a timer goroutine and should hand off quickly.
type FireFunc func(id string)

type entry struct {
	timer    *time.Timer
	interval time.Duration // 0 for one-shot
}

// Service schedules callbacks with process-local timers. One request per
// identifier: scheduling again under the same identifier supersedes the
// pending one.
type Service struct {
	mu      sync.Mutex
	entries map[string]*entry
	fire    FireFunc
	stopped bool
}

func NewService(fire FireFunc) *Service {
	return &Service{
		entries: make(map[string]*entry),
		fire:    fire,
	}
}

// ScheduleOneShot arms a single callback at the given time. Exactness is a
// platform concern, process-local timers always honor it, so the flag is
// accepted for interface compatibility.
func (s *Service) ScheduleOneShot(id string, at time.Time, exact bool) error {
	return s.schedule(id, at, 0)
}

// ScheduleRepeating arms a callback at first and then every interval.
func (s *Service) ScheduleRepeating(id string, first time.Time, interval time.Duration) error {
	return s.schedule(id, first, interval)
}

func (s *Service) schedule(id string, at time.Time, interval time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return nil
	}

	if existing, ok := s.entries[id]; ok {
		existing.timer.Stop()
	}

	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}

	e := &entry{interval: interval}
	e.timer = time.AfterFunc(delay, func() {
		s.fired(id)
	})
	s.entries[id] = e

	return nil
}

func (s *Service) fired(id string) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if !ok || s.stopped {
		s.mu.Unlock()
		return
	}

	if e.interval > 0 {
		// Re-arm repeating alarms before delivering
		e.timer = time.AfterFunc(e.interval, func() {
			s.fired(id)
		})
	} else {
		delete(s.entries, id)
	}
	s.mu.Unlock()

	s.fire(id)
}

// Cancel stops the pending request for the identifier. Cancelling an unknown
// identifier is a no-op.
func (s *Service) Cancel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[id]; ok {
		e.timer.Stop()
		delete(s.entries, id)
	}
	return nil
}

// Stop cancels all pending requests and rejects further scheduling.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, e := range s.entries {
		e.timer.Stop()
		delete(s.entries, id)
	}
}
