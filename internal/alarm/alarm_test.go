package alarm

import (
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	fired []string
	ch    chan string
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan string, 16)}
}

func (r *recorder) fire(id string) {
	r.mu.Lock()
	r.fired = append(r.fired, id)
	r.mu.Unlock()
	r.ch <- id
}

func (r *recorder) wait(t *testing.T, timeout time.Duration) string {
	t.Helper()
	select {
	case id := <-r.ch:
		return id
	case <-time.After(timeout):
		t.Fatal("timed out waiting for alarm to fire")
		return ""
	}
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.fired)
}

func TestService_OneShotFires(t *testing.T) {
	rec := newRecorder()
	svc := NewService(rec.fire)
	defer svc.Stop()

	if err := svc.ScheduleOneShot("test", time.Now().Add(10*time.Millisecond), true); err != nil {
		t.Fatalf("ScheduleOneShot failed: %v", err)
	}

	if id := rec.wait(t, time.Second); id != "test" {
		t.Errorf("fired id = %q, want %q", id, "test")
	}

	// One-shots do not re-fire
	time.Sleep(50 * time.Millisecond)
	if rec.count() != 1 {
		t.Errorf("one-shot fired %d times, want 1", rec.count())
	}
}

func TestService_PastTimeFiresImmediately(t *testing.T) {
	rec := newRecorder()
	svc := NewService(rec.fire)
	defer svc.Stop()

	if err := svc.ScheduleOneShot("past", time.Now().Add(-time.Hour), true); err != nil {
		t.Fatalf("ScheduleOneShot failed: %v", err)
	}
	rec.wait(t, time.Second)
}

func TestService_ScheduleSupersedes(t *testing.T) {
	rec := newRecorder()
	svc := NewService(rec.fire)
	defer svc.Stop()

	// The first request is superseded before it can fire
	if err := svc.ScheduleOneShot("test", time.Now().Add(20*time.Millisecond), true); err != nil {
		t.Fatalf("ScheduleOneShot failed: %v", err)
	}
	if err := svc.ScheduleOneShot("test", time.Now().Add(60*time.Millisecond), true); err != nil {
		t.Fatalf("ScheduleOneShot failed: %v", err)
	}

	rec.wait(t, time.Second)
	time.Sleep(50 * time.Millisecond)
	if rec.count() != 1 {
		t.Errorf("superseded request fired %d times, want 1", rec.count())
	}
}

func TestService_Repeating(t *testing.T) {
	rec := newRecorder()
	svc := NewService(rec.fire)
	defer svc.Stop()

	if err := svc.ScheduleRepeating("tick", time.Now().Add(10*time.Millisecond), 20*time.Millisecond); err != nil {
		t.Fatalf("ScheduleRepeating failed: %v", err)
	}

	rec.wait(t, time.Second)
	rec.wait(t, time.Second)
	rec.wait(t, time.Second)

	if rec.count() < 3 {
		t.Errorf("repeating alarm fired %d times, want at least 3", rec.count())
	}
}

func TestService_Cancel(t *testing.T) {
	rec := newRecorder()
	svc := NewService(rec.fire)
	defer svc.Stop()

	if err := svc.ScheduleOneShot("test", time.Now().Add(30*time.Millisecond), true); err != nil {
		t.Fatalf("ScheduleOneShot failed: %v", err)
	}
	if err := svc.Cancel("test"); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	time.Sleep(80 * time.Millisecond)
	if rec.count() != 0 {
		t.Errorf("cancelled alarm fired %d times", rec.count())
	}

	// Cancelling an unknown identifier is a no-op
	if err := svc.Cancel("unknown"); err != nil {
		t.Errorf("Cancel on unknown id = %v, want nil", err)
	}
}

func TestService_Stop(t *testing.T) {
	rec := newRecorder()
	svc := NewService(rec.fire)

	if err := svc.ScheduleOneShot("a", time.Now().Add(30*time.Millisecond), true); err != nil {
		t.Fatalf("ScheduleOneShot failed: %v", err)
	}
	svc.Stop()

	// Scheduling after Stop is rejected silently
	if err := svc.ScheduleOneShot("b", time.Now().Add(10*time.Millisecond), true); err != nil {
		t.Fatalf("ScheduleOneShot after Stop = %v", err)
	}

	time.Sleep(80 * time.Millisecond)
	if rec.count() != 0 {
		t.Errorf("alarms fired after Stop: %d", rec.count())
	}
}
