package monitor_test

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/monitor"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func (p *fakePublisher) Publish(topic domain.Topic, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, domain.Event{Topic: topic, Payload: payload})
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

type fakeQueue struct {
	mu    sync.Mutex
	items []domain.OutboundNotification
}

func (q *fakeQueue) Enqueue(_ context.Context, n domain.OutboundNotification) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
	return nil
}

func (q *fakeQueue) count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newMonitor(t *testing.T, cfg monitor.Config) (*monitor.Monitor, *fakePublisher, *fakeQueue, *clock) {
	t.Helper()
	pub := &fakePublisher{}
	queue := &fakeQueue{}
	clk := &clock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	m := monitor.New(cfg, testLogger(), pub, queue).WithClock(clk.now)
	return m, pub, queue, clk
}

func zone(threshold int) domain.SafeZone {
	return domain.SafeZone{
		ID:                    uuid.New(),
		Name:                  "campus",
		Lat:                   12.97,
		Lng:                   77.59,
		RadiusM:               500,
		AlertThresholdSeconds: threshold,
		Active:                true,
	}
}

func report(userID uuid.UUID) domain.LocationReport {
	return domain.LocationReport{UserID: userID, Latitude: 12.97, Longitude: 77.59}
}

func TestApply_FirstReportOutsideDoesNotAlert(t *testing.T) {
	t.Parallel()

	m, _, queue, _ := newMonitor(t, monitor.Config{DefaultGrace: time.Minute})
	userID := uuid.New()

	st := m.Apply(context.Background(), report(userID), nil)

	if st.IsInSafeZone {
		t.Fatal("user with no zone hits must be outside")
	}
	if st.OutsideSince == nil {
		t.Fatal("OutsideSince must start on first outside report")
	}
	if st.AlertSent {
		t.Fatal("first contact must never alert")
	}
	if queue.count() != 0 {
		t.Fatalf("no notification expected, got %d", queue.count())
	}
}

func TestApply_DwellAlertFiresOncePerExcursion(t *testing.T) {
	t.Parallel()

	m, _, queue, clk := newMonitor(t, monitor.Config{DefaultGrace: 5 * time.Minute})
	userID := uuid.New()
	z := zone(60)
	ctx := context.Background()

	// Inside, then leave.
	m.Apply(ctx, report(userID), []domain.SafeZone{z})
	clk.advance(10 * time.Second)
	st := m.Apply(ctx, report(userID), nil)
	if st.IsInSafeZone || st.OutsideSince == nil {
		t.Fatalf("expected outside state, got %+v", st)
	}

	// Below the zone's 60s threshold: no alert yet.
	clk.advance(30 * time.Second)
	st = m.Apply(ctx, report(userID), nil)
	if st.AlertSent {
		t.Fatal("alert before grace elapsed")
	}

	// Past the threshold.
	clk.advance(31 * time.Second)
	st = m.Apply(ctx, report(userID), nil)
	if !st.AlertSent {
		t.Fatal("alert expected after grace elapsed")
	}
	if queue.count() != 1 {
		t.Fatalf("exactly one emergency notification expected, got %d", queue.count())
	}
	if queue.items[0].Kind != domain.NotifyEmergencyContact {
		t.Fatalf("unexpected notification kind %q", queue.items[0].Kind)
	}

	// Still outside: no second alert.
	clk.advance(10 * time.Minute)
	m.Apply(ctx, report(userID), nil)
	if queue.count() != 1 {
		t.Fatalf("one alert per excursion, got %d", queue.count())
	}
}

func TestApply_ReentryClearsAlert(t *testing.T) {
	t.Parallel()

	m, _, queue, clk := newMonitor(t, monitor.Config{DefaultGrace: 5 * time.Minute})
	userID := uuid.New()
	z := zone(60)
	ctx := context.Background()

	m.Apply(ctx, report(userID), []domain.SafeZone{z})
	clk.advance(time.Second)
	m.Apply(ctx, report(userID), nil)
	clk.advance(2 * time.Minute)
	st := m.Apply(ctx, report(userID), nil)
	if !st.AlertSent {
		t.Fatal("alert expected")
	}

	clk.advance(time.Minute)
	st = m.Apply(ctx, report(userID), []domain.SafeZone{z})
	if !st.IsInSafeZone {
		t.Fatal("re-entry must flip IsInSafeZone")
	}
	if st.AlertSent {
		t.Fatal("re-entry must clear AlertSent")
	}
	if st.OutsideSince != nil {
		t.Fatal("re-entry must clear OutsideSince")
	}

	// New excursion alerts again.
	clk.advance(time.Second)
	m.Apply(ctx, report(userID), nil)
	clk.advance(2 * time.Minute)
	st = m.Apply(ctx, report(userID), nil)
	if !st.AlertSent {
		t.Fatal("new excursion must be able to alert")
	}
	if queue.count() != 2 {
		t.Fatalf("expected 2 notifications across 2 excursions, got %d", queue.count())
	}
}

func TestApply_StrictestZoneThresholdWins(t *testing.T) {
	t.Parallel()

	m, _, queue, clk := newMonitor(t, monitor.Config{DefaultGrace: time.Hour})
	userID := uuid.New()
	ctx := context.Background()

	lax := zone(600)
	strict := zone(30)

	m.Apply(ctx, report(userID), []domain.SafeZone{lax, strict})
	clk.advance(time.Second)
	m.Apply(ctx, report(userID), nil)

	clk.advance(31 * time.Second)
	st := m.Apply(ctx, report(userID), nil)
	if !st.AlertSent {
		t.Fatal("strictest threshold must govern the excursion")
	}
	if queue.count() != 1 {
		t.Fatalf("expected 1 notification, got %d", queue.count())
	}
}

func TestSweep_AlertsWithoutNewReports(t *testing.T) {
	t.Parallel()

	m, _, queue, clk := newMonitor(t, monitor.Config{DefaultGrace: 5 * time.Minute, EvictAfter: 24 * time.Hour})
	userID := uuid.New()
	z := zone(60)
	ctx := context.Background()

	m.Apply(ctx, report(userID), []domain.SafeZone{z})
	clk.advance(time.Second)
	m.Apply(ctx, report(userID), nil)

	// Device goes silent; sweep must still fire the dwell alert.
	clk.advance(2 * time.Minute)
	m.Sweep(ctx)

	st, ok := m.Status(userID)
	if !ok {
		t.Fatal("status must survive the sweep")
	}
	if !st.AlertSent {
		t.Fatal("sweep must fire the dwell alert")
	}
	if queue.count() != 1 {
		t.Fatalf("expected 1 notification, got %d", queue.count())
	}

	// Second sweep is a no-op.
	clk.advance(time.Minute)
	m.Sweep(ctx)
	if queue.count() != 1 {
		t.Fatalf("sweep must not re-alert, got %d", queue.count())
	}
}

func TestSweep_EvictsStaleUsers(t *testing.T) {
	t.Parallel()

	m, _, _, clk := newMonitor(t, monitor.Config{EvictAfter: time.Hour})
	userID := uuid.New()
	ctx := context.Background()

	m.Apply(ctx, report(userID), []domain.SafeZone{zone(60)})

	clk.advance(2 * time.Hour)
	m.Sweep(ctx)

	if _, ok := m.Status(userID); ok {
		t.Fatal("stale status must be evicted")
	}
}

func TestApply_StatusEmitThrottled(t *testing.T) {
	t.Parallel()

	m, pub, _, clk := newMonitor(t, monitor.Config{StatusRefreshInterval: 30 * time.Second})
	userID := uuid.New()
	z := zone(60)
	ctx := context.Background()

	m.Apply(ctx, report(userID), []domain.SafeZone{z})
	base := pub.count()
	if base != 1 {
		t.Fatalf("first report must emit, got %d", base)
	}

	// Same state within the refresh interval: suppressed.
	clk.advance(5 * time.Second)
	m.Apply(ctx, report(userID), []domain.SafeZone{z})
	if pub.count() != base {
		t.Fatalf("unchanged status within interval must not emit, got %d", pub.count())
	}

	// Interval elapsed: heartbeat emit.
	clk.advance(31 * time.Second)
	m.Apply(ctx, report(userID), []domain.SafeZone{z})
	if pub.count() != base+1 {
		t.Fatalf("heartbeat emit expected, got %d", pub.count())
	}

	// State change always emits regardless of the interval.
	clk.advance(time.Second)
	m.Apply(ctx, report(userID), nil)
	if pub.count() != base+2 {
		t.Fatalf("state change must emit immediately, got %d", pub.count())
	}
}

func TestApply_ConcurrentReportsSameUser(t *testing.T) {
	t.Parallel()

	m, _, _, _ := newMonitor(t, monitor.Config{})
	userID := uuid.New()
	z := zone(60)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(inside bool) {
			defer wg.Done()
			if inside {
				m.Apply(ctx, report(userID), []domain.SafeZone{z})
			} else {
				m.Apply(ctx, report(userID), nil)
			}
		}(i%2 == 0)
	}
	wg.Wait()

	st, ok := m.Status(userID)
	if !ok {
		t.Fatal("status expected after concurrent reports")
	}
	// Invariant rather than exact value: inside implies zone ids and no
	// outside timestamp, outside implies the opposite.
	if st.IsInSafeZone && (len(st.CurrentSafeZoneIDs) == 0 || st.OutsideSince != nil) {
		t.Fatalf("inconsistent inside state: %+v", st)
	}
	if !st.IsInSafeZone && st.OutsideSince == nil {
		t.Fatalf("inconsistent outside state: %+v", st)
	}
}
