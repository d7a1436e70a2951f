// Package monitor tracks per-user safe-zone membership and dwell time.
// State is in-memory only: it is rebuilt from the next report after a
// restart and evicted after inactivity.
package monitor

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
)

const shardCount = 32

type Publisher interface {
	Publish(topic domain.Topic, payload any)
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, n domain.OutboundNotification) error
}

type Config struct {
	// DefaultGrace applies when a user has no zone-membership history
	// to take a threshold from.
	DefaultGrace time.Duration
	// StatusRefreshInterval throttles user-safety-status events while
	// the state is stable; state changes always emit.
	StatusRefreshInterval time.Duration
	// EvictAfter drops statuses of users who stopped reporting.
	EvictAfter time.Duration
}

func (c *Config) applyDefaults() {
	if c.DefaultGrace <= 0 {
		c.DefaultGrace = 5 * time.Minute
	}
	if c.StatusRefreshInterval <= 0 {
		c.StatusRefreshInterval = 30 * time.Second
	}
	if c.EvictAfter <= 0 {
		c.EvictAfter = 24 * time.Hour
	}
}

// Monitor is a sharded per-user state machine. Each user's state is
// only ever touched under its shard mutex, so concurrent reports from
// the same device cannot produce lost updates.
type Monitor struct {
	cfg    Config
	logger *slog.Logger
	pub    Publisher
	queue  NotificationQueue
	now    func() time.Time

	shards [shardCount]shard
}

type shard struct {
	mu    sync.Mutex
	users map[uuid.UUID]*userState
}

type userState struct {
	domain.UserSafetyStatus

	// grace is min(alertThresholdSeconds) over the zones the user was
	// last inside; fail-safe: the strictest zone wins.
	grace    time.Duration
	lastEmit time.Time
	lastLat  float64
	lastLng  float64
}

func New(cfg Config, logger *slog.Logger, pub Publisher, queue NotificationQueue) *Monitor {
	cfg.applyDefaults()
	m := &Monitor{
		cfg:    cfg,
		logger: logger,
		pub:    pub,
		queue:  queue,
		now:    time.Now,
	}
	for i := range m.shards {
		m.shards[i].users = make(map[uuid.UUID]*userState)
	}
	return m
}

// WithClock replaces the time source. Test hook.
func (m *Monitor) WithClock(now func() time.Time) *Monitor {
	m.now = now
	return m
}

func (m *Monitor) shardFor(id uuid.UUID) *shard {
	h := fnv.New32a()
	h.Write(id[:])
	return &m.shards[h.Sum32()%shardCount]
}

// Apply feeds one normalized report into the user's state machine and
// returns the resulting status snapshot. zoneHits must come from the
// same report.
func (m *Monitor) Apply(ctx context.Context, rep domain.LocationReport, zoneHits []domain.SafeZone) domain.UserSafetyStatus {
	now := m.now()
	sh := m.shardFor(rep.UserID)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	st, ok := sh.users[rep.UserID]
	if !ok {
		st = m.baseline(rep.UserID, zoneHits, now)
		st.lastLat, st.lastLng = rep.Latitude, rep.Longitude
		sh.users[rep.UserID] = st
		m.emit(ctx, st, now, true)
		return st.UserSafetyStatus
	}

	st.lastLat, st.lastLng = rep.Latitude, rep.Longitude
	changed, alerted := m.advance(st, zoneHits, now)
	st.LastUpdate = now
	if alerted {
		m.dispatchEmergency(ctx, st)
	}
	m.emit(ctx, st, now, changed)

	return st.UserSafetyStatus
}

// Status returns the live snapshot for one user, if any.
func (m *Monitor) Status(userID uuid.UUID) (domain.UserSafetyStatus, bool) {
	sh := m.shardFor(userID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	st, ok := sh.users[userID]
	if !ok {
		return domain.UserSafetyStatus{}, false
	}
	return st.UserSafetyStatus, true
}

// Sweep re-evaluates users stuck mid-grace who stopped reporting, and
// evicts stale statuses. It runs the same transition function as the
// report path so the two can never diverge.
func (m *Monitor) Sweep(ctx context.Context) {
	now := m.now()

	for i := range m.shards {
		sh := &m.shards[i]
		sh.mu.Lock()
		for id, st := range sh.users {
			if now.Sub(st.LastUpdate) > m.cfg.EvictAfter {
				delete(sh.users, id)
				continue
			}
			if st.IsInSafeZone || st.AlertSent {
				continue
			}
			// Still outside as far as we know: advance with no hits.
			changed, alerted := m.advance(st, nil, now)
			if alerted {
				m.dispatchEmergency(ctx, st)
			}
			if changed {
				m.emit(ctx, st, now, true)
			}
		}
		sh.mu.Unlock()
	}
}

// baseline handles a user's very first report. Policy: no alert on
// first contact even when outside every zone; the grace period starts
// counting from here.
func (m *Monitor) baseline(userID uuid.UUID, zoneHits []domain.SafeZone, now time.Time) *userState {
	st := &userState{
		UserSafetyStatus: domain.UserSafetyStatus{
			UserID:     userID,
			LastUpdate: now,
		},
		grace: m.cfg.DefaultGrace,
	}
	if len(zoneHits) > 0 {
		st.IsInSafeZone = true
		st.CurrentSafeZoneIDs = zoneIDs(zoneHits)
		st.grace = minThreshold(zoneHits, m.cfg.DefaultGrace)
	} else {
		t := now
		st.OutsideSince = &t
	}
	return st
}

// advance is the single transition function for both the report path
// and the background sweep. It reports whether the state changed and
// whether the dwell alert fired on this transition.
func (m *Monitor) advance(st *userState, zoneHits []domain.SafeZone, now time.Time) (changed, alerted bool) {
	if len(zoneHits) > 0 {
		reentered := !st.IsInSafeZone
		if reentered {
			// Re-entry ends the excursion; AlertSent may only be true
			// while outside.
			st.IsInSafeZone = true
			st.OutsideSince = nil
			st.AlertSent = false
			changed = true
		}
		ids := zoneIDs(zoneHits)
		if !sameIDs(st.CurrentSafeZoneIDs, ids) {
			st.CurrentSafeZoneIDs = ids
			changed = true
		}
		st.grace = minThreshold(zoneHits, m.cfg.DefaultGrace)
		return changed, false
	}

	if st.IsInSafeZone {
		st.IsInSafeZone = false
		st.CurrentSafeZoneIDs = nil
		t := now
		st.OutsideSince = &t
		return true, false
	}

	if !st.AlertSent && st.OutsideSince != nil && now.Sub(*st.OutsideSince) >= st.grace {
		// At most one alert per excursion.
		st.AlertSent = true
		return true, true
	}

	return false, false
}

func (m *Monitor) dispatchEmergency(ctx context.Context, st *userState) {
	n := domain.OutboundNotification{
		Kind:      domain.NotifyEmergencyContact,
		UserID:    st.UserID,
		Lat:       st.lastLat,
		Lng:       st.lastLng,
		Message:   fmt.Sprintf("user %s outside all safe zones past grace period", st.UserID),
		CreatedAt: m.now(),
	}
	if err := m.queue.Enqueue(ctx, n); err != nil {
		m.logger.Error("enqueue emergency notification failed",
			slog.String("user_id", st.UserID.String()),
			slog.Any("error", err))
	}
}

// emit publishes the status snapshot, throttled while nothing changes.
func (m *Monitor) emit(_ context.Context, st *userState, now time.Time, changed bool) {
	if !changed && now.Sub(st.lastEmit) < m.cfg.StatusRefreshInterval {
		return
	}
	st.lastEmit = now
	m.pub.Publish(domain.TopicUserSafetyStatus, st.UserSafetyStatus)
}

func zoneIDs(zones []domain.SafeZone) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(zones))
	for _, z := range zones {
		ids = append(ids, z.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func sameIDs(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func minThreshold(zones []domain.SafeZone, def time.Duration) time.Duration {
	min := def
	for i, z := range zones {
		d := time.Duration(z.AlertThresholdSeconds) * time.Second
		if i == 0 || d < min {
			min = d
		}
	}
	return min
}
