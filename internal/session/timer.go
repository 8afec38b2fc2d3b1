// Package session derives and drives the active "ritual" session: a timed
// activity taken from the latest actionable suggestion in the conversation.
// The tracker is a four-state machine (idle, running, paused, completed)
// whose timing is injectable so tests run on synthetic time instead of
// wall-clock seconds.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vibecheck/internal/types"
)

// Mode is the session state.
type Mode string

const (
	ModeIdle      Mode = "idle"
	ModeRunning   Mode = "running"
	ModePaused    Mode = "paused"
	ModeCompleted Mode = "completed"
)

// DefaultDuration applies when neither the action's minutes nor a subtitle
// hint yields a duration.
const DefaultDuration = 2 * time.Minute

// TickInterval is the cadence of the automatic completion check.
const TickInterval = time.Second

// Idle-card placeholders shown when nothing is tracked.
const (
	IdleTitle    = "Ready when you are"
	IdleSubtitle = "Start a suggestion to begin a session"
)

// Session is a snapshot of the tracked activity. It is derived state,
// recomputed on every tick and transition, never persisted independently.
type Session struct {
	SessionID string
	MessageID string // assistant message the qualifying suggestion came from
	Title     string
	Subtitle  string
	Mode      Mode
	Progress  float64 // clamped to [0,1]
	ETALabel  string  // mm:ss remaining
	Duration  time.Duration
	StartedAt *time.Time
	Elapsed   time.Duration // accumulated while paused; excludes the live run segment
	HasMusic  bool
	HasRitual bool
}

// Clock supplies the current time.
type Clock func() time.Time

// StopFunc cancels a scheduled tick. Idempotent.
type StopFunc func()

// TickScheduler starts a periodic callback and returns its cancellation
// handle. The default implementation runs a time.Ticker goroutine; tests
// substitute a manual scheduler and drive ticks directly.
type TickScheduler func(interval time.Duration, fn func()) StopFunc

func defaultScheduler(interval time.Duration, fn func()) StopFunc {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

// Config holds tracker dependencies.
type Config struct {
	Clock     Clock
	Scheduler TickScheduler
	Logger    *zap.Logger
}

// DefaultConfig returns wall-clock dependencies.
func DefaultConfig() Config {
	return Config{
		Clock:     time.Now,
		Scheduler: defaultScheduler,
		Logger:    zap.NewNop(),
	}
}

// Tracker owns the session state machine. All mutation goes through its
// methods; a mutex guards the state because ticks fire from the scheduler
// goroutine.
type Tracker struct {
	mu        sync.Mutex
	clock     Clock
	scheduler TickScheduler
	logger    *zap.Logger

	cur      Session
	tracking bool
	stopTick StopFunc
}

// NewTracker creates a tracker with the given config. Zero-value fields fall
// back to defaults.
func NewTracker(cfg Config) *Tracker {
	def := DefaultConfig()
	if cfg.Clock == nil {
		cfg.Clock = def.Clock
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = def.Scheduler
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	return &Tracker{
		clock:     cfg.Clock,
		scheduler: cfg.Scheduler,
		logger:    cfg.Logger,
	}
}

// Observe feeds the most recent assistant message into the tracker. If the
// message carries a qualifying suggestion (action or music) that is not the
// one currently tracked — compared by message ID — a new session starts and
// supersedes the previous one regardless of its state.
func (t *Tracker) Observe(msg types.Message) {
	if msg.Role != types.RoleAssistant {
		return
	}
	sug, ok := qualifying(msg.Suggestions)
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tracking && t.cur.MessageID == msg.ID {
		return // same suggestion, session continues
	}

	t.stopTickLocked()
	now := t.clock()
	dur := durationFor(sug)
	t.cur = Session{
		SessionID: uuid.NewString(),
		MessageID: msg.ID,
		Title:     titleFor(sug),
		Subtitle:  subtitleFor(sug),
		Mode:      ModeRunning,
		Duration:  dur,
		StartedAt: &now,
		HasMusic:  sug.Type == types.SuggestionMusic,
		HasRitual: sug.Type == types.SuggestionAction,
	}
	t.tracking = true
	t.startTickLocked()
	t.logger.Info("session started",
		zap.String("session_id", t.cur.SessionID),
		zap.String("title", t.cur.Title),
		zap.Duration("duration", dur))
}

// Toggle flips running to paused and paused back to running. It is the only
// path between those two states and has no effect in idle or completed.
func (t *Tracker) Toggle() {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.cur.Mode {
	case ModeRunning:
		now := t.clock()
		if t.cur.StartedAt != nil {
			t.cur.Elapsed += now.Sub(*t.cur.StartedAt)
		}
		t.cur.StartedAt = nil
		t.cur.Mode = ModePaused
		t.stopTickLocked()
		t.logger.Debug("session paused", zap.Duration("elapsed", t.cur.Elapsed))
	case ModePaused:
		now := t.clock()
		t.cur.StartedAt = &now
		t.cur.Mode = ModeRunning
		t.startTickLocked()
		t.logger.Debug("session resumed", zap.Duration("elapsed", t.cur.Elapsed))
	case ModeIdle, ModeCompleted:
		// nothing to toggle
	}
}

// End terminates the session from any state, freezing progress at 1.
// Ending is idempotent; re-ending a completed session is a no-op.
func (t *Tracker) End() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking || t.cur.Mode == ModeCompleted {
		return
	}
	t.completeLocked()
	t.logger.Info("session ended", zap.String("session_id", t.cur.SessionID))
}

// Tick runs one automatic completion check. The scheduler calls it at 1 Hz
// while the session is running; tests call it directly.
func (t *Tracker) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cur.Mode != ModeRunning {
		return
	}
	if t.elapsedLocked() >= t.cur.Duration {
		t.completeLocked()
		t.logger.Info("session completed", zap.String("session_id", t.cur.SessionID))
	}
}

// Snapshot recomputes the derived fields and returns the current session.
// With nothing tracked it returns the idle placeholder card.
func (t *Tracker) Snapshot() Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking {
		return Session{
			Title:    IdleTitle,
			Subtitle: IdleSubtitle,
			Mode:     ModeIdle,
			ETALabel: "00:00",
		}
	}

	s := t.cur
	switch s.Mode {
	case ModeCompleted:
		s.Progress = 1
		s.ETALabel = "00:00"
	default:
		elapsed := t.elapsedLocked()
		s.Progress = clamp(float64(elapsed)/float64(s.Duration), 0, 1)
		s.ETALabel = formatETA(s.Duration - elapsed)
	}
	return s
}

// Close stops any scheduled tick. The tracker must not be used afterwards.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopTickLocked()
}

// elapsedLocked returns total elapsed time including the live run segment.
func (t *Tracker) elapsedLocked() time.Duration {
	elapsed := t.cur.Elapsed
	if t.cur.Mode == ModeRunning && t.cur.StartedAt != nil {
		elapsed += t.clock().Sub(*t.cur.StartedAt)
	}
	return elapsed
}

func (t *Tracker) completeLocked() {
	if t.cur.Mode == ModeRunning && t.cur.StartedAt != nil {
		t.cur.Elapsed += t.clock().Sub(*t.cur.StartedAt)
		t.cur.StartedAt = nil
	}
	t.cur.Mode = ModeCompleted
	t.cur.Progress = 1
	t.cur.ETALabel = "00:00"
	t.stopTickLocked()
}

func (t *Tracker) startTickLocked() {
	t.stopTickLocked()
	t.stopTick = t.scheduler(TickInterval, t.Tick)
}

func (t *Tracker) stopTickLocked() {
	if t.stopTick != nil {
		t.stopTick()
		t.stopTick = nil
	}
}

// qualifying returns the first action or music suggestion, if any.
func qualifying(sugs []types.Suggestion) (types.Suggestion, bool) {
	for _, s := range sugs {
		if s.Type == types.SuggestionAction || s.Type == types.SuggestionMusic {
			return s, true
		}
	}
	return types.Suggestion{}, false
}

// durationFor resolves the session length: the action's minutes field first,
// then a parseable hint in the music subtitle, then the fixed default.
func durationFor(s types.Suggestion) time.Duration {
	if s.Type == types.SuggestionAction && s.Minutes > 0 {
		return time.Duration(s.Minutes) * time.Minute
	}
	if s.Type == types.SuggestionMusic {
		if d, ok := ParseDurationHint(s.Subtitle); ok {
			return d
		}
	}
	return DefaultDuration
}

func titleFor(s types.Suggestion) string {
	if s.Type == types.SuggestionAction {
		return s.Label
	}
	return s.Title
}

func subtitleFor(s types.Suggestion) string {
	if s.Type == types.SuggestionAction {
		return "Guided micro-reset"
	}
	if s.Subtitle != "" {
		return s.Subtitle
	}
	return "Lo-fi focus loop"
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatETA renders the remaining time as mm:ss. Fractional seconds truncate
// so the countdown never reads a second ahead of the actual remainder.
func formatETA(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	secs := int(remaining / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
