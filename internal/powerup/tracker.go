package powerup

import (
	"github.com/vovakirdan/knight-run/internal/config"
	"github.com/vovakirdan/knight-run/internal/entity"
)

// Effect is an active timed effect.
type Effect struct {
	Kind  Kind
	timer entity.Countdown
	delta Delta
}

// Remaining returns the seconds left.
func (e *Effect) Remaining() float64 {
	return e.timer.Remaining()
}

// Tracker owns the active effects of a run.
// Each effect is activated once and reverted once; picking up a kind that
// is already active only refreshes its duration.
type Tracker struct {
	cfg     config.PowerUpsConfig
	effects []*Effect
}

// NewTracker creates an empty tracker.
func NewTracker(cfg config.PowerUpsConfig) *Tracker {
	return &Tracker{cfg: cfg, effects: make([]*Effect, 0, int(KindCount))}
}

// Activate starts kind on top of t and returns the new tuning.
// The second result is false when kind was already active and only its
// duration was refreshed.
func (tr *Tracker) Activate(kind Kind, t Tuning) (Tuning, bool) {
	if e := tr.find(kind); e != nil {
		e.timer.Start(Duration(kind, tr.cfg))
		return t, false
	}

	t, d := Apply(kind, tr.cfg, t)
	e := &Effect{Kind: kind, delta: d}
	e.timer.Start(Duration(kind, tr.cfg))
	tr.effects = append(tr.effects, e)
	return t, true
}

// Update advances every effect by dt, reverts the ones that expired and
// returns the new tuning together with the expired kinds.
func (tr *Tracker) Update(dt float64, t Tuning) (Tuning, []Kind) {
	var expired []Kind
	active := tr.effects[:0]
	for _, e := range tr.effects {
		if e.timer.Tick(dt) || !e.timer.Active() {
			t = Revert(t, e.delta)
			expired = append(expired, e.Kind)
			continue
		}
		active = append(active, e)
	}
	tr.effects = active
	return t, expired
}

// Rebase re-applies the active effects over a new base tuning, for example
// after an upgrade purchase changed the underlying values.
func (tr *Tracker) Rebase(base Tuning) Tuning {
	t := base
	for _, e := range tr.effects {
		t, e.delta = Apply(e.Kind, tr.cfg, t)
	}
	return t
}

// Clear reverts every active effect and empties the tracker.
func (tr *Tracker) Clear(t Tuning) Tuning {
	for i := len(tr.effects) - 1; i >= 0; i-- {
		t = Revert(t, tr.effects[i].delta)
	}
	tr.effects = tr.effects[:0]
	return t
}

// IsActive reports whether kind is running.
func (tr *Tracker) IsActive(kind Kind) bool {
	return tr.find(kind) != nil
}

// Remaining returns the seconds left for kind, or 0 if inactive.
func (tr *Tracker) Remaining(kind Kind) float64 {
	if e := tr.find(kind); e != nil {
		return e.Remaining()
	}
	return 0
}

// Active returns the running effects in activation order.
func (tr *Tracker) Active() []Effect {
	out := make([]Effect, len(tr.effects))
	for i, e := range tr.effects {
		out[i] = *e
	}
	return out
}

func (tr *Tracker) find(kind Kind) *Effect {
	for _, e := range tr.effects {
		if e.Kind == kind {
			return e
		}
	}
	return nil
}
