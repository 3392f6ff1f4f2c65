package entity

import "testing"

func TestCountdownExpiresOnce(t *testing.T) {
	var c Countdown
	if c.Active() {
		t.Fatal("zero Countdown should be inactive")
	}

	c.Start(1.0)
	fired := 0
	ticks := 0
	for i := 0; i < 100; i++ {
		if c.Tick(0.1) {
			fired++
			ticks = i + 1
		}
	}
	if fired != 1 {
		t.Errorf("fired %d times, want 1", fired)
	}
	// Ten 0.1 steps land on 1.0 within Epsilon
	if ticks != 10 {
		t.Errorf("expired on tick %d, want 10", ticks)
	}
	if c.Active() || c.Remaining() != 0 {
		t.Error("countdown should be expired")
	}
}

func TestCountdownRestart(t *testing.T) {
	var c Countdown
	c.Start(0.2)
	c.Tick(0.15)
	c.Start(0.2)
	if c.Tick(0.15) {
		t.Error("restarted countdown expired early")
	}
	if !c.Tick(0.05) {
		t.Error("restarted countdown should expire after full duration")
	}
	c.Start(5)
	c.Stop()
	if c.Active() {
		t.Error("Stop should expire the countdown")
	}
}

func TestInterval(t *testing.T) {
	iv := NewInterval(0.5)
	fires := 0
	for i := 0; i < 30; i++ {
		if iv.Tick(0.1) {
			fires++
		}
	}
	if fires != 6 {
		t.Errorf("fired %d times in 3s, want 6", fires)
	}

	iv.SetPeriod(0.1)
	if iv.Period() != 0.1 {
		t.Errorf("Period = %v, want 0.1", iv.Period())
	}
	iv.Reset()
	if !iv.Tick(0.1) {
		t.Error("interval should fire after one period")
	}
	if iv.Elapsed() != 0 {
		t.Errorf("Elapsed after firing = %v, want 0", iv.Elapsed())
	}
}
