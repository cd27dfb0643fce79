package clock

import "time"

// Epoch records the calendar value at start-up so drift can be measured
// against it.
type Epoch struct {
	start DateTime
	t     time.Time
	loc   *time.Location
}

// NewEpoch returns an epoch at startup, or at Default() when startup is not
// a valid calendar value.
func NewEpoch(startup DateTime, loc *time.Location) Epoch {
	if !startup.Valid() {
		startup = Default()
	}
	if loc == nil {
		loc = time.UTC
	}
	t, _ := startup.Time(loc)
	return Epoch{start: startup, t: t, loc: loc}
}

// Start returns the start-up calendar value.
func (e Epoch) Start() DateTime { return e.start }

// Elapsed returns the time from the epoch to dt. It returns false when dt is
// not a valid calendar value.
func (e Epoch) Elapsed(dt DateTime) (time.Duration, bool) {
	t, ok := dt.Time(e.loc)
	if !ok {
		return 0, false
	}
	return t.Sub(e.t), true
}
