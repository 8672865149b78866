package calculation

import "time"

// nowFunc stamps reports (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// seedFunc returns a pseudo-random seed for callers that want a fresh run.
var seedFunc = func() int64 { return time.Now().UnixNano() }

// SetSeedFunc overrides the seed provider (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }

// NewSeed draws a fresh seed. The engine never calls it; every component
// takes its seed explicitly and the caller decides whether to randomize.
func NewSeed() int64 { return seedFunc() }
