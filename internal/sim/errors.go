package sim

import "errors"

var (
	// ErrTimeScale rejects non-positive time scale factors.
	ErrTimeScale = errors.New("sim: time scale must be positive")

	// ErrFrameDt rejects non-positive headless frame intervals.
	ErrFrameDt = errors.New("sim: frame dt must be positive")

	// ErrDuration rejects non-positive headless run durations.
	ErrDuration = errors.New("sim: duration must be positive")
)
