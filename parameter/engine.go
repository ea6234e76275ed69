package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the simulation step interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// InputBufferSize is the capacity of the terminal input channel drained each frame
	InputBufferSize = 64
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047
)

// Random seed used when configuration leaves it at zero
const DefaultSeed = 0x9E3779B97F4A7C15
