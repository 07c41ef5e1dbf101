package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame pump interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the default simulation step interval
	TickInterval = 100 * time.Millisecond

	// AutoPlayInterval is the default auto player decision interval, faster than the tick
	AutoPlayInterval = 50 * time.Millisecond

	// EventChannelSize buffers terminal events between poller and frame loop
	EventChannelSize = 256
)
