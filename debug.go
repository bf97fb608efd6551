package fotoprint

import "time"

// debugStats holds per-frame timing and object counts.
// Only populated when Editor.debug is true.
type debugStats struct {
	clearTime    time.Duration
	drawTime     time.Duration
	objectCount  int
	pendingLoads int
}

// debugLog reports the frame stats at debug level.
func (e *Editor) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	Logger().Debug("frame",
		"clear", stats.clearTime,
		"draw", stats.drawTime,
		"total", stats.clearTime+stats.drawTime,
		"objects", stats.objectCount,
		"pending_loads", stats.pendingLoads,
	)
}

// debugPoolHeadroom is the number of free slots under which the editor warns
// that the pool is nearly full.
const debugPoolHeadroom = 10

func (e *Editor) debugCheckPoolPressure() {
	if !e.debug {
		return
	}
	free := e.pool.Cap() - e.pool.Len()
	if free < debugPoolHeadroom {
		Logger().Warn("pool nearly full", "len", e.pool.Len(), "capacity", e.pool.Cap())
	}
}
