package fotoprint

// syntheticPointerEvent is a single injected pointer event in screen
// coordinates, handled exactly like live input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a press at (x, y). Queued events are consumed one per
// Update, ahead of the live pointer.
func (in *Input) InjectPress(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move to (x, y) with the button held. Use it between
// InjectPress and InjectRelease to drag.
func (in *Input) InjectMove(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a release at (x, y).
func (in *Input) InjectRelease(x, y float64) {
	in.injectQueue = append(in.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectClick queues a press and release at (x, y). Consumes two frames.
func (in *Input) InjectClick(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDoubleClick queues two clicks at (x, y). Consumes four frames, well
// inside the double-click window at any normal frame rate.
func (in *Input) InjectDoubleClick(x, y float64) {
	in.InjectClick(x, y)
	in.InjectClick(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 evenly spaced moves,
// and a release at (toX, toY). The sequence consumes frames frames; the
// minimum is 2.
func (in *Input) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (in *Input) Pending() int { return len(in.injectQueue) }

// processInjectedInput pops one queued event and runs it through the pointer
// state machine. It reports whether an event was consumed.
func (in *Input) processInjectedInput() bool {
	if len(in.injectQueue) == 0 {
		return false
	}
	evt := in.injectQueue[0]
	copy(in.injectQueue, in.injectQueue[1:])
	in.injectQueue = in.injectQueue[:len(in.injectQueue)-1]

	in.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
