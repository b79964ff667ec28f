package world

import "github.com/automoto/tilebound/shared/shape"

// TriggerTracker remembers which triggers each entity overlapped last
// tick, so a trigger fires once when it is entered rather than every
// tick of the overlap.
type TriggerTracker struct {
	inside map[*shape.EntityShape][]*shape.TriggerShape
}

func NewTriggerTracker() *TriggerTracker {
	return &TriggerTracker{inside: make(map[*shape.EntityShape][]*shape.TriggerShape)}
}

// Update records current as the triggers e overlaps now and returns the
// ones it entered and exited since the previous call.
func (tt *TriggerTracker) Update(e *shape.EntityShape, current []*shape.TriggerShape) (entered, exited []*shape.TriggerShape) {
	prev := tt.inside[e]
	for _, t := range current {
		if !containsTrigger(prev, t) {
			entered = append(entered, t)
		}
	}
	for _, t := range prev {
		if !containsTrigger(current, t) {
			exited = append(exited, t)
		}
	}
	if len(current) == 0 {
		delete(tt.inside, e)
	} else {
		tt.inside[e] = append([]*shape.TriggerShape(nil), current...)
	}
	return entered, exited
}

// Forget drops e, e.g. when it leaves the layer.
func (tt *TriggerTracker) Forget(e *shape.EntityShape) {
	delete(tt.inside, e)
}

func containsTrigger(list []*shape.TriggerShape, t *shape.TriggerShape) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}
	return false
}
