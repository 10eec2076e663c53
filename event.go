package intersect

import "fmt"

type eventType int

const (
	eventLeft eventType = iota
	eventRight
	eventIntersection
)

func (t eventType) String() string {
	switch t {
	case eventLeft:
		return "Left"
	case eventRight:
		return "Right"
	case eventIntersection:
		return "Intersection"
	}
	return fmt.Sprintf("eventType(%d)", int(t))
}

// event announces that something happens at a position during the sweep: a
// segment starts (its left endpoint), a segment ends (its right endpoint), or
// two segments are expected to cross. seg is the index of the segment the
// event belongs to.
type event struct {
	pos Point
	typ eventType
	seg int
}

func (e event) String() string {
	return fmt.Sprintf("%v %v seg=%d", e.typ, e.pos, e.seg)
}

// less orders events by position (x then y) and breaks ties by event type, so
// that all events at one position are processed together and removals are
// seen before insertions.
func (e event) less(o event) bool {
	if c := cmpPoints(e.pos, o.pos); c != 0 {
		return c < 0
	}
	return e.typ < o.typ
}

// eventQueue is a binary heap of sweep events. It is a multiset: duplicate
// and stale events are permitted and are revalidated against the sweep status
// when popped, which is cheaper than searching the heap on every schedule.
type eventQueue []event

func (q eventQueue) init() {
	n := len(q)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

func (q *eventQueue) push(e event) {
	*q = append(*q, e)
	q.up(len(*q) - 1)
}

func (q *eventQueue) pop() event {
	n := len(*q) - 1
	(*q)[0], (*q)[n] = (*q)[n], (*q)[0]
	q.down(0, n)

	e := (*q)[n]
	*q = (*q)[:n]
	return e
}

// from container/heap
func (q eventQueue) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q[j].less(q[i]) {
			break
		}
		q[i], q[j] = q[j], q[i]
		j = i
	}
}

func (q eventQueue) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q[j2].less(q[j1]) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q[j].less(q[i]) {
			break
		}
		q[i], q[j] = q[j], q[i]
		i = j
	}
	return i0 < i
}
