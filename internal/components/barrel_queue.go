package components

import "gunrange/internal/engine"

// barrelQueue is the round-robin firing order: pop from the front, push to
// the back. It always holds the same set of barrels.
type barrelQueue struct {
	items []*engine.GameObject
}

func newBarrelQueue(barrels []*engine.GameObject) barrelQueue {
	items := make([]*engine.GameObject, len(barrels))
	copy(items, barrels)
	return barrelQueue{items: items}
}

func (q *barrelQueue) pop() *engine.GameObject {
	if len(q.items) == 0 {
		return nil
	}
	front := q.items[0]
	copy(q.items, q.items[1:])
	q.items = q.items[:len(q.items)-1]
	return front
}

func (q *barrelQueue) push(g *engine.GameObject) {
	q.items = append(q.items, g)
}

func (q *barrelQueue) peek() *engine.GameObject {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

func (q *barrelQueue) len() int {
	return len(q.items)
}
