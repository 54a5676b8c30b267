package reactive

import "slices"

type refresher interface {
	refresh()
}

// cell is one unit of reactive state. Subscribers are stored in
// subscription order.
type cell struct {
	// owner pins the wrapper that created the cell for as long as anything
	// is subscribed to it.
	owner  any
	// source is set on a computed's own cell so readers can pull it.
	source refresher
	subs   []subscriber
}

func (c *cell) subscribe(s subscriber) {
	c.subs = append(c.subs, s)
}

func (c *cell) unsubscribe(s subscriber) {
	if i := slices.Index(c.subs, s); i >= 0 {
		c.subs = slices.Delete(c.subs, i, i+1)
	}
}

// notify marks every current subscriber dirty. Subscribers may edit c.subs
// while being notified, so we walk a snapshot.
func (c *cell) notify() {
	if len(c.subs) == 0 {
		return
	}
	for _, s := range slices.Clone(c.subs) {
		s.markDirty()
	}
}

func (c *cell) notifyCheck() {
	if len(c.subs) == 0 {
		return
	}
	for _, s := range slices.Clone(c.subs) {
		s.markCheck()
	}
}

// cellMap lazily creates one cell per key of a container.
type cellMap[K comparable] struct {
	owner  any
	cells map[K]*cell
}

func (m *cellMap[K]) get(key K) *cell {
	if c, ok := m.cells[key]; ok {
		return c
	}
	if m.cells == nil {
		m.cells = map[K]*cell{}
	}
	c := &cell{owner: m.owner}
	m.cells[key] = c
	return c
}

// lookup returns the cell for key, or nil when nothing ever read it.
func (m *cellMap[K]) lookup(key K) *cell {
	return m.cells[key]
}
