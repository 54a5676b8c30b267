package reactive

import mapset "github.com/deckarep/golang-set/v2"

type freshness uint8

const (
	// clean: the last run is current.
	clean freshness = iota
	// check: a computed source may have changed, pull before running.
	check
	// dirty: a source changed, run again.
	dirty
)

func (f freshness) String() string {
	switch f {
	case clean:
		return "clean"
	case check:
		return "check"
	default:
		return "dirty"
	}
}

type subscriber interface {
	subscriberNode() *node
	markDirty()
	markCheck()
}

// node is the bookkeeping shared by effects and computeds.
type node struct {
	rt      *Runtime
	id      uint64
	state   freshness
	deps    []*cell
	depSet  mapset.Set[*cell]
	running bool
	stopped bool
}

func (rt *Runtime) newNode(state freshness) node {
	rt.nextID++
	return node{
		rt:     rt,
		id:     rt.nextID,
		state:  state,
		depSet: mapset.NewThreadUnsafeSet[*cell](),
	}
}

func (n *node) subscriberNode() *node {
	return n
}

// ID is unique within the runtime.
func (n *node) ID() uint64 {
	return n.id
}

// DependencyCount is the number of cells read during the last run.
func (n *node) DependencyCount() int {
	return len(n.deps)
}
