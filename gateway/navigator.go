package gateway

import "sync"

// Navigator abstracts the "current page" and "go to page" side effects the
// guardian needs. In the browser original this was window.location; a CLI
// implements it as a printed instruction, tests as a recorder.
type Navigator interface {
	// CurrentPath returns the path the user is currently on, "" if unknown.
	CurrentPath() string
	// Navigate sends the user to the given destination. Fire-and-forget:
	// callers do not wait for it to complete.
	Navigate(destination string)
}

var _ Navigator = (*MemNavigator)(nil)

// MemNavigator records navigations in memory. It backs non-interactive
// consumers and tests.
type MemNavigator struct {
	lock    sync.Mutex
	current string
	visited []string
}

func NewMemNavigator(current string) *MemNavigator {
	return &MemNavigator{current: current}
}

func (n *MemNavigator) CurrentPath() string {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.current
}

func (n *MemNavigator) Navigate(destination string) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.current = destination
	n.visited = append(n.visited, destination)
}

// Visited returns every destination navigated to, in order.
func (n *MemNavigator) Visited() []string {
	n.lock.Lock()
	defer n.lock.Unlock()
	return append([]string(nil), n.visited...)
}
