package tracker

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dshills/keychord/internal/input/chordtree"
	"github.com/dshills/keychord/internal/input/key"
)

// Change describes what one event or rebind did to the active set.
type Change struct {
	// Event is the key event handled. Zero for rebinds.
	Event key.Event

	// Fired holds the actions matched by Event.
	Fired []string

	// Activated holds actions that entered the active set, sorted.
	Activated []string

	// Deactivated holds actions that left the active set, sorted.
	Deactivated []string
}

// Empty returns true if the active set did not change.
func (c Change) Empty() bool {
	return len(c.Activated) == 0 && len(c.Deactivated) == 0
}

// Listener receives active set changes. Listeners run on the goroutine that
// handled the event, after the session lock is released.
type Listener func(Change)

type subscription struct {
	id uint64
	fn Listener
}

// Session guards one Tracker behind a mutex and adds logging, metrics and
// change notification for a concurrent host.
type Session struct {
	mu      sync.Mutex
	id      uuid.UUID
	tracker *Tracker
	log     *logrus.Entry
	metrics *Metrics

	subs   []subscription
	nextID uint64
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session's log entry. The session adds its own
// "session" field.
func WithLogger(entry *logrus.Entry) SessionOption {
	return func(s *Session) {
		s.log = entry
	}
}

// WithMetrics records session activity in m.
func WithMetrics(m *Metrics) SessionOption {
	return func(s *Session) {
		s.metrics = m
	}
}

// NewSession creates a session over tree. A nil tree starts empty.
func NewSession(tree *chordtree.Tree, opts ...SessionOption) *Session {
	s := &Session{
		id:      uuid.New(),
		tracker: NewWithTree(tree),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		s.log = logrus.NewEntry(l)
	}
	s.log = s.log.WithField("session", s.id.String())
	return s
}

// ID returns the session's unique ID.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// HandleKey processes one event and returns the fired actions.
func (s *Session) HandleKey(e key.Event) []string {
	s.mu.Lock()
	before := s.snapshotLocked()
	fired := s.tracker.HandleKey(e)
	change := s.diffLocked(before)
	change.Event = e
	change.Fired = fired
	active := len(s.tracker.active)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.observeEvent(e, len(fired), active)
	}

	entry := s.log.WithFields(logrus.Fields{
		"event": e.String(),
		"fired": fired,
	})
	if len(fired) == 0 {
		entry.Trace("no binding")
	} else {
		entry.Debug("key handled")
	}
	if !change.Empty() {
		s.log.WithFields(logrus.Fields{
			"activated":   change.Activated,
			"deactivated": change.Deactivated,
		}).Debug("active set changed")
	}

	s.notify(subs, change)
	return fired
}

// Active returns a sorted snapshot of the active set.
func (s *Session) Active() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Active()
}

// IsActive returns true if action is currently held.
func (s *Session) IsActive(action string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.IsActive(action)
}

// Reset clears the active set and notifies listeners of the deactivations.
func (s *Session) Reset() {
	s.mu.Lock()
	before := s.snapshotLocked()
	s.tracker.Reset()
	change := s.diffLocked(before)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.active.Set(0)
	}
	s.notify(subs, change)
}

// Rebind swaps in a new binding tree, typically after the keymap file
// changed. Active actions no longer bound anywhere are dropped.
func (s *Session) Rebind(tree *chordtree.Tree) {
	s.mu.Lock()
	before := s.snapshotLocked()
	s.tracker.SetTree(tree)
	change := s.diffLocked(before)
	nodes := s.tracker.Tree().Len()
	active := len(s.tracker.active)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.rebinds.Inc()
		s.metrics.active.Set(float64(active))
	}
	s.log.WithFields(logrus.Fields{
		"nodes":   nodes,
		"dropped": change.Deactivated,
	}).Info("bindings replaced")

	s.notify(subs, change)
}

// Tree returns the current binding tree. The tree must be treated as read
// only.
func (s *Session) Tree() *chordtree.Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Tree()
}

// Subscribe registers a listener for active set changes and returns a
// function that removes it. Listeners are called for every handled event,
// including ones that changed nothing.
func (s *Session) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) snapshotLocked() map[string]struct{} {
	before := make(map[string]struct{}, len(s.tracker.active))
	for a := range s.tracker.active {
		before[a] = struct{}{}
	}
	return before
}

func (s *Session) diffLocked(before map[string]struct{}) Change {
	var c Change
	for a := range s.tracker.active {
		if _, ok := before[a]; !ok {
			c.Activated = append(c.Activated, a)
		}
	}
	for a := range before {
		if _, ok := s.tracker.active[a]; !ok {
			c.Deactivated = append(c.Deactivated, a)
		}
	}
	sort.Strings(c.Activated)
	sort.Strings(c.Deactivated)
	return c
}

func (s *Session) subscribersLocked() []Listener {
	fns := make([]Listener, len(s.subs))
	for i, sub := range s.subs {
		fns[i] = sub.fn
	}
	return fns
}

// notify calls every listener in turn. A listener that panics is logged
// and skipped; the rest still run.
func (s *Session) notify(subs []Listener, c Change) {
	for _, fn := range subs {
		s.safeCall(fn, c)
	}
}

func (s *Session) safeCall(fn Listener, c Change) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("panic", r).Error("change listener panicked")
		}
	}()
	fn(c)
}
