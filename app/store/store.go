// Package store keeps the canonical list of employees and mirrors it into a persistent slot.
// The whole collection is stored as a JSON array under a single key and rewritten in full
// on every change. On the first run, when the slot has no value yet, the collection is
// initialized from the seed fixture.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/empdir/app/enums"
	"github.com/umputun/empdir/app/store/slot"
)

// DefaultKey is the slot key used when Opts.Key is empty
const DefaultKey = "employees"

//go:generate moq -out mocks/slot.go -pkg mocks -skip-ensure -fmt goimports . Slot

// Slot is a persistent single-value holder keyed by name.
// Get returns slot.ErrNotFound if nothing was stored under the key yet.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

// Repeater repeats failed function
type Repeater interface {
	Do(ctx context.Context, fun func() error, errors ...error) (err error)
}

// Event describes a change applied to the collection.
// Employee is the added, updated or removed record, Employees is the collection after the change.
type Event struct {
	Kind      enums.ChangeKind
	Employee  Employee
	Employees []Employee
}

// Opts defines optional parameters of the store
type Opts struct {
	Key      string     // slot key, DefaultKey if empty
	Seed     []Employee // fixture for Load called before Init
	Repeater Repeater   // retries slot writes, single attempt if nil
}

// Store owns the employee collection. All methods are safe for concurrent use.
type Store struct {
	slot Slot
	key  string
	seed []Employee
	rptr Repeater

	mu          sync.Mutex
	employees   []Employee
	initialized bool
	subs        map[int]func(Event)
	nextSubID   int
}

// New makes a store on top of the slot. Nothing is read until Init or the first Load.
func New(s Slot, opts Opts) *Store {
	key := opts.Key
	if key == "" {
		key = DefaultKey
	}
	return &Store{
		slot: s,
		key:  key,
		seed: slices.Clone(opts.Seed),
		rptr: opts.Repeater,
		subs: make(map[int]func(Event)),
	}
}

// Init reads the persisted collection. If the slot has nothing stored yet, or the stored value
// can't be decoded, the collection is set to seed and persisted. Calls after a successful Init are no-op.
func (s *Store) Init(ctx context.Context, seed []Employee) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}
	s.seed = slices.Clone(seed)
	evt, seeded, err := s.initLocked(ctx)
	subs := s.subscribers()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	if seeded {
		s.publish(subs, evt)
	}
	return nil
}

// Load returns the ordered collection. The first call initializes the store with the seed from Opts
// if Init wasn't called.
func (s *Store) Load(ctx context.Context) ([]Employee, error) {
	s.mu.Lock()
	evt, seeded, err := s.ensureInit(ctx)
	res := slices.Clone(s.employees)
	subs := s.subscribers()
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if seeded {
		s.publish(subs, evt)
	}
	return res, nil
}

// Get returns the employee with given id and true, or false if there is no such employee
func (s *Store) Get(ctx context.Context, id int) (Employee, bool, error) {
	employees, err := s.Load(ctx)
	if err != nil {
		return Employee{}, false, err
	}
	idx := slices.IndexFunc(employees, func(e Employee) bool { return e.ID == id })
	if idx < 0 {
		return Employee{}, false, nil
	}
	return employees[idx], true, nil
}

// Add appends a new employee made from the draft. The id is the id of the last record plus one,
// or 1 for an empty collection. Returns the updated collection.
func (s *Store) Add(ctx context.Context, d Draft) ([]Employee, error) {
	return s.mutate(ctx, func(current []Employee) ([]Employee, Event, bool) {
		id := 1
		if n := len(current); n > 0 {
			id = current[n-1].ID + 1
		}
		rec := d.employee(id)
		return append(slices.Clone(current), rec), Event{Kind: enums.ChangeKindAdded, Employee: rec}, true
	})
}

// Update replaces fields of the employee with given id by the draft values, id stays the same.
// Unknown id is a no-op. Returns the updated collection.
func (s *Store) Update(ctx context.Context, id int, d Draft) ([]Employee, error) {
	return s.mutate(ctx, func(current []Employee) ([]Employee, Event, bool) {
		idx := slices.IndexFunc(current, func(e Employee) bool { return e.ID == id })
		if idx < 0 {
			return current, Event{}, false
		}
		updated := slices.Clone(current)
		updated[idx] = d.employee(id)
		return updated, Event{Kind: enums.ChangeKindUpdated, Employee: updated[idx]}, true
	})
}

// Remove deletes the employee with given id. Unknown id is a no-op. Returns the updated collection.
func (s *Store) Remove(ctx context.Context, id int) ([]Employee, error) {
	return s.mutate(ctx, func(current []Employee) ([]Employee, Event, bool) {
		idx := slices.IndexFunc(current, func(e Employee) bool { return e.ID == id })
		if idx < 0 {
			return current, Event{}, false
		}
		removed := current[idx]
		return slices.Delete(slices.Clone(current), idx, idx+1), Event{Kind: enums.ChangeKindRemoved, Employee: removed}, true
	})
}

// Subscribe registers fn to be called after every change of the collection.
// Calls are synchronous, made by the goroutine that changed the store, after the store lock released.
// Returns a function removing the subscription.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// String returns the slot key, used in logs
func (s *Store) String() string {
	return fmt.Sprintf("store{key:%s}", s.key)
}

// mutate applies fn to the current collection. If fn reports a change, the result gets persisted
// and becomes the current collection, otherwise nothing is written.
func (s *Store) mutate(ctx context.Context, fn func(current []Employee) ([]Employee, Event, bool)) ([]Employee, error) {
	s.mu.Lock()
	initEvt, seeded, err := s.ensureInit(ctx)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	updated, evt, changed := fn(s.employees)
	if changed {
		if err = s.persist(ctx, updated); err != nil {
			s.mu.Unlock()
			return nil, err
		}
		s.employees = updated
	}
	res := slices.Clone(s.employees)
	subs := s.subscribers()
	s.mu.Unlock()

	if seeded {
		s.publish(subs, initEvt)
	}
	if changed {
		evt.Employees = slices.Clone(res)
		s.publish(subs, evt)
	}
	return res, nil
}

// ensureInit initializes the store with configured seed if not initialized yet, must be called under lock
func (s *Store) ensureInit(ctx context.Context) (Event, bool, error) {
	if s.initialized {
		return Event{}, false, nil
	}
	return s.initLocked(ctx)
}

// initLocked loads the collection from the slot or seeds it. Returns the seed event and true if seeded.
func (s *Store) initLocked(ctx context.Context) (Event, bool, error) {
	data, err := s.slot.Get(ctx, s.key)
	switch {
	case err == nil:
		var employees []Employee
		decErr := json.Unmarshal(data, &employees)
		if decErr == nil {
			if employees == nil {
				employees = []Employee{}
			}
			s.employees = employees
			s.initialized = true
			log.Printf("[DEBUG] loaded %d employees from %s", len(employees), s.key)
			return Event{}, false, nil
		}
		log.Printf("[WARN] can't decode employees stored in %s, reset to seed: %v", s.key, decErr)
	case errors.Is(err, slot.ErrNotFound):
		log.Printf("[INFO] no employees stored in %s, seed with %d records", s.key, len(s.seed))
	default:
		return Event{}, false, fmt.Errorf("failed to read employees from %s: %w", s.key, err)
	}

	seeded := slices.Clone(s.seed)
	if seeded == nil {
		seeded = []Employee{}
	}
	if err := s.persist(ctx, seeded); err != nil {
		return Event{}, false, err
	}
	s.employees = seeded
	s.initialized = true
	return Event{Kind: enums.ChangeKindSeeded, Employees: slices.Clone(seeded)}, true, nil
}

// persist writes the whole collection to the slot, retried with repeater if set
func (s *Store) persist(ctx context.Context, employees []Employee) error {
	if employees == nil {
		employees = []Employee{}
	}
	data, err := json.Marshal(employees)
	if err != nil {
		return fmt.Errorf("failed to marshal employees: %w", err)
	}

	put := func() error { return s.slot.Put(ctx, s.key, data) }
	if s.rptr != nil {
		err = s.rptr.Do(ctx, put)
	} else {
		err = put()
	}
	if err != nil {
		return fmt.Errorf("failed to persist %d employees to %s: %w", len(employees), s.key, err)
	}
	return nil
}

// subscribers returns a snapshot of registered subscribers, must be called under lock
func (s *Store) subscribers() []func(Event) {
	res := make([]func(Event), 0, len(s.subs))
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		res = append(res, s.subs[id])
	}
	return res
}

func (s *Store) publish(subs []func(Event), evt Event) {
	for _, fn := range subs {
		fn(evt)
	}
}
