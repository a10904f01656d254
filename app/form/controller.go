// Package form drives the add, edit and delete workflow of the employee directory.
// Controller keeps an edit session (open form with its draft values, or a pending delete confirmation)
// and commits it to the store once the draft passes validation.
package form

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/empdir/app/enums"
	"github.com/umputun/empdir/app/store"
)

var (
	// ErrNotOpen returned on submit without an open form
	ErrNotOpen = errors.New("form is not open")
	// ErrNoPendingDelete returned on delete confirmation without an open delete dialog
	ErrNoPendingDelete = errors.New("no pending delete")
	// ErrUnknownField returned by SetField for a name which is not a form field
	ErrUnknownField = errors.New("unknown form field")
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the part of the employee store used to commit the session
type Store interface {
	Add(ctx context.Context, d store.Draft) ([]store.Employee, error)
	Update(ctx context.Context, id int, d store.Draft) ([]store.Employee, error)
	Remove(ctx context.Context, id int) ([]store.Employee, error)
}

// State is a snapshot of the edit session
type State struct {
	Mode            enums.FormMode
	TargetID        int // id of edited record, edit mode only
	Values          Values
	Errors          map[string]string // field errors of the last failed submit
	DeleteOpen      bool
	PendingDeleteID int
}

// FormOpen reports whether the add or edit form is shown
func (s State) FormOpen() bool { return s.Mode != enums.FormModeNone }

// Title returns the form header
func (s State) Title() string {
	if s.Mode == enums.FormModeEdit {
		return "Edit Employee"
	}
	return "Add Employee"
}

// Controller is a single edit session. Safe for concurrent use, events are applied one by one.
type Controller struct {
	store Store

	mu              sync.Mutex
	mode            enums.FormMode
	targetID        int
	values          Values
	errors          map[string]string
	deleteOpen      bool
	pendingDeleteID int
}

// NewController makes a closed session committing to the store
func NewController(s Store) *Controller {
	return &Controller{store: s, mode: enums.FormModeNone}
}

// OpenAdd opens an empty form for a new employee
func (c *Controller) OpenAdd() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetForm()
	c.mode = enums.FormModeAdd
	c.values = Values{}
	for _, f := range Fields {
		c.values[f] = ""
	}
}

// OpenEdit opens the form filled with fields of the record
func (c *Controller) OpenEdit(e store.Employee) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetForm()
	c.mode = enums.FormModeEdit
	c.targetID = e.ID
	c.values = ValuesOf(e)
}

// SetField updates a single draft value. Values are not checked until Submit.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == enums.FormModeNone {
		return ErrNotOpen
	}
	if !isField(name) {
		return fmt.Errorf("%w %q", ErrUnknownField, name)
	}
	c.values[name] = value
	delete(c.errors, name)
	return nil
}

// Submit validates the draft and commits it, Store.Add in add mode and Store.Update in edit mode.
// On validation failure the form stays open with field errors and *ValidationError is returned.
// On success the form is closed and the updated collection returned.
func (c *Controller) Submit(ctx context.Context) ([]store.Employee, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == enums.FormModeNone {
		return nil, ErrNotOpen
	}

	draft, err := Validate(c.values)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.errors = maps.Clone(verr.Fields)
		}
		return nil, err
	}

	var res []store.Employee
	switch c.mode {
	case enums.FormModeAdd:
		res, err = c.store.Add(ctx, draft)
	case enums.FormModeEdit:
		res, err = c.store.Update(ctx, c.targetID, draft)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save employee: %w", err)
	}

	log.Printf("[DEBUG] form %s submitted, %d employees", c.mode, len(res))
	c.resetForm()
	return res, nil
}

// Cancel closes the form and drops the draft
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetForm()
}

// OpenDeleteConfirm opens the delete dialog for the record id
func (c *Controller) OpenDeleteConfirm(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleteOpen = true
	c.pendingDeleteID = id
}

// ConfirmDelete removes the pending record and closes the dialog
func (c *Controller) ConfirmDelete(ctx context.Context) ([]store.Employee, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.deleteOpen {
		return nil, ErrNoPendingDelete
	}

	res, err := c.store.Remove(ctx, c.pendingDeleteID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete employee %d: %w", c.pendingDeleteID, err)
	}
	c.resetDelete()
	return res, nil
}

// CancelDelete closes the delete dialog
func (c *Controller) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetDelete()
}

// State returns a copy of the session state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Mode:            c.mode,
		TargetID:        c.targetID,
		Values:          maps.Clone(c.values),
		Errors:          maps.Clone(c.errors),
		DeleteOpen:      c.deleteOpen,
		PendingDeleteID: c.pendingDeleteID,
	}
}

func (c *Controller) resetForm() {
	c.mode = enums.FormModeNone
	c.targetID = 0
	c.values = nil
	c.errors = nil
}

func (c *Controller) resetDelete() {
	c.deleteOpen = false
	c.pendingDeleteID = 0
}
