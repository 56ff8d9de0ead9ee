package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/niksmo/coffee-admin/internal/core/domain"
	"github.com/niksmo/coffee-admin/internal/core/port"
)

var _ port.ProductEditor = (*Editor)(nil)

// An Editor is a product form bound to a single selection slot.
//
// No selection means create mode. The editor holds no products of its own,
// it renders the latest snapshot of the catalog.
type Editor struct {
	catalog port.Catalog

	mu       sync.Mutex
	selected *domain.Product
	form     domain.Product
	snap     domain.Snapshot
}

func NewEditor(catalog port.Catalog) *Editor {
	e := &Editor{
		catalog: catalog,
		form:    domain.DefaultProduct(),
	}
	catalog.Subscribe(e.onSnapshot)
	return e
}

func (e *Editor) State() port.EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return port.EditorState{
		Form:     e.form,
		Editing:  e.selected != nil,
		Snapshot: e.snap,
	}
}

// Select copies the product into the form and switches to edit mode.
func (e *Editor) Select(id int64) error {
	const op = "Editor.Select"

	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.snap.Find(id)
	if !ok {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	e.selected = &p
	e.form = p
	return nil
}

// Reset returns the editor to create mode with a blank form.
func (e *Editor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

// Save updates p when it has an identifier and creates it otherwise.
//
// On success the editor is reset. On failure the form keeps p.
func (e *Editor) Save(
	ctx context.Context, p domain.Product,
) (domain.Product, error) {
	const op = "Editor.Save"

	e.mu.Lock()
	e.form = p
	e.mu.Unlock()

	var (
		saved domain.Product
		err   error
	)
	if p.HasID() {
		saved, err = e.catalog.Update(ctx, p)
	} else {
		saved, err = e.catalog.Create(ctx, p)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	e.Reset()
	return saved, nil
}

// Delete ignores products without identifier.
func (e *Editor) Delete(ctx context.Context, id int64) error {
	const op = "Editor.Delete"

	if id == 0 {
		return nil
	}
	if err := e.catalog.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (e *Editor) Reload(ctx context.Context) error {
	const op = "Editor.Reload"

	if err := e.catalog.Load(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (e *Editor) resetLocked() {
	e.selected = nil
	e.form = domain.DefaultProduct()
}

func (e *Editor) onSnapshot(s domain.Snapshot) {
	e.mu.Lock()
	e.snap = s
	e.mu.Unlock()
}
