// Package board is the order list view: the full order set, the viewer it
// is shown to, the chosen criteria and the refresh loop that keeps it fresh.
package board

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/filter"
	"github.com/Ivanvillan/front-820hd-sub000/internal/refresh"
)

// OrderLister is the part of the order API the board needs.
type OrderLister interface {
	List(ctx context.Context) ([]entities.Order, error)
}

type Board struct {
	source    OrderLister
	viewer    entities.Viewer
	scheduler *refresh.Scheduler
	onUpdate  func([]entities.Order)

	mu       sync.RWMutex
	all      []entities.Order
	criteria filter.Criteria
	visible  bool
	editing  int
	saving   int
}

type Option func(*Board)

// WithOnUpdate registers a callback invoked with the filtered orders after
// every successful load.
func WithOnUpdate(fn func([]entities.Order)) Option {
	return func(b *Board) { b.onUpdate = fn }
}

func WithCriteria(c filter.Criteria) Option {
	return func(b *Board) { b.criteria = c }
}

func New(source OrderLister, viewer entities.Viewer, cfg refresh.Config, opts ...Option) *Board {
	b := &Board{
		source:  source,
		viewer:  viewer,
		visible: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.scheduler = refresh.New(cfg, source.List, b.replace, refresh.Contention{
		Saving:     b.isSaving,
		Visible:    b.isVisible,
		EditorOpen: b.isEditing,
	})
	return b
}

// Open loads the orders once and starts the refresh loop.
func (b *Board) Open(ctx context.Context) error {
	if err := b.Reload(ctx); err != nil {
		return err
	}
	return b.scheduler.Start(ctx)
}

// Close stops the refresh loop.
func (b *Board) Close() error {
	return b.scheduler.Stop()
}

// Reload fetches the orders right away. Unlike the scheduled refresh it
// reports the error to the caller.
func (b *Board) Reload(ctx context.Context) error {
	orders, err := b.source.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load orders")
	}
	b.replace(orders)
	return nil
}

// Refresh runs one scheduled-style cycle, honouring contention.
func (b *Board) Refresh(ctx context.Context) bool {
	return b.scheduler.Tick(ctx)
}

func (b *Board) IsRefreshing() bool {
	return b.scheduler.IsRefreshing()
}

// Orders returns the orders the viewer may see under the current criteria.
func (b *Board) Orders() []entities.Order {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return filter.Visible(b.all, b.viewer, b.criteria)
}

func (b *Board) Criteria() filter.Criteria {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.criteria
}

func (b *Board) SetCriteria(c filter.Criteria) {
	b.mu.Lock()
	b.criteria = c
	b.mu.Unlock()
}

func (b *Board) SetVisible(visible bool) {
	b.mu.Lock()
	b.visible = visible
	b.mu.Unlock()
}

// BeginEdit marks an editor as open. Every call must be paired with EndEdit.
func (b *Board) BeginEdit() {
	b.mu.Lock()
	b.editing++
	b.mu.Unlock()
}

func (b *Board) EndEdit() {
	b.mu.Lock()
	if b.editing > 0 {
		b.editing--
	}
	b.mu.Unlock()
}

// BeginSave marks a save as in flight. Every call must be paired with EndSave.
func (b *Board) BeginSave() {
	b.mu.Lock()
	b.saving++
	b.mu.Unlock()
}

func (b *Board) EndSave() {
	b.mu.Lock()
	if b.saving > 0 {
		b.saving--
	}
	b.mu.Unlock()
}

// Upsert replaces the cached copy of o after a local save, so the list shows
// the change before the next refresh.
func (b *Board) Upsert(o entities.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.all {
		if b.all[i].ID == o.ID {
			b.all[i] = o
			return
		}
	}
	b.all = append(b.all, o)
}

func (b *Board) replace(orders []entities.Order) {
	b.mu.Lock()
	b.all = append([]entities.Order(nil), orders...)
	filtered := filter.Visible(b.all, b.viewer, b.criteria)
	onUpdate := b.onUpdate
	b.mu.Unlock()

	if onUpdate != nil {
		onUpdate(filtered)
	}
}

func (b *Board) isSaving() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.saving > 0
}

func (b *Board) isVisible() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.visible
}

func (b *Board) isEditing() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.editing > 0
}
