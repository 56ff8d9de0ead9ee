package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/niksmo/coffee-admin/internal/core/domain"
	"github.com/niksmo/coffee-admin/internal/core/port"
)

// A Dashboard is a product editor with the stock and sales charts.
type Dashboard struct {
	*Editor

	mu     sync.Mutex
	latest domain.Snapshot
	stock  port.Chart
	sales  port.Chart
}

func NewDashboard(catalog port.Catalog) *Dashboard {
	d := &Dashboard{Editor: NewEditor(catalog)}
	catalog.Subscribe(d.onSnapshot)
	return d
}

// Ready binds the charts and draws the latest received snapshot.
//
// Charts are bound once, later calls are no-op.
func (d *Dashboard) Ready(stock, sales port.Chart) error {
	const op = "Dashboard.Ready"

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stock != nil {
		return nil
	}
	d.stock, d.sales = stock, sales

	if err := d.drawLocked(d.latest); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (d *Dashboard) onSnapshot(s domain.Snapshot) {
	const op = "Dashboard.onSnapshot"

	d.mu.Lock()
	defer d.mu.Unlock()

	d.latest = s
	if d.stock == nil {
		return
	}
	if err := d.drawLocked(s); err != nil {
		slog.Error("failed to redraw charts", "op", op, "err", err)
	}
}

func (d *Dashboard) drawLocked(s domain.Snapshot) error {
	data := domain.NewChartData(s.Products())

	d.stock.SetData(data.Labels, data.Stock)
	if err := d.stock.Redraw(); err != nil {
		return fmt.Errorf("stock: %w", err)
	}

	d.sales.SetData(data.Labels, data.Sales)
	if err := d.sales.Redraw(); err != nil {
		return fmt.Errorf("sales: %w", err)
	}
	return nil
}
