package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/niksmo/coffee-admin/internal/core/port"
)

var ErrNotDrawn = errors.New("chart is not drawn yet")

var _ port.Chart = (*Line)(nil)

// A Line is a single-series line chart keyed by product name.
//
// The underlying [charts.Line] is built once, SetData replaces its axis and
// series and Redraw renders it into the page served by WriteTo.
type Line struct {
	title string

	mu   sync.Mutex
	line *charts.Line
	page []byte
}

func NewLine(title string) *Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
	)
	return &Line{title: title, line: line}
}

func (c *Line) SetData(labels []string, values []int) {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.line.SetXAxis(labels)
	c.line.MultiSeries = nil
	c.line.AddSeries(c.title, data)
}

func (c *Line) Redraw() error {
	const op = "Line.Redraw"

	c.mu.Lock()
	defer c.mu.Unlock()

	var buf bytes.Buffer
	if err := c.line.Render(&buf); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	c.page = buf.Bytes()
	return nil
}

// WriteTo writes the page of the last redraw.
func (c *Line) WriteTo(w io.Writer) (int64, error) {
	c.mu.Lock()
	page := c.page
	c.mu.Unlock()

	if page == nil {
		return 0, ErrNotDrawn
	}
	n, err := w.Write(page)
	return int64(n), err
}
