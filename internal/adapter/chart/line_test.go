package chart_test

import (
	"bytes"
	"testing"

	"github.com/niksmo/coffee-admin/internal/adapter/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	t.Run("NotDrawn", func(t *testing.T) {
		c := chart.NewLine("Stock")
		var buf bytes.Buffer
		_, err := c.WriteTo(&buf)
		require.ErrorIs(t, err, chart.ErrNotDrawn)
	})

	t.Run("RedrawReplacesData", func(t *testing.T) {
		c := chart.NewLine("Ventas")

		c.SetData([]string{"KeniaAA", "Sumatra"}, []int{17, 4})
		require.NoError(t, c.Redraw())

		var first bytes.Buffer
		n, err := c.WriteTo(&first)
		require.NoError(t, err)
		assert.Equal(t, int64(first.Len()), n)
		assert.Contains(t, first.String(), "Ventas")
		assert.Contains(t, first.String(), "KeniaAA")
		assert.Contains(t, first.String(), "Sumatra")

		c.SetData([]string{"Huila"}, []int{8})
		require.NoError(t, c.Redraw())

		var second bytes.Buffer
		_, err = c.WriteTo(&second)
		require.NoError(t, err)
		assert.Contains(t, second.String(), "Huila")
		assert.NotContains(t, second.String(), "KeniaAA")
	})

	t.Run("SetDataWithoutRedraw", func(t *testing.T) {
		c := chart.NewLine("Stock")
		c.SetData([]string{"Antigua"}, []int{1})
		require.NoError(t, c.Redraw())

		c.SetData([]string{"Yirgacheffe"}, []int{2})

		var buf bytes.Buffer
		_, err := c.WriteTo(&buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Antigua")
		assert.NotContains(t, buf.String(), "Yirgacheffe")
	})
}
