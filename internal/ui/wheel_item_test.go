package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-birthday-wheel/internal/engine"
)

func TestWheelItem_Tapped(t *testing.T) {
	test.NewApp()
	var got []engine.Item
	item := newWheelItem(engine.Item{Value: 7, Label: "07"}, func(it engine.Item) {
		got = append(got, it)
	})
	window := test.NewWindow(item)
	defer window.Close()

	test.Tap(item)
	test.Tap(item)

	require.Len(t, got, 2)
	assert.Equal(t, engine.Item{Value: 7, Label: "07"}, got[0])
	assert.Equal(t, "07", item.Text)
	assert.Equal(t, fyne.TextAlignCenter, item.Alignment)
}

func TestWheelItem_TappedWithoutHandler(t *testing.T) {
	test.NewApp()
	item := newWheelItem(engine.Item{Value: 1, Label: "01"}, nil)
	assert.NotPanics(t, func() { test.Tap(item) })
}

func TestWheelItem_Highlight(t *testing.T) {
	test.NewApp()
	item := newWheelItem(engine.Item{Value: 3, Label: "March"}, nil)
	window := test.NewWindow(item)
	defer window.Close()

	assert.False(t, item.Highlighted())
	assert.Equal(t, widget.MediumImportance, item.Importance)

	item.SetHighlighted(true)
	assert.True(t, item.Highlighted())
	assert.True(t, item.TextStyle.Bold)
	assert.Equal(t, widget.HighImportance, item.Importance)

	item.SetHighlighted(false)
	assert.False(t, item.Highlighted())
	assert.Equal(t, widget.MediumImportance, item.Importance)
}

func TestWheelLayout(t *testing.T) {
	l := &wheelLayout{itemHeight: 40, padding: 80}

	rows := []fyne.CanvasObject{
		widget.NewLabel("01"),
		widget.NewLabel("02"),
		widget.NewLabel("03"),
	}
	l.Layout(rows, fyne.NewSize(70, 280))

	for i, r := range rows {
		assert.Equal(t, fyne.NewPos(0, 80+float32(i)*40), r.Position())
		assert.Equal(t, fyne.NewSize(70, 40), r.Size())
	}

	size := l.MinSize(rows)
	assert.Equal(t, float32(2*80+3*40), size.Height)
	assert.Equal(t, rows[0].MinSize().Width, size.Width)
}

func TestWheelLayout_FirstAndLastReachCenter(t *testing.T) {
	const h = 40
	w := engine.NewWheel(engine.ColumnMonth, 2025, h)
	l := &wheelLayout{itemHeight: h, padding: engine.Padding(5, h)}

	viewport := float32(5 * h)
	center := viewport / 2

	// Row i is centered when the scroll offset equals IndexToOffset(i).
	for _, i := range []int{0, w.Len() - 1} {
		rowMid := l.padding + float32(i)*h + h/2
		assert.Equal(t, center, rowMid-engine.IndexToOffset(i, h))
	}
}
