package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/tartampluch/go-birthday-wheel/internal/config"
	"github.com/tartampluch/go-birthday-wheel/internal/engine"
)

// wheelColumn binds an engine.Wheel to a vertical scroll container.
// The wheel's offset is authoritative; the scroll container mirrors it.
type wheelColumn struct {
	wheel  *engine.Wheel
	items  []*wheelItem
	scroll *container.Scroll
	view   fyne.CanvasObject

	highlighted int

	// animGen invalidates frames of superseded smooth scrolls.
	animGen  uint64
	animStop func()

	// syncing is set while the column itself moves the scroll container.
	syncing bool

	onScroll func(c engine.Column, offset float32)
}

func newWheelColumn(w *engine.Wheel, width float32, onScroll func(engine.Column, float32), onTap func(engine.Column, engine.Item)) *wheelColumn {
	col := &wheelColumn{
		wheel:       w,
		highlighted: -1,
		onScroll:    onScroll,
	}

	rows := make([]fyne.CanvasObject, 0, w.Len())
	col.items = make([]*wheelItem, 0, w.Len())
	for _, it := range w.Items {
		row := newWheelItem(it, func(it engine.Item) {
			if onTap != nil {
				onTap(w.Column, it)
			}
		})
		col.items = append(col.items, row)
		rows = append(rows, row)
	}

	content := container.New(&wheelLayout{
		itemHeight: w.ItemHeight,
		padding:    engine.Padding(config.WheelVisibleItems, w.ItemHeight),
	}, rows...)

	col.scroll = container.NewVScroll(content)
	col.scroll.OnScrolled = func(p fyne.Position) {
		// A user drag takes over from any smooth scroll in flight.
		if !col.syncing {
			col.cancelAnimation()
		}
		col.onScroll(w.Column, p.Y)
	}

	viewport := fyne.NewSize(width, float32(config.WheelVisibleItems)*w.ItemHeight)
	col.view = container.NewGridWrap(viewport, col.scroll)
	return col
}

// setOffset moves the viewport and feeds the selection-update path.
func (c *wheelColumn) setOffset(offset float32) {
	c.syncing = true
	c.scroll.Offset = fyne.NewPos(0, offset)
	c.scroll.Refresh()
	c.syncing = false
	c.onScroll(c.wheel.Column, offset)
}

// jumpTo centers index immediately, aborting any smooth scroll in flight.
func (c *wheelColumn) jumpTo(index int) {
	c.cancelAnimation()
	c.setOffset(engine.IndexToOffset(index, c.wheel.ItemHeight))
}

// scrollTo animates the viewport until index sits on the center line.
// The last frame lands exactly on the target offset.
func (c *wheelColumn) scrollTo(index int, animator Animator) {
	c.cancelAnimation()
	gen := c.animGen

	from := c.wheel.Offset()
	to := engine.IndexToOffset(index, c.wheel.ItemHeight)

	c.animStop = animator.Animate(config.SmoothScrollDuration, func(progress float32) {
		if gen != c.animGen {
			return
		}
		if progress >= 1 {
			c.setOffset(to)
			slog.Debug(config.MsgWheelSettled,
				config.LogKeyComponent, config.CompPicker,
				config.LogKeyColumn, c.wheel.Column.String(),
				config.LogKeyIndex, c.wheel.Index())
			return
		}
		c.setOffset(from + (to-from)*progress)
	})
}

func (c *wheelColumn) cancelAnimation() {
	c.animGen++
	if c.animStop != nil {
		c.animStop()
		c.animStop = nil
	}
}

// highlight marks the row at index, clearing the previous one.
func (c *wheelColumn) highlight(index int) {
	if index == c.highlighted {
		return
	}
	if c.highlighted >= 0 && c.highlighted < len(c.items) {
		c.items[c.highlighted].SetHighlighted(false)
	}
	if index >= 0 && index < len(c.items) {
		c.items[index].SetHighlighted(true)
	}
	c.highlighted = index
}
