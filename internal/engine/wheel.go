package engine

import (
	"fmt"
	"math"
	"strconv"

	"github.com/tartampluch/go-birthday-wheel/internal/config"
)

// Item is one selectable row of a wheel.
type Item struct {
	Value int
	Label string
}

// Wheel is the toolkit-independent state of one picker column: a fixed
// list of items, the current scroll offset and the item under the center line.
// The highlighted index is always derived from the offset.
type Wheel struct {
	Column     Column
	Items      []Item
	ItemHeight float32

	offset float32
	index  int
}

// NewWheel builds the items of column c. The year wheel runs from
// currentYear down to config.MinYear.
func NewWheel(c Column, currentYear int, itemHeight float32) *Wheel {
	var items []Item
	switch c {
	case ColumnDay:
		items = make([]Item, 0, 31)
		for d := 1; d <= 31; d++ {
			items = append(items, Item{Value: d, Label: fmt.Sprintf(config.FormatDayLabel, d)})
		}
	case ColumnMonth:
		items = make([]Item, 0, len(config.MonthNames))
		for i, name := range config.MonthNames {
			items = append(items, Item{Value: i + 1, Label: name})
		}
	case ColumnYear:
		if currentYear < config.MinYear {
			currentYear = config.MinYear
		}
		items = make([]Item, 0, currentYear-config.MinYear+1)
		for y := currentYear; y >= config.MinYear; y-- {
			items = append(items, Item{Value: y, Label: strconv.Itoa(y)})
		}
	}
	return &Wheel{Column: c, Items: items, ItemHeight: itemHeight}
}

// OffsetToIndex returns the index of the item nearest the center line for
// a scroll offset: round(offset / itemHeight). The result may fall outside
// the item range when the offset does.
func OffsetToIndex(offset, itemHeight float32) int {
	if itemHeight <= 0 {
		return 0
	}
	return int(math.Round(float64(offset / itemHeight)))
}

// IndexToOffset is the scroll offset that puts item index on the center line.
func IndexToOffset(index int, itemHeight float32) float32 {
	return float32(index) * itemHeight
}

// Padding is the blank space needed before the first and after the last
// item so both can reach the center of a viewport showing visible rows.
func Padding(visible int, itemHeight float32) float32 {
	if visible < 1 {
		return 0
	}
	return float32((visible-1)/2) * itemHeight
}

// Len returns the number of real items.
func (w *Wheel) Len() int {
	return len(w.Items)
}

// Offset returns the last scroll offset seen by the wheel.
func (w *Wheel) Offset() float32 {
	return w.offset
}

// Index returns the highlighted index, possibly out of range.
func (w *Wheel) Index() int {
	return w.index
}

// MaxOffset is the largest offset that still centers a real item.
func (w *Wheel) MaxOffset() float32 {
	if len(w.Items) == 0 {
		return 0
	}
	return IndexToOffset(len(w.Items)-1, w.ItemHeight)
}

// Scroll records a new offset and returns the centered item.
// ok is false when the offset points past either end.
func (w *Wheel) Scroll(offset float32) (item Item, ok bool) {
	w.offset = offset
	w.index = OffsetToIndex(offset, w.ItemHeight)
	return w.Selected()
}

// Selected returns the item under the center line.
func (w *Wheel) Selected() (Item, bool) {
	if w.index < 0 || w.index >= len(w.Items) {
		return Item{}, false
	}
	return w.Items[w.index], true
}

// IndexOf returns the index of the item carrying value, or -1.
func (w *Wheel) IndexOf(value int) int {
	for i, it := range w.Items {
		if it.Value == value {
			return i
		}
	}
	return -1
}

// Clamp returns the value on the wheel nearest to value. Items run in
// either direction, so both ends are compared.
func (w *Wheel) Clamp(value int) int {
	if len(w.Items) == 0 {
		return value
	}
	lo, hi := w.Items[0].Value, w.Items[len(w.Items)-1].Value
	if lo > hi {
		lo, hi = hi, lo
	}
	return min(max(value, lo), hi)
}
