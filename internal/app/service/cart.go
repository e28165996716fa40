package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ikkim/udonggeum-storefront/internal/app/model"
)

// MaxQuantity caps a single line.
const MaxQuantity = 9999

// Cart is the ordered line list of one visitor. A line exists only with a
// quantity between 1 and MaxQuantity; stock is never checked.
type Cart struct {
	Lines []model.CartLine `json:"lines"`
}

// Add merges qty into the line for p, or appends a new line capturing p's
// current display fields. qty below 1 counts as 1 and a merged line stops
// at MaxQuantity.
func (c *Cart) Add(p model.Product, qty int) {
	qty = clampQuantity(qty)
	for i := range c.Lines {
		if c.Lines[i].ID == p.ID {
			c.Lines[i].Qty = clampQuantity(clampQuantity(c.Lines[i].Qty) + qty)
			return
		}
	}
	c.Lines = append(c.Lines, model.CartLine{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Currency:  p.Currency,
		Thumbnail: p.Thumbnail,
		Qty:       qty,
	})
}

// SetQuantity overwrites the quantity of the line at index, clamped to
// [1, MaxQuantity].
func (c *Cart) SetQuantity(index, value int) error {
	if index < 0 || index >= len(c.Lines) {
		return ErrCartLineNotFound
	}
	c.Lines[index].Qty = clampQuantity(value)
	return nil
}

func (c *Cart) Remove(index int) error {
	if index < 0 || index >= len(c.Lines) {
		return ErrCartLineNotFound
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	return nil
}

// TotalQuantity is the sum of all line quantities.
func (c *Cart) TotalQuantity() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Qty
	}
	return n
}

// Total is the sum of line subtotals.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// ParseQuantity reads a quantity field. Empty, non-numeric, zero and
// negative input all yield 1; a leading integer is accepted ("3abc" is 3) and
// anything above MaxQuantity, however long, yields MaxQuantity.
func ParseQuantity(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 1
	}
	return clampQuantity(n)
}

func clampQuantity(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxQuantity {
		return MaxQuantity
	}
	return n
}
