package model

import "github.com/shopspring/decimal"

type CartLine struct {
	Item     Item
	Quantity int
}

func (l CartLine) LineTotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the single active order of a session. Adding the same item twice
// produces two lines.
type Cart struct {
	lines []CartLine
	total decimal.Decimal
}

func NewCart() *Cart {
	return &Cart{total: decimal.Zero}
}

// AddLine does not validate quantity, callers do.
func (c *Cart) AddLine(item Item, quantity int) CartLine {
	line := CartLine{Item: item, Quantity: quantity}
	c.lines = append(c.lines, line)
	c.total = c.total.Add(line.LineTotal())
	return line
}

func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) Total() decimal.Decimal {
	return c.total
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
