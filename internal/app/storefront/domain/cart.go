package domain

import "strconv"

// CartLine is one product entry in a cart.
type CartLine struct {
	ProductID string
	Quantity  int
}

// Cart holds the (product id, quantity) pairs of one storefront session.
// Lines keep insertion order. A line with quantity zero or below never
// persists: adds below one are rejected and updates to zero remove the line.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add appends a new line or increments an existing one. Quantities below
// one are rejected with ErrInvalidQuantity.
func (c *Cart) Add(productID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity += quantity
			return nil
		}
	}
	c.lines = append(c.lines, CartLine{ProductID: productID, Quantity: quantity})
	return nil
}

// Update sets the quantity of an existing line. A quantity of zero or below
// behaves as Remove. Updating an absent product is a no-op.
func (c *Cart) Update(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line entirely regardless of quantity.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties all lines. Invoked after checkout or logout.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	total := 0
	for _, l := range c.lines {
		total += l.Quantity
	}
	return total
}

// BadgeLabel renders the header badge: empty when the cart is empty, the
// count up to 99, "99+" beyond. The cap is display-time only.
func (c *Cart) BadgeLabel() string {
	n := c.ItemCount()
	switch {
	case n <= 0:
		return ""
	case n > 99:
		return "99+"
	default:
		return strconv.Itoa(n)
	}
}
