package models

// CartLine is one product's presence in a cart. Title and UnitPrice are
// snapshots taken when the line was last added or updated, so they can go
// stale relative to the stock_items table. MaxAvailable is the last-observed
// stock level and is advisory only; checkout re-validates against live stock.
type CartLine struct {
	ProductID    int     `json:"product_id"`
	Title        string  `json:"title"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	MaxAvailable int     `json:"max_available"`
}

func (l CartLine) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Cart holds the line items of one browsing session, ordered by insertion,
// at most one line per product. It has no identity beyond the session key.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Line returns a pointer into Lines for the given product, or nil.
func (c *Cart) Line(productID int) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return &c.Lines[i]
		}
	}
	return nil
}

func (c *Cart) RemoveLine(productID int) {
	kept := c.Lines[:0]
	for _, l := range c.Lines {
		if l.ProductID != productID {
			kept = append(kept, l)
		}
	}
	c.Lines = kept
}

func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.LineTotal()
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
