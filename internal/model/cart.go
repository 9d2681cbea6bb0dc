package model

// CartItem is one pending purchase line. Name and UnitPrice are snapshots
// taken when the line was added; checkout charges the snapshot price even if
// the product row changes in between.
type CartItem struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice float64
}

func (i *CartItem) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// Cart holds the lines of one purchase session. It is never persisted;
// ID is the receipt reference printed on a successful checkout.
type Cart struct {
	ID    string
	Items []CartItem
}

func (c *Cart) Add(item CartItem) {
	c.Items = append(c.Items, item)
}

func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Total() float64 {
	var total float64
	for i := range c.Items {
		total += c.Items[i].LineTotal()
	}
	return total
}
