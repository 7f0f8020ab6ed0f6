package domain

// Document describes an invoice as input data, as read from .billkraft.yaml.
type Document struct {
	Sender    Party          `yaml:"sender"    json:"sender"`
	Recipient Party          `yaml:"recipient" json:"recipient"`
	Discount  float64        `yaml:"discount"  json:"discount"`
	Items     []DocumentItem `yaml:"items"     json:"items,omitempty"`
	Comments  []string       `yaml:"comments"  json:"comments,omitempty"`
}

// DocumentItem is a line item as written in a Document.
type DocumentItem struct {
	Name  string  `yaml:"name"  json:"name"`
	Price float64 `yaml:"price" json:"price"`
	Tax   float64 `yaml:"tax"   json:"tax"`
}

// Build constructs an Invoice and appends the document's items and comments
// in order.
func (d Document) Build(opts ...Option) *Invoice {
	inv := NewInvoice(d.Sender, d.Recipient, opts...)
	for _, it := range d.Items {
		inv.AddItem(it.Name, it.Price, it.Tax)
	}
	for _, c := range d.Comments {
		inv.AddComment(c)
	}
	return inv
}

// DemoDocument returns the sample invoice used by `billkraft demo` and as the
// default when no .billkraft.yaml is present.
func DemoDocument() Document {
	return Document{
		Sender: Party{
			Name:    "Larry Jinkles",
			Address: "34 Windsor Ln.",
			Email:   "lejank@billing.com",
		},
		Recipient: Party{
			Name:    "Tod Hooper",
			Address: "14 Manslow road",
			Email:   "discreetclorinator@hotmail.com",
		},
		Discount: 0.20,
		Items: []DocumentItem{
			{Name: "34 floor building", Price: 3400, Tax: 0.1},
			{Name: "Equipment Rental", Price: 1000, Tax: 0.1},
			{Name: "Fear Tax", Price: 340, Tax: 0.0},
		},
		Comments: []string{
			"This is a comment for an invoice",
			"We noticed one of the windows on the East side of the 12th floor has a hairline fracture",
			"The job took 7 hours and 45 minutes to complete",
		},
	}
}
