package domain

import (
	"strings"
	"time"
)

// Party identifies one side of an invoice.
type Party struct {
	Name    string `yaml:"name"    json:"name"`
	Address string `yaml:"address" json:"address"`
	Email   string `yaml:"email"   json:"email"`
}

// Item is a single billable line. TaxRate is fractional (0.1 is 10%).
type Item struct {
	Name    string
	Price   float64
	TaxRate float64
}

// Invoice aggregates sender and recipient identity, line items and comments.
// Items and comments are append-only. An Invoice is not safe for concurrent
// use; callers that share one must serialize access themselves.
type Invoice struct {
	sender    Party
	recipient Party
	createdAt time.Time
	items     []Item
	comments  []string
}

// Option configures an Invoice at construction.
type Option func(*invoiceOptions)

type invoiceOptions struct {
	clock func() time.Time
}

// WithClock sets the time source used for the creation timestamp.
func WithClock(clock func() time.Time) Option {
	return func(o *invoiceOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// NewInvoice stores both parties verbatim and stamps the creation time.
// Any value is accepted, including empty strings.
func NewInvoice(sender, recipient Party, opts ...Option) *Invoice {
	o := invoiceOptions{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Invoice{
		sender:    sender,
		recipient: recipient,
		createdAt: o.clock(),
		items:     []Item{},
		comments:  []string{},
	}
}

func (inv *Invoice) Sender() Party        { return inv.sender }
func (inv *Invoice) Recipient() Party     { return inv.recipient }
func (inv *Invoice) CreatedAt() time.Time { return inv.createdAt }

// AddItem appends a line item. Negative prices and out-of-range rates are
// accepted as given.
func (inv *Invoice) AddItem(name string, price, taxRate float64) {
	inv.items = append(inv.items, Item{Name: name, Price: price, TaxRate: taxRate})
}

// Items returns a copy of the line items in insertion order.
func (inv *Invoice) Items() []Item {
	out := make([]Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// LineTotal is the item's charge after discount, with tax applied to the
// discounted price.
func (it Item) LineTotal(discountRate float64) float64 {
	discounted := it.Price - (it.Price * discountRate)
	return discounted + (discounted * it.TaxRate)
}

// Total sums every item's LineTotal. The discount is applied before tax.
// An invoice without items totals zero.
func (inv *Invoice) Total(discountRate float64) float64 {
	var total float64
	for _, it := range inv.items {
		total += it.LineTotal(discountRate)
	}
	return total
}

func (inv *Invoice) AddComment(text string) {
	inv.comments = append(inv.comments, text)
}

// CommentLines returns a copy of the comments in insertion order.
func (inv *Invoice) CommentLines() []string {
	out := make([]string, len(inv.comments))
	copy(out, inv.comments)
	return out
}

// Comments joins all comments, each preceded by a newline, so a non-empty
// result always starts with "\n". No comments yields "".
func (inv *Invoice) Comments() string {
	var b strings.Builder
	for _, c := range inv.comments {
		b.WriteString("\n")
		b.WriteString(c)
	}
	return b.String()
}
