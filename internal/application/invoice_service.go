package application

import (
	"fmt"

	"github.com/billkraft/billkraft/internal/domain"
)

// InvoiceService loads invoice documents and computes their summaries.
type InvoiceService struct {
	loader domain.DocumentLoader
	opts   []domain.Option
}

// NewInvoiceService creates an InvoiceService. opts are applied to every
// invoice it builds. loader may be nil when only Summarize is used.
func NewInvoiceService(loader domain.DocumentLoader, opts ...domain.Option) *InvoiceService {
	return &InvoiceService{loader: loader, opts: opts}
}

// Summarize builds the invoice described by doc and totals it. A non-nil
// discount overrides the document's own.
func (s *InvoiceService) Summarize(doc domain.Document, discount *float64) *domain.Summary {
	rate := doc.Discount
	if discount != nil {
		rate = *discount
	}

	inv := doc.Build(s.opts...)
	return &domain.Summary{
		Invoice:  inv,
		Discount: rate,
		Total:    inv.Total(rate),
		Comments: inv.Comments(),
	}
}

// SummarizePath loads the document at path and summarizes it.
func (s *InvoiceService) SummarizePath(path string, discount *float64) (*domain.Summary, error) {
	doc, err := s.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading invoice: %w", err)
	}
	return s.Summarize(doc, discount), nil
}
