package domain

// DocumentLoader reads an invoice Document from a file or directory.
type DocumentLoader interface {
	Load(path string) (Document, error)
}

// Summary is the computed view of an invoice for a given discount.
type Summary struct {
	Invoice  *Invoice
	Discount float64
	Total    float64
	Comments string
}
