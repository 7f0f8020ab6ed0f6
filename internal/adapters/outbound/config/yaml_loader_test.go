package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/billkraft/billkraft/internal/adapters/outbound/config"
	"github.com/billkraft/billkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocument(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestYAMLLoader_MissingFileInDirReturnsDemo(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	doc, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DemoDocument(), doc)
}

func TestYAMLLoader_DirectoryWithDocument(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, ".billkraft.yaml", `
sender:
  name: Acme
discount: 0.1
items:
  - name: Widget
    price: 10
    tax: 0.2
`)
	loader := appconfig.New()

	doc, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "Acme", doc.Sender.Name)
	assert.InDelta(t, 0.1, doc.Discount, 0.001)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, domain.DocumentItem{Name: "Widget", Price: 10, Tax: 0.2}, doc.Items[0])
}

func TestYAMLLoader_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	p := writeDocument(t, dir, "invoice.yaml", `
recipient:
  name: Tod Hooper
  email: tod@example.com
comments:
  - first
  - second
`)
	loader := appconfig.New()

	doc, err := loader.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "Tod Hooper", doc.Recipient.Name)
	assert.Equal(t, "tod@example.com", doc.Recipient.Email)
	assert.Equal(t, []string{"first", "second"}, doc.Comments)
}

func TestYAMLLoader_MissingExplicitFile(t *testing.T) {
	loader := appconfig.New()

	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, ".billkraft.yaml", `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "parsing .billkraft.yaml")
}

func TestYAMLLoader_NonNumericPrice(t *testing.T) {
	dir := t.TempDir()
	p := writeDocument(t, dir, "bad.yaml", `
items:
  - name: Widget
    price: ten
    tax: 0.2
`)
	loader := appconfig.New()

	_, err := loader.Load(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestYAMLLoader_UnknownField(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"misspelled item price", "items:\n  - name: Widget\n    prise: 100\n    tax: 0.5\n"},
		{"misspelled item tax", "items:\n  - name: Widget\n    price: 100\n    tax_rate: 0.5\n"},
		{"misspelled top-level key", "discout: 0.2\n"},
		{"misspelled party key", "sender:\n  mail: a@b.c\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := writeDocument(t, t.TempDir(), "typo.yaml", tt.content)
			loader := appconfig.New()

			_, err := loader.Load(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
			assert.Contains(t, err.Error(), "parsing typo.yaml")
		})
	}
}

func TestYAMLLoader_NegativeValuesAccepted(t *testing.T) {
	dir := t.TempDir()
	p := writeDocument(t, dir, "neg.yaml", `
discount: 1.5
items:
  - name: Refund
    price: -50
    tax: -0.1
`)
	loader := appconfig.New()

	doc, err := loader.Load(p)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, doc.Discount, 0.001)
	assert.InDelta(t, -50, doc.Items[0].Price, 0.001)
}

func TestYAMLLoader_EmptyFileReturnsEmptyDocument(t *testing.T) {
	dir := t.TempDir()
	writeDocument(t, dir, ".billkraft.yaml", "")
	loader := appconfig.New()

	doc, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, doc.Items)
	assert.Empty(t, doc.Sender.Name)
}

func TestYAMLLoader_Fixture(t *testing.T) {
	loader := appconfig.New()

	doc, err := loader.Load("../../../../testdata/invoices/sample.yaml")
	require.NoError(t, err)
	assert.Equal(t, domain.DemoDocument(), doc)
}
