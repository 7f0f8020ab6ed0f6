package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/billkraft/billkraft/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	totalStyle    = lipgloss.NewStyle().Bold(true).Foreground(success)
	negativeStyle = lipgloss.NewStyle().Bold(true).Foreground(danger)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// FormatAmount renders v the way the sample run printed floats: the shortest
// round-tripping digits, a trailing ".0" on whole numbers (4144 renders as
// "4144.0"), exponent form outside [1e-4, 1e16), and "nan"/"inf"/"-inf".
// No currency rounding is applied.
func FormatAmount(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if exp := decimalExponent(v); v != 0 && (exp < -4 || exp >= 16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// decimalExponent returns the base-10 exponent of v's shortest representation.
func decimalExponent(v float64) int {
	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, _ := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	return exp
}

// RenderTotalLine returns "Total is $<total>." without a trailing newline.
func RenderTotalLine(summary *domain.Summary) string {
	return fmt.Sprintf("Total is $%s.", FormatAmount(summary.Total))
}

// RenderPlain reproduces the sample-run output: the total line followed by
// the comment block.
func RenderPlain(summary *domain.Summary) string {
	return RenderTotalLine(summary) + "\n" + summary.Comments + "\n"
}

// RenderSummary formats an invoice summary for terminal output.
func RenderSummary(summary *domain.Summary) string {
	var b strings.Builder
	inv := summary.Invoice

	// ── Header ──
	title := headerStyle.Render("billkraft")
	subtitle := dimStyle.Render("Invoice")
	totalStyled := amountStyle(summary.Total).Render("$" + FormatAmount(summary.Total))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + totalStyled))
	b.WriteString("\n\n")

	// ── Parties ──
	renderParty(&b, "From", inv.Sender())
	renderParty(&b, "To", inv.Recipient())
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(padRight("Created", 10)),
		dimStyle.Render(inv.CreatedAt().Format("2006-01-02 15:04")))

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Items ──
	items := inv.Items()
	b.WriteString("  " + titleStyle.Render("Items") + "\n\n")
	if len(items) == 0 {
		b.WriteString("  " + dimStyle.Render("No items.") + "\n")
	}
	for _, it := range items {
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			padRight(it.Name, 30),
			dimStyle.Render(padLeft(FormatAmount(it.Price), 12)),
			dimStyle.Render(padLeft(formatRate(it.TaxRate), 8)),
			padLeft(FormatAmount(it.LineTotal(summary.Discount)), 12),
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(padRight("Discount", 10)), formatRate(summary.Discount))
	fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(padRight("Total", 10)),
		amountStyle(summary.Total).Render("$"+FormatAmount(summary.Total)))

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Comments ──
	comments := inv.CommentLines()
	b.WriteString("  " + titleStyle.Render("Comments") + "\n\n")
	if len(comments) == 0 {
		b.WriteString("  " + dimStyle.Render("No comments.") + "\n")
	}
	for _, c := range comments {
		b.WriteString("  " + faintStyle.Render("•") + " " + c + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderParty(b *strings.Builder, label string, p domain.Party) {
	fmt.Fprintf(b, "  %s %s\n", labelStyle.Render(padRight(label, 10)), p.Name)
	if p.Address != "" {
		fmt.Fprintf(b, "  %s %s\n", padRight("", 10), dimStyle.Render(p.Address))
	}
	if p.Email != "" {
		fmt.Fprintf(b, "  %s %s\n", padRight("", 10), dimStyle.Render(p.Email))
	}
}

func amountStyle(v float64) lipgloss.Style {
	if v < 0 {
		return negativeStyle
	}
	return totalStyle
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate*100, 'f', -1, 64) + "%"
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
