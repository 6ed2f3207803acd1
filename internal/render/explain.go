package render

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/katalvlaran/stoich/balancer"
	"github.com/katalvlaran/stoich/matrix"
)

// Explain writes a markdown report of every pipeline stage.
// a may be nil when the input failed to parse; then only the error is shown.
// b and balErr are the outcome of a.Balance.
func Explain(input string, a *balancer.Analysis, b *balancer.Balanced, balErr error) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Reaction\n\n`%s`\n\n", input)

	if a != nil {
		writeTerms(&sb, a)
		fmt.Fprintf(&sb, "## Elements\n\n%s\n\n", joinElements(a))

		sb.WriteString("## Conservation matrix\n\n")
		writeMatrix(&sb, a, a.Matrix)

		sb.WriteString("## Reduced row echelon form\n\n")
		writeMatrix(&sb, a, a.Reduced)
		fmt.Fprintf(&sb, "Rank %d, pivot columns %s.\n\n", len(a.Pivots), pivotNames(a))

		fmt.Fprintf(&sb, "## Null space\n\nNullity %d.\n\n", a.Nullity())
		for k, v := range a.Basis {
			fmt.Fprintf(&sb, "- v%d = (%s)\n", k+1, joinRats(v))
		}
		if a.Nullity() > 0 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString("## Result\n\n")
	switch {
	case balErr != nil:
		fmt.Fprintf(&sb, "Failed (`%s`): %s\n", balancer.KindOf(balErr), balErr)
	case b != nil:
		fmt.Fprintf(&sb, "**%s**\n", b.String())
	}

	return sb.String()
}

func writeTerms(sb *strings.Builder, a *balancer.Analysis) {
	sb.WriteString("## Terms\n\n| # | Side | Formula | Composition |\n|---|---|---|---|\n")
	nr := len(a.Reaction.Reactants)
	for i, term := range a.Reaction.Terms() {
		side := "reactant"
		if i >= nr {
			side = "product"
		}
		fmt.Fprintf(sb, "| %d | %s | %s | %s |\n", i+1, side, term, a.Vectors[i].String())
	}
	sb.WriteString("\n")
}

func writeMatrix(sb *strings.Builder, a *balancer.Analysis, m *matrix.Dense) {
	terms := a.Reaction.Terms()
	sb.WriteString("| |")
	for _, t := range terms {
		sb.WriteString(" " + t + " |")
	}
	sb.WriteString("\n|---|")
	sb.WriteString(strings.Repeat("---|", len(terms)))
	sb.WriteString("\n")

	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			continue
		}
		label := "r" + strconv.Itoa(i+1)
		if m == a.Matrix && i < len(a.Elements) {
			label = string(a.Elements[i])
		}
		fmt.Fprintf(sb, "| %s |", label)
		for _, x := range row {
			sb.WriteString(" " + x.RatString() + " |")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func joinElements(a *balancer.Analysis) string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = string(e)
	}

	return strings.Join(parts, ", ")
}

func pivotNames(a *balancer.Analysis) string {
	if len(a.Pivots) == 0 {
		return "none"
	}
	terms := a.Reaction.Terms()
	parts := make([]string, len(a.Pivots))
	for i, p := range a.Pivots {
		parts[i] = terms[p]
	}

	return strings.Join(parts, ", ")
}

func joinRats(v []*big.Rat) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = x.RatString()
	}

	return strings.Join(parts, ", ")
}

// Markdown renders md for a terminal of the given width with a glamour
// standard style ("dark", "light", "notty", ...).
func Markdown(md, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("render: markdown: %w", err)
	}

	return r.Render(md)
}
