package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/godilite/fredbasket/internal/service"
)

// PrintUnweighted writes the headline block: item usage, both unweighted
// measures and the implied purchasing power of the geometric measure.
func PrintUnweighted(w io.Writer, yearA, yearB int, summary service.Summary) {
	fmt.Fprintf(w, "\nPERSONAL INFLATION: %d to %d\n\n", yearA, yearB)
	fmt.Fprintf(w, "Items used: %d (of %d)\n", summary.ItemsUsed, summary.ItemsTotal)
	fmt.Fprintf(w, "- Unweighted (arithmetic mean of pct changes): %6.2f%%\n", summary.Arithmetic*100.0)
	fmt.Fprintf(w, "- Unweighted (geometric mean of relatives):    %6.2f%%\n", summary.Geometric*100.0)

	remaining, loss := service.PurchasingPower(summary.Geometric)
	fmt.Fprintf(w, "\n- Implied purchasing power (geometric): $%.3f per $1 (loss %.2f%%)\n", remaining, loss*100.0)
}

// PrintUncomputable replaces the headline block when no basket row was usable.
func PrintUncomputable(w io.Writer, yearA, yearB, itemsTotal int) {
	fmt.Fprintf(w, "\nPERSONAL INFLATION: %d to %d\n\n", yearA, yearB)
	fmt.Fprintf(w, "Items used: 0 (of %d)\n", itemsTotal)
	fmt.Fprintln(w, "No usable rows: inflation statistics are uncomputable.")
}

// PrintWeighted writes the necessities index block. Weights are listed in
// sorted category order when requested.
func PrintWeighted(w io.Writer, index service.WeightedIndex, printWeights bool) {
	fmt.Fprintln(w, "\nWEIGHTED 'NECESSITIES' INDEX")
	fmt.Fprintf(w, "- Weighted pct change: %6.2f%%\n", index.PctChange*100.0)

	remaining, loss := service.PurchasingPower(index.PctChange)
	fmt.Fprintf(w, "- Implied purchasing power (weighted):  $%.3f per $1 (loss %.2f%%)\n", remaining, loss*100.0)

	if !printWeights || len(index.Weights) == 0 {
		return
	}
	fmt.Fprintln(w, "\nNormalized category weights actually used:")
	categories := make([]string, 0, len(index.Weights))
	for category := range index.Weights {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Fprintf(w, "  %-20s %6.2f%%\n", category, index.Weights[category]*100.0)
	}
}

// PrintWeightedUnavailable reports an uncomputable weighted index explicitly
// rather than omitting the block.
func PrintWeightedUnavailable(w io.Writer) {
	fmt.Fprintln(w, "\nWeighted index: not computed (no mapped categories present).")
}

// PrintMovers writes the top increases and decreases lists.
func PrintMovers(w io.Writer, increases, decreases []service.Mover) {
	fmt.Fprintln(w, "\nTop item increases:")
	for _, m := range increases {
		fmt.Fprintf(w, "  %-40s  %+.1f%%\n", m.Item, m.PctChange*100.0)
	}
	fmt.Fprintln(w, "\nTop item decreases:")
	for _, m := range decreases {
		fmt.Fprintf(w, "  %-40s  %+.1f%%\n", m.Item, m.PctChange*100.0)
	}
}
