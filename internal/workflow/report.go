package workflow

import (
	"fmt"
	"strings"

	"carbonwise/internal/model"
)

// GenerateReport renders a plain-text diagnostic report of one analysis,
// suitable for stdout or saving to a file. Verbose adds the raw spec tables
// the service extracted from the product page.
func GenerateReport(res *model.AnalysisResult, recs []model.Recommendation, verbose bool) string {
	var b strings.Builder

	b.WriteString("CarbonWise Product Analysis\n")
	b.WriteString("===========================\n\n")

	fmt.Fprintf(&b, "Product:   %s\n", res.Product)
	fmt.Fprintf(&b, "Material:  %s\n", res.Material)
	if res.Weight != "" {
		fmt.Fprintf(&b, "Weight:    %s %s\n", res.Weight, res.Unit)
	}
	fmt.Fprintf(&b, "Footprint: %s kg CO2e\n", res.Carbon)
	fmt.Fprintf(&b, "\n%s %s\n", model.ImpactBadge(res.Recommendation), res.Recommendation)

	if len(recs) > 0 {
		b.WriteString("\nGreener alternatives\n")
		b.WriteString("--------------------\n")
		for _, r := range recs {
			fmt.Fprintf(&b, "%s %s (%.2f kg CO2e)", model.IconAlternative, r.ProductName, r.CarbonFootprint)
			if r.Link != "" {
				fmt.Fprintf(&b, " %s", r.Link)
			}
			b.WriteString("\n")
		}
	}

	if verbose {
		writePairs(&b, "Materials", res.Materials)
		writePairs(&b, "Weights", res.Weights)
		writePairs(&b, "Quantities", res.Quantities)
	}

	return b.String()
}

func writePairs(b *strings.Builder, title string, pairs [][2]string) {
	if len(pairs) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
	for _, p := range pairs {
		fmt.Fprintf(b, "  %s: %s\n", p[0], p[1])
	}
}
