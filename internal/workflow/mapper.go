package workflow

import (
	"errors"
	"fmt"
	"sort"

	"carbonwise/internal/api"
	"carbonwise/internal/model"
)

// DefaultAnalysisError stands in when the service reports failure without
// saying why.
const DefaultAnalysisError = "Failed to analyze the product."

// Recommendation labels, thresholded on the raw numeric footprint.
const (
	LabelHigh     = "High carbon footprint - consider eco-friendly alternatives"
	LabelModerate = "Moderate carbon footprint - look for greener options"
	LabelLow      = "Low carbon footprint - good environmental choice"
)

// Map normalizes a raw service payload into the view model. Every absent or
// null field gets a documented default - nothing optional leaks through.
// A payload with success=false becomes an error carrying the service's own
// message.
func Map(raw *api.AnalyzeResponse) (*model.AnalysisResult, []model.Recommendation, error) {
	if raw == nil {
		return nil, nil, errors.New(DefaultAnalysisError)
	}
	if !raw.Success {
		msg := raw.Error
		if msg == "" {
			msg = DefaultAnalysisError
		}
		return nil, nil, errors.New(msg)
	}

	result := &model.AnalysisResult{
		Product:        raw.ProductName,
		Carbon:         FormatFootprint(raw.CarbonFootprint),
		Material:       strOr(raw.Material, "Unknown"),
		Image:          strOr(raw.ImageURL, ""),
		Weight:         strOr(raw.WeightValue, ""),
		Unit:           strOr(raw.WeightUnit, ""),
		Recommendation: FootprintLabel(raw.CarbonFootprint),
		Materials:      raw.Materials,
		Weights:        raw.Weights,
		Quantities:     raw.NetQuantities,
	}

	recs := make([]model.Recommendation, 0, len(raw.Recommendations))
	for _, r := range raw.Recommendations {
		recs = append(recs, model.Recommendation{
			ProductID:       r.ProductID,
			ProductName:     r.ProductName,
			Material:        r.Material,
			ImageURL:        r.ImageURL,
			Link:            r.Link,
			CarbonFootprint: r.CarbonFootprint,
		})
	}

	return result, recs, nil
}

// MapAlternatives normalizes the /recommendations payload. The service keys
// entries by product name with a one-element footprint list; we flatten that
// into the view list, sorted ascending by footprint (the service's order is
// not trusted across JSON map round-trips).
func MapAlternatives(material string, raw *api.RecommendationsResponse) ([]model.Recommendation, error) {
	if raw == nil {
		return nil, errors.New(DefaultAnalysisError)
	}
	if !raw.Success {
		msg := raw.Error
		if msg == "" {
			msg = DefaultAnalysisError
		}
		return nil, errors.New(msg)
	}

	recs := make([]model.Recommendation, 0, len(raw.Recommendations))
	for name, footprints := range raw.Recommendations {
		if len(footprints) == 0 {
			continue
		}
		recs = append(recs, model.Recommendation{
			ProductID:       name, // the endpoint has no IDs; names key the list
			ProductName:     name,
			Material:        material,
			CarbonFootprint: footprints[0],
		})
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].CarbonFootprint != recs[j].CarbonFootprint {
			return recs[i].CarbonFootprint < recs[j].CarbonFootprint
		}
		return recs[i].ProductName < recs[j].ProductName
	})
	return recs, nil
}

// FormatFootprint renders a footprint for display: exactly two decimals,
// or "N/A" when the service had no number.
func FormatFootprint(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

// FootprintLabel derives the qualitative label from the raw numeric value.
// Null, zero and negative all fall through to the low branch, matching the
// service's permissive comparison semantics.
func FootprintLabel(v *float64) string {
	if v == nil {
		return LabelLow
	}
	switch {
	case *v > 20:
		return LabelHigh
	case *v > 10:
		return LabelModerate
	}
	return LabelLow
}

func strOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
