package model

// AnalysisResult is the UI-ready view of one product analysis.
// It is built once per analysis cycle and replaced wholesale on the next one.
type AnalysisResult struct {
	Product        string // Product title as reported by the service
	Carbon         string // Footprint formatted to 2 decimals, or "N/A" when the service had none
	Material       string // Primary material ("Unknown" when the service found none)
	Image          string // Product image URL, may be empty
	Weight         string // Weight value as a string (the service stringifies it)
	Unit           string // Weight unit (kg, g, ...), may be empty
	Recommendation string // Qualitative footprint label derived from the raw number

	// Spec tables from the product page, kept for the report view.
	Materials  [][2]string
	Weights    [][2]string
	Quantities [][2]string
}

// Recommendation is one alternative product suggested by the service.
// ProductID gives the list a stable identity across renders.
type Recommendation struct {
	ProductID       string
	ProductName     string
	Material        string
	ImageURL        string
	Link            string
	CarbonFootprint float64 // Raw kg CO2e; formatted at render time, not here
}
