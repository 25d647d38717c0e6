package api

// Wire types for the CarbonWise backend. The payload is untrusted: every
// field may be absent or null, so optional scalars are pointers and slices
// stay nil-able until the mapper substitutes defaults.

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	URL string `json:"url"`
}

// AnalyzeResponse is the service's analysis payload.
type AnalyzeResponse struct {
	Success         bool                `json:"success"`
	ProductName     string              `json:"product_name"`
	ImageURL        *string             `json:"image_url"`
	CarbonFootprint *float64            `json:"carbon_footprint"`
	Material        *string             `json:"material"`
	WeightValue     *string             `json:"weight_value"`
	WeightUnit      *string             `json:"weight_unit"`
	Materials       [][2]string         `json:"materials"`
	Weights         [][2]string         `json:"weights"`
	NetQuantities   [][2]string         `json:"net_quantities"`
	Recommendations []RawRecommendation `json:"recommendations"`
	Error           string              `json:"error"`
}

// RawRecommendation is one alternative product as sent on the wire.
type RawRecommendation struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Material        string  `json:"material"`
	ImageURL        string  `json:"image_url"`
	Link            string  `json:"link"`
	CarbonFootprint float64 `json:"carbon_footprint"`
}

// RecommendationsResponse is the payload of POST /recommendations.
// The service keys suggestions by product name, each with a one-element
// footprint list, sorted ascending by footprint.
type RecommendationsResponse struct {
	Success         bool                 `json:"success"`
	Recommendations map[string][]float64 `json:"recommendations"`
	TotalAnalyzed   int                  `json:"total_analyzed"`
	Error           string               `json:"error"`
}

// HealthResponse is the body of GET /.
type HealthResponse struct {
	Message string `json:"message"`
}
