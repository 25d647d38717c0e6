package workflow

import (
	"testing"

	"carbonwise/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }
func sp(v string) *string   { return &v }

func TestFootprintLabelBoundaries(t *testing.T) {
	cases := []struct {
		value *float64
		want  string
	}{
		{nil, LabelLow},
		{fp(-3), LabelLow},
		{fp(0), LabelLow},
		{fp(10), LabelLow},
		{fp(10.01), LabelModerate},
		{fp(20), LabelModerate},
		{fp(20.01), LabelHigh},
		{fp(25.4), LabelHigh},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FootprintLabel(c.value))
	}
}

func TestFormatFootprint(t *testing.T) {
	assert.Equal(t, "N/A", FormatFootprint(nil))
	assert.Equal(t, "7.50", FormatFootprint(fp(7.5)))
	assert.Equal(t, "25.40", FormatFootprint(fp(25.4)))
	assert.Equal(t, "0.00", FormatFootprint(fp(0)))
}

func TestMapSuccess(t *testing.T) {
	raw := &api.AnalyzeResponse{
		Success:         true,
		ProductName:     "Widget",
		CarbonFootprint: fp(25.4),
		Material:        sp("Plastic"),
		ImageURL:        sp("https://img.example/x.jpg"),
		WeightValue:     sp("1.2"),
		WeightUnit:      sp("kg"),
	}

	result, recs, err := Map(raw)
	require.NoError(t, err)

	assert.Equal(t, "Widget", result.Product)
	assert.Equal(t, "25.40", result.Carbon)
	assert.Equal(t, "Plastic", result.Material)
	assert.Equal(t, "https://img.example/x.jpg", result.Image)
	assert.Equal(t, "1.2", result.Weight)
	assert.Equal(t, "kg", result.Unit)
	assert.Equal(t, LabelHigh, result.Recommendation)

	require.NotNil(t, recs, "absent recommendations map to an empty list, not nil")
	assert.Empty(t, recs)
}

func TestMapDefaultsAbsentFields(t *testing.T) {
	raw := &api.AnalyzeResponse{Success: true, ProductName: "Mystery Item"}

	result, _, err := Map(raw)
	require.NoError(t, err)

	assert.Equal(t, "N/A", result.Carbon)
	assert.Equal(t, "Unknown", result.Material)
	assert.Equal(t, "", result.Image)
	assert.Equal(t, "", result.Weight)
	assert.Equal(t, "", result.Unit)
	assert.Equal(t, LabelLow, result.Recommendation, "missing footprint falls into the low branch")
}

func TestMapPassesRecommendationsThrough(t *testing.T) {
	raw := &api.AnalyzeResponse{
		Success: true,
		Recommendations: []api.RawRecommendation{
			{ProductID: "B01", ProductName: "Bamboo Widget", Material: "Bamboo", Link: "https://x/1", CarbonFootprint: 3.456},
		},
	}

	_, recs, err := Map(raw)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	// Raw numeric value preserved; formatting happens at render time.
	assert.Equal(t, "B01", recs[0].ProductID)
	assert.Equal(t, 3.456, recs[0].CarbonFootprint)
}

func TestMapServiceFailure(t *testing.T) {
	_, _, err := Map(&api.AnalyzeResponse{Success: false, Error: "Unsupported URL"})
	require.Error(t, err)
	assert.Equal(t, "Unsupported URL", err.Error())

	_, _, err = Map(&api.AnalyzeResponse{Success: false})
	require.Error(t, err)
	assert.Equal(t, DefaultAnalysisError, err.Error())
}

func TestMapAlternativesSortsAscending(t *testing.T) {
	raw := &api.RecommendationsResponse{
		Success: true,
		Recommendations: map[string][]float64{
			"Steel Bottle":  {12.5},
			"Glass Bottle":  {4.2},
			"Bamboo Bottle": {1.1},
			"No Data":       {},
		},
	}

	recs, err := MapAlternatives("Plastic", raw)
	require.NoError(t, err)
	require.Len(t, recs, 3, "entries without a footprint are dropped")

	assert.Equal(t, "Bamboo Bottle", recs[0].ProductName)
	assert.Equal(t, "Glass Bottle", recs[1].ProductName)
	assert.Equal(t, "Steel Bottle", recs[2].ProductName)
	assert.Equal(t, "Plastic", recs[0].Material)
}

func TestMapAlternativesServiceFailure(t *testing.T) {
	_, err := MapAlternatives("Plastic", &api.RecommendationsResponse{Success: false, Error: "no dataset"})
	require.Error(t, err)
	assert.Equal(t, "no dataset", err.Error())
}

func TestGenerateReportShowsFootprintAndAlternatives(t *testing.T) {
	raw := &api.AnalyzeResponse{
		Success:         true,
		ProductName:     "Widget",
		CarbonFootprint: fp(25.4),
		Material:        sp("Plastic"),
		Materials:       [][2]string{{"Material", "Plastic"}},
	}
	result, _, err := Map(raw)
	require.NoError(t, err)

	report := GenerateReport(result, nil, false)
	assert.Contains(t, report, "Widget")
	assert.Contains(t, report, "25.40 kg CO2e")
	assert.Contains(t, report, LabelHigh)
	assert.NotContains(t, report, "Materials", "spec tables only appear in verbose reports")

	verbose := GenerateReport(result, nil, true)
	assert.Contains(t, verbose, "Materials")
}
