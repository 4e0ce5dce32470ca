package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func float64Ptr(v float64) *float64 { return &v }

func testResults() ImpactResults {
	return ImpactResults{
		MassKg:                1.9634954e8,
		EnergyJoules:          3.9269908e16,
		TNTMegatons:           9.38573,
		CraterDiameterM:       23793.1,
		SeismicMwEquivalent:   7.88,
		TsunamiInitialHeightM: 1.25,
		TsunamiRadiusKm:       175.03,
	}
}

func TestRenderStory(t *testing.T) {
	t.Run("full results", func(t *testing.T) {
		story := RenderStory(testResults(), nil, nil)

		assert.Contains(t, story, "9.39 megatons of TNT equivalent")
		assert.Contains(t, story, "crater about 23.79 km in diameter")
		assert.Contains(t, story, "earthquake of magnitude 7.88")
		assert.Contains(t, story, "tsunami wave of about 1.25 meters")
		assert.Contains(t, story, "roughly 175 km from the source")
		assert.True(t, strings.HasSuffix(story, "education/demonstration only."))
	})

	t.Run("large yields get thousands separators", func(t *testing.T) {
		r := testResults()
		r.TNTMegatons = 1234.5
		story := RenderStory(r, nil, nil)

		assert.Contains(t, story, "1,234.50 megatons")
	})

	t.Run("coordinates render with three decimals", func(t *testing.T) {
		story := RenderStory(testResults(), float64Ptr(34.05), float64Ptr(-118.25))

		assert.Contains(t, story, "Impact simulation at (34.050, -118.250):")
	})

	t.Run("absent coordinates omit the clause entirely", func(t *testing.T) {
		story := RenderStory(testResults(), nil, nil)

		assert.True(t, strings.HasPrefix(story, "Impact simulation: "))
		assert.NotContains(t, story, " at (")
		assert.NotContains(t, story, "()")
	})

	t.Run("zero coordinate omits the clause", func(t *testing.T) {
		story := RenderStory(testResults(), float64Ptr(0), float64Ptr(-118.25))

		assert.NotContains(t, story, " at (")
	})

	t.Run("one missing coordinate omits the clause", func(t *testing.T) {
		story := RenderStory(testResults(), float64Ptr(34.05), nil)

		assert.NotContains(t, story, " at (")
	})

	t.Run("zero-valued results still render", func(t *testing.T) {
		story := RenderStory(ImpactResults{}, nil, nil)

		assert.NotEmpty(t, story)
		assert.Contains(t, story, "0.00 megatons")
		assert.Contains(t, story, "magnitude 0.00")
	})
}
