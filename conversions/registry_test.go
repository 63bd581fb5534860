package conversions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryShape(t *testing.T) {
	pairs := Conversions()
	cats := Categories()
	assert.Len(t, pairs, 23)
	assert.Len(t, cats, 8)

	seen := make(map[string]bool)
	for _, p := range pairs {
		assert.False(t, seen[p.Slug], "duplicate slug %q", p.Slug)
		seen[p.Slug] = true
		_, ok := CategoryByID(p.Category)
		assert.True(t, ok, "%q has unknown category %q", p.Slug, p.Category)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.From.Symbol)
		assert.NotEmpty(t, p.To.Symbol)
	}
}

func TestConversionsReturnsCopy(t *testing.T) {
	pairs := Conversions()
	pairs[0].Slug = "mutated"
	p, ok := BySlug("pounds-to-kilograms")
	require.True(t, ok)
	assert.Equal(t, "pounds-to-kilograms", p.Slug)

	cats := Categories()
	cats[0].Converters[0] = "mutated"
	c, ok := CategoryByID("weight")
	require.True(t, ok)
	assert.Equal(t, "pounds-to-kilograms", c.Converters[0])
}

func TestBySlug(t *testing.T) {
	p, ok := BySlug("pounds-to-kilograms")
	require.True(t, ok)
	assert.Equal(t, "weight", p.Category)
	assert.InDelta(t, 0.453592, p.Convert(1), 1e-9)

	_, ok = BySlug("nonexistent")
	assert.False(t, ok)

	_, ok = BySlug("")
	assert.False(t, ok)
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		slug     string
		input    float64
		expected float64
	}{
		{"pounds-to-kilograms", 0, 0},
		{"pounds-to-kilograms", 2, 0.907184},
		{"pounds-to-kilograms", 100, 45.3592},
		{"ounces-to-grams", 16, 453.592},
		{"ounces-to-grams", 0.5, 14.17475},
		{"inches-to-centimeters", 12, 30.48},
		{"feet-to-meters", 100, 30.48},
		{"fahrenheit-to-celsius", 0, -17.7778},
		{"fahrenheit-to-celsius", 98.6, 37},
		{"liters-to-milliliters", 2.5, 2500},
		{"gallons-to-liters", 5, 18.92705},
		{"kilograms-to-stones", 6.35029, 1},
		{"celsius-to-kelvin", 0, 273.15},
		{"celsius-to-kelvin", -273.15, 0},
		{"megabytes-to-gigabytes", 2048, 2},
		{"hours-to-minutes", 1.5, 90},
		{"weeks-to-days", 2, 14},
		{"kmh-to-ms", 36, 10},
		{"knots-to-mph", 1, 1.15078},
	}
	for _, tt := range tests {
		p, ok := BySlug(tt.slug)
		require.True(t, ok, tt.slug)
		assert.InDelta(t, tt.expected, p.Convert(tt.input), 1e-4, "%s(%v)", tt.slug, tt.input)
	}
}

func TestFahrenheitToCelsiusExact(t *testing.T) {
	p, ok := BySlug("fahrenheit-to-celsius")
	require.True(t, ok)
	assert.Equal(t, 100.0, p.Convert(212))
	assert.Equal(t, 0.0, p.Convert(32))
	assert.Equal(t, -40.0, p.Convert(-40))
	assert.Equal(t, 212.0, p.ReverseConvert(100))
	assert.Equal(t, -40.0, p.ReverseConvert(-40))
}

func TestRoundTrip(t *testing.T) {
	inputs := []float64{0, 1, 123.456, -98.6, 1e6}
	for _, p := range Conversions() {
		for _, x := range inputs {
			got := p.ReverseConvert(p.Convert(x))
			assert.InDelta(t, x, got, 1e-3, "%s round trip of %v", p.Slug, x)
		}
	}
}

func TestNegativeValuesPassThrough(t *testing.T) {
	p, _ := BySlug("celsius-to-kelvin")
	assert.InDelta(t, 263.15, p.Convert(-10), 1e-9)
	p, _ = BySlug("feet-to-meters")
	assert.InDelta(t, -0.3048, p.Convert(-1), 1e-9)
}

func TestByCategory(t *testing.T) {
	weight := ByCategory("weight")
	require.Len(t, weight, 3)
	assert.Equal(t, "pounds-to-kilograms", weight[0].Slug)
	assert.Equal(t, "ounces-to-grams", weight[1].Slug)
	assert.Equal(t, "kilograms-to-stones", weight[2].Slug)
	for _, p := range weight {
		assert.Equal(t, "weight", p.Category)
	}

	assert.Empty(t, ByCategory("nonexistent"))
}

func TestByCategoryIgnoresCuratedList(t *testing.T) {
	i := categoryIndex["weight"]
	saved := categories[i].Converters
	categories[i].Converters = []string{"inches-to-centimeters"}
	t.Cleanup(func() { categories[i].Converters = saved })

	weight := ByCategory("weight")
	require.Len(t, weight, 3)
	for _, p := range weight {
		assert.Equal(t, "weight", p.Category)
	}
}

func TestCategoryByID(t *testing.T) {
	c, ok := CategoryByID("temperature")
	require.True(t, ok)
	assert.Equal(t, "Temperature", c.Name)
	assert.Equal(t, []string{"fahrenheit-to-celsius", "celsius-to-kelvin"}, c.Converters)

	_, ok = CategoryByID("nope")
	assert.False(t, ok)
}

func TestFeatured(t *testing.T) {
	c, _ := CategoryByID("speed")
	got := Featured(c)
	require.Len(t, got, 3)
	assert.Equal(t, "mph-to-kmh", got[0].Slug)

	c.Converters = append(c.Converters, "missing-slug")
	assert.Len(t, Featured(c), 3)
}

func TestRelated(t *testing.T) {
	got := Related("pounds-to-kilograms", DefaultRelatedLimit)
	require.Len(t, got, 3)
	assert.Equal(t, "ounces-to-grams", got[0].Slug)
	assert.Equal(t, "kilograms-to-stones", got[1].Slug)
	assert.Equal(t, "inches-to-centimeters", got[2].Slug)

	got = Related("celsius-to-kelvin", 2)
	require.Len(t, got, 2)
	assert.Equal(t, "fahrenheit-to-celsius", got[0].Slug)
	assert.Equal(t, "pounds-to-kilograms", got[1].Slug)
}

func TestRelatedProperties(t *testing.T) {
	for _, p := range Conversions() {
		for _, limit := range []int{1, 3, 5, 100} {
			got := Related(p.Slug, limit)
			assert.LessOrEqual(t, len(got), limit)
			crossed := false
			for _, r := range got {
				assert.NotEqual(t, p.Slug, r.Slug)
				if r.Category != p.Category {
					crossed = true
				} else {
					assert.False(t, crossed, "%s: same-category item after cross-category item", p.Slug)
				}
			}
		}
	}
	assert.Len(t, Related("pounds-to-kilograms", 100), 22)
}

func TestRelatedEdgeCases(t *testing.T) {
	assert.Empty(t, Related("nonexistent", 3))
	assert.Empty(t, Related("pounds-to-kilograms", 0))
	assert.Empty(t, Related("pounds-to-kilograms", -1))
}

func TestDirection(t *testing.T) {
	p, _ := BySlug("inches-to-centimeters")
	assert.InDelta(t, 5.08, p.Apply(2, Forward), 1e-9)
	assert.InDelta(t, 2, p.Apply(5.08, Reverse), 1e-9)

	from, to := p.Units(Reverse)
	assert.Equal(t, "cm", from.ID)
	assert.Equal(t, "in", to.ID)

	assert.Equal(t, Reverse, ParseDirection("reverse"))
	assert.Equal(t, Forward, ParseDirection(""))
	assert.Equal(t, Forward, ParseDirection("sideways"))
	assert.Equal(t, "reverse", Reverse.String())
}

func TestQuickReference(t *testing.T) {
	p, _ := BySlug("pounds-to-kilograms")
	assert.Equal(t, []string{"1 lb = 0.4536 kg", "1 kg = 2.2046 lb"}, p.QuickReference())
}
