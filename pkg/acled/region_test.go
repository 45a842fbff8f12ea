package acled_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensix-io/acled-client/pkg/acled"
)

func TestRegion_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		region   acled.Region
		expected string
	}{
		{name: "known region", region: acled.MiddleAfrica, expected: "Middle Africa"},
		{name: "multi-word region", region: acled.CaucasusAndCentralAsia, expected: "Caucasus and Central Asia"},
		{name: "unknown code", region: acled.Region(6), expected: "Region(6)"},
		{name: "zero value", region: acled.Region(0), expected: "Region(0)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.region.String())
		})
	}
}

func TestRegion_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, acled.Europe.Valid())
	assert.True(t, acled.Antarctica.Valid())
	// 6, 8, and 10 are gaps in the upstream numbering.
	assert.False(t, acled.Region(6).Valid())
	assert.False(t, acled.Region(8).Valid())
	assert.False(t, acled.Region(10).Valid())
	assert.False(t, acled.Region(0).Valid())
	assert.False(t, acled.Region(21).Valid())
}

func TestParseRegion(t *testing.T) {
	t.Parallel()

	t.Run("round trips every known region", func(t *testing.T) {
		t.Parallel()

		regions := []acled.Region{
			acled.WesternAfrica, acled.MiddleAfrica, acled.EasternAfrica,
			acled.SouthernAfrica, acled.NorthernAfrica, acled.SouthAsia,
			acled.SoutheastAsia, acled.MiddleEast, acled.Europe,
			acled.CaucasusAndCentralAsia, acled.CentralAmerica, acled.SouthAmerica,
			acled.Caribbean, acled.EastAsia, acled.NorthAmerica,
			acled.Oceania, acled.Antarctica,
		}

		for _, region := range regions {
			parsed, err := acled.ParseRegion(region.String())
			require.NoError(t, err)
			assert.Equal(t, region, parsed)
		}
	})

	t.Run("rejects unknown name", func(t *testing.T) {
		t.Parallel()

		_, err := acled.ParseRegion("Atlantis")
		require.Error(t, err)
		assert.ErrorIs(t, err, acled.ErrUnknownRegion)
		assert.Contains(t, err.Error(), "Atlantis")
	})

	t.Run("is case sensitive", func(t *testing.T) {
		t.Parallel()

		_, err := acled.ParseRegion("europe")
		assert.ErrorIs(t, err, acled.ErrUnknownRegion)
	})
}
