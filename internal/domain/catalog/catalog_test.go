package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-grooming-shop/internal/domain/pets"
)

var allTiers = []pets.SizeTier{pets.SizeSmall, pets.SizeMedium, pets.SizeLarge}

func TestPriceOf(t *testing.T) {
	assert.Equal(t, 80.0, PriceOf("Bath", pets.SizeMedium))
	assert.Equal(t, 160.0, PriceOf("Scissor Grooming", pets.SizeLarge))
	assert.Equal(t, 30.0, PriceOf("Undercoat Removal", pets.SizeSmall))

	for _, tier := range allTiers {
		assert.Equal(t, 15.0, PriceOf("Nail Trim", tier), "tier=%s", tier)
	}
}

func TestPriceOf_UnknownFallsBackToZero(t *testing.T) {
	assert.Zero(t, PriceOf("Teeth Whitening", pets.SizeSmall))
	assert.Zero(t, PriceOf("Bath", pets.SizeTier("giant")))
	assert.Zero(t, PriceOf("bath", pets.SizeSmall), "lookup is exact")
}

func TestDurationOf(t *testing.T) {
	assert.Equal(t, 180, DurationOf("Puppy Grooming"))
	assert.Equal(t, 20, DurationOf("Ear Cleaning"))
	assert.Equal(t, DefaultDuration, DurationOf("Unknown"))
}

func TestNames_StableOrder(t *testing.T) {
	want := []string{
		"Bath", "Scissor Grooming", "Machine Grooming", "Puppy Grooming", "Hygienic Grooming",
		"Nail Trim", "Ear Cleaning", "Hydration", "Undercoat Removal",
	}
	assert.Equal(t, want, Names())
	assert.Equal(t, want, Names())
}

func TestEveryServiceHasAllTiers(t *testing.T) {
	for _, e := range List() {
		assert.True(t, IsKnown(e.Name))
		for _, tier := range allTiers {
			assert.Positive(t, e.Prices[tier], "%s/%s", e.Name, tier)
		}
	}
}

func TestList_ReturnsCopies(t *testing.T) {
	l := List()
	l[0].Prices[pets.SizeSmall] = 1
	assert.Equal(t, 60.0, PriceOf("Bath", pets.SizeSmall))
}

func TestLookup(t *testing.T) {
	name, ok := Lookup("  nail trim ")
	require.True(t, ok)
	assert.Equal(t, "Nail Trim", name)

	_, ok = Lookup("Massage")
	assert.False(t, ok)
}
