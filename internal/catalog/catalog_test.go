package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(), "shipped catalog must satisfy its own invariants")
}

func TestProducts_EveryProductOffersATender(t *testing.T) {
	for _, p := range Products() {
		assert.True(t, p.PriceCash != nil || p.PricePoints != nil, "product %s offers no tender", p.ID)
		assert.NotEmpty(t, p.Assets, "product %s grants nothing", p.ID)
	}
}

func TestProductByID(t *testing.T) {
	p, ok := ProductByID("p1")
	require.True(t, ok)
	assert.Equal(t, "Rave Starter Pack", p.Name)
	require.NotNil(t, p.PriceCash)
	assert.Equal(t, 499, *p.PriceCash)

	_, ok = ProductByID("p99")
	assert.False(t, ok)
}

func TestProductByID_ReturnsCopy(t *testing.T) {
	p, ok := ProductByID("p1")
	require.True(t, ok)

	p.Assets[0].Quantity = 999

	again, _ := ProductByID("p1")
	assert.Equal(t, 5, again.Assets[0].Quantity, "catalog entries are immutable")
}

func TestSeedFeed_PresentationOrder(t *testing.T) {
	feed := SeedFeed()

	// The registry prepends admin additions; the seed itself is served in
	// source order, f1 first.
	require.Len(t, feed, 4)
	for i, want := range []string{"f1", "f2", "f3", "f4"} {
		assert.Equal(t, want, feed[i].ID)
	}

	for _, item := range feed {
		assert.NotEmpty(t, item.Title)
		assert.Contains(t, []models.FeedType{models.FeedVideo, models.FeedAudio, models.FeedText, models.FeedImage}, item.Type)
	}
}

func TestEventByID(t *testing.T) {
	_, ok := EventByID("ev1")
	assert.True(t, ok)

	_, ok = EventByID("ev99")
	assert.False(t, ok)
}

func TestTourSteps_Ordered(t *testing.T) {
	steps := TourSteps()

	require.NotEmpty(t, steps)
	for i, step := range steps {
		assert.NotEmpty(t, step.Title, "step %d has no title", i)
		assert.NotEmpty(t, step.Description, "step %d has no description", i)
	}
}
