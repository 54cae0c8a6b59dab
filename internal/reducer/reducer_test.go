package reducer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/reducer"
)

func intPtr(v int) *int { return &v }

func starterPack() models.Product {
	return models.Product{
		ID:          "p1",
		Name:        "Rave Starter Pack",
		PriceCash:   intPtr(499),
		PricePoints: intPtr(500),
		Assets: []models.Asset{
			{ID: "a1", Type: models.AssetEmoji, Name: "Fire", Icon: "🔥", Quantity: 5},
			{ID: "a2", Type: models.AssetEmoji, Name: "Rewind", Icon: "⏪", Quantity: 5},
		},
	}
}

func TestApplyPurchase_CashDeductsAndGrantsAssets(t *testing.T) {
	user := models.User{WalletBalance: 1000, Points: 100}

	next, err := reducer.ApplyPurchase(user, starterPack(), models.TenderCash)

	require.NoError(t, err)
	assert.Equal(t, 501, next.WalletBalance)
	assert.Equal(t, 100, next.Points, "points untouched by a cash purchase")
	require.Len(t, next.Assets, 2)
	assert.Equal(t, 5, next.Assets[0].Quantity)
}

func TestApplyPurchase_PointsDeductsPoints(t *testing.T) {
	user := models.User{WalletBalance: 1000, Points: 600}

	next, err := reducer.ApplyPurchase(user, starterPack(), models.TenderPoints)

	require.NoError(t, err)
	assert.Equal(t, 100, next.Points)
	assert.Equal(t, 1000, next.WalletBalance)
}

func TestApplyPurchase_InsufficientFundsLeavesUserUntouched(t *testing.T) {
	user := models.User{WalletBalance: 498, Points: 100,
		Assets: []models.Asset{{ID: "a9", Name: "Wave", Type: models.AssetEmoji, Quantity: 1}}}

	next, err := reducer.ApplyPurchase(user, starterPack(), models.TenderCash)

	assert.ErrorIs(t, err, reducer.ErrInsufficientFunds)
	assert.Equal(t, user, next)
}

func TestApplyPurchase_GuestPointsCannotAffordStarterPack(t *testing.T) {
	// A fresh guest holds 100 points; the starter pack costs 500.
	guest := models.User{Points: 100}

	next, err := reducer.ApplyPurchase(guest, starterPack(), models.TenderPoints)

	assert.ErrorIs(t, err, reducer.ErrInsufficientPoints)
	assert.Equal(t, guest, next)
}

func TestApplyPurchase_TenderNotOffered(t *testing.T) {
	cashOnly := starterPack()
	cashOnly.PricePoints = nil

	_, err := reducer.ApplyPurchase(models.User{Points: 10000}, cashOnly, models.TenderPoints)

	assert.ErrorIs(t, err, reducer.ErrTenderNotOffered)
}

func TestApplyPurchase_MergesGrantsByNameAndType(t *testing.T) {
	user := models.User{
		WalletBalance: 1000,
		Assets: []models.Asset{
			{ID: "a1", Type: models.AssetEmoji, Name: "Fire", Icon: "🔥", Quantity: 2},
		},
	}

	next, err := reducer.ApplyPurchase(user, starterPack(), models.TenderCash)

	require.NoError(t, err)
	require.Len(t, next.Assets, 2)
	assert.Equal(t, 7, next.Assets[0].Quantity, "Fire merged into the existing entry")
	assert.Equal(t, "Rewind", next.Assets[1].Name)
}

func TestApplyPurchase_DoesNotMutateInput(t *testing.T) {
	user := models.User{WalletBalance: 1000,
		Assets: []models.Asset{{ID: "a1", Type: models.AssetEmoji, Name: "Fire", Quantity: 2}}}

	_, err := reducer.ApplyPurchase(user, starterPack(), models.TenderCash)

	require.NoError(t, err)
	assert.Equal(t, 1000, user.WalletBalance)
	assert.Equal(t, 2, user.Assets[0].Quantity)
}

func TestConsumeAsset_DecrementsByOne(t *testing.T) {
	user := models.User{Assets: []models.Asset{{ID: "a1", Name: "Fire", Quantity: 3}}}

	next := reducer.ConsumeAsset(user, "a1")

	assert.Equal(t, 2, next.Assets[0].Quantity)
	assert.Equal(t, 3, user.Assets[0].Quantity)
}

func TestConsumeAsset_EmptyOrUnknownIsNoOp(t *testing.T) {
	user := models.User{Assets: []models.Asset{{ID: "a1", Name: "Fire", Quantity: 0}}}

	assert.Equal(t, user, reducer.ConsumeAsset(user, "a1"))
	assert.Equal(t, user, reducer.ConsumeAsset(user, "missing"))
}

func TestAwardSubscription_GrantsFixedPoints(t *testing.T) {
	next := reducer.AwardSubscription(models.User{Points: 10})

	assert.Equal(t, 10+reducer.SubscriptionReward, next.Points)
}

func TestSanitizeIncoming_FillsAbsentFields(t *testing.T) {
	next := reducer.SanitizeIncoming(models.User{Points: -5, WalletBalance: -1})

	assert.NotNil(t, next.Assets)
	assert.NotNil(t, next.Following)
	assert.NotNil(t, next.SubscribedEventIDs)
	assert.Equal(t, models.DefaultProfileStyle(), next.ProfileStyle)
	assert.Equal(t, 0, next.Points)
	assert.Equal(t, 0, next.WalletBalance)
}

func TestSanitizeIncoming_IsIdempotent(t *testing.T) {
	once := reducer.SanitizeIncoming(models.User{Username: "RootDown"})
	twice := reducer.SanitizeIncoming(once)

	assert.Equal(t, once, twice)
}
