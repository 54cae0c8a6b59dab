// Package reducer contains the pure update functions over a User value. Every
// operation returns a new User; inputs are never mutated, and a rejected
// operation returns the prior record unchanged alongside the rejection reason.
package reducer

import (
	"errors"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
)

// SubscriptionReward is the fixed points grant for subscribing to the stream.
const SubscriptionReward = 50

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrTenderNotOffered   = errors.New("product not offered for this tender")
)

// ApplyPurchase deducts the product price for the chosen tender and merges the
// granted assets into the inventory. The deduction is all-or-nothing: on any
// rejection the input user is returned untouched. Granted assets merge into an
// existing entry when name and type match, otherwise they are appended.
func ApplyPurchase(user models.User, product models.Product, tender models.Tender) (models.User, error) {
	next := clone(user)

	switch tender {
	case models.TenderCash:
		if product.PriceCash == nil {
			return user, ErrTenderNotOffered
		}
		if next.WalletBalance < *product.PriceCash {
			return user, ErrInsufficientFunds
		}
		next.WalletBalance -= *product.PriceCash
	case models.TenderPoints:
		if product.PricePoints == nil {
			return user, ErrTenderNotOffered
		}
		if next.Points < *product.PricePoints {
			return user, ErrInsufficientPoints
		}
		next.Points -= *product.PricePoints
	default:
		return user, ErrTenderNotOffered
	}

	for _, granted := range product.Assets {
		merged := false
		for i := range next.Assets {
			if next.Assets[i].Name == granted.Name && next.Assets[i].Type == granted.Type {
				next.Assets[i].Quantity += granted.Quantity
				merged = true
				break
			}
		}
		if !merged {
			next.Assets = append(next.Assets, granted)
		}
	}

	return next, nil
}

// ConsumeAsset decrements the matching asset's quantity by one. Consuming an
// unknown asset or one with quantity zero is a no-op, never an error.
func ConsumeAsset(user models.User, assetID string) models.User {
	next := clone(user)

	for i := range next.Assets {
		if next.Assets[i].ID == assetID && next.Assets[i].Quantity > 0 {
			next.Assets[i].Quantity--
			break
		}
	}

	return next
}

// AwardSubscription grants the fixed subscription reward. The function itself
// is not idempotent; callers guard against repeated grants per session.
func AwardSubscription(user models.User) models.User {
	next := clone(user)
	next.Points += SubscriptionReward
	return next
}

// SanitizeIncoming normalizes a freshly authenticated or restored record so
// downstream code never observes an absent field: nil collections become
// empty ones and an unset profile style gets the default. Applying it to an
// already-sanitized record yields the same record.
func SanitizeIncoming(user models.User) models.User {
	next := clone(user)

	if next.Assets == nil {
		next.Assets = []models.Asset{}
	}
	if next.Following == nil {
		next.Following = []string{}
	}
	if next.SubscribedEventIDs == nil {
		next.SubscribedEventIDs = []string{}
	}
	if next.ProfileStyle.IsZero() {
		next.ProfileStyle = models.DefaultProfileStyle()
	}
	if next.Points < 0 {
		next.Points = 0
	}
	if next.WalletBalance < 0 {
		next.WalletBalance = 0
	}

	return next
}

// clone copies the user including every owned slice so mutations on the copy
// cannot leak into the caller's value.
func clone(user models.User) models.User {
	next := user

	if user.Assets != nil {
		next.Assets = make([]models.Asset, len(user.Assets))
		copy(next.Assets, user.Assets)
	}
	if user.Following != nil {
		next.Following = make([]string, len(user.Following))
		copy(next.Following, user.Following)
	}
	if user.SubscribedEventIDs != nil {
		next.SubscribedEventIDs = make([]string, len(user.SubscribedEventIDs))
		copy(next.SubscribedEventIDs, user.SubscribedEventIDs)
	}

	return next
}
