// Package catalog holds the static reference data of the platform: the shop
// products, the transmission schedule, the seed archive feed and the
// onboarding tour. None of it is user-mutable.
package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
)

// Static adapts the package-level data to the lookup interfaces the services
// consume.
type Static struct{}

func (Static) ProductByID(id string) (models.Product, bool) {
	return ProductByID(id)
}

func (Static) EventByID(id string) (models.Event, bool) {
	return EventByID(id)
}

// Validate checks catalog integrity at startup. Every product must define at
// least one tender price and grant at least one asset.
func Validate() error {
	const op = "catalog.Validate"

	v := validator.New(validator.WithRequiredStructEnabled())
	for _, p := range products {
		if err := v.Struct(p); err != nil {
			return fmt.Errorf("%s: product %q: %w", op, p.ID, err)
		}
	}

	return nil
}
