package usecase

import (
	"strings"

	"github.com/shopstack/inventory-api/internal/models"
)

// ValidateCreate checks an add-product payload and returns the sanitized
// field set. All four fields are mandatory.
func ValidateCreate(req models.CreateProductRequest) (models.ProductFields, error) {
	var fields models.ProductFields

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fields, models.NewValidationError("name", "product name must be a non-empty string")
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		return fields, models.NewValidationError("category", "product category must be a non-empty string")
	}

	quantity, err := req.Quantity.Int64()
	if err != nil || quantity <= 0 {
		return fields, models.NewValidationError("quantity", "quantity must be a positive integer")
	}

	price, err := req.Price.Float64()
	if err != nil || price <= 0 {
		return fields, models.NewValidationError("price", "price must be a positive number")
	}

	fields.Name = name
	fields.Category = category
	fields.Quantity = quantity
	fields.Price = price
	return fields, nil
}

// ValidatePatch checks an edit-product payload. At least one field must be
// supplied; absent fields are left out of the returned update set so they
// keep their stored value.
func ValidatePatch(patch models.ProductPatch) (models.ProductUpdate, error) {
	var update models.ProductUpdate

	if patch.Name == nil && patch.Quantity == nil && patch.Price == nil && patch.Category == nil {
		return update, models.NewValidationError("", "at least one field (name, quantity, price or category) is required for update")
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return update, models.NewValidationError("name", "product name must be a non-empty string")
		}
		update.Name = &name
	}

	if patch.Quantity != nil {
		quantity, err := patch.Quantity.Int64()
		if err != nil || quantity <= 0 {
			return update, models.NewValidationError("quantity", "quantity must be a positive integer")
		}
		update.Quantity = &quantity
	}

	if patch.Price != nil {
		price, err := patch.Price.Float64()
		if err != nil || price <= 0 {
			return update, models.NewValidationError("price", "price must be a positive number")
		}
		update.Price = &price
	}

	if patch.Category != nil {
		category := strings.TrimSpace(*patch.Category)
		if category == "" {
			return update, models.NewValidationError("category", "product category must be a non-empty string")
		}
		update.Category = &category
	}

	return update, nil
}
