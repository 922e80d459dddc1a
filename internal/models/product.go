package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is an inventory record owned by the user that created it.
// OwnerEmail is never serialized in responses.
type Product struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Quantity   int64              `bson:"quantity" json:"quantity"`
	Price      float64            `bson:"price" json:"price"`
	Category   string             `bson:"category" json:"category"`
	OwnerEmail string             `bson:"owner_email" json:"-" validate:"required,email"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CreateProductRequest carries the add-product payload. Quantity and price
// use json.Number so clients may send them as numbers or numeric strings.
type CreateProductRequest struct {
	Name     string      `json:"name" validate:"required"`
	Quantity json.Number `json:"quantity" validate:"required"`
	Price    json.Number `json:"price" validate:"required"`
	Category string      `json:"category" validate:"required"`
}

// ProductPatch is a partial update payload; nil fields keep their stored value.
type ProductPatch struct {
	Name     *string      `json:"name"`
	Quantity *json.Number `json:"quantity"`
	Price    *json.Number `json:"price"`
	Category *string      `json:"category"`
}

// ProductFields is a sanitized create payload ready for persistence.
type ProductFields struct {
	Name     string
	Quantity int64
	Price    float64
	Category string
}

// ProductUpdate is a sanitized patch; only non-nil fields are written.
type ProductUpdate struct {
	Name     *string
	Quantity *int64
	Price    *float64
	Category *string
}

// IsEmpty reports whether the update would write no fields.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Quantity == nil && u.Price == nil && u.Category == nil
}
