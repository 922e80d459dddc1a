package usecase

import (
	"context"
	"fmt"
	"strings"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopstack/inventory-api/internal/models"
	"github.com/shopstack/inventory-api/internal/repo/mongodb"
)

type ProductUsecase interface {
	ListProducts(ctx context.Context, claims *models.IdentityClaims) ([]*models.Product, error)
	AddProduct(ctx context.Context, claims *models.IdentityClaims, req models.CreateProductRequest) (*models.Product, error)
	EditProduct(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (*models.Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
}

type productUsecase struct {
	productRepo mongodb.ProductRepository
}

func NewProductUsecase(productRepo mongodb.ProductRepository) ProductUsecase {
	return &productUsecase{
		productRepo: productRepo,
	}
}

func (uc *productUsecase) ListProducts(ctx context.Context, claims *models.IdentityClaims) ([]*models.Product, error) {
	products, err := uc.productRepo.FindAllByOwner(ctx, ownerEmail(claims.Email))
	if err != nil {
		return nil, fmt.Errorf("find products by owner: %w", err)
	}
	return products, nil
}

func (uc *productUsecase) AddProduct(ctx context.Context, claims *models.IdentityClaims, req models.CreateProductRequest) (*models.Product, error) {
	fields, err := ValidateCreate(req)
	if err != nil {
		return nil, err
	}

	// The owner always comes from the verified identity, never the payload.
	product := &models.Product{
		Name:       fields.Name,
		Quantity:   fields.Quantity,
		Price:      fields.Price,
		Category:   fields.Category,
		OwnerEmail: ownerEmail(claims.Email),
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	log.Infow(ctx, "product created", "product_id", product.ID.Hex(), "owner", product.OwnerEmail)
	return product, nil
}

func (uc *productUsecase) EditProduct(ctx context.Context, id primitive.ObjectID, patch models.ProductPatch) (*models.Product, error) {
	update, err := ValidatePatch(patch)
	if err != nil {
		return nil, err
	}

	product, err := uc.productRepo.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	log.Infow(ctx, "product updated", "product_id", product.ID.Hex())
	return product, nil
}

func (uc *productUsecase) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	if err := uc.productRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	log.Infow(ctx, "product deleted", "product_id", id.Hex())
	return nil
}

// ownerEmail normalizes a claim email for storage and filtering.
func ownerEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
