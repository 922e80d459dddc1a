package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopstack/inventory-api/internal/models"
	pkgmdw "github.com/shopstack/inventory-api/internal/server/middleware"
	"github.com/shopstack/inventory-api/internal/usecase"
)

type Controller interface {
	ListProducts(c echo.Context) error
	AddProduct(c echo.Context) error
	EditProduct(c echo.Context) error
	DeleteProduct(c echo.Context) error
	Health(c echo.Context) error
}

type controller struct {
	productUsecase usecase.ProductUsecase
}

func NewController(productUsecase usecase.ProductUsecase) Controller {
	return &controller{
		productUsecase: productUsecase,
	}
}

func (h *controller) ListProducts(c echo.Context) error {
	claims := pkgmdw.GetClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "you are not logged in")
	}

	ctx := c.Request().Context()
	products, err := h.productUsecase.ListProducts(ctx, claims)
	if err != nil {
		return httpError(ctx, err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *controller) AddProduct(c echo.Context) error {
	claims := pkgmdw.GetClaims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "you are not logged in")
	}

	var req models.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	product, err := h.productUsecase.AddProduct(ctx, claims, req)
	if err != nil {
		return httpError(ctx, err)
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *controller) EditProduct(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product ID")
	}

	var patch models.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	product, err := h.productUsecase.EditProduct(ctx, id, patch)
	if err != nil {
		return httpError(ctx, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *controller) DeleteProduct(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product ID")
	}

	ctx := c.Request().Context()
	if err := h.productUsecase.DeleteProduct(ctx, id); err != nil {
		return httpError(ctx, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "product deleted successfully",
	})
}

func (h *controller) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "inventory-api",
	})
}
