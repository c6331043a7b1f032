package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"fashion-catalog/internal/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]catalog.Product, int, error)
	GetProduct(ctx context.Context, id int64) (catalog.Product, error)
	CreateProduct(ctx context.Context, input catalog.NewProduct) (catalog.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch catalog.ProductPatch) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id int64) (catalog.Product, int, error)
	AvailableIDs(ctx context.Context) ([]int64, error)
}

type Handler struct {
	service CatalogService
}

func NewHandler(svc CatalogService) *Handler {
	return &Handler{service: svc}
}

type listProductsResponse struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total" example:"5"`
	Skip     int               `json:"skip" example:"0"`
	Limit    int               `json:"limit" example:"5"`
}

type fieldErrorResponse struct {
	Message  string `json:"message" example:"Price must be a non-negative number"`
	Field    string `json:"field" example:"price"`
	Received any    `json:"received"`
}

type notFoundResponse struct {
	Message      string  `json:"message" example:"Product with id 999 not found"`
	AvailableIDs []int64 `json:"availableIds"`
}

type deleteProductResponse struct {
	Message           string          `json:"message" example:"Product deleted successfully"`
	DeletedProduct    catalog.Product `json:"deletedProduct"`
	RemainingProducts int             `json:"remainingProducts" example:"4"`
}

type routeNotFoundResponse struct {
	Message         string   `json:"message" example:"Route not found"`
	RequestedURL    string   `json:"requestedUrl" example:"/nope"`
	Method          string   `json:"method" example:"GET"`
	AvailableRoutes []string `json:"availableRoutes"`
}

// ListProducts godoc
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {object}  listProductsResponse
// @Router       /api/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	items, total, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, listProductsResponse{
		Products: items,
		Total:    total,
		Skip:     0,
		Limit:    total,
	})
}

// GetProduct godoc
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  catalog.Product
// @Failure      400  {object}  fieldErrorResponse
// @Failure      404  {object}  notFoundResponse
// @Router       /api/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := catalog.ParseProductID(c.Param("id"))
	if err != nil {
		invalidID(c, c.Param("id"))
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			h.notFound(c, id)
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary      Create a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      object  true  "Product fields"
// @Success      201   {object}  catalog.Product
// @Failure      400   {object}  fieldErrorResponse
// @Router       /api/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	raw, ok := decodeBody(c)
	if !ok {
		return
	}

	input, fieldErr := catalog.ValidateNewProduct(raw)
	if fieldErr != nil {
		fieldError(c, fieldErr)
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), input)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary      Partially update a product
// @Description  Merges only the provided fields onto the stored record.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int     true  "Product ID"
// @Param        body  body      object  true  "Fields to change"
// @Success      200   {object}  catalog.Product
// @Failure      400   {object}  fieldErrorResponse
// @Failure      404   {object}  notFoundResponse
// @Router       /api/products/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := catalog.ParseProductID(c.Param("id"))
	if err != nil {
		invalidID(c, c.Param("id"))
		return
	}

	raw, ok := decodeBody(c)
	if !ok {
		return
	}

	patch, fieldErr := catalog.ValidateProductPatch(raw)
	if fieldErr != nil {
		fieldError(c, fieldErr)
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			h.notFound(c, id)
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary      Delete a product by ID
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  deleteProductResponse
// @Failure      400  {object}  fieldErrorResponse
// @Failure      404  {object}  notFoundResponse
// @Router       /api/products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := catalog.ParseProductID(c.Param("id"))
	if err != nil {
		invalidID(c, c.Param("id"))
		return
	}

	product, remaining, err := h.service.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			h.notFound(c, id)
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleteProductResponse{
		Message:           "Product deleted successfully",
		DeletedProduct:    product,
		RemainingProducts: remaining,
	})
}

// Root describes the API for clients hitting the bare host.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Fashion catalog API",
		"routes":  availableRoutes,
	})
}

// RouteNotFound is the catch-all for unmatched method+path combinations.
func (h *Handler) RouteNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, routeNotFoundResponse{
		Message:         "Route not found",
		RequestedURL:    c.Request.URL.Path,
		Method:          c.Request.Method,
		AvailableRoutes: availableRoutes,
	})
}

func (h *Handler) notFound(c *gin.Context, id int64) {
	ids, err := h.service.AvailableIDs(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusNotFound, notFoundResponse{
		Message:      fmt.Sprintf("Product with id %d not found", id),
		AvailableIDs: ids,
	})
}

func decodeBody(c *gin.Context) (map[string]any, bool) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, fieldErrorResponse{
			Message: "Request body must be a JSON object",
			Field:   "body",
		})
		return nil, false
	}
	if raw == nil {
		raw = map[string]any{}
	}
	return raw, true
}

func invalidID(c *gin.Context, received string) {
	c.JSON(http.StatusBadRequest, fieldErrorResponse{
		Message:  "Invalid product ID: must be a positive integer",
		Field:    "id",
		Received: received,
	})
}

func fieldError(c *gin.Context, fe *catalog.FieldError) {
	c.JSON(http.StatusBadRequest, fieldErrorResponse{
		Message:  fe.Message,
		Field:    fe.Field,
		Received: fe.Received,
	})
}

func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, internalErrorBody(c))
}
