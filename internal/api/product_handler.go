package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"farmtotable-be/internal/product"
)

// ProductAPI wires HTTP transport with the catalog service.
type ProductAPI struct {
	service product.Service
}

func NewProductAPI(service product.Service) ProductAPI {
	return ProductAPI{service: service}
}

type productPayload struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    int     `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url"`
}

// Get /api/products
func (api *ProductAPI) ListProducts(c *gin.Context) {
	products, err := api.service.GetProducts(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Post /api/products
func (api *ProductAPI) AddProduct(c *gin.Context) {
	var payload productPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	created, err := api.service.Create(c.Request.Context(), product.CreateProductParams{
		Name:        payload.Name,
		Description: payload.Description,
		Category:    payload.Category,
		Price:       payload.Price,
		Stock:       payload.Stock,
		ImageURL:    payload.ImageURL,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Put /api/products/:productId
func (api *ProductAPI) UpdateProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	var payload productPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := api.service.Update(c.Request.Context(), product.UpdateProductParams{
		ProductID:   productID,
		Name:        payload.Name,
		Description: payload.Description,
		Category:    payload.Category,
		Price:       payload.Price,
		Stock:       payload.Stock,
		ImageURL:    payload.ImageURL,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete /api/products/:productId
func (api *ProductAPI) RemoveProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	if err := api.service.Delete(c.Request.Context(), productID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Product deleted successfully.",
		"deletedProductId": productID,
	})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
