package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"oneconversion/internal/models/request_models"
	"oneconversion/internal/services"
	"oneconversion/pkg/utils"
)

type ProductsController struct {
	productService services.ProductServiceInterface
}

func NewProductsController(productService services.ProductServiceInterface) *ProductsController {
	return &ProductsController{
		productService: productService,
	}
}

// GetProductBySlug godoc
// @Summary Fetch a product by its checkout slug
// @Tags Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} utils.APIResponse
// @Router /products/{slug} [get]
func (p *ProductsController) GetProductBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.RespondError(c, http.StatusBadRequest, "slug is required")
		return
	}

	product, err := p.productService.GetProductBySlug(c.Request.Context(), slug)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "")
}

// ListProducts godoc
// @Summary List all products
// @Tags Products
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/products [get]
func (p *ProductsController) ListProducts(c *gin.Context) {
	products, err := p.productService.ListProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "")
}

// CreateProduct godoc
// @Summary Create a product
// @Tags Products
// @Accept json
// @Produce json
// @Param request body request_models.ProductRequest true "Product"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/products [post]
func (p *ProductsController) CreateProduct(c *gin.Context) {
	var request request_models.ProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	product, err := p.productService.CreateProduct(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, product, "Product created successfully")
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body request_models.ProductRequest true "Product"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/products/{id} [put]
func (p *ProductsController) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	var request request_models.ProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	product, err := p.productService.UpdateProduct(c.Request.Context(), id, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "Product updated successfully")
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/products/{id} [delete]
func (p *ProductsController) DeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := p.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Product deleted successfully")
}
