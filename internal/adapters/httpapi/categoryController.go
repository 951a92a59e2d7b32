package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{ uc CategoryUseCase }

func NewCategoryController(uc CategoryUseCase) *CategoryController {
	return &CategoryController{uc: uc}
}

func (ctl *CategoryController) CreateCategory(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		URLHandle string `json:"urlHandle" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.uc.CreateCategory(c.Request.Context(), req.Name, req.URLHandle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create category"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *CategoryController) GetAllCategories(c *gin.Context) {
	res, err := ctl.uc.GetAllCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list categories"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CategoryController) GetCategoryByID(c *gin.Context) {
	res, err := ctl.uc.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load category"})
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CategoryController) UpdateCategory(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		URLHandle string `json:"urlHandle" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.uc.UpdateCategory(c.Request.Context(), c.Param("id"), req.Name, req.URLHandle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update category"})
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CategoryController) DeleteCategory(c *gin.Context) {
	res, err := ctl.uc.DeleteCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete category"})
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}
