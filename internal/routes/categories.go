package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cusiokhale/recipe-food-platform/internal/auth"
	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/exceptions"
	"github.com/Cusiokhale/recipe-food-platform/internal/middleware"
	"github.com/Cusiokhale/recipe-food-platform/internal/services"
)

type CategoryRoutes struct {
	categories *services.CategoryService
}

// Category mutations are admin-gated; the role decision happens here,
// before the service runs.
func (cr *CategoryRoutes) Register(api *gin.RouterGroup, authn gin.HandlerFunc) {
	group := api.Group("/categories")
	group.GET("", cr.list)
	group.GET("/:id", cr.get)

	admin := group.Group("", authn, middleware.RequireRole(auth.RoleAdmin))
	admin.POST("", cr.create)
	admin.PUT("/:id", cr.update)
	admin.DELETE("/:id", cr.delete)
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

func (cr *CategoryRoutes) list(c *gin.Context) {
	filter := data.CategoryFilter{
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	var err error
	if filter.Page, err = intQuery(c, "page"); err != nil {
		translateError(c, err)
		return
	}
	if filter.Limit, err = intQuery(c, "limit"); err != nil {
		translateError(c, err)
		return
	}
	page, err := cr.categories.List(c.Request.Context(), filter)
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (cr *CategoryRoutes) get(c *gin.Context) {
	category, err := cr.categories.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (cr *CategoryRoutes) create(c *gin.Context) {
	var request createCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		translateError(c, exceptions.InvalidInput(err.Error()))
		return
	}
	created, err := cr.categories.Create(c.Request.Context(), data.NewCategory{
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (cr *CategoryRoutes) update(c *gin.Context) {
	var request updateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		translateError(c, exceptions.InvalidInput(err.Error()))
		return
	}
	updated, err := cr.categories.Update(c.Request.Context(), c.Param("id"), data.CategoryInput{
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (cr *CategoryRoutes) delete(c *gin.Context) {
	if err := cr.categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
		translateError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
