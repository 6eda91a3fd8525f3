package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/exceptions"
	"github.com/Cusiokhale/recipe-food-platform/internal/services"
)

type IngredientRoutes struct {
	ingredients *services.IngredientService
}

func (ir *IngredientRoutes) Register(api *gin.RouterGroup, authn gin.HandlerFunc) {
	group := api.Group("/ingredients")
	group.GET("", ir.list)
	group.GET("/:id", ir.get)

	authed := group.Group("", authn)
	authed.POST("", ir.create)
	authed.PUT("/:id", ir.update)
	authed.DELETE("/:id", ir.delete)
}

type createIngredientRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Unit     string  `json:"unit" binding:"max=50"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	RecipeId string  `json:"recipeId" binding:"required"`
}

type updateIngredientRequest struct {
	Name     *string  `json:"name" binding:"omitempty,max=100"`
	Unit     *string  `json:"unit" binding:"omitempty,max=50"`
	Quantity *float64 `json:"quantity" binding:"omitempty,gt=0"`
}

func (ir *IngredientRoutes) list(c *gin.Context) {
	filter := data.IngredientFilter{
		Search:    c.Query("search"),
		RecipeId:  c.Query("recipeId"),
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
	page, err := ir.ingredients.List(c.Request.Context(), filter)
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ir *IngredientRoutes) get(c *gin.Context) {
	ingredient, err := ir.ingredients.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}

func (ir *IngredientRoutes) create(c *gin.Context) {
	var request createIngredientRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		translateError(c, exceptions.InvalidInput(err.Error()))
		return
	}
	created, err := ir.ingredients.Create(c.Request.Context(), data.NewIngredient{
		Name:     request.Name,
		Unit:     request.Unit,
		Quantity: request.Quantity,
		RecipeId: request.RecipeId,
	})
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ir *IngredientRoutes) update(c *gin.Context) {
	var request updateIngredientRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		translateError(c, exceptions.InvalidInput(err.Error()))
		return
	}
	updated, err := ir.ingredients.Update(c.Request.Context(), c.Param("id"), data.IngredientInput{
		Name:     request.Name,
		Unit:     request.Unit,
		Quantity: request.Quantity,
	})
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ir *IngredientRoutes) delete(c *gin.Context) {
	if err := ir.ingredients.Delete(c.Request.Context(), c.Param("id")); err != nil {
		translateError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
