package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/exceptions"
	"github.com/Cusiokhale/recipe-food-platform/internal/middleware"
	"github.com/Cusiokhale/recipe-food-platform/internal/services"
)

type RecipeRoutes struct {
	recipes     *services.RecipeService
	ingredients *services.IngredientService
	reviews     *services.ReviewService
}

func (rr *RecipeRoutes) Register(api *gin.RouterGroup, authn gin.HandlerFunc) {
	group := api.Group("/recipes")
	group.GET("", rr.list)
	group.GET("/:id", rr.get)
	group.GET("/:id/rating", rr.rating)
	group.GET("/:id/ingredients", rr.listIngredients)
	group.GET("/:id/reviews", rr.listReviews)

	authed := group.Group("", authn)
	authed.POST("", rr.create)
	authed.PUT("/:id", rr.update)
	authed.DELETE("/:id", rr.delete)
}

type createRecipeRequest struct {
	Title        string   `json:"title" binding:"required,max=200"`
	Description  string   `json:"description" binding:"max=2000"`
	Instructions string   `json:"instructions" binding:"required"`
	PrepTime     int      `json:"prepTime" binding:"min=0,max=10000"`
	CookTime     int      `json:"cookTime" binding:"min=0,max=10000"`
	Servings     int      `json:"servings" binding:"required,min=1,max=1000"`
	Difficulty   string   `json:"difficulty" binding:"required,oneof=easy medium hard"`
	ImageUrl     string   `json:"imageUrl" binding:"omitempty,url"`
	CategoryIds  []string `json:"categoryIds"`
}

type updateRecipeRequest struct {
	Title        *string   `json:"title" binding:"omitempty,max=200"`
	Description  *string   `json:"description" binding:"omitempty,max=2000"`
	Instructions *string   `json:"instructions"`
	PrepTime     *int      `json:"prepTime" binding:"omitempty,min=0,max=10000"`
	CookTime     *int      `json:"cookTime" binding:"omitempty,min=0,max=10000"`
	Servings     *int      `json:"servings" binding:"omitempty,min=1,max=1000"`
	Difficulty   *string   `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	ImageUrl     *string   `json:"imageUrl" binding:"omitempty,url"`
	CategoryIds  *[]string `json:"categoryIds"`
}

func (rr *RecipeRoutes) list(c *gin.Context) {
	filter, err := bindRecipeFilter(c)
	if err != nil {
		translateError(c, err)
		return
	}
	page, err := rr.recipes.List(c.Request.Context(), filter)
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func bindRecipeFilter(c *gin.Context) (data.RecipeFilter, error) {
	filter := data.RecipeFilter{
		Search:     c.Query("search"),
		CategoryId: c.Query("categoryId"),
		Difficulty: c.Query("difficulty"),
		OwnerId:    c.Query("ownerId"),
		SortBy:     c.Query("sortBy"),
		SortOrder:  c.Query("sortOrder"),
	}
	var err error
	if filter.Page, err = intQuery(c, "page"); err != nil {
		return filter, err
	}
	if filter.Limit, err = intQuery(c, "limit"); err != nil {
		return filter, err
	}
	if filter.CreatedAfter, err = timePtrQuery(c, "createdAfter"); err != nil {
		return filter, err
	}
	if filter.CreatedBefore, err = timePtrQuery(c, "createdBefore"); err != nil {
		return filter, err
	}
	if filter.MinPrepTime, err = intPtrQuery(c, "minPrepTime"); err != nil {
		return filter, err
	}
	if filter.MaxPrepTime, err = intPtrQuery(c, "maxPrepTime"); err != nil {
		return filter, err
	}
	if filter.MinCookTime, err = intPtrQuery(c, "minCookTime"); err != nil {
		return filter, err
	}
	if filter.MaxCookTime, err = intPtrQuery(c, "maxCookTime"); err != nil {
		return filter, err
	}
	if filter.MinServings, err = intPtrQuery(c, "minServings"); err != nil {
		return filter, err
	}
	if filter.MaxServings, err = intPtrQuery(c, "maxServings"); err != nil {
		return filter, err
	}
	return filter, nil
}

func (rr *RecipeRoutes) get(c *gin.Context) {
	recipe, err := rr.recipes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (rr *RecipeRoutes) rating(c *gin.Context) {
	summary, err := rr.reviews.Rating(c.Request.Context(), c.Param("id"))
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (rr *RecipeRoutes) listIngredients(c *gin.Context) {
	filter := data.IngredientFilter{
		RecipeId:  c.Param("id"),
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
	page, err := rr.ingredients.List(c.Request.Context(), filter)
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (rr *RecipeRoutes) listReviews(c *gin.Context) {
	filter := data.ReviewFilter{
		RecipeId:  c.Param("id"),
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
	page, err := rr.reviews.List(c.Request.Context(), filter)
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (rr *RecipeRoutes) create(c *gin.Context) {
	var request createRecipeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		translateError(c, exceptions.InvalidInput(err.Error()))
		return
	}
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		translateError(c, exceptions.Unauthorized("caller identity missing"))
		return
	}
	created, err := rr.recipes.Create(c.Request.Context(), caller.Id, data.NewRecipe{
		Title:        request.Title,
		Description:  request.Description,
		Instructions: request.Instructions,
		PrepTime:     request.PrepTime,
		CookTime:     request.CookTime,
		Servings:     request.Servings,
		Difficulty:   request.Difficulty,
		ImageUrl:     request.ImageUrl,
		CategoryIds:  request.CategoryIds,
	})
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (rr *RecipeRoutes) update(c *gin.Context) {
	var request updateRecipeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		translateError(c, exceptions.InvalidInput(err.Error()))
		return
	}
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		translateError(c, exceptions.Unauthorized("caller identity missing"))
		return
	}
	updated, err := rr.recipes.Update(c.Request.Context(), caller.Id, c.Param("id"), data.RecipeInput{
		Title:        request.Title,
		Description:  request.Description,
		Instructions: request.Instructions,
		PrepTime:     request.PrepTime,
		CookTime:     request.CookTime,
		Servings:     request.Servings,
		Difficulty:   request.Difficulty,
		ImageUrl:     request.ImageUrl,
		CategoryIds:  request.CategoryIds,
	})
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (rr *RecipeRoutes) delete(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		translateError(c, exceptions.Unauthorized("caller identity missing"))
		return
	}
	if err := rr.recipes.Delete(c.Request.Context(), caller.Id, c.Param("id")); err != nil {
		translateError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
