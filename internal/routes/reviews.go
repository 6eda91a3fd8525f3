package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Cusiokhale/recipe-food-platform/internal/data"
	"github.com/Cusiokhale/recipe-food-platform/internal/exceptions"
	"github.com/Cusiokhale/recipe-food-platform/internal/middleware"
	"github.com/Cusiokhale/recipe-food-platform/internal/services"
)

type ReviewRoutes struct {
	reviews *services.ReviewService
}

func (rr *ReviewRoutes) Register(api *gin.RouterGroup, authn gin.HandlerFunc) {
	group := api.Group("/reviews")
	group.GET("", rr.list)
	group.GET("/:id", rr.get)

	authed := group.Group("", authn)
	authed.POST("", rr.create)
	authed.PUT("/:id", rr.update)
	authed.DELETE("/:id", rr.delete)
}

type createReviewRequest struct {
	RecipeId string `json:"recipeId" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"max=1000"`
}

type updateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

func (rr *ReviewRoutes) list(c *gin.Context) {
	filter := data.ReviewFilter{
		RecipeId:  c.Query("recipeId"),
		AuthorId:  c.Query("authorId"),
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
	if filter.MinRating, err = intPtrQuery(c, "minRating"); err != nil {
		translateError(c, err)
		return
	}
	if filter.MaxRating, err = intPtrQuery(c, "maxRating"); err != nil {
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

func (rr *ReviewRoutes) get(c *gin.Context) {
	review, err := rr.reviews.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (rr *ReviewRoutes) create(c *gin.Context) {
	var request createReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		translateError(c, exceptions.InvalidInput(err.Error()))
		return
	}
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		translateError(c, exceptions.Unauthorized("caller identity missing"))
		return
	}
	created, err := rr.reviews.Create(c.Request.Context(), caller.Id, caller.Name, data.NewReview{
		RecipeId: request.RecipeId,
		Rating:   request.Rating,
		Comment:  request.Comment,
	})
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (rr *ReviewRoutes) update(c *gin.Context) {
	var request updateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		translateError(c, exceptions.InvalidInput(err.Error()))
		return
	}
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		translateError(c, exceptions.Unauthorized("caller identity missing"))
		return
	}
	updated, err := rr.reviews.Update(c.Request.Context(), caller.Id, c.Param("id"), data.ReviewInput{
		Rating:  request.Rating,
		Comment: request.Comment,
	})
	if err != nil {
		translateError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (rr *ReviewRoutes) delete(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		translateError(c, exceptions.Unauthorized("caller identity missing"))
		return
	}
	if err := rr.reviews.Delete(c.Request.Context(), caller.Id, caller.IsAdmin(), c.Param("id")); err != nil {
		translateError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
