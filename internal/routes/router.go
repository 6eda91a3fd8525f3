// Package routes exposes the catalog over HTTP. Handlers bind and validate
// the wire shapes, resolve the caller, and hand off to the domain services;
// every service error is translated through the exceptions taxonomy.
package routes

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Cusiokhale/recipe-food-platform/internal/exceptions"
	"github.com/Cusiokhale/recipe-food-platform/internal/middleware"
	"github.com/Cusiokhale/recipe-food-platform/internal/services"
)

type Services struct {
	Recipes     *services.RecipeService
	Ingredients *services.IngredientService
	Categories  *services.CategoryService
	Reviews     *services.ReviewService
}

func NewRouter(validator middleware.Validator, svc Services, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(log), gin.Recovery())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	authn := middleware.Authentication(validator)
	(&RecipeRoutes{recipes: svc.Recipes, ingredients: svc.Ingredients, reviews: svc.Reviews}).Register(api, authn)
	(&IngredientRoutes{ingredients: svc.Ingredients}).Register(api, authn)
	(&CategoryRoutes{categories: svc.Categories}).Register(api, authn)
	(&ReviewRoutes{reviews: svc.Reviews}).Register(api, authn)

	return router
}

func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"durationMs": time.Since(start).Milliseconds(),
		}).Debug("Handled request")
	}
}

func translateError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	if re, ok := err.(exceptions.RequestError); ok {
		statusCode = re.ToServiceError().StatusCode
	}
	var se *exceptions.ServiceError
	if errors.As(err, &se) {
		statusCode = se.StatusCode
	}
	c.JSON(statusCode, gin.H{"message": err.Error()})
}
