package main

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Cusiokhale/recipe-food-platform/internal/auth"
	"github.com/Cusiokhale/recipe-food-platform/internal/config"
	"github.com/Cusiokhale/recipe-food-platform/internal/repository"
	"github.com/Cusiokhale/recipe-food-platform/internal/routes"
	"github.com/Cusiokhale/recipe-food-platform/internal/services"
	"github.com/Cusiokhale/recipe-food-platform/internal/store"
	"github.com/Cusiokhale/recipe-food-platform/internal/store/dynamo"
	"github.com/Cusiokhale/recipe-food-platform/internal/store/memory"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	log.WithField("config", cfg.String()).Info("Loaded configuration")

	backend, err := newStore(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize document store")
	}

	recipeRepo := repository.NewRecipeRepository(backend)
	ingredientRepo := repository.NewIngredientRepository(backend)
	categoryRepo := repository.NewCategoryRepository(backend)
	reviewRepo := repository.NewReviewRepository(backend)

	ingredientSvc := services.NewIngredientService(ingredientRepo, recipeRepo, log)
	reviewSvc := services.NewReviewService(reviewRepo, recipeRepo, log)
	recipeSvc := services.NewRecipeService(recipeRepo, ingredientSvc, reviewSvc, log)
	categorySvc := services.NewCategoryService(categoryRepo, recipeRepo, log)

	router := routes.NewRouter(auth.NewTokenValidator(cfg.JWTSecret), routes.Services{
		Recipes:     recipeSvc,
		Ingredients: ingredientSvc,
		Categories:  categorySvc,
		Reviews:     reviewSvc,
	}, log)

	log.WithField("addr", cfg.Addr()).Info("Starting server")
	if err := router.Run(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

func newStore(cfg *config.Config) (store.Store, error) {
	if cfg.StoreBackend == config.StoreBackendMemory {
		return memory.New(), nil
	}
	ctx := context.Background()
	var client *dynamodb.Client
	if cfg.DynamoLocalPort > 0 {
		local, err := dynamo.NewLocalClient(ctx, cfg.DynamoLocalPort)
		if err != nil {
			return nil, err
		}
		client = local
	} else {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, err
		}
		client = dynamodb.NewFromConfig(awsCfg)
	}
	if err := dynamo.EnsureTable(ctx, client, cfg.TableName); err != nil {
		return nil, err
	}
	return dynamo.New(client, cfg.TableName), nil
}
