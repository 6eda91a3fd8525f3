package routes

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Cusiokhale/recipe-food-platform/internal/exceptions"
)

func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.InvalidInput(fmt.Sprintf("%s parameter was not a number type.", name))
	}
	return value, nil
}

func intPtrQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, exceptions.InvalidInput(fmt.Sprintf("%s parameter was not a number type.", name))
	}
	return &value, nil
}

func timePtrQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, exceptions.InvalidInput(fmt.Sprintf("%s parameter was not an RFC3339 timestamp.", name))
	}
	return &value, nil
}
