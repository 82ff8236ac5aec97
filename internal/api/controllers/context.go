package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"carlink/internal/models/db_models"
	"carlink/internal/services"
)

// caller builds the explicit caller identity from the values the JWT
// middleware attached to the request.
func caller(c *gin.Context) (services.CallerContext, bool) {
	id, ok := callerID(c)
	if !ok {
		return services.CallerContext{}, false
	}
	return services.CallerContext{
		UserID: id,
		Role:   db_models.Role(c.GetString("Role")),
	}, true
}

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		pageSize = 20
	}
	return page, pageSize
}
