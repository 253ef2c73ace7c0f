package handler

import (
	"net/http"
	"strconv"

	"film_api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const internalErrorMessage = "Internal server error"

// respondError sends the unified error payload {"error": message}
func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// respondInternal logs the real cause and hides it from the client
func respondInternal(c *gin.Context, log zerolog.Logger, msg string, err error) {
	_ = c.Error(err)
	log.Error().
		Err(err).
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Msg(msg)
	respondError(c, http.StatusInternalServerError, internalErrorMessage)
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
