package handler

import (
	"errors"
	"net/http"

	"film_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DirectorHandler serves the public, read-only director endpoints
type DirectorHandler struct {
	service service.DirectorService
	log     zerolog.Logger
}

func NewDirectorHandler(s service.DirectorService, log zerolog.Logger) *DirectorHandler {
	return &DirectorHandler{service: s, log: log}
}

func (h *DirectorHandler) ListDirectors(c *gin.Context) {
	directors, err := h.service.List(c.Request.Context())
	if err != nil {
		respondInternal(c, h.log, "error listing directors", err)
		return
	}
	c.JSON(http.StatusOK, directors)
}

func (h *DirectorHandler) GetDirector(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid director ID")
		return
	}

	director, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDirectorNotFound) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondInternal(c, h.log, "error getting director", err)
		return
	}
	c.JSON(http.StatusOK, director)
}

func (h *DirectorHandler) RegisterDirectorRoutes(rg *gin.RouterGroup) {
	directors := rg.Group("/directors")
	{
		directors.GET("", h.ListDirectors)
		directors.GET("/:id", h.GetDirector)
	}
}
