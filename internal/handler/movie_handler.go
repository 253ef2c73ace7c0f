package handler

import (
	"errors"
	"net/http"

	"film_api/internal/middleware"
	"film_api/internal/model"
	"film_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MovieHandler handles movie related requests
type MovieHandler struct {
	service service.MovieService
	log     zerolog.Logger
}

// NewMovieHandler creates a new MovieHandler
func NewMovieHandler(s service.MovieService, log zerolog.Logger) *MovieHandler {
	return &MovieHandler{service: s, log: log}
}

func (h *MovieHandler) ListMovies(c *gin.Context) {
	movies, err := h.service.List(c.Request.Context())
	if err != nil {
		respondInternal(c, h.log, "error listing movies", err)
		return
	}
	c.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) GetMovie(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	movie, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleErr(c, "error getting movie", err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req model.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "title, director_id and year are required")
		return
	}

	movie, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleErr(c, "error creating movie", err)
		return
	}

	if identity, ok := middleware.IdentityFrom(c); ok {
		h.log.Info().Int64("movie_id", movie.ID).Str("by", identity.Username).Msg("movie created")
	}
	c.JSON(http.StatusCreated, movie)
}

func (h *MovieHandler) UpdateMovie(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	var req model.MovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "title, director_id and year are required")
		return
	}

	movie, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleErr(c, "error updating movie", err)
		return
	}
	c.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleErr(c, "error deleting movie", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MovieHandler) handleErr(c *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrMovieNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDirectorNotFound):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondInternal(c, h.log, msg, err)
	}
}

// RegisterMovieRoutes wires the three permission tiers: public reads,
// authenticated create, admin-only update and delete
func (h *MovieHandler) RegisterMovieRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	movies := rg.Group("/movies")
	{
		movies.GET("", h.ListMovies)
		movies.GET("/:id", h.GetMovie)
		movies.POST("", authMW, h.CreateMovie)
		movies.PUT("/:id", authMW, adminMW, h.UpdateMovie)
		movies.DELETE("/:id", authMW, adminMW, h.DeleteMovie)
	}
}
