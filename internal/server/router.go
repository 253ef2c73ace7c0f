package server

import (
	"film_api/internal/handler"
	"film_api/internal/metrics"
	"film_api/internal/middleware"
	"film_api/internal/repository"
	"film_api/internal/service"
	"film_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Store is the database handle shared by every repository; *pgxpool.Pool satisfies it
type Store interface {
	repository.DB
	handler.Pinger
}

// Deps are the collaborators the router is assembled from
type Deps struct {
	ServiceName string
	Store       Store
	JWT         *utils.JWTUtil
	Metrics     *metrics.Metrics
	Log         zerolog.Logger
}

// App holds the assembled router together with the services main needs at startup
type App struct {
	Router      *gin.Engine
	AuthService service.AuthService
}

// New wires repositories, services and handlers into a gin engine
func New(d Deps) *App {
	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(d.Store)
	movieRepo := repository.NewMovieRepository(d.Store)
	directorRepo := repository.NewDirectorRepository(d.Store)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, d.JWT, d.Log)
	movieService := service.NewMovieService(movieRepo)
	directorService := service.NewDirectorService(directorRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, d.Log)
	movieHandler := handler.NewMovieHandler(movieService, d.Log)
	directorHandler := handler.NewDirectorHandler(directorService, d.Log)
	systemHandler := handler.NewSystemHandler(d.ServiceName, d.Store, d.Log)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(d.Log), middleware.Recovery(d.Log), middleware.CORS())
	if d.Metrics != nil {
		router.Use(d.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(d.JWT)
	adminRoleMW := middleware.AdminMiddleware()

	// --- Register Routes ---
	root := router.Group("")
	systemHandler.RegisterSystemRoutes(root)
	authHandler.RegisterAuthRoutes(root)
	movieHandler.RegisterMovieRoutes(root, jwtAuthMW, adminRoleMW)
	directorHandler.RegisterDirectorRoutes(root)

	router.NoRoute(systemHandler.NotFound)

	return &App{Router: router, AuthService: authService}
}
