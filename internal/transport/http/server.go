package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bokasafn/internal/app"
	"bokasafn/internal/transport/http/handler"
	"bokasafn/internal/transport/http/middleware"
)

// Deps bundles everything the router needs. Production wiring builds it
// from gorm repositories in bootstrap; tests build it from fakes.
type Deps struct {
	JWTSecret  string
	Auth       *app.AuthService
	Users      *app.UserService
	Books      *app.BookService
	Categories *app.CategoryService
	Reads      *app.ReadService
	Images     *app.ImageService
	UserLoader middleware.UserLoader
}

func NewRouter(ginMode string, logger *zap.Logger, deps Deps) *gin.Engine {
	gin.SetMode(ginMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	// Every request carries its authentication state; the guard is applied
	// only where a route demands it.
	router.Use(middleware.Authenticate(deps.JWTSecret, deps.UserLoader))

	authHandler := handler.NewAuthHandler(deps.Auth)
	userHandler := handler.NewUserHandler(deps.Users, deps.Reads)
	readHandler := handler.NewReadHandler(deps.Reads)
	bookHandler := handler.NewBookHandler(deps.Books)
	categoryHandler := handler.NewCategoryHandler(deps.Categories)
	profileHandler := handler.NewProfileHandler(deps.Images)

	router.GET("/healthz", handler.Health)
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	users := router.Group("/users", middleware.RequireAuth)
	users.GET("", userHandler.List)
	users.GET("/me", userHandler.Me)
	users.PATCH("/me", userHandler.UpdateMe)
	users.POST("/me/read", readHandler.Create)
	users.GET("/me/read", readHandler.List)
	users.DELETE("/me/read/:id", readHandler.Delete)
	users.POST("/me/profile", profileHandler.Upload)
	users.GET("/:id", userHandler.Get)
	users.GET("/:id/read", userHandler.ReadsOf)

	router.GET("/categories", categoryHandler.List)
	router.POST("/categories", middleware.RequireAuth, categoryHandler.Create)

	router.GET("/books", bookHandler.List)
	router.POST("/books", bookHandler.Create)
	router.GET("/books/:id", bookHandler.Get)
	router.PATCH("/books/:id", bookHandler.Update)

	return router
}
