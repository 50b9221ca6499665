package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"habitly/internal/config"
	"habitly/internal/handler"
	"habitly/internal/metrics"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	collector *metrics.Collector,
	gatherer prometheus.Gatherer,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	habitHandler *handler.HabitHandler,
	practiceHandler *handler.PracticeHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(statusRecorder(collector))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(metrics.Handler(gatherer)))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require a valid session token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// User routes
	secured.GET("/users/me", userHandler.GetMe)
	secured.PUT("/users/profile", userHandler.UpdateProfile)

	// Category routes
	secured.POST("/categories", categoryHandler.Create)
	secured.GET("/categories", categoryHandler.List)
	secured.GET("/categories/:id", categoryHandler.Get)
	secured.PUT("/categories/:id", categoryHandler.Update)
	secured.DELETE("/categories/:id", categoryHandler.Delete)

	// Habit routes
	secured.POST("/habits", habitHandler.Create)
	secured.GET("/habits", habitHandler.List)
	secured.GET("/habits/:id", habitHandler.Get)
	secured.PUT("/habits/:id", habitHandler.Update)
	secured.DELETE("/habits/:id", habitHandler.Delete)

	// Practice routes
	secured.POST("/practices", practiceHandler.Record)
	secured.GET("/practices", practiceHandler.List)
	secured.DELETE("/practices/:id", practiceHandler.Delete)
}

// statusRecorder counts response status codes.
func statusRecorder(collector *metrics.Collector) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			collector.RecordHTTPStatus(c.Response().Status)
			return err
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
