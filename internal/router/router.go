package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"lingorelay/internal/auth"
	"lingorelay/internal/handler"
)

// authRateLimit throttles credential endpoints per client IP to damp
// brute-force attempts.
const authRateLimit = rate.Limit(10)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	historyHandler *handler.HistoryHandler,
	translateHandler *handler.TranslateHandler,
	healthHandler *handler.HealthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/health", healthHandler.Health)

	// The relay is open: the original web client calls it before login.
	api.POST("/translate", translateHandler.Translate)

	// Public routes
	authGroup := api.Group("/auth", middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(authRateLimit)))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", auth.Middleware(jwtService))
	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/history/save", historyHandler.Save)
	secured.GET("/history/get", historyHandler.Get)
	secured.DELETE("/history/clear", historyHandler.Clear)
	secured.DELETE("/history/delete/:id", historyHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
