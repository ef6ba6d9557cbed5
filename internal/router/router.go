package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"humanatlas/internal/auth"
	"humanatlas/internal/config"
	apperrors "humanatlas/internal/errors"
	"humanatlas/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	entryHandler *handler.EntryHandler,
	profileHandler *handler.ProfileHandler,
	metaHandler *handler.MetaHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/signup", authHandler.SignUp)
	api.POST("/auth/signin", authHandler.SignIn)
	api.GET("/entries", entryHandler.List)
	api.GET("/profile/:username", profileHandler.Stats)
	api.GET("/meta", metaHandler.Vocabularies)

	// Secured routes: signature and expiry are verified per request, plus a
	// denylist lookup so sign-out takes effect immediately.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			denied, err := tokenStore.IsSessionDenylisted(c.Request().Context(), claims.ID)
			if err != nil || denied {
				return nil, apperrors.ErrUnauthorized
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			he := apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized)
			return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
		},
	}))

	secured.POST("/auth/signout", authHandler.SignOut)
	secured.GET("/auth/me", authHandler.Me)
	secured.POST("/entries", entryHandler.Create)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
