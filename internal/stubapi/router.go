package stubapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// Options configures the stub server.
type Options struct {
	// JWTSecret verifies the bearer tokens the store mints.
	JWTSecret string
}

// server carries the handlers' shared dependencies.
type server struct {
	store    *Store
	notifier *Notifier
	log      zerolog.Logger
}

// response is the uniform envelope every endpoint renders, matching what
// the storefront client decodes.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   int    `json:"count,omitempty"`
}

func ok(c echo.Context, status int, data any) error {
	return c.JSON(status, response{Success: true, Data: data})
}

// NewRouter builds the Echo instance with every route of the backend
// contract registered. The caller owns ctx for the notifier workers.
func NewRouter(store *Store, notifier *Notifier, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = newHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware(namespace))

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s := &server{store: store, notifier: notifier, log: log}

	api := e.Group("/api")
	authed := auth(opts.JWTSecret)
	admin := adminOnly()

	// --- identity ---
	api.POST("/users/login", s.login)
	api.POST("/users/register", s.register)
	api.GET("/users/logout", s.logout, authed)
	api.GET("/users/me", s.me, authed)
	api.PUT("/users/me", s.updateMe, authed)
	api.DELETE("/users/me", s.deleteMe, authed)

	// --- admin user management ---
	api.GET("/users", s.listUsers, authed, admin)
	api.PUT("/users/:id", s.updateUser, authed, admin)
	api.DELETE("/users/:id", s.deleteUser, authed, admin)

	// --- catalog ---
	api.GET("/products", s.listProducts)
	api.GET("/products/categories", s.categories)
	api.GET("/products/low-stock", s.lowStock, authed, admin)
	api.GET("/products/:id", s.getProduct)
	api.POST("/products", s.createProduct, authed, admin)
	api.PUT("/products/:id", s.updateProduct, authed, admin)
	api.PATCH("/products/:id/stock", s.updateStock, authed, admin)
	api.DELETE("/products/:id", s.deleteProduct, authed, admin)

	// --- quotations ---
	api.POST("/quotations", s.createQuotation, authed)
	api.GET("/quotations", s.listQuotations, authed, admin)
	api.GET("/quotations/my-quotations", s.myQuotations, authed)
	api.GET("/quotations/stats", s.quotationStats, authed, admin)
	api.GET("/quotations/status/:status", s.quotationsByStatus, authed, admin)
	api.GET("/quotations/:id", s.getQuotation, authed)
	api.PATCH("/quotations/:id/status", s.updateQuotationStatus, authed, admin)
	api.DELETE("/quotations/:id", s.deleteQuotation, authed, admin)

	// --- reservations ---
	api.POST("/reservations", s.createReservation, authed)
	api.GET("/reservations", s.listReservations, authed, admin)
	api.GET("/reservations/my-reservations", s.myReservations, authed)
	api.GET("/reservations/:id", s.getReservation, authed)
	api.PUT("/reservations/:id", s.updateReservation, authed)
	api.PATCH("/reservations/:id/status", s.updateReservationStatus, authed, admin)
	api.DELETE("/reservations/:id", s.deleteReservation, authed)

	// --- suppliers (back office only) ---
	api.POST("/suppliers", s.createSupplier, authed, admin)
	api.GET("/suppliers", s.listSuppliers, authed, admin)
	api.GET("/suppliers/expired-agreements", s.expiredAgreements, authed, admin)
	api.GET("/suppliers/:id", s.getSupplier, authed, admin)
	api.PUT("/suppliers/:id", s.updateSupplier, authed, admin)
	api.DELETE("/suppliers/:id", s.deleteSupplier, authed, admin)
	api.POST("/suppliers/:id/notify-low-stock", s.notifyLowStock, authed, admin)

	return e
}

// newHTTPErrorHandler maps store errors to status codes and renders the
// {success:false, message} envelope.
func newHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, response{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, errInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, errUserExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")
	return http.StatusInternalServerError, "internal server error"
}
