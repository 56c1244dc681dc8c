package stubapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

func (s *server) createSupplier(c echo.Context) error {
	var req domain.SupplierInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ok(c, http.StatusCreated, s.store.CreateSupplier(req))
}

func (s *server) listSuppliers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	var isActive *bool
	if v := c.QueryParam("isActive"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "isActive must be a boolean")
		}
		isActive = &b
	}

	pageData := s.store.ListSuppliers(domain.SupplierQuery{Page: page, Limit: limit, IsActive: isActive})
	return ok(c, http.StatusOK, pageData)
}

func (s *server) getSupplier(c echo.Context) error {
	sup, err := s.store.SupplierByID(c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, sup)
}

func (s *server) updateSupplier(c echo.Context) error {
	var req domain.SupplierInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sup, err := s.store.UpdateSupplier(c.Param("id"), req)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, sup)
}

func (s *server) deleteSupplier(c echo.Context) error {
	if err := s.store.DeleteSupplier(c.Param("id")); err != nil {
		return err
	}
	return ok(c, http.StatusOK, nil)
}

func (s *server) expiredAgreements(c echo.Context) error {
	suppliers := s.store.ExpiredAgreements(time.Now().UTC())
	return c.JSON(http.StatusOK, response{Success: true, Data: suppliers, Count: len(suppliers)})
}

// notifyLowStock queues a low-stock notification for the supplier covering
// every product currently under its minimum level.
func (s *server) notifyLowStock(c echo.Context) error {
	sup, err := s.store.SupplierByID(c.Param("id"))
	if err != nil {
		return err
	}

	products := s.store.LowStockProducts()
	if !s.notifier.Enqueue(notification{Supplier: *sup, Products: products}) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "notification queue full")
	}
	return c.JSON(http.StatusOK, response{Success: true, Message: "Notification queued"})
}
