package stubapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *server) createQuotation(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var req domain.QuotationInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	q, err := s.store.CreateQuotation(id, req)
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, q)
}

func (s *server) listQuotations(c echo.Context) error {
	quotations := s.store.ListQuotations("", "")
	return c.JSON(http.StatusOK, response{Success: true, Data: quotations, Count: len(quotations)})
}

func (s *server) myQuotations(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	quotations := s.store.ListQuotations(id, "")
	return c.JSON(http.StatusOK, response{Success: true, Data: quotations, Count: len(quotations)})
}

// getQuotation lets admins read anything and customers only their own.
func (s *server) getQuotation(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	q, err := s.store.QuotationByID(c.Param("id"))
	if err != nil {
		return err
	}
	role, _ := c.Get("role").(string)
	if role != domain.RoleAdmin && q.CustomerID != id {
		return echo.NewHTTPError(http.StatusForbidden, "not your quotation")
	}
	return ok(c, http.StatusOK, q)
}

func (s *server) quotationStats(c echo.Context) error {
	return ok(c, http.StatusOK, s.store.QuotationStats())
}

func (s *server) quotationsByStatus(c echo.Context) error {
	quotations := s.store.ListQuotations("", domain.QuotationStatus(c.Param("status")))
	return c.JSON(http.StatusOK, response{Success: true, Data: quotations, Count: len(quotations)})
}

func (s *server) updateQuotationStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	q, err := s.store.UpdateQuotationStatus(c.Param("id"), domain.QuotationStatus(req.Status))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, q)
}

func (s *server) deleteQuotation(c echo.Context) error {
	if err := s.store.DeleteQuotation(c.Param("id")); err != nil {
		return err
	}
	return ok(c, http.StatusOK, nil)
}
