package stubapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

func (s *server) createReservation(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var req domain.ReservationInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	r, err := s.store.CreateReservation(id, req)
	if err != nil {
		return err
	}
	return ok(c, http.StatusCreated, r)
}

func (s *server) listReservations(c echo.Context) error {
	reservations := s.store.ListReservations("")
	return c.JSON(http.StatusOK, response{Success: true, Data: reservations, Count: len(reservations)})
}

func (s *server) myReservations(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	reservations := s.store.ListReservations(id)
	return c.JSON(http.StatusOK, response{Success: true, Data: reservations, Count: len(reservations)})
}

func (s *server) getReservation(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	r, err := s.store.ReservationByID(c.Param("id"))
	if err != nil {
		return err
	}
	role, _ := c.Get("role").(string)
	if role != domain.RoleAdmin && r.CustomerID != id {
		return echo.NewHTTPError(http.StatusForbidden, "not your reservation")
	}
	return ok(c, http.StatusOK, r)
}

// updateReservation lets a customer amend their own pending booking;
// admins may amend any.
func (s *server) updateReservation(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var req domain.ReservationInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	existing, err := s.store.ReservationByID(c.Param("id"))
	if err != nil {
		return err
	}
	role, _ := c.Get("role").(string)
	if role != domain.RoleAdmin && existing.CustomerID != id {
		return echo.NewHTTPError(http.StatusForbidden, "not your reservation")
	}

	r, err := s.store.UpdateReservation(c.Param("id"), req)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, r)
}

func (s *server) updateReservationStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	r, err := s.store.UpdateReservationStatus(c.Param("id"), domain.ReservationStatus(req.Status))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, r)
}

func (s *server) deleteReservation(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	existing, err := s.store.ReservationByID(c.Param("id"))
	if err != nil {
		return err
	}
	role, _ := c.Get("role").(string)
	if role != domain.RoleAdmin && existing.CustomerID != id {
		return echo.NewHTTPError(http.StatusForbidden, "not your reservation")
	}

	if err := s.store.DeleteReservation(c.Param("id")); err != nil {
		return err
	}
	return ok(c, http.StatusOK, nil)
}
