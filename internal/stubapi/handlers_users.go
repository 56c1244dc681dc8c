package stubapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := s.store.Login(req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, response{Success: true, Token: token, Data: user})
}

func (s *server) register(c echo.Context) error {
	var req domain.RegisterInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := s.store.Register(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, response{Success: true, Token: token, Data: user})
}

// logout acknowledges the request. Tokens are stateless here, so there is
// nothing to invalidate; the client clears its own credentials.
func (s *server) logout(c echo.Context) error {
	return c.JSON(http.StatusOK, response{Success: true, Message: "Logged out"})
}

func (s *server) me(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	user, err := s.store.UserByID(id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, user)
}

func (s *server) updateMe(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	var req domain.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := s.store.UpdateUser(id, req)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, user)
}

func (s *server) deleteMe(c echo.Context) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}
	if err := s.store.DeleteUser(id); err != nil {
		return err
	}
	return ok(c, http.StatusOK, nil)
}

func (s *server) listUsers(c echo.Context) error {
	users := s.store.ListUsers()
	return c.JSON(http.StatusOK, response{Success: true, Data: users, Count: len(users)})
}

func (s *server) updateUser(c echo.Context) error {
	var req domain.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := s.store.UpdateUser(c.Param("id"), req)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, user)
}

func (s *server) deleteUser(c echo.Context) error {
	if err := s.store.DeleteUser(c.Param("id")); err != nil {
		return err
	}
	return ok(c, http.StatusOK, nil)
}
