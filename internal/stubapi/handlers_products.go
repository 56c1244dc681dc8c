package stubapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

func (s *server) listProducts(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	products := s.store.ListProducts(domain.ProductQuery{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Page:     page,
		Limit:    limit,
	})
	return c.JSON(http.StatusOK, response{Success: true, Data: products, Count: len(products)})
}

func (s *server) getProduct(c echo.Context) error {
	p, err := s.store.ProductByID(c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, p)
}

func (s *server) categories(c echo.Context) error {
	return ok(c, http.StatusOK, s.store.Categories())
}

func (s *server) lowStock(c echo.Context) error {
	products := s.store.LowStockProducts()
	return c.JSON(http.StatusOK, response{Success: true, Data: products, Count: len(products)})
}

func (s *server) createProduct(c echo.Context) error {
	var req domain.ProductInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ok(c, http.StatusCreated, s.store.CreateProduct(req))
}

func (s *server) updateProduct(c echo.Context) error {
	var req domain.ProductInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := s.store.UpdateProduct(c.Param("id"), req)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, p)
}

func (s *server) updateStock(c echo.Context) error {
	var req domain.StockUpdate
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := s.store.UpdateStock(c.Param("id"), req.Stock)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, p)
}

func (s *server) deleteProduct(c echo.Context) error {
	if err := s.store.DeleteProduct(c.Param("id")); err != nil {
		return err
	}
	return ok(c, http.StatusOK, nil)
}
