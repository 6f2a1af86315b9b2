package fiberx

import (
	"errors"
	"strconv"

	"github.com/Abraxas-365/hirematch/pkg/errx"
	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler converts internal errors to standard HTTP responses
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Fiber errors, e.g. 404 route not found or body limit exceeded
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"error": fe.Message,
			"code":  fe.Code,
		})
	}

	var e *errx.Error
	if errors.As(err, &e) {
		if e.HTTPStatus >= fiber.StatusInternalServerError {
			logx.Errorf("%s %s: %v", c.Method(), c.Path(), e)
		}
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}

// ParsePagination reads page and page_size query parameters
func ParsePagination(c *fiber.Ctx) kernel.PaginationOptions {
	return kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", kernel.DefaultPageSize),
	}.Normalize()
}

// QueryLimit reads an integer limit, falling back to def when absent or
// malformed and capping it at max
func QueryLimit(c *fiber.Ctx, key string, def, max int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if n > max {
		return max
	}
	return n
}
