package presenters

import (
	"Recipe-Book/internal/utils"
	"Recipe-Book/internal/utils/i18n"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool               `json:"status"`
	Message string             `json:"message"`
	Detail  string             `json:"detail,omitempty"`
	Errors  []utils.FieldError `json:"errors,omitempty"`
	Data    any                `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: i18n.FromCtx(c).T(message),
		Data:    data,
	})
}

// ErrorResponse writes the error envelope. Both message and err text are
// localized when they are catalog keys.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	l := i18n.FromCtx(c)
	res := Response{
		Status:  false,
		Message: l.T(message),
	}
	if err != nil {
		res.Detail = l.T(err.Error())
	}
	return c.Status(statusCode).JSON(res)
}

func ValidationErrorResponse(c *fiber.Ctx, message string, errs []utils.FieldError) error {
	l := i18n.FromCtx(c)
	return c.Status(fiber.StatusUnprocessableEntity).JSON(Response{
		Status:  false,
		Message: l.T(message),
		Detail:  l.T(message),
		Errors:  errs,
	})
}
