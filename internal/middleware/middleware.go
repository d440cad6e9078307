package middleware

import (
	"Recipe-Book/internal/utils/i18n"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		RequestIDMiddleware() fiber.Handler
		RecoverMiddleware() fiber.Handler
		LocaleMiddleware() fiber.Handler
	}

	middleware struct {
		allowOrigins string
		translator   *i18n.Translator
	}
)

func NewMiddleware(allowOrigins string, translator *i18n.Translator) Middleware {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return &middleware{
		allowOrigins: allowOrigins,
		translator:   translator,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language",
	})
}

func (m *middleware) RequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	})
}

func (m *middleware) RecoverMiddleware() fiber.Handler {
	return recover.New(recover.Config{EnableStackTrace: true})
}

// LocaleMiddleware negotiates the response language from Accept-Language.
func (m *middleware) LocaleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tag := m.translator.Match(c.Get(fiber.HeaderAcceptLanguage))
		i18n.Store(c, m.translator.Localizer(tag))
		c.Set(fiber.HeaderContentLanguage, tag.String())
		return c.Next()
	}
}
