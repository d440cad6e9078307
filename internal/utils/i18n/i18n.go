// Package i18n localizes client-facing messages. Catalog keys are the
// English messages and error texts declared in package domain.
package i18n

import (
	"Recipe-Book/domain"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const localsKey = "localizer"

var supported = []language.Tag{language.Russian, language.English}

// translations maps a catalog key to its Russian text. English falls back
// to the key itself.
var translations = map[string]string{
	domain.ErrRecipeNotFound.Error():      "Рецепт не найден",
	domain.ErrRecipeAlreadyExists.Error(): "Рецепт с таким именем уже существует.",
	domain.ErrInvalidRecipeID.Error():     "Идентификатор рецепта должен быть целым числом",
	domain.ErrInternal.Error():            "Внутренняя ошибка сервера",
	domain.ErrRouteNotFound.Error():       "Маршрут не найден",
	domain.ErrTooManyRequests.Error():     "Превышен лимит запросов",

	domain.MessageFailedGetRecipes:      "Не удалось получить рецепты",
	domain.MessageFailedGetRecipeDetail: "Не удалось получить рецепт",
	domain.MessageFailedCreateRecipe:    "Не удалось создать рецепт",
	domain.MessageFailedBodyRequest:     "Некорректное тело запроса",
	domain.MessageFailedValidation:      "Ошибка валидации",
	domain.MessageFailedProcessRequest:  "Не удалось обработать запрос",
	domain.MessageTooManyRequests:       "Слишком много запросов",
	domain.MessageSuccessPing:           "понг",
}

type Translator struct {
	catalog  *catalog.Builder
	matcher  language.Matcher
	tags     []language.Tag
	fallback language.Tag
}

// New builds a Translator whose fallback language is defaultLang. Unknown or
// unsupported values fall back to Russian.
func New(defaultLang string) *Translator {
	fallback := language.Russian
	if tag, err := language.Parse(defaultLang); err == nil {
		base, _ := tag.Base()
		for _, s := range supported {
			if sb, _ := s.Base(); sb == base {
				fallback = s
			}
		}
	}

	// the matcher treats the first tag as its default
	tags := []language.Tag{fallback}
	for _, s := range supported {
		if s != fallback {
			tags = append(tags, s)
		}
	}

	cat := catalog.NewBuilder(catalog.Fallback(fallback))
	for key, ru := range translations {
		_ = cat.SetString(language.Russian, key, ru)
		_ = cat.SetString(language.English, key, key)
	}

	return &Translator{
		catalog:  cat,
		matcher:  language.NewMatcher(tags),
		tags:     tags,
		fallback: fallback,
	}
}

// Match picks the supported language for an Accept-Language header value.
func (t *Translator) Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return t.fallback
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return t.fallback
	}
	_, idx, conf := t.matcher.Match(prefs...)
	if conf == language.No {
		return t.fallback
	}
	return t.tags[idx]
}

func (t *Translator) Localizer(tag language.Tag) Localizer {
	return Localizer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(t.catalog)),
	}
}

type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

func (l Localizer) Tag() language.Tag {
	return l.tag
}

// T translates a catalog key. Text outside the catalog is returned as is.
func (l Localizer) T(key string) string {
	if _, ok := translations[key]; !ok || l.printer == nil {
		return key
	}
	return l.printer.Sprintf(key)
}

var defaultTranslator = New("ru")

// Store attaches the localizer to the request.
func Store(c *fiber.Ctx, l Localizer) {
	c.Locals(localsKey, l)
}

// FromCtx returns the request localizer, or the default-language one when
// the locale middleware did not run.
func FromCtx(c *fiber.Ctx) Localizer {
	if l, ok := c.Locals(localsKey).(Localizer); ok {
		return l
	}
	return defaultTranslator.Localizer(defaultTranslator.fallback)
}
