package i18n

import (
	"Recipe-Book/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTranslator_Match(t *testing.T) {
	tests := []struct {
		name        string
		defaultLang string
		header      string
		want        language.Tag
	}{
		{name: "empty header", defaultLang: "ru", header: "", want: language.Russian},
		{name: "english preferred", defaultLang: "ru", header: "en-GB,en;q=0.9", want: language.English},
		{name: "russian preferred", defaultLang: "en", header: "ru", want: language.Russian},
		{name: "unsupported", defaultLang: "en", header: "fr", want: language.English},
		{name: "garbage header", defaultLang: "ru", header: ";;;", want: language.Russian},
		{name: "bad default", defaultLang: "xx-invalid-", header: "", want: language.Russian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.defaultLang).Match(tt.header))
		})
	}
}

func TestLocalizer_T(t *testing.T) {
	tr := New("ru")

	ru := tr.Localizer(language.Russian)
	assert.Equal(t, "Рецепт не найден", ru.T(domain.ErrRecipeNotFound.Error()))
	assert.Equal(t, "Рецепт с таким именем уже существует.", ru.T(domain.ErrRecipeAlreadyExists.Error()))

	en := tr.Localizer(language.English)
	assert.Equal(t, "recipe not found", en.T(domain.ErrRecipeNotFound.Error()))

	assert.Equal(t, "json: 100% broken", ru.T("json: 100% broken"))
}
