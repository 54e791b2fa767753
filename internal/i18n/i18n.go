// Package i18n backs the language-settings screen with a real localization
// bundle. English is the fallback; Urdu is the second catalog. The active
// language is a persisted preference.
package i18n

import (
	_ "embed"
	"log"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed active.en.toml
var messagesEN []byte

//go:embed active.ur.toml
var messagesUR []byte

// Translator resolves message ids for the active language.
type Translator struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	lang      string
}

// New builds the bundle with both catalogs and activates lang ("en"/"ur").
func New(lang string) *Translator {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.MustParseMessageFileBytes(messagesEN, "active.en.toml")
	bundle.MustParseMessageFileBytes(messagesUR, "active.ur.toml")

	t := &Translator{bundle: bundle}
	t.SetLanguage(lang)
	return t
}

// SetLanguage switches the active catalog. Unknown codes fall back to en.
func (t *Translator) SetLanguage(lang string) {
	if lang != "en" && lang != "ur" {
		lang = "en"
	}
	t.lang = lang
	t.localizer = goi18n.NewLocalizer(t.bundle, lang, "en")
}

// Language returns the active language code.
func (t *Translator) Language() string {
	return t.lang
}

// T resolves a message id. A missing id returns the id itself so the UI
// stays readable instead of erroring.
func (t *Translator) T(id string) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		log.Printf("i18n: missing message %q for %s", id, t.lang)
		return id
	}
	return msg
}

// Languages lists the selectable codes with display names, in menu order.
func Languages() [][2]string {
	return [][2]string{
		{"en", "English"},
		{"ur", "اردو"},
	}
}
