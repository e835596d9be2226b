// Package i18n localizes the catalog's own UI strings. Example titles come
// from the registry and are shown as-is.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Message IDs.
const (
	HomeTitle       = "HomeTitle"
	HomeHeaderTitle = "HomeHeaderTitle"
	Loading         = "Loading"
	BackHint        = "BackHint"
	SelectHint      = "SelectHint"
	ExitHint        = "ExitHint"
)

// Translator returns localized strings for one language.
type Translator struct {
	localizer *goi18n.Localizer
	tag       language.Tag
}

// New loads the embedded message files and picks the best match for lang.
// English is the fallback.
func New(lang string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		data, err := locales.ReadFile(f)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(f)); err != nil {
			return nil, fmt.Errorf("i18n: %s: %w", f, err)
		}
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	tag, _, _ := matcher.Match(language.Make(lang))
	base, _ := tag.Base()

	return &Translator{
		localizer: goi18n.NewLocalizer(bundle, base.String()),
		tag:       language.Make(base.String()),
	}, nil
}

// Language is the matched language.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T returns the localized message, or id itself if it is unknown.
func (t *Translator) T(id string) string {
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
