package resources

import (
	"embed"
	"fmt"

	"github.com/BrandonKowalski/gabagool/v2/pkg/gabagool/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var embeddedFiles embed.FS

type LocaleFile struct {
	Tag  language.Tag
	Name string
	Path string
}

var localeFiles = []LocaleFile{
	{Tag: language.English, Name: "active.en.toml", Path: "locales/active.en.toml"},
	{Tag: language.Spanish, Name: "active.es.toml", Path: "locales/active.es.toml"},
	{Tag: language.French, Name: "active.fr.toml", Path: "locales/active.fr.toml"},
}

// SupportedLanguages lists the tags that have a bundled translation, English first.
func SupportedLanguages() []language.Tag {
	tags := make([]language.Tag, len(localeFiles))
	for i, localeFile := range localeFiles {
		tags[i] = localeFile.Tag
	}
	return tags
}

// MatchLanguage picks the closest bundled translation for a configured code.
func MatchLanguage(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return language.English.String()
	}
	matched, _, _ := language.NewMatcher(SupportedLanguages()).Match(tag)
	base, _ := matched.Base()
	return base.String()
}

func GetLocaleMessageFiles() ([]i18n.MessageFile, error) {
	var messageFiles []i18n.MessageFile

	for _, localeFile := range localeFiles {
		content, err := embeddedFiles.ReadFile(localeFile.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded locale file %s: %w", localeFile.Path, err)
		}

		messageFiles = append(messageFiles, i18n.MessageFile{
			Name:    localeFile.Name,
			Content: content,
		})
	}

	return messageFiles, nil
}
