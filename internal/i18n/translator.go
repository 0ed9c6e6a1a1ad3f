package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"weatherbot/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed locales
var LocalesFS embed.FS

// Translator holds labels of a single language
type Translator struct {
	translations map[string]string
}

// NewTranslator reads locales/<langCode>.yaml from fsys
func NewTranslator(fsys fs.FS, langCode string) (*Translator, error) {
	filePath := path.Join("locales", langCode+".yaml")

	data, err := fs.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation file %s: %w", filePath, err)
	}

	var translations map[string]string
	if err := yaml.Unmarshal(data, &translations); err != nil {
		return nil, fmt.Errorf("failed to parse translation file %s: %w", filePath, err)
	}

	return &Translator{translations: translations}, nil
}

// T returns the label for key, or the key itself when missing
func (t *Translator) T(key string) string {
	if v, ok := t.translations[key]; ok {
		return v
	}
	return key
}

// Catalog holds translators for every supported language
type Catalog struct {
	translators map[domain.Language]*Translator
}

// LoadCatalog reads translations of all supported languages
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{translators: make(map[domain.Language]*Translator)}
	for _, lang := range domain.Languages() {
		t, err := NewTranslator(fsys, string(lang))
		if err != nil {
			return nil, err
		}
		c.translators[lang] = t
	}
	return c, nil
}

// For returns translator of lang, falling back to English
func (c *Catalog) For(lang domain.Language) *Translator {
	if t, ok := c.translators[lang]; ok {
		return t
	}
	return c.translators[domain.LanguageEnglish]
}
