// Package localization provides the application's i18n lookup. Translation
// strings are loaded from JSON files named by language code (en.json,
// ak.json). Seeded chat content and doctor specialties are stored as
// translation keys and resolved here at render time.
package localization

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Language codes. The UI-facing names ("English", "Aklanon") map onto these
// via Code.
const (
	LangEnglish = "en"
	LangAklanon = "ak"
)

// Code converts a UI language name or short code into a file code. Unknown
// values fall back to English.
func Code(language string) string {
	if strings.EqualFold(language, "Aklanon") || strings.EqualFold(language, LangAklanon) {
		return LangAklanon
	}
	return LangEnglish
}

// Localizer manages the translations for the application.
type Localizer struct {
	translations map[string]map[string]string
	mu           sync.RWMutex
}

// NewLocalizer loads every *.json file in the given directory as a
// language, keyed by file name.
func NewLocalizer(path string) (*Localizer, error) {
	l := &Localizer{
		translations: make(map[string]map[string]string),
	}

	files, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read localization directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}

		lang := strings.TrimSuffix(file.Name(), ".json")
		data, err := os.ReadFile(filepath.Join(path, file.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read localization file %s: %w", file.Name(), err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return nil, fmt.Errorf("failed to parse localization file %s: %w", file.Name(), err)
		}

		l.translations[lang] = translations
	}

	return l, nil
}

// GetString returns the localized string for a key. Missing keys fall back
// to English, then to the key itself, so untranslated seeded content still
// renders.
func (l *Localizer) GetString(lang, key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if langTranslations, ok := l.translations[lang]; ok {
		if value, ok := langTranslations[key]; ok {
			return value
		}
	}

	if lang != LangEnglish {
		if enTranslations, ok := l.translations[LangEnglish]; ok {
			if value, ok := enTranslations[key]; ok {
				return value
			}
		}
	}

	return key
}

// Format localizes a key and substitutes {name}-style placeholders, e.g.
// Format("en", "doctor_chat_placeholder", map[string]string{"name": "Maria"}).
func (l *Localizer) Format(lang, key string, params map[string]string) string {
	s := l.GetString(lang, key)
	for name, value := range params {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}
