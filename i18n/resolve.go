// Package i18n implements translation resolution: picking the single
// translation bundle matching a requested language code out of an entity's
// translation set.
package i18n

// DefaultLanguage is the fallback code used by non-request call sites, such
// as admin display labels.
const DefaultLanguage = "en"

// Localized is any translation record that knows its language code.
type Localized interface {
	LanguageCode() string
}

// Resolve returns a pointer to the first translation whose language code
// equals code, or nil when there is none. Translation sets are unique per
// (entity, language), so the first match is the only match. An unknown or
// malformed code simply resolves to nil; it is not an error.
func Resolve[T Localized](set []T, code string) *T {
	for i := range set {
		if set[i].LanguageCode() == code {
			return &set[i]
		}
	}
	return nil
}
