package i18n

// Lang represents supported storefront languages
type Lang string

const (
	LangAr Lang = "ar"
	LangFr Lang = "fr"
)

// DefaultLang is used when the request carries no usable language hint
const DefaultLang = LangAr

// Translations holds all text for one language
type Translations map[string]string

// Parse normalizes a raw language tag ("ar", "fr", "fr-DZ", ...) to a supported Lang
func Parse(raw string) Lang {
	if len(raw) >= 2 {
		switch raw[:2] {
		case "fr":
			return LangFr
		case "ar":
			return LangAr
		}
	}
	return DefaultLang
}

// Dir returns the text direction for the given language
func Dir(lang Lang) string {
	if lang == LangAr {
		return "rtl"
	}
	return "ltr"
}

// T returns the translation for key in the given language.
// Falls back to French, then to the key itself so missing entries stay visible.
func T(lang Lang, key string) string {
	if lang == LangAr {
		if msg, ok := translationsAr[key]; ok {
			return msg
		}
	}
	if msg, ok := translationsFr[key]; ok {
		return msg
	}
	return key
}
