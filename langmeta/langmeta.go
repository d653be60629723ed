// Package langmeta provides the language metadata registry (English and
// native names, emoji flags) for the bot's supported languages, used in
// request documents and CLI output.
package langmeta

import (
	"strings"

	"golang.org/x/text/language"
)

// Meta describes language display metadata.
type Meta struct {
	// Name is the English language name, used in translation requests.
	Name string
	// Native is the language's own name for itself.
	Native string
	// Flag is an emoji flag for CLI tables.
	Flag string
}

// Registry contains metadata for the bot's supported language codes.
// "ptpt" is a bot-internal code for European Portuguese; everything else
// is a plain ISO 639-1 code.
var Registry = map[string]Meta{
	"ar":   {Name: "Arabic", Native: "العربية", Flag: "🇸🇦"},
	"bg":   {Name: "Bulgarian", Native: "Български", Flag: "🇧🇬"},
	"bn":   {Name: "Bengali", Native: "বাংলা", Flag: "🇧🇩"},
	"cs":   {Name: "Czech", Native: "Čeština", Flag: "🇨🇿"},
	"da":   {Name: "Danish", Native: "Dansk", Flag: "🇩🇰"},
	"de":   {Name: "German", Native: "Deutsch", Flag: "🇩🇪"},
	"el":   {Name: "Greek", Native: "Ελληνικά", Flag: "🇬🇷"},
	"en":   {Name: "English", Native: "English", Flag: "🇺🇸"},
	"es":   {Name: "Spanish", Native: "Español", Flag: "🇪🇸"},
	"fa":   {Name: "Persian", Native: "فارسی", Flag: "🇮🇷"},
	"fi":   {Name: "Finnish", Native: "Suomi", Flag: "🇫🇮"},
	"fr":   {Name: "French", Native: "Français", Flag: "🇫🇷"},
	"he":   {Name: "Hebrew", Native: "עברית", Flag: "🇮🇱"},
	"hi":   {Name: "Hindi", Native: "हिन्दी", Flag: "🇮🇳"},
	"ht":   {Name: "Haitian Creole", Native: "Kreyòl Ayisyen", Flag: "🇭🇹"},
	"hu":   {Name: "Hungarian", Native: "Magyar", Flag: "🇭🇺"},
	"id":   {Name: "Indonesian", Native: "Bahasa Indonesia", Flag: "🇮🇩"},
	"is":   {Name: "Icelandic", Native: "Íslenska", Flag: "🇮🇸"},
	"it":   {Name: "Italian", Native: "Italiano", Flag: "🇮🇹"},
	"ja":   {Name: "Japanese", Native: "日本語", Flag: "🇯🇵"},
	"ko":   {Name: "Korean", Native: "한국어", Flag: "🇰🇷"},
	"ms":   {Name: "Malay", Native: "Bahasa Melayu", Flag: "🇲🇾"},
	"nl":   {Name: "Dutch", Native: "Nederlands", Flag: "🇳🇱"},
	"no":   {Name: "Norwegian", Native: "Norsk", Flag: "🇳🇴"},
	"pl":   {Name: "Polish", Native: "Polski", Flag: "🇵🇱"},
	"pt":   {Name: "Portuguese (Brazil)", Native: "Português (Brasil)", Flag: "🇧🇷"},
	"ptpt": {Name: "Portuguese (Portugal)", Native: "Português (Portugal)", Flag: "🇵🇹"},
	"ro":   {Name: "Romanian", Native: "Română", Flag: "🇷🇴"},
	"ru":   {Name: "Russian", Native: "Русский", Flag: "🇷🇺"},
	"sv":   {Name: "Swedish", Native: "Svenska", Flag: "🇸🇪"},
	"sw":   {Name: "Swahili", Native: "Kiswahili", Flag: "🇰🇪"},
	"th":   {Name: "Thai", Native: "ไทย", Flag: "🇹🇭"},
	"tl":   {Name: "Tagalog", Native: "Tagalog", Flag: "🇵🇭"},
	"tr":   {Name: "Turkish", Native: "Türkçe", Flag: "🇹🇷"},
	"uk":   {Name: "Ukrainian", Native: "Українська", Flag: "🇺🇦"},
	"vi":   {Name: "Vietnamese", Native: "Tiếng Việt", Flag: "🇻🇳"},
	"zh":   {Name: "Chinese", Native: "中文", Flag: "🇨🇳"},
}

// Resolve returns best-effort metadata for a language code, accepting
// variants like pt_BR, pt-PT, or zh-Hans and falling back to the base
// language. Unknown codes resolve to a Meta naming the code itself.
func Resolve(code string) Meta {
	if m, ok := Registry[code]; ok {
		return m
	}

	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(code), "_", "-"))
	if m, ok := Registry[norm]; ok {
		return m
	}
	// European Portuguese travels under several spellings.
	if norm == "pt-pt" {
		return Registry["ptpt"]
	}

	if tag, err := language.Parse(norm); err == nil {
		base, conf := tag.Base()
		if conf >= language.High {
			if m, ok := Registry[base.String()]; ok {
				return m
			}
		}
	}

	return Meta{Name: code, Native: code}
}

// Known reports whether the code resolves to a supported language.
func Known(code string) bool {
	return Resolve(code).Flag != ""
}
