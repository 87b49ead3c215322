// Package locale lists the languages SmartCop can draft reports in.
package locale

// English is the canonical locale that every field value is normalized to.
const English = "en"

// DefaultSpeechTag is used for speech engines when a locale is unknown.
const DefaultSpeechTag = "hi-IN"

type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	// SpeechTag is the BCP-47 tag understood by speech recognizers and synthesizers.
	SpeechTag string `json:"speechTag"`
}

var languages = []Language{
	{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", SpeechTag: "hi-IN"},
	{Code: "bn", Name: "Bengali", NativeName: "বাংলা", SpeechTag: "bn-IN"},
	{Code: "te", Name: "Telugu", NativeName: "తెలుగు", SpeechTag: "te-IN"},
	{Code: "mr", Name: "Marathi", NativeName: "मराठी", SpeechTag: "mr-IN"},
	{Code: "ta", Name: "Tamil", NativeName: "தமிழ்", SpeechTag: "ta-IN"},
	{Code: "gu", Name: "Gujarati", NativeName: "ગુજરાતી", SpeechTag: "gu-IN"},
	{Code: "ur", Name: "Urdu", NativeName: "اردو", SpeechTag: "ur-PK"},
	{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ", SpeechTag: "kn-IN"},
	{Code: "ml", Name: "Malayalam", NativeName: "മലയാളം", SpeechTag: "ml-IN"},
	{Code: "or", Name: "Odia", NativeName: "ଓଡ଼ିଆ", SpeechTag: "or-IN"},
	{Code: "pa", Name: "Punjabi", NativeName: "ਪੰਜਾਬੀ", SpeechTag: "pa-IN"},
	{Code: "as", Name: "Assamese", NativeName: "অসমীয়া", SpeechTag: "as-IN"},
	{Code: English, Name: "English", NativeName: "English", SpeechTag: "en-US"},
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	return append([]Language(nil), languages...)
}

// Lookup returns the language with the given code.
func Lookup(code string) (Language, bool) {
	for _, l := range languages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false //nolint:exhaustruct // zero value signals absence
}

// Supported reports whether code is one of the supported locales.
func Supported(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// Name returns the English name of the language or the code itself when unknown.
func Name(code string) string {
	if l, ok := Lookup(code); ok {
		return l.Name
	}
	return code
}

// SpeechTag returns the speech engine tag for code, falling back to [DefaultSpeechTag].
func SpeechTag(code string) string {
	if l, ok := Lookup(code); ok {
		return l.SpeechTag
	}
	return DefaultSpeechTag
}
