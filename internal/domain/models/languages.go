package models

// LanguageCode is a lower-case ISO 639-1 code.
type LanguageCode string

type Language struct {
	Code LanguageCode
	Name string
}

var Languages = []Language{
	{"af", "Afrikaans"},
	{"ar", "Arabic"},
	{"az", "Azerbaijani"},
	{"be", "Belarusian"},
	{"bg", "Bulgarian"},
	{"bn", "Bengali"},
	{"bs", "Bosnian"},
	{"ca", "Catalan"},
	{"cs", "Czech"},
	{"cy", "Welsh"},
	{"da", "Danish"},
	{"de", "German"},
	{"el", "Greek"},
	{"en", "English"},
	{"eo", "Esperanto"},
	{"es", "Spanish"},
	{"et", "Estonian"},
	{"eu", "Basque"},
	{"fa", "Persian"},
	{"fi", "Finnish"},
	{"fr", "French"},
	{"ga", "Irish"},
	{"gl", "Galician"},
	{"gu", "Gujarati"},
	{"he", "Hebrew"},
	{"hi", "Hindi"},
	{"hr", "Croatian"},
	{"hu", "Hungarian"},
	{"hy", "Armenian"},
	{"id", "Indonesian"},
	{"is", "Icelandic"},
	{"it", "Italian"},
	{"ja", "Japanese"},
	{"ka", "Georgian"},
	{"kk", "Kazakh"},
	{"km", "Khmer"},
	{"kn", "Kannada"},
	{"ko", "Korean"},
	{"lt", "Lithuanian"},
	{"lv", "Latvian"},
	{"mk", "Macedonian"},
	{"ml", "Malayalam"},
	{"mn", "Mongolian"},
	{"mr", "Marathi"},
	{"ms", "Malay"},
	{"mt", "Maltese"},
	{"my", "Burmese"},
	{"ne", "Nepali"},
	{"nl", "Dutch"},
	{"no", "Norwegian"},
	{"pa", "Punjabi"},
	{"pl", "Polish"},
	{"pt", "Portuguese"},
	{"ro", "Romanian"},
	{"ru", "Russian"},
	{"si", "Sinhala"},
	{"sk", "Slovak"},
	{"sl", "Slovenian"},
	{"sq", "Albanian"},
	{"sr", "Serbian"},
	{"sv", "Swedish"},
	{"sw", "Swahili"},
	{"ta", "Tamil"},
	{"te", "Telugu"},
	{"th", "Thai"},
	{"tl", "Tagalog"},
	{"tr", "Turkish"},
	{"uk", "Ukrainian"},
	{"ur", "Urdu"},
	{"uz", "Uzbek"},
	{"vi", "Vietnamese"},
	{"zh", "Chinese"},
	{"zu", "Zulu"},
}

var (
	languagesByCode = make(map[LanguageCode]Language, len(Languages))
	languagesByName = make(map[string]Language, len(Languages))
)

func init() {
	for _, language := range Languages {
		languagesByCode[language.Code] = language
		languagesByName[language.Name] = language
	}
}

// IsLanguageCode expects an already lower-cased code.
func IsLanguageCode(code string) bool {
	_, ok := languagesByCode[LanguageCode(code)]
	return ok
}

// LanguageByName matches the English display name exactly, case included.
func LanguageByName(name string) (Language, bool) {
	language, ok := languagesByName[name]
	return language, ok
}

func LanguageDisplayName(code LanguageCode) string {
	if language, ok := languagesByCode[code]; ok {
		return language.Name
	}
	return string(code)
}
