package normalize

import (
	"regexp"
	"strings"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/samber/lo"
)

var languageSuffixRegex = regexp.MustCompile(`(?i)\(([a-z]{2})\)$`)

// Languages resolves each entry as "Name (xx)", then as a bare code, then as
// an exact display name. Entries matching none are dropped; duplicates stay.
func Languages(v any) []models.LanguageCode {
	var items []string
	switch value := v.(type) {
	case []string:
		items = value
	case []any:
		items = lo.FilterMap(value, func(item any, _ int) (string, bool) {
			s, ok := item.(string)
			return s, ok
		})
	default:
		return []models.LanguageCode{}
	}

	return lo.FilterMap(items, func(item string, _ int) (models.LanguageCode, bool) {
		return Language(item)
	})
}

func Language(item string) (models.LanguageCode, bool) {
	if match := languageSuffixRegex.FindStringSubmatch(item); match != nil {
		code := strings.ToLower(match[1])
		if models.IsLanguageCode(code) {
			return models.LanguageCode(code), true
		}
	}

	if lower := strings.ToLower(item); len(item) == 2 && models.IsLanguageCode(lower) {
		return models.LanguageCode(lower), true
	}

	if language, ok := models.LanguageByName(item); ok {
		return language.Code, true
	}

	return "", false
}
