package normalize

import (
	"strings"

	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/samber/lo"
)

// CareerLevels accepts a single display value or a list of them
// ("Entry Level" -> EntryLevel) and always returns at least one level.
func CareerLevels(v any) []models.CareerLevel {
	return CareerLevelsOutcome(v).Value
}

func CareerLevelsOutcome(v any) Result[[]models.CareerLevel] {
	fallback := []models.CareerLevel{models.NotSpecified}

	var tokens []string
	switch value := v.(type) {
	case string:
		tokens = []string{value}
	case []string:
		tokens = value
	case []any:
		tokens = lo.FilterMap(value, func(item any, _ int) (string, bool) {
			s, ok := item.(string)
			return s, ok
		})
	default:
		return defaulted(fallback, v)
	}

	levels := lo.FilterMap(tokens, func(token string, _ int) (models.CareerLevel, bool) {
		stripped := strings.Join(strings.Fields(token), "")
		return models.CareerLevel(stripped), stripped != ""
	})

	if len(levels) == 0 {
		return defaulted(fallback, v)
	}
	return recognized(levels)
}
