package normalize

import (
	"github.com/maxaizer/jobboard/internal/domain/models"
	"github.com/samber/lo"
)

// WorkplaceType does not infer Remote from a remote region hint.
func WorkplaceType(v any) models.WorkplaceType {
	return WorkplaceTypeOutcome(v).Value
}

func WorkplaceTypeOutcome(v any) Result[models.WorkplaceType] {
	if s, ok := v.(string); ok {
		switch workplace := models.WorkplaceType(s); workplace {
		case models.OnSite, models.Hybrid, models.Remote:
			return recognized(workplace)
		}
	}
	return defaulted(models.WorkplaceNotSpecified, v)
}

func RemoteRegion(v any) *models.RemoteRegion {
	return RemoteRegionOutcome(v).Value
}

func RemoteRegionOutcome(v any) Result[*models.RemoteRegion] {
	if s, ok := v.(string); ok {
		region := models.RemoteRegion(s)
		if lo.Contains(models.RemoteRegions, region) {
			return recognized(&region)
		}
	}
	return defaulted[*models.RemoteRegion](nil, v)
}
