package resource

import "time"

// Resource is a tracked hospital asset pool, e.g. beds or ventilators.
// Unlike the clinical records, resources carry no business key; the numeric
// id addresses them, and names are not required to be unique.
type Resource struct {
	ID           int       `json:"id"`
	ResourceName string    `json:"resourceName"`
	TotalCount   int       `json:"totalCount"`
	UsedCount    int       `json:"usedCount"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

type Patch struct {
	ResourceName *string `json:"resourceName,omitempty"`
	TotalCount   *int    `json:"totalCount,omitempty"`
	UsedCount    *int    `json:"usedCount,omitempty"`
}

func (p Patch) apply(dst *Resource) {
	if p.ResourceName != nil {
		dst.ResourceName = *p.ResourceName
	}
	if p.TotalCount != nil {
		dst.TotalCount = *p.TotalCount
	}
	if p.UsedCount != nil {
		dst.UsedCount = *p.UsedCount
	}
}
