// Package indicator defines the fixed set of SDG-14 indicator datasets the
// dashboard knows how to load and describe.
package indicator

// Definition describes one indicator dataset: where it lives on disk, which
// column carries the metric, and how it should be labelled in the UI.
type Definition struct {
	Key          string `json:"key"`
	Label        string `json:"label"`
	Filename     string `json:"filename"`
	MetricColumn string `json:"metric_column"`
	AxisLabel    string `json:"axis_label"`
	Description  string `json:"description"`
}

// Registry is the read-only catalog of indicator definitions. Enumeration
// order is the declaration order below and is stable across calls.
type Registry struct {
	keys []string
	defs map[string]Definition
}

// NewRegistry returns the registry with the five SDG-14 indicators.
func NewRegistry() *Registry {
	defs := []Definition{
		{
			Key:          "marine-protected-areas",
			Label:        "Marine Protected Areas",
			Filename:     "marine-protected-areas.csv",
			MetricColumn: "Marine protected areas (% of territorial waters)",
			AxisLabel:    "% Protected Areas",
			Description:  "Share of territorial waters designated as marine protected areas",
		},
		{
			Key:          "coastal-eutrophication",
			Label:        "Coastal Eutrophication",
			Filename:     "coastal-eutrophication.csv",
			MetricColumn: "14.1.1 - Coastal eutrophication: Total Nitrogen (TN) (kilograms of nitrogen from algae biomass per sq. km. of river basin area per day) - EN_MAR_TN",
			AxisLabel:    "Nitrogen (kg/km²/day)",
			Description:  "Nitrogen levels indicating coastal eutrophication",
		},
		{
			Key:          "ocean-acidification",
			Label:        "Ocean Acidification",
			Filename:     "ocean-acidification.csv",
			MetricColumn: "14.3.1 - Average marine acidity (pH) measured at agreed representative sampling stations - EN_MAR_OACID",
			AxisLabel:    "Average pH",
			Description:  "Average marine acidity measured at representative sampling stations",
		},
		{
			Key:          "ocean-health-index",
			Label:        "Ocean Health Index (OHI)",
			Filename:     "ocean-health-index.csv",
			MetricColumn: "Ocean Health Index (score)",
			AxisLabel:    "OHI Score",
			Description:  "Composite ocean health score (0-100)",
		},
		{
			Key:          "illegal-fishing",
			Label:        "Combating Illegal Fishing",
			Filename:     "regulation-illegal-fishing.csv",
			MetricColumn: "14.6.1 - Progress by countries in the degree of implementation of international instruments aiming to combat illegal, unreported and unregulated fishing (level of implementation: 1 lowest to 5 highest) - ER_REG_UNFCIM",
			AxisLabel:    "Implementation Level",
			Description:  "Progress implementing international instruments against illegal, unreported and unregulated fishing",
		},
	}

	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		r.keys = append(r.keys, d.Key)
		r.defs[d.Key] = d
	}
	return r
}

// Lookup resolves a definition by key. The second return is false when the
// key is not in the registry.
func (r *Registry) Lookup(key string) (Definition, bool) {
	def, ok := r.defs[key]
	return def, ok
}

// Keys returns all indicator keys in declaration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// All returns all definitions in declaration order.
func (r *Registry) All() []Definition {
	out := make([]Definition, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, r.defs[k])
	}
	return out
}

// Len reports how many indicators are registered.
func (r *Registry) Len() int {
	return len(r.keys)
}
