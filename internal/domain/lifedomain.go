package domain

// LifeDomain is one of the fixed life areas an activity belongs to.
type LifeDomain struct {
	ID   string
	Name string
}

var lifeDomains = []LifeDomain{
	{ID: "spiritual", Name: "Spiritual"},
	{ID: "health", Name: "Health"},
	{ID: "family", Name: "Family"},
	{ID: "social", Name: "Relationships"},
	{ID: "career", Name: "Career"},
	{ID: "financial", Name: "Financial"},
	{ID: "learning", Name: "Learning"},
	{ID: "leisure", Name: "Leisure"},
}

// LifeDomains returns the life domains in display order.
func LifeDomains() []LifeDomain {
	out := make([]LifeDomain, len(lifeDomains))
	copy(out, lifeDomains)
	return out
}

// LookupDomain returns the domain with the given id.
func LookupDomain(id string) (LifeDomain, bool) {
	for _, d := range lifeDomains {
		if d.ID == id {
			return d, true
		}
	}
	return LifeDomain{}, false
}

// DomainIDs returns every valid domain id in display order.
func DomainIDs() []string {
	ids := make([]string, len(lifeDomains))
	for i, d := range lifeDomains {
		ids[i] = d.ID
	}
	return ids
}
