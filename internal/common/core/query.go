package core

// Param is a single query parameter. Parameters are kept as an ordered
// sequence rather than a map so the request URL is deterministic.
type Param struct {
	Name  string
	Value string
}

// NewQuery filters a list of parameters, dropping any pair whose name or
// value is empty, and preserves the input order of the survivors. It makes
// no percent-encoding decisions; encoding happens when the executor builds
// the URL.
func NewQuery(pairs ...Param) []Param {
	query := make([]Param, 0, len(pairs))
	for _, p := range pairs {
		if p.Name == "" || p.Value == "" {
			continue
		}
		query = append(query, p)
	}
	return query
}
