package entities

// LeadFields holds the answers of a Meta lead form keyed by field name.
type LeadFields map[string]string

// Get returns the answer for name, or NotSpecified when the form has none.
func (f LeadFields) Get(name string) string {
	if v, ok := f[name]; ok && v != "" {
		return v
	}
	return NotSpecified
}

func (f LeadFields) Has(name string) bool {
	return f.Get(name) != NotSpecified
}
