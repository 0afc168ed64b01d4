package entities

// FormCatalog maps Meta form IDs to product names. It is loaded once at
// startup and only read afterwards.
type FormCatalog struct {
	OldForms map[string]string `json:"old_forms"`
	NewForms map[string]string `json:"new_forms"`
}

// Resolve classifies a form purely by membership in OldForms. Anything not
// listed there is a new-generation form, named from NewForms when possible.
func (c FormCatalog) Resolve(formID string) (string, Generation) {
	if product, ok := c.OldForms[formID]; ok && product != "" {
		return product, GenerationOld
	}

	if product, ok := c.NewForms[formID]; ok && product != "" {
		return product, GenerationNew
	}

	return UnknownProduct, GenerationNew
}
