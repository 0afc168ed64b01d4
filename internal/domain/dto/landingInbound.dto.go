package dto

import "strings"

// LandingFormEvent is a direct submission from the landing page form.
type LandingFormEvent struct {
	Name        FlexString `json:"name"`
	Phone       FlexString `json:"phone"`
	ProductName FlexString `json:"productName"`
}

func (e LandingFormEvent) IsComplete() bool {
	return strings.TrimSpace(e.Name.String()) != "" && strings.TrimSpace(e.Phone.String()) != ""
}
