package dto

import "lead-dispatcher/internal/domain/entities"

// GraphLeadResponse is the Graph API answer for GET /<leadgen_id>.
type GraphLeadResponse struct {
	ID          string           `json:"id"`
	CreatedTime string           `json:"created_time"`
	FieldData   []GraphFieldData `json:"field_data"`
	Error       *GraphError      `json:"error,omitempty"`
}

type GraphFieldData struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type GraphError struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      int    `json:"code"`
	FBTraceID string `json:"fbtrace_id"`
}

// Fields flattens field_data to the first value of each field. When a name
// repeats, the first occurrence wins.
func (r GraphLeadResponse) Fields() entities.LeadFields {
	fields := entities.LeadFields{}
	for _, f := range r.FieldData {
		if _, seen := fields[f.Name]; seen {
			continue
		}
		if len(f.Values) == 0 || f.Values[0] == "" {
			continue
		}
		fields[f.Name] = f.Values[0]
	}
	return fields
}
