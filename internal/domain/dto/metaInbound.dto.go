package dto

// MetaWebhookEvent is the leadgen notification Meta posts to the webhook.
type MetaWebhookEvent struct {
	Object string      `json:"object"`
	Entry  []MetaEntry `json:"entry"`
}

type MetaEntry struct {
	ID      FlexString   `json:"id"`
	Time    int64        `json:"time"`
	Changes []MetaChange `json:"changes"`
}

type MetaChange struct {
	Field string        `json:"field"`
	Value MetaLeadValue `json:"value"`
}

type MetaLeadValue struct {
	LeadgenID   FlexString `json:"leadgen_id"`
	FormID      FlexString `json:"form_id"`
	PageID      FlexString `json:"page_id"`
	AdID        FlexString `json:"ad_id"`
	CreatedTime int64      `json:"created_time"`
}

// FirstLead returns the value of the first change of the first entry. Meta
// batches at most one lead per change and only the first is processed.
func (e MetaWebhookEvent) FirstLead() MetaLeadValue {
	if len(e.Entry) == 0 || len(e.Entry[0].Changes) == 0 {
		return MetaLeadValue{}
	}
	return e.Entry[0].Changes[0].Value
}
