package dto

import (
	"encoding/json"
	"fmt"
	"lead-dispatcher/internal/domain/apperrors"
)

const MetaPageObject = "page"

type InboundKind int

const (
	InboundMeta InboundKind = iota + 1
	InboundLanding
)

func (k InboundKind) String() string {
	switch k {
	case InboundMeta:
		return "meta"
	case InboundLanding:
		return "landing"
	default:
		return "unknown"
	}
}

// InboundEvent is exactly one of Meta or Landing, selected by Kind.
type InboundEvent struct {
	Kind    InboundKind
	Meta    *MetaWebhookEvent
	Landing *LandingFormEvent
}

// DecodeInboundEvent decodes a POST body. Bodies whose "object" field is the
// string "page" are Meta notifications; every other JSON object is treated as
// a landing form submission.
func DecodeInboundEvent(body []byte) (InboundEvent, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return InboundEvent{}, fmt.Errorf("%w: %v", apperrors.ErrMalformedPayload, err)
	}
	if probe == nil {
		return InboundEvent{}, fmt.Errorf("%w: body is null", apperrors.ErrMalformedPayload)
	}

	var object string
	if raw, ok := probe["object"]; ok {
		// A non-string object field simply is not a Meta notification.
		_ = json.Unmarshal(raw, &object)
	}

	if object == MetaPageObject {
		var event MetaWebhookEvent
		if err := json.Unmarshal(body, &event); err != nil {
			return InboundEvent{}, fmt.Errorf("%w: meta event: %v", apperrors.ErrMalformedPayload, err)
		}
		return InboundEvent{Kind: InboundMeta, Meta: &event}, nil
	}

	var event LandingFormEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return InboundEvent{}, fmt.Errorf("%w: landing form: %v", apperrors.ErrMalformedPayload, err)
	}
	return InboundEvent{Kind: InboundLanding, Landing: &event}, nil
}
