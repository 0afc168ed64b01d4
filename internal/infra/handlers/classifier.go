package handlers

import (
	"lead-dispatcher/internal/domain/dto"
	"net/http"
)

type RequestKind int

const (
	RequestUnsupported RequestKind = iota
	RequestPreflight
	RequestVerification
	RequestMetaLead
	RequestLandingLead
)

func (k RequestKind) String() string {
	switch k {
	case RequestPreflight:
		return "preflight"
	case RequestVerification:
		return "verification"
	case RequestMetaLead:
		return "meta_lead"
	case RequestLandingLead:
		return "landing_lead"
	default:
		return "unsupported"
	}
}

// ClassifyRequest decides how a request is handled from its method and, for
// POST, its body. The body is only decoded for POST; a body that cannot be
// decoded returns RequestUnsupported together with the decoding error.
func ClassifyRequest(method string, body []byte) (RequestKind, dto.InboundEvent, error) {
	switch method {
	case http.MethodOptions:
		return RequestPreflight, dto.InboundEvent{}, nil
	case http.MethodGet:
		return RequestVerification, dto.InboundEvent{}, nil
	case http.MethodPost:
		event, err := dto.DecodeInboundEvent(body)
		if err != nil {
			return RequestUnsupported, dto.InboundEvent{}, err
		}
		if event.Kind == dto.InboundMeta {
			return RequestMetaLead, event, nil
		}
		return RequestLandingLead, event, nil
	default:
		return RequestUnsupported, dto.InboundEvent{}, nil
	}
}
