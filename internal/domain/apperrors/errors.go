package apperrors

import "errors"

var (
	ErrMissingLeadID          = errors.New("leadgen_id missing")
	ErrMissingRequiredField   = errors.New("name and phone are required")
	ErrUpstreamSend           = errors.New("telegram send failed")
	ErrServerMisconfiguration = errors.New("server misconfiguration")
	ErrMethodNotAllowed       = errors.New("method not allowed")
	ErrMalformedPayload       = errors.New("malformed payload")
	ErrInvalidSignature       = errors.New("invalid payload signature")
	ErrGraphAPI               = errors.New("graph api request failed")
)
