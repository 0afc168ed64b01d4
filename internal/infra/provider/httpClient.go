package provider

import (
	"net/http"
	"time"
)

// OutboundTimeout bounds every call to Meta and Telegram. There are no retries.
const OutboundTimeout = 15 * time.Second

func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: OutboundTimeout}
}
