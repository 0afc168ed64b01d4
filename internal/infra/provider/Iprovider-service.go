package provider

import (
	"context"
	"lead-dispatcher/internal/domain/dto"
)

// ILeadSource reads the answers of a Meta lead form.
type ILeadSource interface {
	FetchLead(ctx context.Context, leadgenID string) (dto.GraphLeadResponse, error)
}

// INotifier delivers one HTML message to one chat. It never returns an
// error: failures come back as a result with OK=false.
type INotifier interface {
	SendMessage(ctx context.Context, chatID, text string) dto.TelegramSendResult
}
