package Iservices

import (
	"context"
	"lead-dispatcher/internal/domain/dto"
)

type ILeadService interface {
	ProcessMetaLead(ctx context.Context, event dto.MetaWebhookEvent) error
	ProcessLandingLead(ctx context.Context, event dto.LandingFormEvent) error
}
