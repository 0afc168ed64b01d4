package services

import (
	"context"
	"fmt"
	"lead-dispatcher/internal/config"
	"lead-dispatcher/internal/domain/apperrors"
	"lead-dispatcher/internal/domain/dto"
	"lead-dispatcher/internal/domain/entities"
	"lead-dispatcher/internal/infra/logger"
	"strings"
)

// LeadService is responsible for turning an inbound lead into Telegram
// notifications.
type LeadService struct {
	Logger     *logger.Logger
	Config     *config.Config
	Resolver   *MetaLeadResolver
	Dispatcher *NotificationDispatcher
}

func NewLeadService(logger *logger.Logger, cfg *config.Config, resolver *MetaLeadResolver, dispatcher *NotificationDispatcher) *LeadService {
	return &LeadService{Logger: logger, Config: cfg, Resolver: resolver, Dispatcher: dispatcher}
}

// ProcessMetaLead resolves a Meta lead and notifies the primary chat, plus the
// secondary chat when the form is new-generation. Only the primary send
// decides the returned error.
func (ls *LeadService) ProcessMetaLead(ctx context.Context, event dto.MetaWebhookEvent) error {
	if strings.TrimSpace(event.FirstLead().LeadgenID.String()) == "" {
		return apperrors.ErrMissingLeadID
	}
	if err := ls.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrServerMisconfiguration, err)
	}

	lead, err := ls.Resolver.Resolve(ctx, event)
	if err != nil {
		return err
	}

	deliveries := []Delivery{{
		Target: entities.ChatTarget{ChatID: ls.Config.TelegramChatID, Role: entities.ChatPrimary},
		Text:   FormatPrimaryMessage(lead),
	}}

	if lead.IsNewGeneration() {
		if ls.Config.TelegramNewChatID == "" {
			ls.Logger.ForContext(ctx).Warn(fmt.Sprintf("New-generation form %s but TELEGRAM_NEW_CHAT_ID is not set, skipping secondary chat", lead.FormID))
		} else {
			deliveries = append(deliveries, Delivery{
				Target: entities.ChatTarget{ChatID: ls.Config.TelegramNewChatID, Role: entities.ChatSecondary},
				Text:   FormatSecondaryMessage(lead),
			})
		}
	}

	return primaryOutcome(ls.Dispatcher.Dispatch(ctx, deliveries))
}

// ProcessLandingLead notifies the primary chat about a landing form lead.
func (ls *LeadService) ProcessLandingLead(ctx context.Context, event dto.LandingFormEvent) error {
	if !event.IsComplete() {
		return apperrors.ErrMissingRequiredField
	}
	if err := ls.Config.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrServerMisconfiguration, err)
	}

	source := strings.TrimSpace(event.ProductName.String())
	if source == "" {
		source = entities.LandingSource
	}

	lead := entities.NormalizedLead{
		Channel:   entities.ChannelLanding,
		Name:      event.Name.String(),
		PhoneMain: event.Phone.String(),
		Source:    source,
	}

	ls.Logger.ForContext(ctx).Info(fmt.Sprintf("Landing lead received from %s", source))

	deliveries := []Delivery{{
		Target: entities.ChatTarget{ChatID: ls.Config.TelegramChatID, Role: entities.ChatPrimary},
		Text:   FormatPrimaryMessage(lead),
	}}

	return primaryOutcome(ls.Dispatcher.Dispatch(ctx, deliveries))
}

func primaryOutcome(results []DeliveryResult) error {
	for _, r := range results {
		if r.Target.Role != entities.ChatPrimary {
			continue
		}
		if !r.Result.OK {
			return fmt.Errorf("%w: %s", apperrors.ErrUpstreamSend, r.Result.Description)
		}
		return nil
	}
	return fmt.Errorf("%w: no primary delivery", apperrors.ErrUpstreamSend)
}
