package services

import (
	"context"
	"fmt"
	"lead-dispatcher/internal/domain/apperrors"
	"lead-dispatcher/internal/domain/dto"
	"lead-dispatcher/internal/domain/entities"
	"lead-dispatcher/internal/infra/logger"
	"lead-dispatcher/internal/infra/provider"
	"strings"

	"github.com/sirupsen/logrus"
)

// Field names used by the lead forms. The Uzbek ones come from forms whose
// questions were written by hand instead of using Meta's prefilled fields.
const (
	fieldFullName    = "full_name"
	fieldFirstName   = "first_name"
	fieldLastName    = "last_name"
	fieldPhoneNumber = "phone_number"

	fieldNameUz          = "исмингиз?"
	fieldPhoneUz         = "телефон_рақамингиз?"
	fieldPhoneCallbackUz = "biz_sizga_telefon_qilishimiz_uchun,_raqamingizni_qoldiring."
)

type MetaLeadResolver struct {
	Logger     *logger.Logger
	LeadSource provider.ILeadSource
	Forms      entities.FormCatalog
}

func NewMetaLeadResolver(logger *logger.Logger, leadSource provider.ILeadSource, forms entities.FormCatalog) *MetaLeadResolver {
	return &MetaLeadResolver{Logger: logger, LeadSource: leadSource, Forms: forms}
}

// Resolve turns a Meta leadgen notification into a NormalizedLead. It fails
// with ErrMissingLeadID before any Graph API call when the notification does
// not carry a leadgen_id.
func (mr *MetaLeadResolver) Resolve(ctx context.Context, event dto.MetaWebhookEvent) (entities.NormalizedLead, error) {
	value := event.FirstLead()
	leadgenID := strings.TrimSpace(value.LeadgenID.String())
	formID := strings.TrimSpace(value.FormID.String())

	if leadgenID == "" {
		return entities.NormalizedLead{}, apperrors.ErrMissingLeadID
	}

	lead, err := mr.LeadSource.FetchLead(ctx, leadgenID)
	if err != nil {
		return entities.NormalizedLead{}, fmt.Errorf("failed to fetch lead %s: %w", leadgenID, err)
	}

	name, phoneMain, phoneExtra := ResolveContact(lead.Fields())
	product, generation := mr.Forms.Resolve(formID)

	mr.Logger.ForContext(ctx).Info("Meta lead resolved", logrus.Fields{
		"leadgen_id": leadgenID,
		"form_id":    formID,
		"generation": generation.String(),
		"product":    product,
	})

	return entities.NormalizedLead{
		Channel:    entities.ChannelMeta,
		Name:       name,
		PhoneMain:  phoneMain,
		PhoneExtra: phoneExtra,
		Source:     product,
		FormID:     formID,
		Generation: generation,
	}, nil
}

// ResolveContact applies the ordered fallbacks for the lead's name and phones.
// phoneExtra is empty unless a second, different number was provided.
func ResolveContact(fields entities.LeadFields) (name, phoneMain, phoneExtra string) {
	name = fields.Get(fieldFullName)
	if name == entities.NotSpecified {
		name = fields.Get(fieldNameUz)
	}
	if name == entities.NotSpecified && (fields.Has(fieldFirstName) || fields.Has(fieldLastName)) {
		var parts []string
		for _, key := range []string{fieldFirstName, fieldLastName} {
			if fields.Has(key) {
				parts = append(parts, fields.Get(key))
			}
		}
		name = strings.TrimSpace(strings.Join(parts, " "))
	}

	phoneMain = fields.Get(fieldPhoneNumber)
	if phoneMain == entities.NotSpecified {
		phoneMain = fields.Get(fieldPhoneUz)
	}

	for _, key := range []string{fieldPhoneCallbackUz, fieldPhoneUz} {
		candidate := fields.Get(key)
		if candidate != entities.NotSpecified && candidate != phoneMain {
			phoneExtra = candidate
			break
		}
	}

	return name, phoneMain, phoneExtra
}
