package services

import (
	"fmt"
	"lead-dispatcher/internal/domain/entities"
	"lead-dispatcher/internal/util"
	"strings"
)

const (
	messageHeader  = "<b>🔔 Новая заявка!</b>\n\n"
	sourceLine     = "<b>Источник:</b> %s\n"
	nameLine       = "<b>Имя клиента:</b> %s\n"
	phoneMainLine  = "<b>📞 Основной номер:</b> %s\n"
	phoneExtraLine = "<b>📞 Доп. номер:</b> %s\n"

	// newFormMarker wraps the product name in the primary chat so operators
	// can tell new-generation forms apart.
	newFormMarker = "*"
)

// SourceLabel renders the "Источник" value. For new-generation Meta leads the
// product name is wrapped in newFormMarker when marked is true.
func SourceLabel(lead entities.NormalizedLead, marked bool) string {
	if lead.Channel != entities.ChannelMeta {
		return lead.Source
	}

	product := lead.Source
	if marked && lead.IsNewGeneration() {
		product = newFormMarker + product + newFormMarker
	}
	return fmt.Sprintf("Meta Lead Ad (%s, Form ID: %s)", product, lead.FormID)
}

// FormatPrimaryMessage builds the notification for the primary chat.
func FormatPrimaryMessage(lead entities.NormalizedLead) string {
	return formatMessage(lead, SourceLabel(lead, true))
}

// FormatSecondaryMessage builds the notification for the secondary chat. It
// differs from the primary one only by the unmarked source.
func FormatSecondaryMessage(lead entities.NormalizedLead) string {
	return formatMessage(lead, SourceLabel(lead, false))
}

func formatMessage(lead entities.NormalizedLead, source string) string {
	var b strings.Builder
	b.WriteString(messageHeader)
	fmt.Fprintf(&b, sourceLine, util.EscapeHTML(source))
	fmt.Fprintf(&b, nameLine, util.EscapeHTML(lead.Name))
	fmt.Fprintf(&b, phoneMainLine, util.EscapeHTML(lead.PhoneMain))
	if lead.HasExtraPhone() {
		fmt.Fprintf(&b, phoneExtraLine, util.EscapeHTML(lead.PhoneExtra))
	}
	return b.String()
}
