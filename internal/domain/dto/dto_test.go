package dto

import (
	"encoding/json"
	"lead-dispatcher/internal/domain/apperrors"
	"lead-dispatcher/internal/domain/entities"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInboundEventMeta(t *testing.T) {
	body := `{"object":"page","entry":[{"id":"10","time":1,"changes":[{"field":"leadgen","value":{"leadgen_id":"444","form_id":555,"created_time":1700000000}}]}]}`

	event, err := DecodeInboundEvent([]byte(body))

	require.NoError(t, err)
	assert.Equal(t, InboundMeta, event.Kind)
	require.NotNil(t, event.Meta)
	assert.Nil(t, event.Landing)
	assert.Equal(t, "444", event.Meta.FirstLead().LeadgenID.String())
	assert.Equal(t, "555", event.Meta.FirstLead().FormID.String())
}

func TestDecodeInboundEventLanding(t *testing.T) {
	cases := []string{
		`{"name":"Aziz","phone":998901234567}`,
		`{"object":"Page","name":"Aziz","phone":"998901234567"}`,
		`{"object":7,"name":"Aziz","phone":"998901234567"}`,
	}

	for _, body := range cases {
		event, err := DecodeInboundEvent([]byte(body))

		require.NoError(t, err, body)
		assert.Equal(t, InboundLanding, event.Kind, body)
		require.NotNil(t, event.Landing)
		assert.Equal(t, "Aziz", event.Landing.Name.String())
		assert.Equal(t, "998901234567", event.Landing.Phone.String())
		assert.True(t, event.Landing.IsComplete())
	}
}

func TestDecodeInboundEventMalformed(t *testing.T) {
	for _, body := range []string{``, `{`, `"page"`, `[]`, `null`, `{"object":"page","entry":{}}`} {
		_, err := DecodeInboundEvent([]byte(body))
		assert.ErrorIs(t, err, apperrors.ErrMalformedPayload, body)
	}
}

func TestFirstLeadOnEmptyShapes(t *testing.T) {
	assert.Empty(t, MetaWebhookEvent{}.FirstLead().LeadgenID)
	assert.Empty(t, MetaWebhookEvent{Entry: []MetaEntry{{}}}.FirstLead().LeadgenID)
}

func TestFlexStringNull(t *testing.T) {
	var e LandingFormEvent
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"phone":"1"}`), &e))
	assert.False(t, e.IsComplete())
}

func TestGraphLeadResponseFields(t *testing.T) {
	resp := GraphLeadResponse{FieldData: []GraphFieldData{
		{Name: "full_name", Values: []string{"Aziz"}},
		{Name: "full_name", Values: []string{"Later"}},
		{Name: "phone_number", Values: []string{}},
		{Name: "city", Values: []string{""}},
	}}

	fields := resp.Fields()

	assert.Equal(t, "Aziz", fields.Get("full_name"))
	assert.Equal(t, entities.NotSpecified, fields.Get("phone_number"))
	assert.Equal(t, entities.NotSpecified, fields.Get("city"))
}

func TestTelegramSendMessageRequestJSON(t *testing.T) {
	raw, err := json.Marshal(TelegramSendMessageRequest{ChatID: "-1", Text: "<b>x</b>", ParseMode: TelegramParseModeHTML})

	require.NoError(t, err)
	assert.JSONEq(t, `{"chat_id":"-1","text":"<b>x</b>","parse_mode":"html"}`, string(raw))
}
