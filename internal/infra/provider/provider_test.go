package provider

import (
	"context"
	"encoding/json"
	"io"
	"lead-dispatcher/internal/domain/apperrors"
	"lead-dispatcher/internal/domain/dto"
	"lead-dispatcher/internal/infra/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logger.Logger {
	log := logger.NewLogger(context.Background(), true, "panic")
	log.SetOutput(io.Discard)
	return log
}

func TestTelegramProviderSendsJSON(t *testing.T) {
	var got dto.TelegramSendMessageRequest
	var path, contentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	}))
	defer srv.Close()

	tp := NewTelegramProvider(testLogger(), srv.Client(), srv.URL+"/", "123:abc")
	res := tp.SendMessage(context.Background(), "-100200", "<b>hi</b>")

	assert.True(t, res.OK)
	assert.Equal(t, "/bot123:abc/sendMessage", path)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, dto.TelegramSendMessageRequest{ChatID: "-100200", Text: "<b>hi</b>", ParseMode: "html"}, got)
}

func TestTelegramProviderNormalizesFailures(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		body        string
		description string
	}{
		{"ok false", http.StatusBadRequest, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`, "Bad Request: chat not found"},
		{"missing ok", http.StatusOK, `{"result":{}}`, "telegram responded without ok (HTTP 200)"},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, "unexpected non-JSON response (HTTP 502)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			tp := NewTelegramProvider(testLogger(), srv.Client(), srv.URL, "token")
			res := tp.SendMessage(context.Background(), "1", "text")

			assert.False(t, res.OK)
			assert.Contains(t, res.Description, tc.description)
		})
	}
}

func TestTelegramProviderTransportErrorRedactsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	tp := NewTelegramProvider(testLogger(), &http.Client{}, srv.URL, "secret-token")
	res := tp.SendMessage(context.Background(), "1", "text")

	assert.False(t, res.OK)
	assert.Contains(t, res.Description, "HTTP request failed")
	assert.NotContains(t, res.Description, "secret-token")
}

func TestGraphLeadProviderFetchLead(t *testing.T) {
	var gotPath, gotToken string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		w.Write([]byte(`{"id":"555","field_data":[{"name":"full_name","values":["Aziz"]},{"name":"phone_number","values":["+998901234567"]}]}`))
	}))
	defer srv.Close()

	gp := NewGraphLeadProvider(testLogger(), srv.Client(), srv.URL, "v23.0", "page&token")
	lead, err := gp.FetchLead(context.Background(), "555")

	require.NoError(t, err)
	assert.Equal(t, "/v23.0/555", gotPath)
	assert.Equal(t, "page&token", gotToken)
	fields := lead.Fields()
	assert.Equal(t, "Aziz", fields.Get("full_name"))
	assert.Equal(t, "+998901234567", fields.Get("phone_number"))
}

func TestGraphLeadProviderErrorReplyHasNoFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","code":190},"field_data":[{"name":"full_name","values":["x"]}]}`))
	}))
	defer srv.Close()

	gp := NewGraphLeadProvider(testLogger(), srv.Client(), srv.URL, "v23.0", "t")
	lead, err := gp.FetchLead(context.Background(), "1")

	require.NoError(t, err)
	assert.Empty(t, lead.Fields())
}

func TestGraphLeadProviderNonJSONIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	gp := NewGraphLeadProvider(testLogger(), srv.Client(), srv.URL, "v23.0", "t")
	_, err := gp.FetchLead(context.Background(), "1")

	assert.ErrorIs(t, err, apperrors.ErrGraphAPI)
}
