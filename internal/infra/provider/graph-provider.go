package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"lead-dispatcher/internal/domain/apperrors"
	"lead-dispatcher/internal/domain/dto"
	"lead-dispatcher/internal/infra/logger"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

type GraphLeadProvider struct {
	Logger      *logger.Logger
	HttpClient  *http.Client
	BaseURL     string
	Version     string
	AccessToken string
}

func NewGraphLeadProvider(logger *logger.Logger, httpClient *http.Client, baseURL, version, accessToken string) *GraphLeadProvider {
	return &GraphLeadProvider{
		Logger:      logger,
		HttpClient:  httpClient,
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Version:     version,
		AccessToken: accessToken,
	}
}

// FetchLead retrieves the lead details for leadgenID from the Graph API.
//
// A Graph error reply is still valid JSON; it is logged and returned as a
// response with no field_data so every field resolves to NotSpecified. Only a
// transport failure or a body that is not JSON is returned as an error.
func (gp *GraphLeadProvider) FetchLead(ctx context.Context, leadgenID string) (dto.GraphLeadResponse, error) {
	apiURL := fmt.Sprintf("%s/%s/%s?access_token=%s",
		gp.BaseURL, gp.Version, url.PathEscape(leadgenID), url.QueryEscape(gp.AccessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return dto.GraphLeadResponse{}, fmt.Errorf("%w: failed to create HTTP request: %v", apperrors.ErrGraphAPI, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := gp.HttpClient.Do(req)
	if err != nil {
		return dto.GraphLeadResponse{}, fmt.Errorf("%w: HTTP request failed: %s", apperrors.ErrGraphAPI, redactToken(err.Error(), url.QueryEscape(gp.AccessToken)))
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return dto.GraphLeadResponse{}, fmt.Errorf("%w: failed to read response body: %v", apperrors.ErrGraphAPI, err)
	}

	var lead dto.GraphLeadResponse
	if err := json.Unmarshal(body, &lead); err != nil {
		return dto.GraphLeadResponse{}, fmt.Errorf("%w: failed to decode lead %s: %v", apperrors.ErrGraphAPI, leadgenID, err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices || lead.Error != nil {
		fields := logrus.Fields{"leadgen_id": leadgenID, "status": res.StatusCode}
		if lead.Error != nil {
			fields["graph_error"] = lead.Error.Message
			fields["graph_code"] = lead.Error.Code
		}
		gp.Logger.Warn("Graph API returned an error for lead, continuing without field data", fields)
		lead.FieldData = nil
	}

	gp.Logger.Debug(fmt.Sprintf("Lead data from Graph API: %s", string(body)), logrus.Fields{"leadgen_id": leadgenID})
	return lead, nil
}
