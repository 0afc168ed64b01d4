package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"lead-dispatcher/internal/domain/dto"
	"lead-dispatcher/internal/infra/logger"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

type TelegramProvider struct {
	Logger     *logger.Logger
	HttpClient *http.Client
	BaseURL    string
	BotToken   string
}

func NewTelegramProvider(logger *logger.Logger, httpClient *http.Client, baseURL, botToken string) *TelegramProvider {
	return &TelegramProvider{
		Logger:     logger,
		HttpClient: httpClient,
		BaseURL:    strings.TrimRight(baseURL, "/"),
		BotToken:   botToken,
	}
}

// SendMessage posts text to chatID through the Bot API sendMessage method
// using HTML parse mode.
//
// Returns:
//   - dto.TelegramSendResult: the decoded Bot API reply. A reply without a
//     true "ok", a transport error or a body that is not JSON all yield
//     OK=false with a Description of what went wrong.
func (tp *TelegramProvider) SendMessage(ctx context.Context, chatID, text string) dto.TelegramSendResult {
	payload, err := json.Marshal(dto.TelegramSendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: dto.TelegramParseModeHTML,
	})
	if err != nil {
		return tp.fail(chatID, fmt.Sprintf("failed to marshal payload: %v", err))
	}

	apiURL := fmt.Sprintf("%s/bot%s/sendMessage", tp.BaseURL, tp.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return tp.fail(chatID, fmt.Sprintf("failed to create HTTP request: %v", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := tp.HttpClient.Do(req)
	if err != nil {
		return tp.fail(chatID, fmt.Sprintf("HTTP request failed: %v", redactToken(err.Error(), tp.BotToken)))
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return tp.fail(chatID, fmt.Sprintf("failed to read response body: %v", err))
	}

	var result dto.TelegramSendResult
	if err := json.Unmarshal(body, &result); err != nil {
		return tp.fail(chatID, fmt.Sprintf("unexpected non-JSON response (HTTP %d): %v", res.StatusCode, err))
	}

	if !result.OK {
		if result.Description == "" {
			result.Description = fmt.Sprintf("telegram responded without ok (HTTP %d)", res.StatusCode)
		}
		tp.Logger.Error("Telegram rejected message", logrus.Fields{
			"chat_id":     chatID,
			"error_code":  result.ErrorCode,
			"description": result.Description,
		})
		return result
	}

	tp.Logger.Info("Telegram message sent", logrus.Fields{"chat_id": chatID})
	return result
}

func (tp *TelegramProvider) fail(chatID, description string) dto.TelegramSendResult {
	tp.Logger.Error("Telegram send failed", logrus.Fields{"chat_id": chatID, "description": description})
	return dto.FailedSend(description)
}

// redactToken keeps the bot token out of logs; url.Error embeds the full URL.
func redactToken(msg, token string) string {
	if token == "" {
		return msg
	}
	return strings.ReplaceAll(msg, token, "<redacted>")
}
