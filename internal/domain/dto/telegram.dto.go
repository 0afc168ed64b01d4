package dto

import "encoding/json"

const TelegramParseModeHTML = "html"

type TelegramSendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// TelegramSendResult is the Bot API reply. Transport and decoding failures
// are folded into the same shape with OK=false.
type TelegramSendResult struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
}

func FailedSend(description string) TelegramSendResult {
	return TelegramSendResult{OK: false, Description: description}
}
