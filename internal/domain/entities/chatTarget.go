package entities

type ChatRole string

const (
	ChatPrimary   ChatRole = "primary"
	ChatSecondary ChatRole = "secondary"
)

// ChatTarget is a Telegram chat a notification is delivered to.
type ChatTarget struct {
	ChatID string
	Role   ChatRole
}
