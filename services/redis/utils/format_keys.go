package utils

import "fmt"

// FormatPresenceKey builds the key holding a player's presence.
// Key format: "presence:{pseudo}"
func FormatPresenceKey(pseudo string) string {
	return fmt.Sprintf("presence:%s", pseudo)
}

// FormatChatHistoryKey builds the key of the global chat history list.
func FormatChatHistoryKey() string {
	return "chat:history"
}
