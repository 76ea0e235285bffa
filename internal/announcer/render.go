package announcer

import "strings"

// Render fills a message template with the two substitution variables.
// Every occurrence of $user is replaced first, then every occurrence of
// $channel. A name that itself contains placeholder text is substituted
// again by the later pass; that is accepted behavior, not corrected.
func Render(template string, user string, channel string) string {
	message := strings.ReplaceAll(template, "$user", user)
	return strings.ReplaceAll(message, "$channel", channel)
}
