// Package messaging publishes and consumes JSON events over RabbitMQ topic
// exchanges.
package messaging

import (
	"fmt"
	"net/url"
	"strings"
)

// SanitizeURL trims quotes and whitespace from an AMQP URL, ensures a
// trailing slash and rejects non-AMQP schemes.
func SanitizeURL(raw string) (string, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.Trim(clean, "\"'")
	if !strings.HasSuffix(clean, "/") {
		clean += "/"
	}
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", fmt.Errorf("invalid AMQP scheme %q: must be amqp:// or amqps://", u.Scheme)
	}
	return clean, nil
}
