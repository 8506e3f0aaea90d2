package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"catering-booking/types"

	"github.com/gofiber/fiber/v2"
)

// sensitiveFields are redacted from captured request bodies before they are
// persisted to the logs table.
var sensitiveFields = []string{"password"}

// CreateSanitizedLogEntry captures a request/response pair for the async
// logger, with credentials redacted from the request body.
func CreateSanitizedLogEntry(c *fiber.Ctx, requestID string) types.LogEntry {
	return types.LogEntry{
		RequestID:       requestID,
		Method:          c.Method(),
		URL:             c.OriginalURL(),
		RequestBody:     sanitizeBody(string(c.Body())),
		ResponseBody:    string(c.Response().Body()),
		RequestHeaders:  headerString(c.GetReqHeaders()),
		ResponseHeaders: headerString(c.GetRespHeaders()),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}

func sanitizeBody(body string) string {
	if body == "" {
		return body
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return body
	}

	redacted := false
	for _, field := range sensitiveFields {
		if _, ok := payload[field]; ok {
			payload[field] = "[REDACTED]"
			redacted = true
		}
	}
	if !redacted {
		return body
	}

	sanitized, err := json.Marshal(payload)
	if err != nil {
		return body
	}
	return string(sanitized)
}

func headerString(headers map[string][]string) string {
	var sb strings.Builder
	for name, values := range headers {
		if strings.EqualFold(name, "Authorization") || strings.EqualFold(name, "Cookie") {
			continue
		}
		fmt.Fprintf(&sb, "%s: %s\n", name, strings.Join(values, ", "))
	}
	return sb.String()
}
