package utils

import (
	"log"
	"strings"
)

// LogEvent writes one application log line tagged with module, action, and
// request id. Messages stay summarized; card numbers and tokens never
// belong here.
func LogEvent(requestID, module, action, message string) {
	if strings.TrimSpace(requestID) == "" {
		requestID = "-"
	}
	log.Printf("[%s] %s request_id=%s %s", strings.ToUpper(module), action, requestID, message)
}
