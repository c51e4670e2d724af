package utils

import (
	"log"
	"strings"
)

// LogEvent escribe la línea de log estandarizada con módulo, acción y
// request_id. No loguear payloads sensibles; message va resumido.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}
