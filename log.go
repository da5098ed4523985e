package httperr

import (
	log "github.com/sirupsen/logrus"
)

var logger log.FieldLogger = log.StandardLogger()

// SetLogger replaces the logger used to report failures while writing
// responses. A nil l restores the logrus standard logger.
func SetLogger(l log.FieldLogger) {
	if l == nil {
		l = log.StandardLogger()
	}
	logger = l
}
