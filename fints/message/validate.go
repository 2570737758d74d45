package message

import (
	log "github.com/sirupsen/logrus"

	"github.com/openhbci/go-fints-client/fints/segment"
)

var logger = log.WithField("component", "fints.message")

// Validate runs the generic response validation shared by all actions: the
// response must not carry any error-severity feedback code. The first error
// code found is returned as a *ProtocolError; warnings are logged and
// otherwise ignored.
func Validate(r *Response) error {
	for _, f := range r.Feedback {
		switch f.Severity() {
		case segment.SeverityError:
			return &ProtocolError{Code: f.Code, Text: f.Text}
		case segment.SeverityWarning:
			logger.Debugf("bank warning %04d: %s", f.Code, f.Text)
		}
	}
	return nil
}
