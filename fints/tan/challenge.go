package tan

import (
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	"github.com/openhbci/go-fints-client/fints/segment"
)

var logger = logrus.WithField("component", "fints.tan")

// Matrix media types for optical challenges.
const (
	MediaTypePhotoTAN = "image/png" // photoTAN matrix
	MediaTypeHHD      = "HHDUC"     // chipTAN flicker payload
)

// Challenge is the bank's demand for a one-time code. The orchestrator
// presents it to the user out of band and continues the suspended exchange
// with the obtained code.
type Challenge struct {
	// TaskReference identifies the pending task on the bank side and must
	// be echoed on continuation.
	TaskReference string
	// Text is the human-readable instruction.
	Text string
	// MediaType describes Data, empty for text-only challenges.
	MediaType string
	// Data is the optical/matrix payload, if any.
	Data []byte
}

// FromSegment converts a decoded challenge segment.
func FromSegment(s *segment.TANChallenge) *Challenge {
	return &Challenge{
		TaskReference: s.TaskReference,
		Text:          s.Text,
		MediaType:     s.MediaType,
		Data:          s.Data,
	}
}

// QRPNG renders the challenge as a QR code PNG for display to the user.
// For matrix challenges the raw payload is encoded; for text-only
// challenges the instruction text is used so decoupled flows can still
// show a scannable hint.
func (c *Challenge) QRPNG(size int) ([]byte, error) {
	content := c.Text
	if len(c.Data) > 0 {
		content = string(c.Data)
	}
	if content == "" {
		return nil, errors.New("challenge carries neither data nor text")
	}

	logger.Debugf("rendering challenge %q as QR (%d bytes)", c.TaskReference, len(content))

	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, errors.Wrap(err, "encode challenge QR")
	}
	return png, nil
}
