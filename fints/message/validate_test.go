package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhbci/go-fints-client/fints/segment"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		feedback []*segment.Feedback
		wantCode int
	}{
		{"no feedback", nil, 0},
		{"success only", []*segment.Feedback{{Code: 10}}, 0},
		{"warnings pass", []*segment.Feedback{{Code: segment.CodeStrongAuthRequired, Text: "Zugelassene Verfahren"}}, 0},
		{"error aborts", []*segment.Feedback{{Code: 10}, {Code: 9800, Text: "Dialog abgebrochen"}}, 9800},
		{"first error wins", []*segment.Feedback{{Code: 9210, Text: "ungültig"}, {Code: 9800}}, 9210},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&Response{Feedback: tt.feedback})
			if tt.wantCode == 0 {
				assert.NoError(t, err)
				return
			}

			var perr *ProtocolError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantCode, perr.Code)
		})
	}
}

func TestProtocolError_Message(t *testing.T) {
	err := &ProtocolError{Code: 9800, Text: "Dialog abgebrochen"}
	assert.Contains(t, err.Error(), "9800")
	assert.Contains(t, err.Error(), "Dialog abgebrochen")
}
