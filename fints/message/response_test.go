package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhbci/go-fints-client/fints/segment"
)

func TestResponse_RequireSegment(t *testing.T) {
	resp := &Response{
		Segments: []segment.Segment{
			&segment.SyncResponse{ClientSystemID: "SYSID123"},
		},
	}

	s, err := resp.RequireSegment(segment.KindSyncResponse)
	require.NoError(t, err)
	assert.Equal(t, "SYSID123", s.(*segment.SyncResponse).ClientSystemID)

	_, err = resp.RequireSegment(segment.KindBankParams)
	assert.ErrorIs(t, err, ErrMissingSegment)

	var missing *MissingSegmentError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, segment.KindBankParams, missing.Segment)
	assert.Contains(t, missing.Error(), "HIBPA")
}

func TestResponse_FindSegmentReturnsFirst(t *testing.T) {
	first := &segment.Feedback{Code: 10}
	resp := &Response{
		Segments: []segment.Segment{first, &segment.Feedback{Code: 20}},
	}

	assert.Same(t, first, resp.FindSegment(segment.KindFeedback).(*segment.Feedback))
	assert.Nil(t, resp.FindSegment(segment.KindSyncResponse))
}

func TestResponse_ChallengePending(t *testing.T) {
	resp := &Response{
		Feedback: []*segment.Feedback{
			{Code: 10, Text: "entgegengenommen"},
			{Code: segment.CodeChallengePending, Text: "starke Kundenauthentifizierung erforderlich"},
		},
	}
	assert.True(t, resp.ChallengePending())

	resp = &Response{Feedback: []*segment.Feedback{{Code: 10}}}
	assert.False(t, resp.ChallengePending())
}

func TestResponse_ChallengePendingDecoupled(t *testing.T) {
	resp := &Response{
		Feedback: []*segment.Feedback{
			{Code: segment.CodeDecoupledPending, Text: "Starke Kundenauthentifizierung noch ausstehend"},
		},
	}

	// A pending decoupled release is a warning, not an error: the response
	// validates, but the exchange must still suspend.
	require.NoError(t, Validate(resp))
	assert.True(t, resp.ChallengePending())
}

func TestNewRequest_Defaults(t *testing.T) {
	req := NewRequest("", 1, segment.NewSyncRequest())
	assert.Equal(t, InitialDialogID, req.DialogID)
	assert.Equal(t, 1, req.Number)
	assert.Len(t, req.Segments, 1)

	req = NewRequest("DLG001", 2)
	assert.Equal(t, "DLG001", req.DialogID)
}
