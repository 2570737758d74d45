package fints

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhbci/go-fints-client/fints/dialog"
	"github.com/openhbci/go-fints-client/fints/message"
	"github.com/openhbci/go-fints-client/fints/params"
	"github.com/openhbci/go-fints-client/fints/segment"
	"github.com/openhbci/go-fints-client/fints/tan"
)

// fakeCodec passes requests through untouched and replays canned
// responses; fakeTransport records what was sent.
type fakeCodec struct {
	requests  []*message.Request
	responses []*message.Response
}

func (c *fakeCodec) EncodeRequest(req *message.Request) ([]byte, error) {
	c.requests = append(c.requests, req)
	return []byte("encoded"), nil
}

func (c *fakeCodec) DecodeResponse(data []byte) (*message.Response, error) {
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

type fakeTransport struct {
	exchanges int
}

func (t *fakeTransport) Exchange(ctx context.Context, payload []byte) ([]byte, error) {
	t.exchanges++
	return []byte("wire"), nil
}

func dialogContext() dialog.Context {
	return dialog.Context{
		BankCode:       "10010010",
		UserID:         "user1",
		PIN:            "1234",
		ProductID:      "PROD",
		ProductVersion: "0.1",
		TANMethod:      &tan.Method{ID: "921"},
	}
}

func paramResponse(dialogID string) *message.Response {
	return &message.Response{
		Header:   message.Header{DialogID: dialogID, Number: 1},
		Feedback: []*segment.Feedback{{Code: 10}},
		Segments: []segment.Segment{
			&segment.BankParams{BPDVersion: 7, BankName: "Testbank"},
			&segment.UserParams{UserID: "user1", UPDVersion: 3},
		},
	}
}

func TestEstablishDialog_Completes(t *testing.T) {
	codec := &fakeCodec{responses: []*message.Response{paramResponse("DLG001")}}
	client := NewClient(&fakeTransport{}, codec)

	est := dialog.New(dialogContext(), dialog.WithClientSystemID("SYSID123"))

	result, pending, err := client.EstablishDialog(context.Background(), est, params.Versions{})
	require.NoError(t, err)
	require.Nil(t, pending)
	assert.Equal(t, "DLG001", result.DialogID)
	assert.Equal(t, "SYSID123", result.ClientSystemID)
	require.NotNil(t, result.Params)
	assert.Equal(t, 7, result.Params.Versions.BPD)

	require.Len(t, codec.requests, 1)
	assert.Equal(t, message.InitialDialogID, codec.requests[0].DialogID)
	assert.Equal(t, 1, codec.requests[0].Number)
}

func TestEstablishDialog_SuspendsOnChallenge(t *testing.T) {
	challenged := &message.Response{
		Header:   message.Header{DialogID: "DLG002", Number: 1},
		Feedback: []*segment.Feedback{{Code: segment.CodeChallengePending, Text: "Freigabe erforderlich"}},
		Segments: []segment.Segment{
			&segment.TANChallenge{TaskReference: "TASK42", Text: "Bitte in der App bestätigen"},
		},
	}
	codec := &fakeCodec{responses: []*message.Response{challenged}}
	client := NewClient(&fakeTransport{}, codec)

	est := dialog.New(dialogContext(), dialog.WithClientSystemID("SYSID123"))

	result, pending, err := client.EstablishDialog(context.Background(), est, params.Versions{})
	require.NoError(t, err)
	assert.Nil(t, result)
	require.NotNil(t, pending)
	assert.Equal(t, "DLG002", pending.DialogID)
	assert.Equal(t, "TASK42", pending.Challenge.TaskReference)
	assert.NotEmpty(t, pending.State)
	assert.Equal(t, 1, est.PendingMessageNumber())
}

func TestEstablishDialog_SuspendsOnDecoupledRelease(t *testing.T) {
	// Decoupled methods confirm on a second device: the bank answers with
	// the warning-class pending code instead of demanding a code entry.
	challenged := &message.Response{
		Header:   message.Header{DialogID: "DLG005", Number: 1},
		Feedback: []*segment.Feedback{{Code: segment.CodeDecoupledPending, Text: "Freigabe ausstehend"}},
		Segments: []segment.Segment{
			&segment.TANChallenge{TaskReference: "TASK77", Text: "Bitte in der App freigeben"},
		},
	}
	codec := &fakeCodec{responses: []*message.Response{challenged}}
	client := NewClient(&fakeTransport{}, codec)

	dctx := dialogContext()
	dctx.TANMethod = &tan.Method{ID: "922", Version: 6, Decoupled: true}
	dctx.TANMedium = &tan.Medium{Name: "pushTAN-Gerät", Phone: "+49*****123"}

	est := dialog.New(dctx, dialog.WithClientSystemID("SYSID123"))

	result, pending, err := client.EstablishDialog(context.Background(), est, params.Versions{})
	require.NoError(t, err)
	assert.Nil(t, result)
	require.NotNil(t, pending)
	assert.Equal(t, "DLG005", pending.DialogID)
	assert.Equal(t, "TASK77", pending.Challenge.TaskReference)
	assert.Equal(t, 1, est.PendingMessageNumber())
}

func TestEstablishDialog_ChallengeWithoutSegment(t *testing.T) {
	challenged := &message.Response{
		Header:   message.Header{DialogID: "DLG002"},
		Feedback: []*segment.Feedback{{Code: segment.CodeChallengePending}},
	}
	codec := &fakeCodec{responses: []*message.Response{challenged}}
	client := NewClient(&fakeTransport{}, codec)

	_, _, err := client.EstablishDialog(context.Background(), dialog.New(dialogContext()), params.Versions{})
	assert.ErrorIs(t, err, ErrMissingChallenge)
}

func TestResumeDialog_ContinuesPendingExchange(t *testing.T) {
	// First round: bank demands a one-time code.
	challenged := &message.Response{
		Header:   message.Header{DialogID: "DLG003", Number: 1},
		Feedback: []*segment.Feedback{{Code: segment.CodeChallengePending}},
		Segments: []segment.Segment{
			&segment.TANChallenge{TaskReference: "TASK42", Text: "bestätigen"},
		},
	}
	codec := &fakeCodec{responses: []*message.Response{challenged}}
	client := NewClient(&fakeTransport{}, codec)

	est := dialog.New(dialogContext(), dialog.WithClientSystemID("SYSID123"))
	_, pending, err := client.EstablishDialog(context.Background(), est, params.Versions{})
	require.NoError(t, err)
	require.NotNil(t, pending)

	// Second round, possibly another process: restore and continue.
	codec.responses = []*message.Response{paramResponse("DLG003")}

	result, err := client.ResumeDialog(context.Background(), pending.State, dialogContext(),
		pending.Challenge.TaskReference, params.Versions{})
	require.NoError(t, err)
	assert.Equal(t, "DLG003", result.DialogID)
	assert.Equal(t, "SYSID123", result.ClientSystemID)

	require.Len(t, codec.requests, 2)
	cont := codec.requests[1]
	assert.Equal(t, "DLG003", cont.DialogID, "continuation stays in the same dialog")
	assert.Equal(t, 1, cont.Number, "continuation reuses the pending message number")
	require.Len(t, cont.Segments, 1)
	decl := cont.Segments[0].(*segment.TANDeclaration)
	assert.Equal(t, segment.ProcessContinue, decl.Process)
	assert.Equal(t, "TASK42", decl.TaskReference)
}

func TestResumeDialog_RejectsStateWithoutPendingExchange(t *testing.T) {
	est := dialog.New(dialogContext(), dialog.WithClientSystemID("SYSID123"))
	state, err := est.Serialize()
	require.NoError(t, err)

	client := NewClient(&fakeTransport{}, &fakeCodec{})

	_, err = client.ResumeDialog(context.Background(), state, dialogContext(), "TASK42", params.Versions{})
	assert.Error(t, err)
}

func TestContextHelpers(t *testing.T) {
	ctx := Context(context.Background(), "10010010", "user1")

	bank, ok := BankFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "10010010", bank)

	user, ok := UserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "user1", user)

	_, ok = BankFromContext(context.Background())
	assert.False(t, ok)
}
