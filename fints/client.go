package fints

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/openhbci/go-fints-client/fints/dialog"
	"github.com/openhbci/go-fints-client/fints/message"
	"github.com/openhbci/go-fints-client/fints/params"
	"github.com/openhbci/go-fints-client/fints/segment"
	"github.com/openhbci/go-fints-client/fints/tan"
	"github.com/openhbci/go-fints-client/fints/transport"
)

// Client drives actions against one bank access point. It must not run two
// establishment attempts concurrently for the same bank/user pair: the
// bank-side dialog and client system id are shared state the attempt
// assumes exclusive access to.
type Client struct {
	transport transport.Client
	codec     Codec
}

// NewClient wires a transport and wire codec into a client.
func NewClient(t transport.Client, codec Codec) *Client {
	return &Client{transport: t, codec: codec}
}

// PendingChallenge is the suspend side of an establishment attempt: the
// bank accepted the initiation but demands a one-time code. The
// application persists State, presents Challenge to the user, and later
// calls ResumeDialog.
type PendingChallenge struct {
	// State is the serialized establishment state, opaque to the caller.
	State []byte
	// Challenge is the bank's step-up challenge.
	Challenge *tan.Challenge
	// DialogID identifies the half-established dialog, e.g. for an
	// explicit close if the user abandons the attempt.
	DialogID string
}

// EstablishDialog runs one build/exchange/process cycle of the given
// establishment attempt. On completion it returns the result; when the
// bank demands a one-time code it returns a PendingChallenge instead and
// the attempt is suspended.
func (c *Client) EstablishDialog(ctx context.Context, est *dialog.Establishment, cached params.Versions) (*dialog.Result, *PendingChallenge, error) {
	segs, err := est.BuildRequest(cached)
	if err != nil {
		return nil, nil, err
	}

	resp, req, err := c.exchange(ctx, message.NewRequest(est.DialogID(), 1, segs...))
	if err != nil {
		return nil, nil, err
	}

	if resp.ChallengePending() {
		pending, err := suspend(est, req, resp)
		if err != nil {
			return nil, nil, err
		}
		return nil, pending, nil
	}

	result, err := est.ProcessResponse(resp, cached)
	if err != nil {
		return nil, nil, err
	}
	return result, nil, nil
}

// ResumeDialog restores a suspended attempt and continues the in-flight
// exchange. The transient dialog context must be re-supplied; taskReference
// is the challenge reference the bank issued on suspension. The one-time
// code itself travels in the codec's signature envelope, which the
// application configures out of band.
func (c *Client) ResumeDialog(ctx context.Context, persisted []byte, dctx dialog.Context, taskReference string, cached params.Versions) (*dialog.Result, error) {
	est, err := dialog.Restore(persisted, dctx)
	if err != nil {
		return nil, err
	}
	if est.PendingMessageNumber() == 0 {
		return nil, errors.New("fints: restored state has no pending exchange")
	}

	segs := est.BuildContinuation(taskReference)
	req := message.NewRequest(est.DialogID(), est.PendingMessageNumber(), segs...)

	resp, _, err := c.exchange(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := est.ProcessResponse(resp, cached)
	if err != nil {
		return nil, err
	}
	est.SetPendingMessageNumber(0)
	return result, nil
}

func (c *Client) exchange(ctx context.Context, req *message.Request) (*message.Response, *message.Request, error) {
	payload, err := c.codec.EncodeRequest(req)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode request")
	}

	data, err := c.transport.Exchange(ctx, payload)
	if err != nil {
		return nil, nil, err
	}

	resp, err := c.codec.DecodeResponse(data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode response")
	}

	if bank, ok := BankFromContext(ctx); ok {
		logger.Debugf("exchanged message %d with bank %s", req.Number, bank)
	}
	return resp, req, nil
}

// suspend records the half-established dialog scope on the attempt and
// serializes it together with the bank's challenge.
func suspend(est *dialog.Establishment, req *message.Request, resp *message.Response) (*PendingChallenge, error) {
	raw := resp.FindSegment(segment.KindTANChallenge)
	ch, ok := raw.(*segment.TANChallenge)
	if !ok {
		return nil, ErrMissingChallenge
	}

	est.SetDialogID(resp.Header.DialogID)
	est.SetPendingMessageNumber(req.Number)

	state, err := est.Serialize()
	if err != nil {
		return nil, err
	}

	return &PendingChallenge{
		State:     state,
		Challenge: tan.FromSegment(ch),
		DialogID:  resp.Header.DialogID,
	}, nil
}
