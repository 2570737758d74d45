package dialog

import (
	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/openhbci/go-fints-client/fints/action"
	"github.com/openhbci/go-fints-client/fints/message"
	"github.com/openhbci/go-fints-client/fints/params"
	"github.com/openhbci/go-fints-client/fints/segment"
	"github.com/openhbci/go-fints-client/fints/tan"
)

var logger = logrus.WithField("component", "fints.dialog")

// Context carries the transient inputs of an establishment attempt. It is
// supplied fresh on every construction, including after a restore, and is
// never serialized.
type Context struct {
	BankCode       string
	UserID         string
	PIN            string
	ProductID      string
	ProductVersion string
	// TANMethod and TANMedium are the user's step-up selections, if any.
	TANMethod *tan.Method
	TANMedium *tan.Medium
}

// Result is the outcome of a completed establishment.
type Result struct {
	ClientSystemID string
	DialogID       string
	// Params is the parameter data the response carried, nil when the
	// bank sent none (legal only with a cached copy or weak auth).
	Params *params.ParameterData
}

// state is the durable part of an attempt. clientSystemID transitions at
// most once, absent ("") to present; dialogID is set once per fresh
// attempt; pendingNumber (0 = absent) is only used to resume mid-challenge.
type state struct {
	auth           AuthRef
	clientSystemID string
	pendingNumber  int
	dialogID       string
}

// Establishment is the dialog-establishment action. It implements the
// resumable action contract: the orchestrator builds a request, exchanges
// it, feeds the response back, and may serialize the attempt in between
// while the bank waits for a one-time code.
type Establishment struct {
	action.Base
	ctx   Context
	state state
}

// Option configures a new establishment attempt.
type Option func(*Establishment)

// WithAuth sets the authentication reference. The default is strong
// authentication bound to the identification segment.
func WithAuth(a AuthRef) Option {
	return func(e *Establishment) { e.state.auth = a }
}

// WithClientSystemID supplies a client system id obtained by an earlier
// synchronization. Without it the attempt synchronizes a new one.
func WithClientSystemID(id string) Option {
	return func(e *Establishment) { e.state.clientSystemID = id }
}

// New creates a fresh establishment attempt.
func New(ctx Context, opts ...Option) *Establishment {
	e := &Establishment{
		Base: action.NewBase(),
		ctx:  ctx,
		state: state{
			auth: IdentificationAuth(),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ClientSystemID returns the client system id, "" while unassigned.
func (e *Establishment) ClientSystemID() string { return e.state.clientSystemID }

// DialogID returns the dialog handle, "" before the bank assigned one.
func (e *Establishment) DialogID() string { return e.state.dialogID }

// SetDialogID injects a dialog id from a prior partial exchange. Only the
// orchestrator resuming the same attempt may call this; starting a new
// attempt with a foreign dialog id is not legal.
func (e *Establishment) SetDialogID(id string) { e.state.dialogID = id }

// PendingMessageNumber returns the in-flight message number of a suspended
// exchange, 0 when none is pending.
func (e *Establishment) PendingMessageNumber() int { return e.state.pendingNumber }

// SetPendingMessageNumber records the message number a continuation must
// reuse so the bank recognizes the same in-progress exchange.
func (e *Establishment) SetPendingMessageNumber(n int) { e.state.pendingNumber = n }

// Auth returns the attempt's authentication reference.
func (e *Establishment) Auth() AuthRef { return e.state.auth }

// BuildRequest assembles the ordered segment sequence of the
// dialog-initiation message. It is pure: identical state and cached
// versions yield an identical sequence, and no state is mutated.
//
// Order: identification, version announce, exactly one TAN declaration,
// and - iff no client system id is assigned yet - a trailing
// synchronization request.
func (e *Establishment) BuildRequest(cached params.Versions) ([]segment.Segment, error) {
	if !e.state.auth.IsValid() {
		return nil, ErrInvalidAuthRef
	}

	var methodID, mediumName string
	if e.ctx.TANMethod != nil {
		methodID = e.ctx.TANMethod.ID
	}
	if e.ctx.TANMedium != nil {
		mediumName = e.ctx.TANMedium.Name
	}

	segs := []segment.Segment{
		segment.NewIdentification(e.ctx.BankCode, e.ctx.UserID, e.state.clientSystemID),
		segment.NewVersionAnnounce(e.ctx.ProductID, e.ctx.ProductVersion, cached.BPD, cached.UPD),
		segment.NewTANDeclaration(methodID, mediumName, e.state.auth.BoundSegment()),
	}

	if e.state.clientSystemID == "" {
		segs = append(segs, segment.NewSyncRequest())
	}

	logger.WithField("attempt", e.AttemptID()).Debugf(
		"built dialog initiation: auth=%s, %d segments", e.state.auth.Kind(), len(segs))

	return segs, nil
}

// BuildContinuation assembles the message that continues a suspended
// exchange once the one-time code is available out of band. The request
// must be sent under the pending message number.
func (e *Establishment) BuildContinuation(taskReference string) []segment.Segment {
	var methodID, mediumName string
	if e.ctx.TANMethod != nil {
		methodID = e.ctx.TANMethod.ID
	}
	if e.ctx.TANMedium != nil {
		mediumName = e.ctx.TANMedium.Name
	}
	return []segment.Segment{segment.NewTANContinuation(methodID, mediumName, taskReference)}
}

// ProcessResponse validates the bank's response and absorbs it into the
// attempt state.
//
// The dialog id is recorded unconditionally before any check that can
// fail: it identifies the session even on a failing response, letting the
// orchestrator explicitly close it. Every other failure aborts before
// further mutation.
func (e *Establishment) ProcessResponse(resp *message.Response, cached params.Versions) (*Result, error) {
	if err := message.Validate(resp); err != nil {
		return nil, err
	}

	e.state.dialogID = resp.Header.DialogID

	if e.state.clientSystemID == "" {
		raw, err := resp.RequireSegment(segment.KindSyncResponse)
		if err != nil {
			return nil, err
		}
		sync, ok := raw.(*segment.SyncResponse)
		if !ok {
			return nil, errors.Errorf("unexpected segment type %T for %s", raw, segment.KindSyncResponse)
		}
		if sync.ClientSystemID == "" {
			return nil, ErrMissingClientSystemID
		}
		// First and only write.
		e.state.clientSystemID = sync.ClientSystemID
		logger.WithField("attempt", e.AttemptID()).Debug("client system id assigned")
	} else if raw := resp.FindSegment(segment.KindSyncResponse); raw != nil {
		// A continued attempt may see a second synchronization response.
		// It must agree with the id assigned earlier; overwriting is
		// never legal.
		if sync, ok := raw.(*segment.SyncResponse); ok && sync.ClientSystemID != e.state.clientSystemID {
			return nil, ErrClientSystemIDChanged
		}
	}

	var pd *params.ParameterData
	if params.IsPresent(resp) {
		var err error
		if pd, err = params.Extract(resp); err != nil {
			return nil, err
		}
	} else if !cached.HasUPD() && e.state.auth.Kind() == AuthIdentification {
		return nil, ErrMissingParameterData
	}

	logger.WithField("attempt", e.AttemptID()).Debug("dialog established")

	return &Result{
		ClientSystemID: e.state.clientSystemID,
		DialogID:       e.state.dialogID,
		Params:         pd,
	}, nil
}
