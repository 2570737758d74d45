package dialog

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/openhbci/go-fints-client/fints/action"
)

// StateKind tags establishment state inside the generic action envelope.
const StateKind = "dialog.establishment"

// Serialize captures the durable attempt state so the orchestrator can
// persist it while awaiting a one-time code, potentially across process
// restarts. The transient Context (credentials, TAN selections) is
// deliberately excluded and must be re-supplied to Restore.
func (e *Establishment) Serialize() ([]byte, error) {
	var enc jx.Encoder
	enc.ObjStart()
	enc.FieldStart("auth")
	enc.Int(int(e.state.auth.kind))
	enc.FieldStart("authSegment")
	enc.Str(e.state.auth.segmentRef)
	enc.FieldStart("clientSystemID")
	enc.Str(e.state.clientSystemID)
	enc.FieldStart("pendingNumber")
	enc.Int(e.state.pendingNumber)
	enc.FieldStart("dialogID")
	enc.Str(e.state.dialogID)
	enc.ObjEnd()

	return action.Seal(StateKind, e.AttemptID(), enc.Bytes())
}

// Restore re-creates a suspended attempt from its serialized state and a
// freshly supplied transient context.
func Restore(data []byte, ctx Context) (*Establishment, error) {
	attemptID, payload, err := action.Open(data, StateKind)
	if err != nil {
		return nil, err
	}

	var st state
	authKind := 0

	d := jx.DecodeBytes(payload)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "auth":
			v, err := d.Int()
			if err != nil {
				return err
			}
			authKind = v
		case "authSegment":
			s, err := d.Str()
			if err != nil {
				return err
			}
			st.auth.segmentRef = s
		case "clientSystemID":
			s, err := d.Str()
			if err != nil {
				return err
			}
			st.clientSystemID = s
		case "pendingNumber":
			v, err := d.Int()
			if err != nil {
				return err
			}
			st.pendingNumber = v
		case "dialogID":
			s, err := d.Str()
			if err != nil {
				return err
			}
			st.dialogID = s
		default:
			return d.Skip()
		}
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode establishment state")
	}

	st.auth.kind = AuthKind(authKind)
	if !st.auth.IsValid() {
		return nil, ErrInvalidAuthRef
	}

	logger.WithField("attempt", attemptID).Debug("establishment restored")

	return &Establishment{
		Base:  action.RestoredBase(attemptID),
		ctx:   ctx,
		state: st,
	}, nil
}
