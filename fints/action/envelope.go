package action

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Seal wraps an action-specific payload into the versioned envelope. The
// payload must be a valid JSON value.
func Seal(kind, attemptID string, payload []byte) ([]byte, error) {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("v")
	e.Int(EnvelopeVersion)
	e.FieldStart("kind")
	e.Str(kind)
	e.FieldStart("attempt")
	e.Str(attemptID)
	e.FieldStart("state")
	e.Raw(payload)
	e.ObjEnd()
	return e.Bytes(), nil
}

// Open unwraps an envelope previously produced by Seal, checking version
// and kind, and returns the attempt id and the raw action payload.
func Open(data []byte, wantKind string) (attemptID string, payload []byte, err error) {
	var (
		version int
		kind    string
	)

	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "v":
			v, err := d.Int()
			if err != nil {
				return err
			}
			version = v
		case "kind":
			s, err := d.Str()
			if err != nil {
				return err
			}
			kind = s
		case "attempt":
			s, err := d.Str()
			if err != nil {
				return err
			}
			attemptID = s
		case "state":
			raw, err := d.Raw()
			if err != nil {
				return err
			}
			payload = raw
		default:
			return d.Skip()
		}
		return nil
	}); err != nil {
		return "", nil, errors.Wrap(err, "decode state envelope")
	}

	if version != EnvelopeVersion {
		return "", nil, errors.Wrapf(ErrEnvelopeVersion, "got version %d", version)
	}
	if kind != wantKind {
		return "", nil, errors.Wrapf(ErrEnvelopeKind, "got %q, want %q", kind, wantKind)
	}
	if len(payload) == 0 {
		return "", nil, errors.New("state envelope carries no payload")
	}
	return attemptID, payload, nil
}
