// Package params models the bank and user parameter data (BPD/UPD): the
// server-provided, versioned description of the operations available to the
// client. Persistent storage of the data itself is the caller's concern;
// this package only extracts it from responses and tracks versions.
package params

import (
	"github.com/go-faster/errors"

	"github.com/openhbci/go-fints-client/fints/message"
	"github.com/openhbci/go-fints-client/fints/segment"
)

// Versions carries the parameter-data versions the client has cached. A
// version of 0 means no cached copy exists.
type Versions struct {
	BPD int
	UPD int
}

// HasUPD reports whether user parameter data is cached client-side.
func (v Versions) HasUPD() bool { return v.UPD > 0 }

// ParameterData is the parsed parameter data from one response.
type ParameterData struct {
	Versions Versions
	BankName string
	// Operations lists the business operations the bank advertises.
	Operations []Operation
}

// Operation describes one advertised business operation.
type Operation struct {
	Name    string
	Version int
}

// IsPresent reports whether the response carries bank parameter data.
func IsPresent(r *message.Response) bool {
	return r.FindSegment(segment.KindBankParams) != nil
}

// Extract parses the parameter data out of a response. It fails when the
// bank parameter segment is absent; user parameter data is optional and
// merged in when present.
func Extract(r *message.Response) (*ParameterData, error) {
	raw, err := r.RequireSegment(segment.KindBankParams)
	if err != nil {
		return nil, err
	}
	bpa, ok := raw.(*segment.BankParams)
	if !ok {
		return nil, errors.Errorf("unexpected segment type %T for %s", raw, segment.KindBankParams)
	}

	pd := &ParameterData{
		Versions: Versions{BPD: bpa.BPDVersion},
		BankName: bpa.BankName,
	}

	if raw := r.FindSegment(segment.KindUserParams); raw != nil {
		upa, ok := raw.(*segment.UserParams)
		if !ok {
			return nil, errors.Errorf("unexpected segment type %T for %s", raw, segment.KindUserParams)
		}
		pd.Versions.UPD = upa.UPDVersion
	}

	for _, s := range r.Segments {
		if op, ok := s.(*segment.Operation); ok {
			pd.Operations = append(pd.Operations, Operation{Name: op.Name, Version: op.Version()})
		}
	}

	return pd, nil
}
