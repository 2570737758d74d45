package fints

import "github.com/openhbci/go-fints-client/fints/message"

// Codec translates between the typed request/response containers and the
// textual FinTS wire syntax, including the message envelope and the
// PIN/TAN signature segments. Implementations are external to this
// library; the dialog core never touches wire text.
type Codec interface {
	EncodeRequest(req *message.Request) ([]byte, error)
	DecodeResponse(data []byte) (*message.Response, error)
}
