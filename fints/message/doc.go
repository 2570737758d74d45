// Package message provides the request/response containers for a FinTS
// message exchange and the generic response validation shared by all
// actions.
//
// A Request is an ordered list of segments; ordering is significant and
// owned by the action that builds it. A Response is the decoded form of a
// bank message: header data, the decoded segments and the feedback codes.
// The wire-level encoding/decoding between these containers and the actual
// FinTS text syntax is performed by an external codec.
package message
