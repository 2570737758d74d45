package segment

// TANChallenge carries the bank's step-up challenge (HITAN). The client
// must obtain the one-time code out of band and continue the exchange with
// a TAN continuation referencing TaskReference.
type TANChallenge struct {
	Process string
	// TaskReference identifies the pending task on the bank side.
	TaskReference string
	// Text is the human-readable challenge instruction.
	Text string
	// MediaType describes the challenge payload format (e.g. HHD optical,
	// photoTAN matrix). Empty for plain text challenges.
	MediaType string
	// Data is the binary challenge payload for optical/matrix methods.
	Data []byte
}

func (s *TANChallenge) Kind() Kind   { return KindTANChallenge }
func (s *TANChallenge) Version() int { return 6 }
