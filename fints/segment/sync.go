package segment

// SyncModeNewSystemID requests assignment of a new client system id.
const SyncModeNewSystemID = 0

// SyncRequest asks the bank to assign a client system id (HKSYN). It must
// be the last segment of a dialog-initiation message.
type SyncRequest struct {
	Mode int
}

// NewSyncRequest builds a synchronization request for a new client system id.
func NewSyncRequest() *SyncRequest {
	return &SyncRequest{Mode: SyncModeNewSystemID}
}

func (s *SyncRequest) Kind() Kind   { return KindSyncRequest }
func (s *SyncRequest) Version() int { return 3 }

// SyncResponse carries the client system id assigned by the bank (HISYN).
type SyncResponse struct {
	ClientSystemID string
}

func (s *SyncResponse) Kind() Kind   { return KindSyncResponse }
func (s *SyncResponse) Version() int { return 4 }
