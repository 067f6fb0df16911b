package dto

// ===== Request =====

type CreateDoubtRequest struct {
	CommitteeName string `json:"committeeName"`
	Question      string `json:"question"`
}

// UpdateDoubtRequest is the moderation patch. Only the response text and the
// approval flag are accepted; the handler rejects any other field so ids,
// authorship and timestamps stay immutable.
type UpdateDoubtRequest struct {
	Response   *string `json:"response"`
	IsApproved *bool   `json:"isApproved"`
}
