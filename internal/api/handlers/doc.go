package handlers

// ErrorResponse is the error body of the plain echo handlers. huma
// operations return RFC 9457 problem details instead.
type ErrorResponse struct {
	Error string `json:"error" example:"Missing challenge_code"`
}

// StatusResponse is the health endpoint body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// ChallengeResponse answers eBay's webhook endpoint challenge.
type ChallengeResponse struct {
	ChallengeResponse string `json:"challengeResponse" example:"6970fddecf606ba796d1a3775f04dc309974a37e77c8955a59d17a0b8bc29939"`
}

// MessageResponse acknowledges a webhook delivery.
type MessageResponse struct {
	Message string `json:"message" example:"Account deletion received"`
}
