package entity

// SentinelChallengeResponse mirrors the verification endpoint's reply.
// Absent optional fields decode to zero values; the assembler maps them to
// empty strings rather than erroring.
type SentinelChallengeResponse struct {
	ProofOfWork PowChallenge `json:"proofofwork"`
	Turnstile   Turnstile    `json:"turnstile"`
	Token       string       `json:"token"`
}

type Turnstile struct {
	DX string `json:"dx"`
}

// SentinelToken is the composite credential attached to the task-creation
// call. Field order is part of the wire format: p, t, c, id, flow.
type SentinelToken struct {
	Proof     string `json:"p"`
	Turnstile string `json:"t"`
	Challenge string `json:"c"`
	ID        string `json:"id"`
	Flow      string `json:"flow"`
}
