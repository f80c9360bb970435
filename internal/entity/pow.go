package entity

// PowChallenge is a proof-of-work demand: a seed and a hex-encoded
// byte-prefix threshold. Smaller thresholds mean fewer qualifying hashes.
// The verification endpoint nests one in its reply with a required flag.
type PowChallenge struct {
	Required   bool   `json:"required"`
	Seed       string `json:"seed"`
	Difficulty string `json:"difficulty"`
}

// PowSolution carries the base64 candidate that met the threshold, or the
// protocol-level give-up marker when the iteration budget ran out. An
// unsatisfied solution is still transmitted downstream.
type PowSolution struct {
	Payload   string
	Satisfied bool
}

// Fingerprint is the ordered synthetic client-environment tuple fed into
// the proof-of-work payload. Positions 3 and 9 are placeholders replaced
// by the solver's iteration counters.
type Fingerprint []any
