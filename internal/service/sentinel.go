package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"sorarelay/internal/entity"
)

const (
	// DefaultFlow tags the task-creation operation in the challenge
	// exchange.
	DefaultFlow = "sora_2_create_task"

	initialProofPrefix    = "gAAAAAC"
	challengedProofPrefix = "gAAAAAB"
	proofSuffix           = "~S"

	initialDifficulty = "0fffff"
)

// Assembler builds the composite sentinel token from the verification
// response, re-solving when the remote side demands a second proof.
type Assembler struct {
	solver PowSolver
	prints FingerprintSource
}

func NewAssembler(solver PowSolver, prints FingerprintSource) *Assembler {
	return &Assembler{solver: solver, prints: prints}
}

// BuildToken serializes the final credential as compact JSON. A challenged
// proof replaces the initial one and carries a distinct prefix; the remote
// protocol tells first-pass and second-pass proofs apart by it. Missing
// turnstile or verification-token fields degrade to empty strings.
func (a *Assembler) BuildToken(flow, reqID, initialProof string, resp entity.SentinelChallengeResponse, userAgent string) (string, error) {
	finalProof := initialProof
	if d := resp.ProofOfWork; d.Required && d.Seed != "" && d.Difficulty != "" {
		sol := a.solver.Solve(d.Seed, d.Difficulty, a.prints.Generate(userAgent))
		finalProof = challengedProofPrefix + sol.Payload
	}
	if !strings.HasSuffix(finalProof, proofSuffix) {
		finalProof += proofSuffix
	}
	tok := entity.SentinelToken{
		Proof:     finalProof,
		Turnstile: resp.Turnstile.DX,
		Challenge: resp.Token,
		ID:        reqID,
		Flow:      flow,
	}
	b, err := json.Marshal(tok)
	if err != nil {
		return "", fmt.Errorf("marshal sentinel token: %w", err)
	}
	return string(b), nil
}
