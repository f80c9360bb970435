package service

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"strconv"

	"golang.org/x/crypto/sha3"

	"sorarelay/internal/entity"
)

const (
	powMaxIterations = 500000

	// Marker the remote protocol expects on an exhausted search. The
	// fallback token is transmitted, not raised as an error.
	powFallbackMarker = "wQ8Lk5FbGpA2NcR9dShT6gYjU7VxZ4D"
)

// Solver brute-forces proof-of-work payloads against a hex-encoded
// byte-prefix threshold.
type Solver struct{}

func NewSolver() *Solver { return &Solver{} }

// Solve searches for a base64 payload whose SHA3-512 over seed||payload
// stays at or below the decoded difficulty prefix. The candidate is the
// fingerprint tuple with the decimal iteration counter spliced at index 3
// and its half at index 9; the remote verifier expects exactly this shape.
// Exhausting the iteration budget yields the marker fallback payload with
// Satisfied=false.
func (s *Solver) Solve(seed, difficulty string, fp entity.Fingerprint) entity.PowSolution {
	// An odd-length difficulty drops its last digit; this mirrors the
	// remote verifier's byte slicing and must not be "fixed".
	prefixLen := len(difficulty) / 2
	target, err := hex.DecodeString(difficulty[:prefixLen*2])
	if err != nil || len(fp) < 11 {
		return fallbackSolution(seed)
	}

	head := marshalSegment(fp[:3])
	mid := marshalSegment(fp[4:9])
	tail := marshalSegment(fp[10:])

	// Fixed segments around the two spliced counters: head keeps its
	// opening bracket, mid loses both brackets, tail keeps the closing one.
	fixed1 := append(head[:len(head)-1], ',')
	fixed2 := append(append([]byte{','}, mid[1:len(mid)-1]...), ',')
	fixed3 := append([]byte{','}, tail[1:]...)

	seedBytes := []byte(seed)
	maxPlain := len(fixed1) + len(fixed2) + len(fixed3) + 2*len(strconv.Itoa(powMaxIterations))
	plain := make([]byte, 0, maxPlain)
	encoded := make([]byte, base64.StdEncoding.EncodedLen(maxPlain))
	digest := make([]byte, 0, 64)
	hasher := sha3.New512()

	cmpLen := prefixLen
	if cmpLen > 64 {
		cmpLen = 64
	}

	for i := 0; i < powMaxIterations; i++ {
		plain = plain[:0]
		plain = append(plain, fixed1...)
		plain = strconv.AppendInt(plain, int64(i), 10)
		plain = append(plain, fixed2...)
		plain = strconv.AppendInt(plain, int64(i>>1), 10)
		plain = append(plain, fixed3...)

		n := base64.StdEncoding.EncodedLen(len(plain))
		base64.StdEncoding.Encode(encoded[:n], plain)

		hasher.Reset()
		hasher.Write(seedBytes)
		hasher.Write(encoded[:n])
		digest = hasher.Sum(digest[:0])

		if bytes.Compare(digest[:cmpLen], target) <= 0 {
			return entity.PowSolution{Payload: string(encoded[:n]), Satisfied: true}
		}
	}
	return fallbackSolution(seed)
}

func fallbackSolution(seed string) entity.PowSolution {
	quoted := base64.StdEncoding.EncodeToString([]byte(`"` + seed + `"`))
	return entity.PowSolution{Payload: powFallbackMarker + quoted, Satisfied: false}
}

func marshalSegment(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
