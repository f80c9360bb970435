package service

import (
	mrand "math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerate_TupleShape(t *testing.T) {
	t.Parallel()

	const ua = "Sora/1.2026.007 (Android 15; 24122RKC7C; build 2600700)"
	fp := NewFingerprinter().Generate(ua)

	if len(fp) != 18 {
		t.Fatalf("fingerprint arity = %d; want 18", len(fp))
	}
	if fp[3] != 0 || fp[9] != 0 {
		t.Fatalf("counter placeholders = %v, %v; want 0, 0", fp[3], fp[9])
	}
	if fp[4] != ua {
		t.Fatalf("fingerprint[4] = %v; want user agent", fp[4])
	}
	if fp[2] != 4294705152 {
		t.Fatalf("fingerprint[2] = %v; want 4294705152", fp[2])
	}
	if _, err := uuid.Parse(fp[14].(string)); err != nil {
		t.Fatalf("fingerprint[14] is not a UUID: %v", err)
	}
}

func TestGenerate_DeterministicPicksWithInjectedEntropy(t *testing.T) {
	t.Parallel()

	clock := func() time.Time {
		return time.Date(2026, 1, 2, 20, 4, 5, 0, time.UTC)
	}
	a := NewFingerprinterWith(mrand.New(mrand.NewPCG(1, 2)), clock)
	b := NewFingerprinterWith(mrand.New(mrand.NewPCG(1, 2)), clock)

	fa := a.Generate("ua")
	fb := b.Generate("ua")

	// Every element except the per-call UUID is a pure function of the
	// injected entropy and clock.
	for i := range fa {
		if i == 14 {
			continue
		}
		if fa[i] != fb[i] {
			t.Fatalf("element %d diverged: %v vs %v", i, fa[i], fb[i])
		}
	}
	if fa[14] == fb[14] {
		t.Fatal("per-call UUID repeated across instances")
	}
}

func TestGenerate_SnapshotsDiffer(t *testing.T) {
	t.Parallel()

	f := NewFingerprinter()
	fa := f.Generate("ua")
	fb := f.Generate("ua")

	if fa[14] == fb[14] {
		t.Fatal("consecutive snapshots share a UUID")
	}
}

func TestFingerprintTime_EasternFormat(t *testing.T) {
	t.Parallel()

	// 20:04:05 UTC renders as 15:04:05 in fixed UTC-5.
	ts := fingerprintTime(time.Date(2026, 1, 2, 20, 4, 5, 0, time.UTC))

	if ts != "Fri Jan 02 2026 15:04:05 GMT-0500 (Eastern Standard Time)" {
		t.Fatalf("fingerprintTime = %q", ts)
	}
	if !strings.HasSuffix(ts, "GMT-0500 (Eastern Standard Time)") {
		t.Fatalf("timestamp missing zone suffix: %q", ts)
	}
}
