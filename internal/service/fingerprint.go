package service

import (
	mrand "math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"sorarelay/internal/entity"
)

var fingerprintScreens = []int{1920 + 1080, 2560 + 1440, 1920 + 1200, 2560 + 1600}

var fingerprintCores = []int{8, 16, 24, 32}

var fingerprintScripts = []string{
	"https://cdn.oaistatic.com/_next/static/cXh69klOLzS0Gy2joLDRS/_ssgManifest.js?dpl=453ebaec0d44c2decab71692e1bfe39be35a24b3",
}

var fingerprintBuildIDs = []string{
	"prod-f501fe933b3edf57aea882da888e1a544df99840",
}

var fingerprintNavigatorKeys = []string{
	"registerProtocolHandler-function registerProtocolHandler() { [native code] }",
	"storage-[object StorageManager]",
	"locks-[object LockManager]",
	"appCodeName-Mozilla",
	"permissions-[object Permissions]",
	"webdriver-false",
	"vendor-Google Inc.",
	"mediaDevices-[object MediaDevices]",
	"cookieEnabled-true",
	"product-Gecko",
	"productSub-20030107",
	"hardwareConcurrency-32",
	"onLine-true",
}

var fingerprintDocumentKeys = []string{"_reactListeningo743lnnpvdg", "location"}

var fingerprintWindowKeys = []string{
	"0", "window", "self", "document", "name", "location",
	"navigator", "screen", "innerWidth", "innerHeight",
	"localStorage", "sessionStorage", "crypto", "performance",
	"fetch", "setTimeout", "setInterval", "console",
}

// Fingerprinter fabricates synthetic client-environment snapshots.
// Repeated calls must differ; snapshot reuse is what the remote side
// screens for.
type Fingerprinter struct {
	mu    sync.Mutex
	r     *mrand.Rand
	now   func() time.Time
	start time.Time
}

func NewFingerprinter() *Fingerprinter {
	return NewFingerprinterWith(mrand.New(mrand.NewPCG(mrand.Uint64(), mrand.Uint64())), time.Now)
}

// NewFingerprinterWith injects the entropy source and clock for tests/DI.
func NewFingerprinterWith(r *mrand.Rand, now func() time.Time) *Fingerprinter {
	return &Fingerprinter{r: r, now: now, start: now()}
}

// Generate returns the 18-element tuple the remote verifier expects.
// Positions 3 and 9 stay zero; the solver splices its counters there.
func (f *Fingerprinter) Generate(userAgent string) entity.Fingerprint {
	now := f.now()
	perfMs := float64(now.Sub(f.start).Milliseconds())
	wallMs := float64(now.UnixNano()) / 1e6
	return entity.Fingerprint{
		f.pickInt(fingerprintScreens),
		fingerprintTime(now),
		4294705152,
		0,
		userAgent,
		f.pick(fingerprintScripts),
		f.pick(fingerprintBuildIDs),
		"en-US",
		"en-US,es-US,en,es",
		0,
		f.pick(fingerprintNavigatorKeys),
		f.pick(fingerprintDocumentKeys),
		f.pick(fingerprintWindowKeys),
		perfMs,
		uuid.NewString(),
		"",
		f.pickInt(fingerprintCores),
		wallMs - perfMs,
	}
}

func (f *Fingerprinter) pick(items []string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return items[f.r.IntN(len(items))]
}

func (f *Fingerprinter) pickInt(items []int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return items[f.r.IntN(len(items))]
}

// fingerprintTime renders the timestamp the way a browser in US Eastern
// time would.
func fingerprintTime(t time.Time) string {
	loc := time.FixedZone("EST", -5*3600)
	return t.In(loc).Format("Mon Jan 02 2006 15:04:05") + " GMT-0500 (Eastern Standard Time)"
}
