package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/phaseline/internal/backlog"
)

// Report wraps a scheduling Result with provenance for consumers that
// persist or compare plans. The Result itself stays a pure function of
// the snapshot; only the wrapper carries identity and timestamps.
type Report struct {
	// ReportID uniquely identifies this planning pass
	ReportID string `json:"report_id" yaml:"report_id"`

	// SnapshotDigest is the canonical blake3 digest of the snapshot the
	// result was computed from. Consumers compare digests to detect
	// stale plans.
	SnapshotDigest string `json:"snapshot_digest" yaml:"snapshot_digest"`

	// GeneratedAt is when the pass ran, in UTC
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	Result Result `json:"result" yaml:"result"`
}

// NewReport runs a scheduling pass and stamps the result with a fresh
// report id and the snapshot digest
func NewReport(s *backlog.Snapshot) (*Report, error) {
	digest, err := backlog.Digest(s)
	if err != nil {
		return nil, err
	}

	return &Report{
		ReportID:       uuid.NewString(),
		SnapshotDigest: digest,
		GeneratedAt:    time.Now().UTC(),
		Result:         Schedule(s),
	}, nil
}
