package backlog

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"
)

// Canonicalize returns a canonical JSON representation of a snapshot
// with stable ordering for consistent hashing: items sorted by id,
// all aliases already resolved, touch entries without a path dropped.
func Canonicalize(s *Snapshot) ([]byte, error) {
	items := s.Items()
	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})

	canonical := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		entry := map[string]interface{}{
			"id":     item.ID.String(),
			"status": item.Status.String(),
		}

		if item.Worker != "" {
			entry["worker"] = item.Worker
		}

		if deps := item.DependencyIDs(); len(deps) > 0 {
			ids := make([]string, len(deps))
			for i, id := range deps {
				ids[i] = id.String()
			}
			entry["depends_on"] = ids
		}

		var touches []map[string]string
		for _, t := range item.Touches {
			if t.Path == "" {
				continue
			}
			touches = append(touches, map[string]string{
				"path": t.Path,
				"kind": t.Kind.String(),
			})
		}
		if len(touches) > 0 {
			entry["touches"] = touches
		}

		canonical = append(canonical, entry)
	}

	// json.Marshal sorts map keys, so the output is fully stable
	return json.Marshal(canonical)
}

// Digest computes the blake3 hash of a canonicalized snapshot.
// Two snapshots with the same normalized content always produce the
// same digest, which lets callers detect whether a plan is stale.
func Digest(s *Snapshot) (string, error) {
	canonical, err := Canonicalize(s)
	if err != nil {
		return "", fmt.Errorf("canonicalize snapshot: %w", err)
	}

	hasher := blake3.New()
	if _, err := hasher.Write(canonical); err != nil {
		return "", fmt.Errorf("hash snapshot: %w", err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}
