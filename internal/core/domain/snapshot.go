package domain

import "time"

// Snapshot maps a source file path to the modification time observed the
// last time that file was offered for change detection, expressed as
// floating-point seconds since the Unix epoch.
//
// A snapshot is a full-replacement record, not an accumulating history:
// after a detection pass it contains exactly the still-existing candidates
// of that pass. Files that were tracked before but not offered again are
// dropped, and reappearing files are treated as new.
type Snapshot map[string]float64

// ModSeconds converts a modification time into the snapshot representation.
func ModSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// Changed reports whether path is new to the snapshot or carries a different
// timestamp than recorded. Equality is exact numeric equality with no
// tolerance window, so a timestamp that moved in either direction counts as
// a change. On filesystems with coarse timestamp resolution a content change
// within the same timestamp tick is not detected; that is an accepted
// limitation of mtime-based detection.
func (s Snapshot) Changed(path string, mtime float64) bool {
	prev, ok := s[path]
	return !ok || prev != mtime
}

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	c := make(Snapshot, len(s))
	for path, mtime := range s {
		c[path] = mtime
	}
	return c
}
