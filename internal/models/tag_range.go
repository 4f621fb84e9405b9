package models

// TagRange is the pair of tags a release covers
type TagRange struct {
	// Previous is the tag listed right before Release, nil when there is none
	Previous *string
	// Release is the tag being released
	Release string
}

// NewTagRange creates a TagRange. An empty previous tag means "no previous tag".
func NewTagRange(previous, release string) TagRange {
	r := TagRange{Release: release}
	if previous != "" {
		r.Previous = &previous
	}
	return r
}

// HasPrevious returns true if a previous tag was found
func (r TagRange) HasPrevious() bool {
	return r.Previous != nil
}

// PreviousName returns the previous tag or "" if absent
func (r TagRange) PreviousName() string {
	if r.Previous == nil {
		return ""
	}
	return *r.Previous
}

// Spec returns the rev-list range for this release.
// With a previous tag it is "prev...release", otherwise just "release"
// so every ancestor of the release tag is included.
func (r TagRange) Spec() string {
	if r.Previous == nil {
		return r.Release
	}
	return *r.Previous + "..." + r.Release
}
