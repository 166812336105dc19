package cache

import "time"

// Entry is a single cached value with optional expiry and tags.
type Entry struct {
	CreatedAt time.Time
	ExpiresAt time.Time // zero => no TTL
	Value     any
	Tags      map[string]struct{}
	Key       string
}

// Expired reports whether the entry is past its expiry at now.
func (e *Entry) Expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

// HasAnyTag reports whether the entry carries at least one of tags.
func (e *Entry) HasAnyTag(tags map[string]struct{}) bool {
	for tag := range e.Tags {
		if _, ok := tags[tag]; ok {
			return true
		}
	}
	return false
}

// TagList returns the entry tags as a slice.
func (e *Entry) TagList() []string {
	tags := make([]string, 0, len(e.Tags))
	for tag := range e.Tags {
		tags = append(tags, tag)
	}
	return tags
}

// Item describes an entry for SetMany.
type Item struct {
	Value any
	Key   string
	Tags  []string
	TTL   time.Duration
}

// SetOption customises a single Set call.
type SetOption func(*setOptions)

type setOptions struct {
	tags []string
	ttl  time.Duration
}

// WithTTL sets the entry time-to-live. Non-positive values mean no expiry.
func WithTTL(ttl time.Duration) SetOption {
	return func(o *setOptions) {
		o.ttl = ttl
	}
}

// WithTags attaches tags used by InvalidateByTags.
func WithTags(tags ...string) SetOption {
	return func(o *setOptions) {
		o.tags = append(o.tags, tags...)
	}
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}
