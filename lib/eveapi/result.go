package eveapi

import "evexml/lib/evetime"

// Meta carries a document's freshness metadata. It is kept apart from
// entity keys so an entity id can never collide with a metadata field.
type Meta struct {
	CurrentTime string `json:"current_time"`
	CachedUntil string `json:"cached_until"`
	// DataTime is the snapshot time some map feeds report in addition
	// to currentTime.
	DataTime string `json:"data_time,omitempty"`
}

// Expired reports whether the document's freshness hint has passed.
// Advisory: nothing in this package enforces it.
func (m Meta) Expired() bool {
	return evetime.Expired(m.CachedUntil)
}

// Result is a collection feed's payload: entity records keyed by their
// id rendered as a string. Items is never nil on a successful call.
type Result[T any] struct {
	Meta  Meta         `json:"meta"`
	Items map[string]T `json:"items"`
}

func collect[T any](meta Meta, size int) Result[T] {
	return Result[T]{Meta: meta, Items: make(map[string]T, size)}
}
