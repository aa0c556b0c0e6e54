package domain

import "github.com/google/uuid"

// Normalize converts a raw source record into a canonical EventRecord.
// It generates a fresh event ID, copies the source fields, defaults Meta to
// an empty map, and stamps IngestedAt from the package clock. A raw input
// missing any required field is rejected with a MalformedInputError rather
// than silently defaulted.
func Normalize(raw RawInput) (EventRecord, error) {
	switch {
	case raw.Source == "":
		return EventRecord{}, &MalformedInputError{Field: "source"}
	case raw.ID == "":
		return EventRecord{}, &MalformedInputError{Field: "id"}
	case raw.Time == "":
		return EventRecord{}, &MalformedInputError{Field: "time"}
	case raw.Geo == nil:
		return EventRecord{}, &MalformedInputError{Field: "geo"}
	case raw.Text == "":
		return EventRecord{}, &MalformedInputError{Field: "text"}
	}

	meta := raw.Meta
	if meta == nil {
		meta = map[string]any{}
	}

	return EventRecord{
		EventID:    uuid.NewString(),
		Source:     raw.Source,
		OrigID:     raw.ID,
		Time:       raw.Time,
		Geo:        *raw.Geo,
		Text:       raw.Text,
		Meta:       meta,
		IngestedAt: clock.Now().UTC(),
	}, nil
}
