package dto

import "encoding/json"

// OptionalString decodes a JSON string and treats any other value as empty.
//
// Fields of this type are informational only, so a value of the wrong type
// must not fail the whole document.
type OptionalString string

// UnmarshalJSON implements json.Unmarshaler.
func (s *OptionalString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		*s = ""
		return nil
	}
	*s = OptionalString(v)
	return nil
}

// JSONArchive represents the HPImageArchive response.
//
// Entries stay raw so that only the first one is ever decoded.
type JSONArchive struct {
	Images []json.RawMessage `json:"images"`
}

// JSONImage represents the fields read from the first image entry.
type JSONImage struct {
	URL   string         `json:"url"`
	Title OptionalString `json:"title"`
}
