package sd

import "encoding/xml"

// Record is one structured result returned by the remote service. Its
// shape is defined entirely by the remote response schema, so the body is
// kept as raw XML with a Decode helper for callers that carry their own
// schema types.
type Record struct {
	Operation string
	Body      []byte
}

func (r *Record) Decode(v any) error {
	return xml.Unmarshal(r.Body, v)
}

func (r *Record) String() string {
	return string(r.Body)
}
