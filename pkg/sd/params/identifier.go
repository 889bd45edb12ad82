package params

import "github.com/google/uuid"

// Identifier is a caller supplied identifier value, either an opaque code
// (an institution code, a department short name, ...) or a UUID in any of
// its textual forms.
type Identifier string

// FromUUID returns the identifier for an already parsed UUID.
func FromUUID(id uuid.UUID) Identifier {
	return Identifier(id.String())
}

// IsUUID reports whether the identifier parses as a UUID.
func (i Identifier) IsUUID() bool {
	_, err := uuid.Parse(string(i))
	return err == nil
}

// setIdentifier contributes at most one field: <prefix>UUIDIdentifier when
// the value parses as a UUID, <prefix>Identifier otherwise, and nothing at
// all when no value was supplied.
//
// A value that fails UUID parsing is deliberately treated as an opaque code
// rather than an error. The remote registries accept arbitrary codes, some
// of which look almost, but not quite, like UUIDs, so the fallback lets any
// of them through transparently.
func setIdentifier(f *Fields, prefix string, value Identifier) {
	if value == "" {
		return
	}

	if id, err := uuid.Parse(string(value)); err == nil {
		f.Set(prefix+"UUIDIdentifier", id.String())
		return
	}

	f.Set(prefix+"Identifier", string(value))
}
