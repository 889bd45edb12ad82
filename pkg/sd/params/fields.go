package params

import "time"

const (
	dateFormat = "2006-01-02"
	timeFormat = "15:04:05"
)

// Fields is an ordered set of request fields for a single remote operation.
// Keys are exactly the field names the bound operation accepts. Optional
// fields that were never supplied are left out entirely, they are never sent
// as empty markers.
type Fields struct {
	names  []string
	values map[string]string
}

func NewFields() Fields {
	return Fields{values: map[string]string{}}
}

// Set adds a field, or replaces its value while keeping its position.
func (f *Fields) Set(name, value string) {
	if _, exists := f.values[name]; !exists {
		f.names = append(f.names, name)
	}
	f.values[name] = value
}

func (f *Fields) SetBool(name string, value bool) {
	if value {
		f.Set(name, "true")
		return
	}
	f.Set(name, "false")
}

func (f *Fields) SetDate(name string, value time.Time) {
	f.Set(name, value.Format(dateFormat))
}

func (f *Fields) SetTime(name string, value time.Time) {
	f.Set(name, value.Format(timeFormat))
}

func (f Fields) Get(name string) (string, bool) {
	value, ok := f.values[name]
	return value, ok
}

// Names returns the field names in insertion order.
func (f Fields) Names() []string {
	names := make([]string, len(f.names))
	copy(names, f.names)
	return names
}

func (f Fields) Len() int {
	return len(f.names)
}
