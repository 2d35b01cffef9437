package interval

// RawAttrKey is the sentinel key under which attribute text that could not
// be split into key/value pairs is preserved verbatim.
const RawAttrKey = "_raw"

// Attributes is a string key/value mapping that preserves insertion order,
// used for the GFF attribute column. The zero value is not usable; call
// NewAttributes.
type Attributes struct {
	keys  []string
	index map[string]string
}

// NewAttributes returns an empty attribute mapping.
func NewAttributes() *Attributes {
	return &Attributes{index: make(map[string]string)}
}

// Set stores a value under key. Setting an existing key overwrites its value
// but keeps the key's original position.
func (a *Attributes) Set(key, value string) {
	if _, ok := a.index[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.index[key] = value
}

// Get returns the value for key and whether it is present.
func (a *Attributes) Get(key string) (string, bool) {
	v, ok := a.index[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (a *Attributes) Keys() []string {
	return a.keys
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	return len(a.keys)
}

// Clone returns an independent copy.
func (a *Attributes) Clone() *Attributes {
	c := NewAttributes()
	for _, k := range a.keys {
		c.Set(k, a.index[k])
	}
	return c
}
