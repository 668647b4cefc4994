package catalog

// Unit is one documentation topic: a stable key and an opaque markup payload.
type Unit struct {
	Key     string `json:"key"`
	Title   string `json:"title,omitempty"`
	Payload string `json:"payload"`
	// Source names the content source that supplied the unit.
	Source string `json:"source,omitempty"`
}

// Registry is the immutable key -> payload catalog.
//
// A Registry is only produced by Builder.Build, New or NewFromSources and has no
// mutation methods, so it can be shared by any number of goroutines without locking.
type Registry struct {
	units []Unit
	index map[string]int
}

// Builder collects units in registration order. It is not safe for concurrent use.
type Builder struct {
	units []Unit
	index map[string]int
	err   error
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		index: make(map[string]int),
	}
}

// Register adds a (key, payload) pair.
func (b *Builder) Register(key, payload string) error {
	return b.Add(Unit{Key: key, Payload: payload})
}

// Add adds a unit. Once any registration has failed the builder keeps returning
// that first error and accepts nothing else.
func (b *Builder) Add(u Unit) error {
	if b.err != nil {
		return b.err
	}

	if u.Key == "" {
		b.err = &CatalogError{
			Type:    ErrorInvalidUnit,
			Source:  u.Source,
			Message: "topic key cannot be empty",
		}
		return b.err
	}

	if i, exists := b.index[u.Key]; exists {
		b.err = duplicateKeyError(u.Key, u.Source, b.units[i].Source)
		return b.err
	}

	b.index[u.Key] = len(b.units)
	b.units = append(b.units, u)
	return nil
}

// Err returns the first registration error, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the finished registry, or the first registration error and a nil
// registry. The registry keeps its own copy of the data.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}

	units := make([]Unit, len(b.units))
	copy(units, b.units)

	index := make(map[string]int, len(b.index))
	for k, v := range b.index {
		index[k] = v
	}

	return &Registry{units: units, index: index}, nil
}

// New builds a registry from units in the order given.
func New(units []Unit) (*Registry, error) {
	b := NewBuilder()
	for _, u := range units {
		if err := b.Add(u); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Resolve returns the payload registered for key.
func (r *Registry) Resolve(key string) (string, error) {
	u, err := r.Lookup(key)
	if err != nil {
		return "", err
	}
	return u.Payload, nil
}

// Lookup returns the unit registered for key.
func (r *Registry) Lookup(key string) (Unit, error) {
	i, ok := r.index[key]
	if !ok {
		return Unit{}, notFoundError(key)
	}
	return r.units[i], nil
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.index[key]
	return ok
}

// Keys returns all keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.units))
	for i, u := range r.units {
		keys[i] = u.Key
	}
	return keys
}

// Entries returns all units in registration order.
func (r *Registry) Entries() []Unit {
	entries := make([]Unit, len(r.units))
	copy(entries, r.units)
	return entries
}

// Len returns the number of registered topics.
func (r *Registry) Len() int {
	return len(r.units)
}
