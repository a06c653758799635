package rosz

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

type registryKey struct {
	identifier string
	dataType   string
}

type registryTypeKey struct {
	identifier string
	typ        reflect.Type
}

// Registry maps identifiers and type names to type-support handles.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	mu     sync.RWMutex
	byName map[registryKey]*MessageTypeSupport
	byType map[registryTypeKey]*MessageTypeSupport
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[registryKey]*MessageTypeSupport),
		byType: make(map[registryTypeKey]*MessageTypeSupport),
	}
}

// Register adds ts. Registering a second handle for the same identifier and
// type fails with ErrDuplicateTypeSupport.
func (r *Registry) Register(ts *MessageTypeSupport) error {
	if err := ts.validate(); err != nil {
		return err
	}
	key := registryKey{identifier: ts.Identifier, dataType: ts.DataType()}
	typ := reflect.TypeOf(ts.Callbacks.New())

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[key]; ok {
		return NewRoszError(ErrorCodeDuplicateTypeSupport,
			fmt.Sprintf("type support %s already registered for %s", key.dataType, key.identifier))
	}
	r.byName[key] = ts
	r.byType[registryTypeKey{identifier: ts.Identifier, typ: typ}] = ts
	logger.Debug("registered type support", "identifier", ts.Identifier, "type", key.dataType)
	return nil
}

// Lookup returns the handle registered for identifier under name, which may
// be spelled "pkg::msg::Name", "pkg/msg/Name" or "pkg::msg::dds_::Name_".
func (r *Registry) Lookup(identifier, name string) (*MessageTypeSupport, error) {
	key := registryKey{identifier: identifier, dataType: CanonicalTypeName(name)}

	r.mu.RLock()
	ts, ok := r.byName[key]
	r.mu.RUnlock()

	if !ok {
		return nil, NewRoszError(ErrorCodeTypeSupportNotFound,
			fmt.Sprintf("no type support for %s with identifier %q", name, identifier))
	}
	return ts, nil
}

// LookupType returns the handle whose New callback allocates values of typ.
func (r *Registry) LookupType(identifier string, typ reflect.Type) (*MessageTypeSupport, error) {
	r.mu.RLock()
	ts, ok := r.byType[registryTypeKey{identifier: identifier, typ: typ}]
	r.mu.RUnlock()

	if !ok {
		return nil, NewRoszError(ErrorCodeTypeSupportNotFound,
			fmt.Sprintf("no type support for %v with identifier %q", typ, identifier))
	}
	return ts, nil
}

// List returns all handles sorted by identifier then data type.
func (r *Registry) List() []*MessageTypeSupport {
	r.mu.RLock()
	out := make([]*MessageTypeSupport, 0, len(r.byName))
	for _, ts := range r.byName {
		out = append(out, ts)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Identifier != out[j].Identifier {
			return out[i].Identifier < out[j].Identifier
		}
		return out[i].DataType() < out[j].DataType()
	})
	return out
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry generated packages
// register into.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// RegisterMessageTypeSupport adds ts to the default registry.
func RegisterMessageTypeSupport(ts *MessageTypeSupport) error {
	return defaultRegistry.Register(ts)
}

// MustRegisterMessageTypeSupport is RegisterMessageTypeSupport for init()
// functions; it panics on error.
func MustRegisterMessageTypeSupport(ts *MessageTypeSupport) {
	if err := defaultRegistry.Register(ts); err != nil {
		panic(err)
	}
}

// GetMessageTypeSupport looks name up in the default registry.
func GetMessageTypeSupport(identifier, name string) (*MessageTypeSupport, error) {
	return defaultRegistry.Lookup(identifier, name)
}

// GetMessageTypeSupportHandle returns the handle registered for the Go type T
// under TypesupportIdentifier.
//
// Example:
//
//	ts, err := rosz.GetMessageTypeSupportHandle[*interfaces.DetectionInfoArray]()
func GetMessageTypeSupportHandle[T CDRMessage]() (*MessageTypeSupport, error) {
	return defaultRegistry.LookupType(TypesupportIdentifier, reflect.TypeOf((*T)(nil)).Elem())
}

// RegisteredMessageTypeSupports lists the default registry.
func RegisteredMessageTypeSupports() []*MessageTypeSupport {
	return defaultRegistry.List()
}
