package rosz

import (
	"fmt"

	"github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/rosz/cdr"
)

// Codec serializes and deserializes messages addressed by type name through
// the registered type supports.
type Codec struct {
	registry   *Registry
	identifier string
	metrics    *CodecMetrics
}

// CodecOption configures a Codec
type CodecOption func(*Codec)

// WithRegistry makes the codec resolve names in r instead of the default registry.
func WithRegistry(r *Registry) CodecOption {
	return func(c *Codec) { c.registry = r }
}

// WithIdentifier selects the type-support implementation to resolve.
func WithIdentifier(identifier string) CodecOption {
	return func(c *Codec) { c.identifier = identifier }
}

// WithMetrics records every call in m.
func WithMetrics(m *CodecMetrics) CodecOption {
	return func(c *Codec) { c.metrics = m }
}

// NewCodec creates a codec over the default registry and TypesupportIdentifier.
func NewCodec(opts ...CodecOption) *Codec {
	c := &Codec{
		registry:   defaultRegistry,
		identifier: TypesupportIdentifier,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup resolves typeName to its handle.
func (c *Codec) Lookup(typeName string) (*MessageTypeSupport, error) {
	return c.registry.Lookup(c.identifier, typeName)
}

// Serialize encodes msg as encapsulated CDR using the type support
// registered for typeName.
func (c *Codec) Serialize(typeName string, msg Message) (out []byte, err error) {
	label := UnknownTypeLabel
	defer func() { c.metrics.observe(label, DirectionSerialize, len(out), err) }()

	ts, err := c.Lookup(typeName)
	if err != nil {
		return nil, err
	}
	label = ts.DataType()
	if msg == nil {
		return nil, NewRoszError(ErrorCodeSerializationFailed,
			fmt.Sprintf("cannot serialize nil message for %s", typeName))
	}

	var size uint32
	err = safeCall(func() error {
		var err error
		size, err = ts.Callbacks.SerializedSize(msg)
		if err != nil {
			return err
		}
		e := cdr.NewEncoder(int(size))
		if err := ts.Callbacks.Serialize(msg, e); err != nil {
			return err
		}
		out = e.Bytes()
		return nil
	})
	if err != nil {
		logger.Debug("serialize failed", "type", typeName, "error", err)
		return nil, WrapRoszError(ErrorCodeSerializationFailed, err, "serialize "+ts.DataType())
	}
	logger.Debug("serialized", "type", ts.DataType(), "bytes", len(out))
	return out, nil
}

// Deserialize decodes encapsulated CDR into a new message of the type
// registered for typeName.
func (c *Codec) Deserialize(typeName string, data []byte) (msg CDRMessage, err error) {
	label := UnknownTypeLabel
	defer func() { c.metrics.observe(label, DirectionDeserialize, len(data), err) }()

	ts, err := c.Lookup(typeName)
	if err != nil {
		return nil, err
	}
	label = ts.DataType()
	if len(data) == 0 {
		return nil, NewRoszError(ErrorCodeDeserializationFailed,
			fmt.Sprintf("cannot deserialize empty CDR data for %s", typeName))
	}

	err = safeCall(func() error {
		d, err := cdr.NewDecoder(data)
		if err != nil {
			return err
		}
		m := ts.Callbacks.New()
		if err := ts.Callbacks.Deserialize(d, m); err != nil {
			return err
		}
		msg = m
		return nil
	})
	if err != nil {
		logger.Debug("deserialize failed", "type", typeName, "error", err)
		return nil, WrapRoszError(ErrorCodeDeserializationFailed, err, "deserialize "+ts.DataType())
	}
	return msg, nil
}

var defaultCodec = NewCodec()

// SerializeMessage serializes msg with the type support registered for typeName
func SerializeMessage(typeName string, msg Message) ([]byte, error) {
	return defaultCodec.Serialize(typeName, msg)
}

// DeserializeMessage deserializes encapsulated CDR into a new message of typeName
func DeserializeMessage(typeName string, data []byte) (CDRMessage, error) {
	return defaultCodec.Deserialize(typeName, data)
}
