package rosz

import (
	"strings"

	"github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/rosz/cdr"
)

// TypesupportIdentifier names the type-support implementation in this module.
const TypesupportIdentifier = "rosidl_typesupport_ros_z_go"

// MessageTypeSupportCallbacks is the per-type function table a generated
// package hands to the runtime.
type MessageTypeSupportCallbacks struct {
	// MessageNamespace is the C++-style namespace, e.g. "interfaces::msg"
	MessageNamespace string
	// MessageName is the bare type name, e.g. "DetectionInfoArray"
	MessageName string

	// New allocates an empty message
	New func() CDRMessage
	// Serialize appends msg to e
	Serialize func(msg Message, e *cdr.Encoder) error
	// Deserialize fills msg from d
	Deserialize func(d *cdr.Decoder, msg Message) error
	// SerializedSize returns the payload size of msg starting at alignment 0
	SerializedSize func(msg Message) (uint32, error)
	// MaxSerializedSize returns the worst-case payload size starting at
	// alignment 0 and whether that size is a true upper bound
	MaxSerializedSize func() (size int, fullBounded bool)
}

// MessageTypeSupport is the handle pairing an implementation identifier with
// its callbacks.
type MessageTypeSupport struct {
	Identifier string
	Callbacks  *MessageTypeSupportCallbacks
}

// DataType returns the "pkg::msg::Name" spelling.
func (ts *MessageTypeSupport) DataType() string {
	return ts.Callbacks.MessageNamespace + "::" + ts.Callbacks.MessageName
}

// Name returns the "pkg/msg/Name" spelling.
func (ts *MessageTypeSupport) Name() string {
	return strings.ReplaceAll(ts.Callbacks.MessageNamespace, "::", "/") + "/" + ts.Callbacks.MessageName
}

// DDSTypeName returns the "pkg::msg::dds_::Name_" spelling used on the wire.
func (ts *MessageTypeSupport) DDSTypeName() string {
	return ts.Callbacks.MessageNamespace + "::dds_::" + ts.Callbacks.MessageName + "_"
}

func (ts *MessageTypeSupport) validate() error {
	switch {
	case ts == nil || ts.Callbacks == nil:
		return NewRoszError(ErrorCodeInvalidTypeSupport, "type support has no callbacks")
	case ts.Identifier == "":
		return NewRoszError(ErrorCodeInvalidTypeSupport, "type support has no identifier")
	case ts.Callbacks.MessageNamespace == "" || ts.Callbacks.MessageName == "":
		return NewRoszError(ErrorCodeInvalidTypeSupport, "type support has no name")
	}
	cb := ts.Callbacks
	if cb.New == nil || cb.Serialize == nil || cb.Deserialize == nil ||
		cb.SerializedSize == nil || cb.MaxSerializedSize == nil {
		return NewRoszError(ErrorCodeInvalidTypeSupport, "type support "+ts.DataType()+" is missing callbacks")
	}
	return nil
}

// CanonicalTypeName converts any of the three spellings of a message type
// name to "pkg::msg::Name".
func CanonicalTypeName(name string) string {
	name = strings.ReplaceAll(name, "/", "::")
	if i := strings.Index(name, "::dds_::"); i >= 0 {
		name = name[:i] + "::" + strings.TrimSuffix(name[i+len("::dds_::"):], "_")
	}
	return name
}
