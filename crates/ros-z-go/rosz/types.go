package rosz

import "github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/rosz/cdr"

// Message is implemented by all generated message types
type Message interface {
	// TypeName returns the DDS type name used on the wire
	// (e.g., "interfaces::msg::dds_::DetectionInfoArray_")
	TypeName() string

	// TypeHash returns the ROS 2 type hash (RIHS01 format), empty when the
	// interface manifest carries none
	TypeHash() string

	// SerializeCDR serializes the message to encapsulated CDR
	SerializeCDR() ([]byte, error)

	// DeserializeCDR deserializes encapsulated CDR data into the message
	DeserializeCDR(data []byte) error
}

// CDRMessage is a Message that can be written to and read from a CDR cursor.
// Generated types implement it on their pointer receiver.
type CDRMessage interface {
	Message

	// MarshalCDR appends the message payload to e
	MarshalCDR(e *cdr.Encoder) error

	// UnmarshalCDR reads the message payload from d
	UnmarshalCDR(d *cdr.Decoder) error

	// GetSerializedSize returns the number of bytes MarshalCDR writes when
	// the payload so far is currentAlignment bytes long
	GetSerializedSize(currentAlignment int) int
}
