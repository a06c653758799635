// Package rosz is the runtime targeted by ros-z generated message types.
//
// Generated packages implement CDRMessage and register a MessageTypeSupport
// handle from init(). Handles are looked up by identifier and type name, in
// any of the three spellings ROS 2 uses for the same type:
//
//	interfaces::msg::DetectionInfoArray
//	interfaces/msg/DetectionInfoArray
//	interfaces::msg::dds_::DetectionInfoArray_
//
// A Codec serializes and deserializes messages addressed by name only, which
// is what tools that never import the generated package need. Frames received
// as raw CDR can be decoded and delivered through a Handler (callback, FIFO
// or ring channel) with NewDispatcher.
//
// All lookups and codec calls are safe for concurrent use. Individual message
// values are not.
package rosz
