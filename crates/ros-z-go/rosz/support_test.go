package rosz

import (
	"fmt"

	"github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/rosz/cdr"
)

// testPoint is a hand-written CDRMessage shaped like generated code.
type testPoint struct {
	Label string
	X     float64
}

const testPoint_DataType = "rosz_test::msg::Point"

func (m *testPoint) TypeName() string { return "rosz_test/msg/Point" }
func (m *testPoint) TypeHash() string { return "" }

func (m *testPoint) SerializeCDR() ([]byte, error) {
	e := cdr.NewEncoder(m.GetSerializedSize(0))
	if err := m.MarshalCDR(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

func (m *testPoint) DeserializeCDR(data []byte) error {
	d, err := cdr.NewDecoder(data)
	if err != nil {
		return err
	}
	return m.UnmarshalCDR(d)
}

func (m *testPoint) MarshalCDR(e *cdr.Encoder) error {
	if err := e.WriteString(m.Label); err != nil {
		return fmt.Errorf("label: %w", err)
	}
	e.WriteFloat64(m.X)
	return nil
}

func (m *testPoint) UnmarshalCDR(d *cdr.Decoder) error {
	var err error
	if m.Label, err = d.ReadString(); err != nil {
		return fmt.Errorf("label: %w", err)
	}
	if m.X, err = d.ReadFloat64(); err != nil {
		return fmt.Errorf("x: %w", err)
	}
	return nil
}

func (m *testPoint) GetSerializedSize(currentAlignment int) int {
	initial := currentAlignment
	currentAlignment += 4 + cdr.Alignment(currentAlignment, 4) + len(m.Label) + 1
	currentAlignment += 8 + cdr.Alignment(currentAlignment, 8)
	return currentAlignment - initial
}

func newTestPointTypeSupport() *MessageTypeSupport {
	return &MessageTypeSupport{
		Identifier: TypesupportIdentifier,
		Callbacks: &MessageTypeSupportCallbacks{
			MessageNamespace: "rosz_test::msg",
			MessageName:      "Point",
			New:              func() CDRMessage { return &testPoint{} },
			Serialize: func(msg Message, e *cdr.Encoder) error {
				typed, ok := msg.(*testPoint)
				if !ok {
					return NewTypeMismatchError(testPoint_DataType, msg)
				}
				return typed.MarshalCDR(e)
			},
			Deserialize: func(d *cdr.Decoder, msg Message) error {
				typed, ok := msg.(*testPoint)
				if !ok {
					return NewTypeMismatchError(testPoint_DataType, msg)
				}
				return typed.UnmarshalCDR(d)
			},
			SerializedSize: func(msg Message) (uint32, error) {
				typed, ok := msg.(*testPoint)
				if !ok {
					return 0, NewTypeMismatchError(testPoint_DataType, msg)
				}
				return uint32(typed.GetSerializedSize(0)), nil
			},
			MaxSerializedSize: func() (int, bool) {
				return 4 + 1 + cdr.Alignment(5, 8) + 8, false
			},
		},
	}
}

// otherMessage is a Message no test type support accepts.
type otherMessage struct{}

func (otherMessage) TypeName() string                 { return "rosz_test/msg/Other" }
func (otherMessage) TypeHash() string                 { return "" }
func (otherMessage) SerializeCDR() ([]byte, error)    { return nil, nil }
func (otherMessage) DeserializeCDR(data []byte) error { return nil }

func init() {
	MustRegisterMessageTypeSupport(newTestPointTypeSupport())
}
