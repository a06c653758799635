package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func strPtr(s string) *string { return &s }
func uintPtr(n uint) *uint    { return &n }

// normalize collapses whitespace so that checks do not depend on gofmt alignment.
func normalize(code string) string {
	return strings.Join(strings.Fields(code), " ")
}

func assertContainsAll(t *testing.T, code []byte, elements []string) {
	t.Helper()
	norm := normalize(string(code))
	for _, element := range elements {
		if !strings.Contains(norm, normalize(element)) {
			t.Errorf("Generated code missing expected element: %q", element)
		}
	}
}

var detectionInfo = MessageDefinition{
	Package:  "interfaces",
	Name:     "DetectionInfo",
	FullName: "interfaces/msg/DetectionInfo",
	Fields: []FieldDefinition{
		{Name: "class_name", FieldType: FieldType{Kind: "String"}},
		{Name: "confidence", FieldType: FieldType{Kind: "Float32"}},
		{Name: "center_x", FieldType: FieldType{Kind: "Int32"}},
		{Name: "center_y", FieldType: FieldType{Kind: "Int32"}},
		{Name: "x", FieldType: FieldType{Kind: "Float64"}},
		{Name: "y", FieldType: FieldType{Kind: "Float64"}},
		{Name: "z", FieldType: FieldType{Kind: "Float64"}},
	},
}

var detectionInfoArray = MessageDefinition{
	Package:  "interfaces",
	Name:     "DetectionInfoArray",
	FullName: "interfaces/msg/DetectionInfoArray",
	Fields: []FieldDefinition{
		{
			Name:      "detections",
			FieldType: FieldType{Kind: "Custom", Package: strPtr("interfaces"), Name: strPtr("DetectionInfo")},
			IsArray:   true,
			ArrayKind: ArrayKindUnbounded,
		},
	},
}

func TestSanitizePackageName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"std_msgs", "std_msgs"},
		{"example-interfaces", "example_interfaces"},
		{"my-package", "my_package"},
	}

	for _, test := range tests {
		result := sanitizePackageName(test.input)
		if result != test.expected {
			t.Errorf("sanitizePackageName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestGoFieldName(t *testing.T) {
	tests := map[string]string{
		"data":        "Data",
		"class_name":  "ClassName",
		"center_x":    "CenterX",
		"frame_id":    "FrameId",
		"x":           "X",
		"_underscore": "Underscore",
	}
	for in, want := range tests {
		assert.Equal(t, want, goFieldName(in), in)
	}
}

func TestGenerateGoMessage(t *testing.T) {
	msg := MessageDefinition{
		Package:  "std_msgs",
		Name:     "String",
		FullName: "std_msgs/String",
		TypeHash: "RIHS01_1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef",
		Fields: []FieldDefinition{
			{
				Name:      "data",
				FieldType: FieldType{Kind: "String"},
				IsArray:   false,
			},
		},
		Constants: []ConstantDefinition{},
	}

	code, err := GenerateGoMessage(msg, "rosz")
	require.NoError(t, err)

	assertContainsAll(t, code, []string{
		"// Code generated by ros-z-codegen-go. DO NOT EDIT.",
		"package std_msgs",
		`"rosz/rosz/cdr"`,
		"type String struct",
		"Data string `yaml:\"data\"`",
		`String_TypeName = "std_msgs::msg::dds_::String_"`,
		`String_TypeHash = "RIHS01_`,
		`String_DataType = "std_msgs::msg::String"`,
		`String_Name = "std_msgs/msg/String"`,
		"String_HasFixedSize = false",
		"String_HasBoundedSize = false",
		"func (m *String) TypeName() string",
		"func (m *String) TypeHash() string",
		"func (m *String) SerializeCDR() ([]byte, error)",
		"func (m *String) DeserializeCDR(data []byte) error",
		"func (m *String) MarshalCDR(e *cdr.Encoder) error",
		"func (m *String) UnmarshalCDR(d *cdr.Decoder) error",
		"func (m *String) GetSerializedSize(currentAlignment int) int",
		"func MaxSerializedSizeString(currentAlignment int) (int, bool)",
		"func StringTypeSupport() *rosz.MessageTypeSupport",
		"rosz.MustRegisterMessageTypeSupport(&stringTypeSupport)",
	})
}

func TestGenerateSequenceOfMessages(t *testing.T) {
	code, err := GenerateGoMessage(detectionInfoArray, DefaultPrefix)
	require.NoError(t, err)

	assertContainsAll(t, code, []string{
		"Detections []DetectionInfo `yaml:\"detections\"`",
		"if err := e.WriteSequenceLength(len(m.Detections)); err != nil {",
		"if err := m.Detections[i].MarshalCDR(e); err != nil { return fmt.Errorf(\"detections[%d].%w\", i, err) }",
		"n, err := d.ReadSequenceLength()",
		"m.Detections = make([]DetectionInfo, n)",
		"if err := m.Detections[i].UnmarshalCDR(d); err != nil {",
		"currentAlignment += 4 + cdr.Alignment(currentAlignment, 4)",
		"currentAlignment += m.Detections[i].GetSerializedSize(currentAlignment)",
		"fullBounded = false",
		"return currentAlignment - initialAlignment, fullBounded",
		`MessageNamespace: "interfaces::msg"`,
		`MessageName: "DetectionInfoArray"`,
		"return 0, rosz.NewTypeMismatchError(DetectionInfoArray_DataType, msg)",
		"MaxSerializedSize: func() (int, bool) { return MaxSerializedSizeDetectionInfoArray(0) },",
	})
	// Unbounded sequences contribute only their count to the bound.
	assert.NotContains(t, string(code), "MaxSerializedSizeDetectionInfo(")
}

func TestGenerateScalarsWithAlignment(t *testing.T) {
	code, err := GenerateGoMessage(detectionInfo, DefaultPrefix)
	require.NoError(t, err)

	assertContainsAll(t, code, []string{
		"ClassName string `yaml:\"class_name\"`",
		"Confidence float32 `yaml:\"confidence\"`",
		"CenterX int32 `yaml:\"center_x\"`",
		"if err := e.WriteString(m.ClassName); err != nil { return fmt.Errorf(\"class_name: %w\", err) }",
		"e.WriteFloat32(m.Confidence)",
		"e.WriteFloat64(m.Z)",
		"var err error",
		"if m.ClassName, err = d.ReadString(); err != nil {",
		"if m.X, err = d.ReadFloat64(); err != nil { return fmt.Errorf(\"x: %w\", err) }",
		"currentAlignment += 4 + cdr.Alignment(currentAlignment, 4) + len(m.ClassName) + 1",
		"currentAlignment += 8 + cdr.Alignment(currentAlignment, 8)",
		"currentAlignment += 4 + cdr.Alignment(currentAlignment, 4) + 1",
	})
}

func TestFieldToGoType(t *testing.T) {
	tests := []struct {
		field    FieldDefinition
		expected string
	}{
		{FieldDefinition{FieldType: FieldType{Kind: "String"}}, "string"},
		{FieldDefinition{FieldType: FieldType{Kind: "Int32"}}, "int32"},
		{FieldDefinition{FieldType: FieldType{Kind: "Byte"}, IsArray: true}, "[]byte"},
		{FieldDefinition{FieldType: FieldType{Kind: "Float64"}, IsArray: true, ArrayKind: ArrayKindFixed, ArraySize: uintPtr(9)}, "[9]float64"},
		{FieldDefinition{FieldType: FieldType{Kind: "UInt8"}, IsArray: true, ArrayKind: ArrayKindBounded, ArraySize: uintPtr(4)}, "[]uint8"},
		{FieldDefinition{FieldType: FieldType{Kind: "Time"}}, "builtin_interfaces.Time"},
		{FieldDefinition{FieldType: FieldType{Kind: "Custom", Package: strPtr("geometry_msgs"), Name: strPtr("Point")}}, "geometry_msgs.Point"},
		{FieldDefinition{FieldType: FieldType{Kind: "Custom", Package: strPtr("example-interfaces"), Name: strPtr("Foo")}, IsArray: true}, "[]example_interfaces.Foo"},
	}

	for _, tt := range tests {
		if got := fieldToGoType(tt.field); got != tt.expected {
			t.Errorf("fieldToGoType(%+v) = %q, want %q", tt.field.FieldType, got, tt.expected)
		}
	}

	// Same-package references are unqualified.
	field := FieldDefinition{FieldType: FieldType{Kind: "Time"}}
	if got := fieldToGoTypeInPkg(field, "builtin_interfaces"); got != "Time" {
		t.Errorf("fieldToGoTypeInPkg(Time, builtin_interfaces) = %q, want %q", got, "Time")
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a", "A"},
		{"data", "Data"},
		{"Data", "Data"},
	}

	for _, tt := range tests {
		if got := capitalize(tt.input); got != tt.expected {
			t.Errorf("capitalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGenerateGoMessageWithArrays(t *testing.T) {
	msg := MessageDefinition{
		Package:  "test_msgs",
		Name:     "Arrays",
		FullName: "test_msgs/msg/Arrays",
		Fields: []FieldDefinition{
			{Name: "covariance", FieldType: FieldType{Kind: "Float64"}, IsArray: true, ArrayKind: ArrayKindFixed, ArraySize: uintPtr(9)},
			{Name: "data", FieldType: FieldType{Kind: "UInt8"}, IsArray: true, ArrayKind: ArrayKindUnbounded},
			{Name: "mac", FieldType: FieldType{Kind: "Byte"}, IsArray: true, ArrayKind: ArrayKindFixed, ArraySize: uintPtr(6)},
			{Name: "ranges", FieldType: FieldType{Kind: "Float32"}, IsArray: true, ArrayKind: ArrayKindBounded, ArraySize: uintPtr(16)},
			{Name: "names", FieldType: FieldType{Kind: "String"}, IsArray: true},
			{Name: "flags", FieldType: FieldType{Kind: "Bool"}, IsArray: true, ArrayKind: ArrayKindFixed, ArraySize: uintPtr(2)},
		},
	}

	code, err := GenerateGoMessage(msg, "test")
	require.NoError(t, err)

	assertContainsAll(t, code, []string{
		"Covariance [9]float64",
		"Data []uint8",
		"Mac [6]byte",
		"Ranges []float32",
		"Names []string",
		"Flags [2]bool",
		// fixed arrays carry no count
		"for _, v := range m.Covariance { e.WriteFloat64(v) }",
		"currentAlignment += cdr.Alignment(currentAlignment, 8) + 9*8",
		// byte arrays are copied in one piece
		"e.WriteBytes(m.Data)",
		"if m.Data, err = d.ReadBytes(n); err != nil {",
		"e.WriteBytes(m.Mac[:])",
		"b, err := d.ReadBytes(6)",
		"copy(m.Mac[:], b)",
		"currentAlignment += len(m.Data)",
		// bounded sequences are checked both ways
		"if err := cdr.CheckBound(len(m.Ranges), 16); err != nil {",
		"if err := cdr.CheckBound(n, 16); err != nil {",
		"if n := len(m.Ranges); n > 0 { currentAlignment += cdr.Alignment(currentAlignment, 4) + n*4 }",
		"currentAlignment += cdr.Alignment(currentAlignment, 4) + 16*4",
		// strings
		"for i, v := range m.Names { if err := e.WriteString(v); err != nil { return fmt.Errorf(\"names[%d]: %w\", i, err) } }",
		"for _, s := range m.Names { currentAlignment += 4 + cdr.Alignment(currentAlignment, 4) + len(s) + 1 }",
		"v, err := d.ReadBool()",
		"Arrays_HasFixedSize = false",
		"Arrays_HasBoundedSize = false",
	})
}

func TestMessageTraits(t *testing.T) {
	point := MessageDefinition{
		Package: "geometry_msgs", Name: "Point", FullName: "geometry_msgs/msg/Point",
		Fields: []FieldDefinition{
			{Name: "x", FieldType: FieldType{Kind: "Float64"}},
			{Name: "y", FieldType: FieldType{Kind: "Float64"}},
			{Name: "z", FieldType: FieldType{Kind: "Float64"}},
		},
	}
	polygon := MessageDefinition{
		Package: "geometry_msgs", Name: "Triangle", FullName: "geometry_msgs/msg/Triangle",
		Fields: []FieldDefinition{
			{Name: "points", FieldType: FieldType{Kind: "Custom", Package: strPtr("geometry_msgs"), Name: strPtr("Point")}, IsArray: true, ArrayKind: ArrayKindBounded, ArraySize: uintPtr(3)},
		},
	}
	stamped := MessageDefinition{
		Package: "geometry_msgs", Name: "PointStamped", FullName: "geometry_msgs/msg/PointStamped",
		Fields: []FieldDefinition{
			{Name: "stamp", FieldType: FieldType{Kind: "Time"}},
			{Name: "point", FieldType: FieldType{Kind: "Custom", Package: strPtr("geometry_msgs"), Name: strPtr("Point")}},
		},
	}
	manifest := &CodegenManifest{Version: ExpectedVersion, Messages: []MessageDefinition{point, polygon, stamped, detectionInfo, detectionInfoArray}}
	gen := NewGenerator(manifest, "test")

	tests := []struct {
		msg            MessageDefinition
		fixed, bounded bool
	}{
		{point, true, true},
		{polygon, false, true},
		{stamped, true, true},
		{detectionInfo, false, false},
		{detectionInfoArray, false, false},
	}
	for _, tt := range tests {
		fixed, bounded := gen.traits(tt.msg.Fields, map[string]bool{})
		assert.Equal(t, tt.fixed, fixed, "%s fixed", tt.msg.Name)
		assert.Equal(t, tt.bounded, bounded, "%s bounded", tt.msg.Name)
	}

	code, err := gen.Message(polygon)
	require.NoError(t, err)
	assertContainsAll(t, code, []string{
		"for i := 0; i < 3; i++ { size, bounded := MaxSerializedSizePoint(currentAlignment)",
		"fullBounded = fullBounded && bounded",
	})

	code, err = gen.Message(stamped)
	require.NoError(t, err)
	assertContainsAll(t, code, []string{
		`"test/generated/builtin_interfaces"`,
		"Stamp builtin_interfaces.Time",
		"size, bounded := builtin_interfaces.MaxSerializedSizeTime(currentAlignment)",
		"if err := m.Stamp.MarshalCDR(e); err != nil { return fmt.Errorf(\"stamp.%w\", err) }",
	})
}

func TestGenerateGoService(t *testing.T) {
	srv := ServiceDefinition{
		Package:  "example_interfaces",
		Name:     "AddTwoInts",
		FullName: "example_interfaces/srv/AddTwoInts",
		TypeHash: "RIHS01_service12345678901234567890123456789012345678901234567890123456",
		Request: MessageDefinition{
			Package:  "example_interfaces",
			Name:     "AddTwoInts_Request",
			FullName: "example_interfaces/srv/AddTwoInts_Request",
			TypeHash: "RIHS01_request12345678901234567890123456789012345678901234567890123456",
			Fields: []FieldDefinition{
				{Name: "a", FieldType: FieldType{Kind: "Int64"}, IsArray: false},
				{Name: "b", FieldType: FieldType{Kind: "Int64"}, IsArray: false},
			},
		},
		Response: MessageDefinition{
			Package:  "example_interfaces",
			Name:     "AddTwoInts_Response",
			FullName: "example_interfaces/srv/AddTwoInts_Response",
			TypeHash: "RIHS01_response1234567890123456789012345678901234567890123456789012",
			Fields: []FieldDefinition{
				{Name: "sum", FieldType: FieldType{Kind: "Int64"}, IsArray: false},
			},
		},
	}

	code, err := GenerateGoService(srv, "test")
	require.NoError(t, err)

	assertContainsAll(t, code, []string{
		"package example_interfaces",
		"type AddTwoInts struct{}",
		`AddTwoInts_TypeName = "example_interfaces::srv::dds_::AddTwoInts_"`,
		"type AddTwoIntsRequest struct",
		"type AddTwoIntsResponse struct",
		"A int64",
		"B int64",
		"Sum int64",
		`AddTwoIntsRequest_DataType = "example_interfaces::srv::AddTwoInts_Request"`,
		`AddTwoIntsResponse_TypeName = "example_interfaces::srv::dds_::AddTwoInts_Response_"`,
		"AddTwoIntsRequest_HasFixedSize = true",
		"func (m *AddTwoIntsRequest) SerializeCDR()",
		"func (m *AddTwoIntsResponse) DeserializeCDR(",
		"func (s *AddTwoInts) GetRequest() rosz.CDRMessage { return &AddTwoIntsRequest{} }",
		"rosz.MustRegisterMessageTypeSupport(&addTwoIntsResponseTypeSupport)",
	})
}

func TestGenerateGoAction(t *testing.T) {
	action := ActionDefinition{
		Package:      "example_interfaces",
		Name:         "Fibonacci",
		FullName:     "example_interfaces/action/Fibonacci",
		SendGoalHash: "RIHS01_sendgoal",
		Goal: MessageDefinition{
			Package: "example_interfaces", Name: "Fibonacci_Goal",
			Fields: []FieldDefinition{{Name: "order", FieldType: FieldType{Kind: "Int32"}}},
		},
		Feedback: &MessageDefinition{
			Package: "example_interfaces", Name: "Fibonacci_Feedback",
			Fields: []FieldDefinition{{Name: "sequence", FieldType: FieldType{Kind: "Int32"}, IsArray: true}},
		},
	}

	code, err := GenerateGoAction(action, "test")
	require.NoError(t, err)

	assertContainsAll(t, code, []string{
		"type Fibonacci struct{}",
		`Fibonacci_SendGoalHash = "RIHS01_sendgoal"`,
		"func (a *Fibonacci) GetResult() rosz.CDRMessage { return nil }",
		"func (a *Fibonacci) GetFeedback() rosz.CDRMessage { return &FibonacciFeedback{} }",
		`FibonacciGoal_DataType = "example_interfaces::action::Fibonacci_Goal"`,
		"Sequence []int32",
		"if n := len(m.Sequence); n > 0 {",
	})
	assert.NotContains(t, string(code), "type FibonacciResult struct")
}

func TestGenerateUnpackField(t *testing.T) {
	msg := MessageDefinition{
		Package:  "test_msgs",
		Name:     "Simple",
		FullName: "test_msgs/Simple",
		Fields: []FieldDefinition{
			{Name: "value", FieldType: FieldType{Kind: "Int32"}, IsArray: false},
			{Name: "name", FieldType: FieldType{Kind: "String"}, IsArray: false},
		},
	}

	code, err := GenerateGoMessage(msg, "test")
	require.NoError(t, err)

	assertContainsAll(t, code, []string{
		"if m.Value, err = d.ReadInt32(); err != nil { return fmt.Errorf(\"value: %w\", err) }",
		"if m.Name, err = d.ReadString(); err != nil { return fmt.Errorf(\"name: %w\", err) }",
		"Simple_HasFixedSize = false",
	})
}

func TestGenerateEmptyMessage(t *testing.T) {
	msg := MessageDefinition{Package: "std_msgs", Name: "Empty", FullName: "std_msgs/msg/Empty"}

	code, err := GenerateGoMessage(msg, "test")
	require.NoError(t, err)

	assertContainsAll(t, code, []string{
		`"fmt"`,
		"type Empty struct { StructureNeedsAtLeastOneMember uint8 `yaml:\"structure_needs_at_least_one_member\"` }",
		"e.WriteUint8(m.StructureNeedsAtLeastOneMember)",
		"m.StructureNeedsAtLeastOneMember, err = d.ReadUint8()",
		"currentAlignment++",
		"Empty_HasFixedSize = true",
	})
}

// Elements of a sequence must each take at least one byte, or a count header
// could not be checked against the bytes left.
func TestGenerateSequenceOfEmptyMessages(t *testing.T) {
	empty := MessageDefinition{Package: "test_msgs", Name: "Marker", FullName: "test_msgs/msg/Marker"}
	bag := MessageDefinition{
		Package: "test_msgs", Name: "Bag", FullName: "test_msgs/msg/Bag",
		Fields: []FieldDefinition{{
			Name:      "items",
			FieldType: FieldType{Kind: "Custom", Package: strPtr("test_msgs"), Name: strPtr("Marker")},
			IsArray:   true,
		}},
	}
	gen := NewGenerator(&CodegenManifest{Messages: []MessageDefinition{empty, bag}}, "test")

	markerCode, err := gen.Message(empty)
	require.NoError(t, err)
	assertContainsAll(t, markerCode, []string{"e.WriteUint8(m.StructureNeedsAtLeastOneMember)"})

	bagCode, err := gen.Message(bag)
	require.NoError(t, err)
	assertContainsAll(t, bagCode, []string{
		"Items []Marker",
		"if err := m.Items[i].MarshalCDR(e); err != nil {",
		"if err := m.Items[i].UnmarshalCDR(d); err != nil {",
	})
	assert.NotContains(t, string(bagCode), "StructureNeedsAtLeastOneMember")
}

func TestGenerateServiceWithEmptyRequest(t *testing.T) {
	srv := ServiceDefinition{
		Package: "std_srvs", Name: "Trigger", FullName: "std_srvs/srv/Trigger",
		Request: MessageDefinition{Package: "std_srvs", Name: "Trigger_Request", FullName: "std_srvs/srv/Trigger_Request"},
		Response: MessageDefinition{
			Package: "std_srvs", Name: "Trigger_Response", FullName: "std_srvs/srv/Trigger_Response",
			Fields: []FieldDefinition{
				{Name: "success", FieldType: FieldType{Kind: "Bool"}},
				{Name: "message", FieldType: FieldType{Kind: "String"}},
			},
		},
	}

	code, err := GenerateGoService(srv, "test")
	require.NoError(t, err)

	assertContainsAll(t, code, []string{
		"type TriggerRequest struct { StructureNeedsAtLeastOneMember uint8",
		"e.WriteUint8(m.StructureNeedsAtLeastOneMember)",
	})
	assert.Equal(t, 1, strings.Count(string(code), "StructureNeedsAtLeastOneMember uint8"))
}

func TestGenerateConstants(t *testing.T) {
	msg := MessageDefinition{
		Package: "test_msgs", Name: "Status", FullName: "test_msgs/msg/Status",
		Fields: []FieldDefinition{{Name: "level", FieldType: FieldType{Kind: "UInt8"}}},
		Constants: []ConstantDefinition{
			{Name: "OK", ConstType: "uint8", Value: "0"},
			{Name: "LABEL", ConstType: "string", Value: "'ready'"},
			{Name: "ENABLED", ConstType: "bool", Value: "True"},
		},
	}
	code, err := GenerateGoMessage(msg, "test")
	require.NoError(t, err)

	assertContainsAll(t, code, []string{
		"Status_OK = 0",
		`Status_LABEL = "ready"`,
		"Status_ENABLED = true",
		"currentAlignment++",
	})
}

func TestLoadManifestJSONAndYAML(t *testing.T) {
	jsonManifest := []byte(`{
  "version": 1,
  "messages": [
    {
      "package": "interfaces",
      "name": "DetectionInfoArray",
      "full_name": "interfaces/msg/DetectionInfoArray",
      "type_hash": "",
      "fields": [
        {
          "name": "detections",
          "field_type": {"kind": "Custom", "package": "interfaces", "name": "DetectionInfo"},
          "is_array": true,
          "array_kind": "unbounded"
        }
      ],
      "constants": []
    }
  ]
}`)
	yamlManifest := []byte(`
version: 1
messages:
  - package: interfaces
    name: DetectionInfoArray
    full_name: interfaces/msg/DetectionInfoArray
    type_hash: ""
    fields:
      - name: detections
        field_type: {kind: Custom, package: interfaces, name: DetectionInfo}
        is_array: true
        array_kind: unbounded
    constants: []
`)

	fromJSON, err := LoadManifest(jsonManifest)
	require.NoError(t, err)
	fromYAML, err := LoadManifest(yamlManifest)
	require.NoError(t, err)

	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Errorf("JSON and YAML manifests differ (-json +yaml):\n%s", diff)
	}
	assert.Equal(t, uint32(1), fromJSON.Version)
	assert.Equal(t, "DetectionInfo", *fromJSON.Messages[0].Fields[0].FieldType.Name)

	_, err = LoadManifest([]byte("version: [1"))
	assert.Error(t, err)
}

func TestValidateReportsAllProblems(t *testing.T) {
	manifest := &CodegenManifest{
		Version: 2,
		Messages: []MessageDefinition{
			{
				Package: "bad_msgs", Name: "Broken",
				Fields: []FieldDefinition{
					{Name: "a", FieldType: FieldType{Kind: "Quaternion128"}},
					{Name: "a", FieldType: FieldType{Kind: "Int32"}},
					{Name: "b", FieldType: FieldType{Kind: "Custom"}},
					{Name: "c", FieldType: FieldType{Kind: "Int32"}, IsArray: true, ArrayKind: ArrayKindFixed},
					{Name: "d", FieldType: FieldType{Kind: "Int32"}, IsArray: true, ArrayKind: "ragged"},
				},
			},
			{Package: "bad_msgs", Name: "Broken"},
		},
	}

	err := manifest.Validate()
	require.Error(t, err)
	// version, unknown kind, duplicate field, custom without name, fixed without size,
	// unknown array kind, duplicate message
	assert.Len(t, multierr.Errors(err), 7, err.Error())

	valid := &CodegenManifest{Version: ExpectedVersion, Messages: []MessageDefinition{detectionInfo, detectionInfoArray}}
	assert.NoError(t, valid.Validate())
}

func TestGenerateWritesFilesOnce(t *testing.T) {
	dir := t.TempDir()
	manifest := &CodegenManifest{Version: ExpectedVersion, Messages: []MessageDefinition{detectionInfo, detectionInfoArray}}

	files, err := Generate(context.Background(), manifest, dir, DefaultPrefix, 2)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "interfaces", "detectioninfo.go"), files[0].path)
	assert.Equal(t, filepath.Join(dir, "interfaces", "detectioninfoarray.go"), files[1].path)
	for _, f := range files {
		assert.True(t, f.changed, f.path)
	}

	files, err = Generate(context.Background(), manifest, dir, DefaultPrefix, 2)
	require.NoError(t, err)
	for _, f := range files {
		assert.False(t, f.changed, "%s rewritten without change", f.path)
	}
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--input", filepath.Join("..", "ros-z-go", "idl", "manifest.yaml"), "--output", dir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Generated: interfaces/msg/DetectionInfoArray (written)")
	assert.Contains(t, out.String(), "Generation complete:")

	code, err := os.ReadFile(filepath.Join(dir, "interfaces", "detectioninfoarray.go"))
	require.NoError(t, err)
	assertContainsAll(t, code, []string{
		`"github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/rosz/cdr"`,
		"func DetectionInfoArrayTypeSupport() *rosz.MessageTypeSupport",
	})
}

func TestRunRejectsInvalidManifest(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("version: 7\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--output", t.TempDir()})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version mismatch")
}
