package main

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

type CodeBuilder struct {
	buf        bytes.Buffer
	indent     int
	currentPkg string // current Go package being generated
}

func (b *CodeBuilder) P(format string, args ...interface{}) {
	for i := 0; i < b.indent; i++ {
		b.buf.WriteString("\t")
	}
	fmt.Fprintf(&b.buf, format, args...)
	b.buf.WriteString("\n")
}

func (b *CodeBuilder) In()  { b.indent++ }
func (b *CodeBuilder) Out() { b.indent-- }

func (b *CodeBuilder) Bytes() ([]byte, error) {
	return format.Source(b.buf.Bytes())
}

// primitive describes how a scalar kind maps onto Go and the cdr cursor.
type primitive struct {
	goType string
	method string // suffix of cdr.Encoder.Write* and cdr.Decoder.Read*
	size   int
}

var primitives = map[string]primitive{
	"Bool":    {"bool", "Bool", 1},
	"Byte":    {"byte", "Uint8", 1},
	"Char":    {"uint8", "Uint8", 1},
	"Int8":    {"int8", "Int8", 1},
	"UInt8":   {"uint8", "Uint8", 1},
	"Int16":   {"int16", "Int16", 2},
	"UInt16":  {"uint16", "Uint16", 2},
	"Int32":   {"int32", "Int32", 4},
	"UInt32":  {"uint32", "Uint32", 4},
	"Int64":   {"int64", "Int64", 8},
	"UInt64":  {"uint64", "Uint64", 8},
	"Float32": {"float32", "Float32", 4},
	"Float64": {"float64", "Float64", 8},
}

func isPrimitive(kind string) bool {
	_, ok := primitives[kind]
	return ok
}

// isByte reports whether arrays of p are written as raw bytes.
func (p primitive) isByte() bool {
	return p.method == "Uint8"
}

type fieldClass int

const (
	classPrimitive fieldClass = iota
	classString
	classCustom
)

// resolvedType is a field's element type after Time and Duration have been
// mapped onto builtin_interfaces.
type resolvedType struct {
	class fieldClass
	prim  primitive
	pkg   string // Go package of a custom type
	name  string // type name of a custom type
}

func resolveFieldType(ft FieldType) resolvedType {
	switch ft.Kind {
	case "String":
		return resolvedType{class: classString}
	case "Time", "Duration":
		return resolvedType{class: classCustom, pkg: "builtin_interfaces", name: ft.Kind}
	case "Custom":
		rt := resolvedType{class: classCustom}
		if ft.Package != nil {
			rt.pkg = sanitizePackageName(*ft.Package)
		}
		if ft.Name != nil {
			rt.name = *ft.Name
		}
		return rt
	default:
		return resolvedType{class: classPrimitive, prim: primitives[ft.Kind]}
	}
}

// qualifier returns the "pkg." prefix needed to refer to a custom type from currentPkg.
func (rt resolvedType) qualifier(currentPkg string) string {
	if rt.class != classCustom || rt.pkg == currentPkg {
		return ""
	}
	return rt.pkg + "."
}

func arraySize(field FieldDefinition) int {
	if field.ArraySize == nil {
		return 0
	}
	return int(*field.ArraySize)
}

func isFixedArray(field FieldDefinition) bool {
	return field.IsArray && field.ArrayKind == ArrayKindFixed
}

func isBoundedArray(field FieldDefinition) bool {
	return field.IsArray && field.ArrayKind == ArrayKindBounded
}

// messageSpec is one Go message type to emit. Services and actions emit
// several per file.
type messageSpec struct {
	GoName    string // Go type name, e.g. "AddTwoIntsRequest"
	Namespace string // e.g. "example_interfaces::srv"
	RosName   string // e.g. "AddTwoInts_Request"
	TypeHash  string
	Fields    []FieldDefinition
	Constants []ConstantDefinition
}

func (s messageSpec) dataType() string { return s.Namespace + "::" + s.RosName }

func (s messageSpec) ddsTypeName() string { return s.Namespace + "::dds_::" + s.RosName + "_" }

func (s messageSpec) rosName() string {
	return strings.ReplaceAll(s.Namespace, "::", "/") + "/" + s.RosName
}

// placeholderField is added to messages without fields, as rosidl does, so
// every message encodes to at least one byte. Sequence decoding relies on
// that to bound element counts by the bytes left.
var placeholderField = FieldDefinition{
	Name:      "structure_needs_at_least_one_member",
	FieldType: FieldType{Kind: "UInt8"},
}

func newMessageSpec(msg MessageDefinition, goName, kind, rosName string) messageSpec {
	fields := msg.Fields
	if len(fields) == 0 {
		fields = []FieldDefinition{placeholderField}
	}
	return messageSpec{
		GoName:    goName,
		Namespace: msg.Package + "::" + kind,
		RosName:   rosName,
		TypeHash:  msg.TypeHash,
		Fields:    fields,
		Constants: msg.Constants,
	}
}

// Generator emits Go type support for the messages of one manifest.
type Generator struct {
	prefix string
	known  map[string]MessageDefinition
}

// NewGenerator creates a generator whose generated packages live under
// prefix/generated and import the runtime from prefix/rosz.
func NewGenerator(manifest *CodegenManifest, prefix string) *Generator {
	return &Generator{prefix: prefix, known: manifest.index()}
}

// GenerateGoMessage generates Go code for a single message without knowledge
// of the rest of the manifest.
func GenerateGoMessage(msg MessageDefinition, prefix string) ([]byte, error) {
	return NewGenerator(&CodegenManifest{Messages: []MessageDefinition{msg}}, prefix).Message(msg)
}

// Message generates the file for a ROS 2 message type.
func (gen *Generator) Message(msg MessageDefinition) ([]byte, error) {
	currentPkg := sanitizePackageName(msg.Package)
	g := &CodeBuilder{currentPkg: currentPkg}
	spec := newMessageSpec(msg, msg.Name, "msg", msg.Name)

	gen.generateHeader(g, spec)
	gen.generateMessage(g, spec)
	return g.Bytes()
}

func (gen *Generator) generateHeader(g *CodeBuilder, specs ...messageSpec) {
	needsFmt := false
	crossPkgImports := map[string]bool{}
	for _, spec := range specs {
		if len(spec.Fields) > 0 {
			needsFmt = true
		}
		for _, field := range spec.Fields {
			rt := resolveFieldType(field.FieldType)
			if q := rt.qualifier(g.currentPkg); q != "" {
				crossPkgImports[rt.pkg] = true
			}
		}
	}
	deps := make([]string, 0, len(crossPkgImports))
	for pkg := range crossPkgImports {
		deps = append(deps, pkg)
	}
	sort.Strings(deps)

	g.P("// Code generated by ros-z-codegen-go. DO NOT EDIT.")
	g.P("")
	g.P("package %s", g.currentPkg)
	g.P("")
	g.P("import (")
	g.In()
	if needsFmt {
		g.P(`"fmt"`)
		g.P("")
	}
	for _, pkg := range deps {
		g.P(`"%s/generated/%s"`, gen.prefix, pkg)
	}
	g.P(`"%s/rosz"`, gen.prefix)
	g.P(`"%s/rosz/cdr"`, gen.prefix)
	g.Out()
	g.P(")")
	g.P("")
}

func (gen *Generator) generateMessage(g *CodeBuilder, spec messageSpec) {
	generateStruct(g, spec)
	gen.generateConstants(g, spec)
	generateMessageMethods(g, spec)
	generateMarshalMethod(g, spec)
	generateUnmarshalMethod(g, spec)
	generateSerializedSizeMethod(g, spec)
	generateMaxSerializedSize(g, spec)
	generateTypeSupport(g, spec)
}

func generateStruct(g *CodeBuilder, spec messageSpec) {
	g.P("// %s is a ROS 2 message type", spec.GoName)
	g.P("// Full name: %s", spec.rosName())
	g.P("type %s struct {", spec.GoName)
	g.In()
	for _, field := range spec.Fields {
		g.P("%s %s `yaml:%q`", goFieldName(field.Name), fieldToGoTypeInPkg(field, g.currentPkg), field.Name)
	}
	g.Out()
	g.P("}")
	g.P("")
}

func (gen *Generator) generateConstants(g *CodeBuilder, spec messageSpec) {
	fixed, bounded := gen.traits(spec.Fields, map[string]bool{})

	// TypeName uses the DDS-qualified name so Zenoh key expressions match rmw_zenoh_cpp and ros-z Rust.
	g.P("const (")
	g.In()
	g.P("%s_TypeName = %q", spec.GoName, spec.ddsTypeName())
	g.P("%s_TypeHash = %q", spec.GoName, spec.TypeHash)
	g.P("%s_DataType = %q", spec.GoName, spec.dataType())
	g.P("%s_Name = %q", spec.GoName, spec.rosName())
	g.P("%s_HasFixedSize = %t", spec.GoName, fixed)
	g.P("%s_HasBoundedSize = %t", spec.GoName, bounded)
	g.Out()
	g.P(")")
	g.P("")

	if len(spec.Constants) > 0 {
		g.P("// Message-specific constants")
		g.P("const (")
		g.In()
		for _, c := range spec.Constants {
			g.P("%s_%s = %s", spec.GoName, c.Name, constantLiteral(c))
		}
		g.Out()
		g.P(")")
		g.P("")
	}
}

func constantLiteral(c ConstantDefinition) string {
	switch strings.ToLower(c.ConstType) {
	case "string", "wstring":
		return strconv.Quote(strings.Trim(c.Value, `"'`))
	case "bool", "boolean":
		return strings.ToLower(c.Value)
	default:
		return c.Value
	}
}

// traits reports whether a message made of fields has a fixed and a bounded
// serialized size. Types outside the manifest are assumed unbounded, except
// builtin_interfaces which only holds fixed-size types.
func (gen *Generator) traits(fields []FieldDefinition, visiting map[string]bool) (fixed, bounded bool) {
	fixed, bounded = true, true
	for _, field := range fields {
		if field.IsArray && !isFixedArray(field) {
			fixed = false
			if !isBoundedArray(field) {
				bounded = false
			}
		}
		rt := resolveFieldType(field.FieldType)
		switch rt.class {
		case classString:
			fixed, bounded = false, false
		case classCustom:
			f, b := gen.customTraits(rt, visiting)
			fixed = fixed && f
			bounded = bounded && b
		}
	}
	return fixed, bounded
}

func (gen *Generator) customTraits(rt resolvedType, visiting map[string]bool) (fixed, bounded bool) {
	key := rt.pkg + "/" + rt.name
	if visiting[key] {
		return false, false
	}
	nested, ok := gen.known[key]
	if !ok {
		if rt.pkg == "builtin_interfaces" {
			return true, true
		}
		return false, false
	}
	visiting[key] = true
	defer delete(visiting, key)
	return gen.traits(nested.Fields, visiting)
}

func generateMessageMethods(g *CodeBuilder, spec messageSpec) {
	name := spec.GoName

	g.P("// TypeName returns the full ROS 2 type name")
	g.P("func (m *%s) TypeName() string {", name)
	g.In()
	g.P("return %s_TypeName", name)
	g.Out()
	g.P("}")
	g.P("")

	g.P("// TypeHash returns the ROS 2 type hash (RIHS01 format)")
	g.P("func (m *%s) TypeHash() string {", name)
	g.In()
	g.P("return %s_TypeHash", name)
	g.Out()
	g.P("}")
	g.P("")

	g.P("// SerializeCDR serializes the message to CDR format")
	g.P("func (m *%s) SerializeCDR() ([]byte, error) {", name)
	g.In()
	g.P("e := cdr.NewEncoder(m.GetSerializedSize(0))")
	g.P("if err := m.MarshalCDR(e); err != nil {")
	g.In()
	g.P("return nil, err")
	g.Out()
	g.P("}")
	g.P("return e.Bytes(), nil")
	g.Out()
	g.P("}")
	g.P("")

	g.P("// DeserializeCDR deserializes CDR data into the message")
	g.P("func (m *%s) DeserializeCDR(data []byte) error {", name)
	g.In()
	g.P("d, err := cdr.NewDecoder(data)")
	g.P("if err != nil {")
	g.In()
	g.P("return err")
	g.Out()
	g.P("}")
	g.P("return m.UnmarshalCDR(d)")
	g.Out()
	g.P("}")
	g.P("")
}

func generateMarshalMethod(g *CodeBuilder, spec messageSpec) {
	g.P("// MarshalCDR appends the message payload to e")
	g.P("func (m *%s) MarshalCDR(e *cdr.Encoder) error {", spec.GoName)
	g.In()
	for _, field := range spec.Fields {
		generatePackField(g, field)
	}
	g.P("return nil")
	g.Out()
	g.P("}")
	g.P("")
}

func generateUnmarshalMethod(g *CodeBuilder, spec messageSpec) {
	g.P("// UnmarshalCDR reads the message payload from d")
	g.P("func (m *%s) UnmarshalCDR(d *cdr.Decoder) error {", spec.GoName)
	g.In()
	for _, field := range spec.Fields {
		if !field.IsArray && resolveFieldType(field.FieldType).class != classCustom {
			g.P("var err error")
			break
		}
	}
	for _, field := range spec.Fields {
		generateUnpackField(g, field)
	}
	g.P("return nil")
	g.Out()
	g.P("}")
	g.P("")
}

// errorReturn emits the member-path wrapping of a nested error. Custom
// members already prefix their own field names, so they are joined with a dot.
func errorReturn(g *CodeBuilder, path string, rt resolvedType, indexed bool) {
	sep := ": %w"
	if rt.class == classCustom {
		sep = ".%w"
	}
	if indexed {
		g.P(`return fmt.Errorf("%s[%%d]%s", i, err)`, path, sep)
	} else {
		g.P(`return fmt.Errorf("%s%s", err)`, path, sep)
	}
}

func generatePackField(g *CodeBuilder, field FieldDefinition) {
	fieldAccess := fmt.Sprintf("m.%s", goFieldName(field.Name))
	rt := resolveFieldType(field.FieldType)

	g.P("// %s", field.Name)
	if !field.IsArray {
		switch rt.class {
		case classPrimitive:
			g.P("e.Write%s(%s)", rt.prim.method, fieldAccess)
		case classString:
			g.P("if err := e.WriteString(%s); err != nil {", fieldAccess)
			g.In()
			errorReturn(g, field.Name, rt, false)
			g.Out()
			g.P("}")
		case classCustom:
			g.P("if err := %s.MarshalCDR(e); err != nil {", fieldAccess)
			g.In()
			errorReturn(g, field.Name, rt, false)
			g.Out()
			g.P("}")
		}
		return
	}

	if !isFixedArray(field) {
		if isBoundedArray(field) {
			g.P("if err := cdr.CheckBound(len(%s), %d); err != nil {", fieldAccess, arraySize(field))
			g.In()
			g.P(`return fmt.Errorf("%s: %%w", err)`, field.Name)
			g.Out()
			g.P("}")
		}
		g.P("if err := e.WriteSequenceLength(len(%s)); err != nil {", fieldAccess)
		g.In()
		g.P(`return fmt.Errorf("%s: %%w", err)`, field.Name)
		g.Out()
		g.P("}")
	}

	switch rt.class {
	case classPrimitive:
		if rt.prim.isByte() {
			if isFixedArray(field) {
				g.P("e.WriteBytes(%s[:])", fieldAccess)
			} else {
				g.P("e.WriteBytes(%s)", fieldAccess)
			}
			return
		}
		g.P("for _, v := range %s {", fieldAccess)
		g.In()
		g.P("e.Write%s(v)", rt.prim.method)
		g.Out()
		g.P("}")
	case classString:
		g.P("for i, v := range %s {", fieldAccess)
		g.In()
		g.P("if err := e.WriteString(v); err != nil {")
		g.In()
		errorReturn(g, field.Name, rt, true)
		g.Out()
		g.P("}")
		g.Out()
		g.P("}")
	case classCustom:
		g.P("for i := range %s {", fieldAccess)
		g.In()
		g.P("if err := %s[i].MarshalCDR(e); err != nil {", fieldAccess)
		g.In()
		errorReturn(g, field.Name, rt, true)
		g.Out()
		g.P("}")
		g.Out()
		g.P("}")
	}
}

func generateUnpackField(g *CodeBuilder, field FieldDefinition) {
	fieldAccess := fmt.Sprintf("m.%s", goFieldName(field.Name))
	rt := resolveFieldType(field.FieldType)

	g.P("// %s", field.Name)
	if !field.IsArray {
		switch rt.class {
		case classPrimitive, classString:
			method := "String"
			if rt.class == classPrimitive {
				method = rt.prim.method
			}
			g.P("if %s, err = d.Read%s(); err != nil {", fieldAccess, method)
		case classCustom:
			g.P("if err := %s.UnmarshalCDR(d); err != nil {", fieldAccess)
		}
		g.In()
		errorReturn(g, field.Name, rt, false)
		g.Out()
		g.P("}")
		return
	}

	if isFixedArray(field) {
		if rt.class == classPrimitive && rt.prim.isByte() {
			g.P("{")
			g.In()
			g.P("b, err := d.ReadBytes(%d)", arraySize(field))
			g.P("if err != nil {")
			g.In()
			errorReturn(g, field.Name, rt, false)
			g.Out()
			g.P("}")
			g.P("copy(%s[:], b)", fieldAccess)
			g.Out()
			g.P("}")
			return
		}
		generateElementUnpack(g, field, fieldAccess, rt)
		return
	}

	g.P("{")
	g.In()
	g.P("n, err := d.ReadSequenceLength()")
	g.P("if err != nil {")
	g.In()
	g.P(`return fmt.Errorf("%s: %%w", err)`, field.Name)
	g.Out()
	g.P("}")
	if isBoundedArray(field) {
		g.P("if err := cdr.CheckBound(n, %d); err != nil {", arraySize(field))
		g.In()
		g.P(`return fmt.Errorf("%s: %%w", err)`, field.Name)
		g.Out()
		g.P("}")
	}
	if rt.class == classPrimitive && rt.prim.isByte() {
		g.P("if %s, err = d.ReadBytes(n); err != nil {", fieldAccess)
		g.In()
		g.P(`return fmt.Errorf("%s: %%w", err)`, field.Name)
		g.Out()
		g.P("}")
	} else {
		g.P("%s = make(%s, n)", fieldAccess, fieldToGoTypeInPkg(field, g.currentPkg))
		generateElementUnpack(g, field, fieldAccess, rt)
	}
	g.Out()
	g.P("}")
}

func generateElementUnpack(g *CodeBuilder, field FieldDefinition, fieldAccess string, rt resolvedType) {
	g.P("for i := range %s {", fieldAccess)
	g.In()
	switch rt.class {
	case classPrimitive, classString:
		method := "String"
		if rt.class == classPrimitive {
			method = rt.prim.method
		}
		g.P("v, err := d.Read%s()", method)
		g.P("if err != nil {")
		g.In()
		errorReturn(g, field.Name, rt, true)
		g.Out()
		g.P("}")
		g.P("%s[i] = v", fieldAccess)
	case classCustom:
		g.P("if err := %s[i].UnmarshalCDR(d); err != nil {", fieldAccess)
		g.In()
		errorReturn(g, field.Name, rt, true)
		g.Out()
		g.P("}")
	}
	g.Out()
	g.P("}")
}

func generateSerializedSizeMethod(g *CodeBuilder, spec messageSpec) {
	g.P("// GetSerializedSize returns the number of bytes MarshalCDR writes when")
	g.P("// the payload so far is currentAlignment bytes long")
	g.P("func (m *%s) GetSerializedSize(currentAlignment int) int {", spec.GoName)
	g.In()
	g.P("initialAlignment := currentAlignment")
	g.P("")
	for _, field := range spec.Fields {
		generateSizeField(g, field)
	}
	g.P("return currentAlignment - initialAlignment")
	g.Out()
	g.P("}")
	g.P("")
}

func generateSizeField(g *CodeBuilder, field FieldDefinition) {
	fieldAccess := fmt.Sprintf("m.%s", goFieldName(field.Name))
	rt := resolveFieldType(field.FieldType)

	g.P("// %s", field.Name)
	if !field.IsArray {
		switch rt.class {
		case classPrimitive:
			primitiveSize(g, rt.prim, "")
		case classString:
			g.P("currentAlignment += 4 + cdr.Alignment(currentAlignment, 4) + len(%s) + 1", fieldAccess)
		case classCustom:
			g.P("currentAlignment += %s.GetSerializedSize(currentAlignment)", fieldAccess)
		}
		return
	}

	if !isFixedArray(field) {
		g.P("currentAlignment += 4 + cdr.Alignment(currentAlignment, 4)")
	}
	switch rt.class {
	case classPrimitive:
		switch {
		case rt.prim.size == 1:
			g.P("currentAlignment += len(%s)", fieldAccess)
		case isFixedArray(field):
			primitiveSize(g, rt.prim, strconv.Itoa(arraySize(field)))
		default:
			g.P("if n := len(%s); n > 0 {", fieldAccess)
			g.In()
			primitiveSize(g, rt.prim, "n")
			g.Out()
			g.P("}")
		}
	case classString:
		g.P("for _, s := range %s {", fieldAccess)
		g.In()
		g.P("currentAlignment += 4 + cdr.Alignment(currentAlignment, 4) + len(s) + 1")
		g.Out()
		g.P("}")
	case classCustom:
		g.P("for i := range %s {", fieldAccess)
		g.In()
		g.P("currentAlignment += %s[i].GetSerializedSize(currentAlignment)", fieldAccess)
		g.Out()
		g.P("}")
	}
}

// primitiveSize emits the size of count consecutive primitives; an empty
// count means a single value. Only the first element can need padding.
func primitiveSize(g *CodeBuilder, p primitive, count string) {
	switch {
	case count == "" && p.size == 1:
		g.P("currentAlignment++")
	case count == "":
		g.P("currentAlignment += %d + cdr.Alignment(currentAlignment, %d)", p.size, p.size)
	case p.size == 1:
		g.P("currentAlignment += %s", count)
	default:
		g.P("currentAlignment += cdr.Alignment(currentAlignment, %d) + %s*%d", p.size, count, p.size)
	}
}

func generateMaxSerializedSize(g *CodeBuilder, spec messageSpec) {
	g.P("// MaxSerializedSize%s returns the worst-case payload size of %s", spec.GoName, spec.GoName)
	g.P("// starting at currentAlignment, and whether that size is a true upper bound.")
	g.P("// Unbounded sequences and strings are counted as empty.")
	g.P("func MaxSerializedSize%s(currentAlignment int) (int, bool) {", spec.GoName)
	g.In()
	g.P("initialAlignment := currentAlignment")
	g.P("fullBounded := true")
	g.P("")
	for _, field := range spec.Fields {
		generateMaxSizeField(g, field)
	}
	g.P("return currentAlignment - initialAlignment, fullBounded")
	g.Out()
	g.P("}")
	g.P("")
}

func generateMaxSizeField(g *CodeBuilder, field FieldDefinition) {
	rt := resolveFieldType(field.FieldType)

	g.P("// %s", field.Name)
	count := 1
	if field.IsArray {
		switch field.ArrayKind {
		case ArrayKindFixed:
			count = arraySize(field)
		case ArrayKindBounded:
			count = arraySize(field)
			g.P("currentAlignment += 4 + cdr.Alignment(currentAlignment, 4)")
		default:
			g.P("fullBounded = false")
			g.P("currentAlignment += 4 + cdr.Alignment(currentAlignment, 4)")
			return
		}
	}

	switch rt.class {
	case classPrimitive:
		if field.IsArray {
			primitiveSize(g, rt.prim, strconv.Itoa(count))
		} else {
			primitiveSize(g, rt.prim, "")
		}
	case classString:
		g.P("fullBounded = false")
		if count == 1 && !field.IsArray {
			g.P("currentAlignment += 4 + cdr.Alignment(currentAlignment, 4) + 1")
			return
		}
		g.P("for i := 0; i < %d; i++ {", count)
		g.In()
		g.P("currentAlignment += 4 + cdr.Alignment(currentAlignment, 4) + 1")
		g.Out()
		g.P("}")
	case classCustom:
		maxFunc := fmt.Sprintf("%sMaxSerializedSize%s", rt.qualifier(g.currentPkg), rt.name)
		if !field.IsArray {
			g.P("{")
		} else {
			g.P("for i := 0; i < %d; i++ {", count)
		}
		g.In()
		g.P("size, bounded := %s(currentAlignment)", maxFunc)
		g.P("currentAlignment += size")
		g.P("fullBounded = fullBounded && bounded")
		g.Out()
		g.P("}")
	}
}

func generateTypeSupport(g *CodeBuilder, spec messageSpec) {
	name := spec.GoName
	callbacksVar := lowerFirst(name) + "TypeSupportCallbacks"
	handleVar := lowerFirst(name) + "TypeSupport"

	g.P("var %s = rosz.MessageTypeSupportCallbacks{", callbacksVar)
	g.In()
	g.P("MessageNamespace: %q,", spec.Namespace)
	g.P("MessageName: %q,", spec.RosName)
	g.P("New: func() rosz.CDRMessage { return &%s{} },", name)
	g.P("Serialize: func(msg rosz.Message, e *cdr.Encoder) error {")
	g.In()
	typedMessage(g, name, "err")
	g.P("return typed.MarshalCDR(e)")
	g.Out()
	g.P("},")
	g.P("Deserialize: func(d *cdr.Decoder, msg rosz.Message) error {")
	g.In()
	typedMessage(g, name, "err")
	g.P("return typed.UnmarshalCDR(d)")
	g.Out()
	g.P("},")
	g.P("SerializedSize: func(msg rosz.Message) (uint32, error) {")
	g.In()
	typedMessage(g, name, "0, err")
	g.P("return uint32(typed.GetSerializedSize(0)), nil")
	g.Out()
	g.P("},")
	g.P("MaxSerializedSize: func() (int, bool) { return MaxSerializedSize%s(0) },", name)
	g.Out()
	g.P("}")
	g.P("")

	g.P("var %s = rosz.MessageTypeSupport{", handleVar)
	g.In()
	g.P("Identifier: rosz.TypesupportIdentifier,")
	g.P("Callbacks: &%s,", callbacksVar)
	g.Out()
	g.P("}")
	g.P("")

	g.P("// %sTypeSupport returns the type-support handle of %s", name, name)
	g.P("func %sTypeSupport() *rosz.MessageTypeSupport {", name)
	g.In()
	g.P("return &%s", handleVar)
	g.Out()
	g.P("}")
	g.P("")

	g.P("func init() {")
	g.In()
	g.P("rosz.MustRegisterMessageTypeSupport(&%s)", handleVar)
	g.Out()
	g.P("}")
	g.P("")
}

// typedMessage emits the type assertion shared by the callbacks; ret is the
// return list with "err" standing for the mismatch error.
func typedMessage(g *CodeBuilder, name, ret string) {
	g.P("typed, ok := msg.(*%s)", name)
	g.P("if !ok {")
	g.In()
	g.P("return %s", strings.Replace(ret, "err", fmt.Sprintf("rosz.NewTypeMismatchError(%s_DataType, msg)", name), 1))
	g.Out()
	g.P("}")
}

func fieldToGoType(field FieldDefinition) string {
	return fieldToGoTypeInPkg(field, "")
}

func fieldToGoTypeInPkg(field FieldDefinition, currentPkg string) string {
	var baseType string

	rt := resolveFieldType(field.FieldType)
	switch rt.class {
	case classPrimitive:
		baseType = rt.prim.goType
		if baseType == "" {
			baseType = "interface{}"
		}
	case classString:
		baseType = "string"
	case classCustom:
		baseType = rt.qualifier(currentPkg) + rt.name
	}

	if field.IsArray {
		if isFixedArray(field) {
			return fmt.Sprintf("[%d]%s", arraySize(field), baseType)
		}
		return "[]" + baseType
	}

	return baseType
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// goFieldName converts a snake_case ROS field name to an exported Go name,
// e.g. "class_name" to "ClassName".
func goFieldName(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(capitalize(p))
	}
	if b.Len() == 0 {
		return capitalize(s)
	}
	return b.String()
}

func lowerFirst(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func sanitizePackageName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
