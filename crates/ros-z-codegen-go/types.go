package main

// ExpectedVersion is the manifest schema version this generator understands.
const ExpectedVersion = 1

// CodegenManifest is the parsed interface description consumed by the
// generator. It is read from JSON or YAML.
type CodegenManifest struct {
	Version  uint32              `json:"version" yaml:"version"`
	Messages []MessageDefinition `json:"messages" yaml:"messages"`
	Services []ServiceDefinition `json:"services" yaml:"services"`
	Actions  []ActionDefinition  `json:"actions" yaml:"actions"`
}

type MessageDefinition struct {
	Package   string               `json:"package" yaml:"package"`
	Name      string               `json:"name" yaml:"name"`
	FullName  string               `json:"full_name" yaml:"full_name"`
	TypeHash  string               `json:"type_hash" yaml:"type_hash"`
	Fields    []FieldDefinition    `json:"fields" yaml:"fields"`
	Constants []ConstantDefinition `json:"constants" yaml:"constants"`
}

// Array kinds of FieldDefinition.ArrayKind
const (
	ArrayKindFixed     = "fixed"
	ArrayKindBounded   = "bounded"
	ArrayKindUnbounded = "unbounded"
)

type FieldDefinition struct {
	Name      string    `json:"name" yaml:"name"`
	FieldType FieldType `json:"field_type" yaml:"field_type"`
	IsArray   bool      `json:"is_array" yaml:"is_array"`
	// ArrayKind is one of the ArrayKind constants; empty means unbounded
	ArrayKind    string       `json:"array_kind" yaml:"array_kind"`
	ArraySize    *uint        `json:"array_size,omitempty" yaml:"array_size,omitempty"`
	DefaultValue *interface{} `json:"default_value,omitempty" yaml:"default_value,omitempty"`
}

type FieldType struct {
	Kind    string  `json:"kind" yaml:"kind"`
	Package *string `json:"package,omitempty" yaml:"package,omitempty"`
	Name    *string `json:"name,omitempty" yaml:"name,omitempty"`
}

type ConstantDefinition struct {
	Name      string `json:"name" yaml:"name"`
	ConstType string `json:"const_type" yaml:"const_type"`
	Value     string `json:"value" yaml:"value"`
}

type ServiceDefinition struct {
	Package  string            `json:"package" yaml:"package"`
	Name     string            `json:"name" yaml:"name"`
	FullName string            `json:"full_name" yaml:"full_name"`
	TypeHash string            `json:"type_hash" yaml:"type_hash"`
	Request  MessageDefinition `json:"request" yaml:"request"`
	Response MessageDefinition `json:"response" yaml:"response"`
}

type ActionDefinition struct {
	Package             string             `json:"package" yaml:"package"`
	Name                string             `json:"name" yaml:"name"`
	FullName            string             `json:"full_name" yaml:"full_name"`
	TypeHash            string             `json:"type_hash" yaml:"type_hash"`
	SendGoalHash        string             `json:"send_goal_hash" yaml:"send_goal_hash"`
	GetResultHash       string             `json:"get_result_hash" yaml:"get_result_hash"`
	CancelGoalHash      string             `json:"cancel_goal_hash" yaml:"cancel_goal_hash"`
	FeedbackMessageHash string             `json:"feedback_message_hash" yaml:"feedback_message_hash"`
	StatusHash          string             `json:"status_hash" yaml:"status_hash"`
	Goal                MessageDefinition  `json:"goal" yaml:"goal"`
	Result              *MessageDefinition `json:"result,omitempty" yaml:"result,omitempty"`
	Feedback            *MessageDefinition `json:"feedback,omitempty" yaml:"feedback,omitempty"`
}
