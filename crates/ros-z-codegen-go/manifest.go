package main

import (
	"fmt"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// LoadManifest parses a JSON or YAML manifest. JSON documents are valid YAML,
// so both go through the same decoder.
func LoadManifest(data []byte) (*CodegenManifest, error) {
	var manifest CodegenManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &manifest, nil
}

// Validate reports every problem in the manifest at once.
func (m *CodegenManifest) Validate() error {
	var err error
	if m.Version != ExpectedVersion {
		err = multierr.Append(err, fmt.Errorf("version mismatch: got %d, expected %d", m.Version, ExpectedVersion))
	}

	seen := map[string]bool{}
	for _, msg := range m.Messages {
		key := msg.Package + "/" + msg.Name
		if seen[key] {
			err = multierr.Append(err, fmt.Errorf("message %s defined twice", key))
		}
		seen[key] = true
		err = multierr.Append(err, validateMessage(msg))
	}
	for _, srv := range m.Services {
		if srv.Package == "" || srv.Name == "" {
			err = multierr.Append(err, fmt.Errorf("service %q: package and name are required", srv.FullName))
		}
		err = multierr.Append(err, validateMessage(srv.Request))
		err = multierr.Append(err, validateMessage(srv.Response))
	}
	for _, action := range m.Actions {
		if action.Package == "" || action.Name == "" {
			err = multierr.Append(err, fmt.Errorf("action %q: package and name are required", action.FullName))
		}
		err = multierr.Append(err, validateMessage(action.Goal))
		if action.Result != nil {
			err = multierr.Append(err, validateMessage(*action.Result))
		}
		if action.Feedback != nil {
			err = multierr.Append(err, validateMessage(*action.Feedback))
		}
	}
	return err
}

func validateMessage(msg MessageDefinition) error {
	if msg.Package == "" || msg.Name == "" {
		return fmt.Errorf("message %q: package and name are required", msg.FullName)
	}
	var err error
	fields := map[string]bool{}
	for _, field := range msg.Fields {
		where := fmt.Sprintf("%s/%s.%s", msg.Package, msg.Name, field.Name)
		if field.Name == "" {
			err = multierr.Append(err, fmt.Errorf("%s: field without name", where))
			continue
		}
		if fields[field.Name] {
			err = multierr.Append(err, fmt.Errorf("%s: duplicate field", where))
		}
		fields[field.Name] = true

		switch kind := field.FieldType.Kind; {
		case kind == "Custom":
			if field.FieldType.Package == nil || field.FieldType.Name == nil {
				err = multierr.Append(err, fmt.Errorf("%s: custom type needs package and name", where))
			}
		case kind == "String", kind == "Time", kind == "Duration":
		case isPrimitive(kind):
		default:
			err = multierr.Append(err, fmt.Errorf("%s: unknown field kind %q", where, kind))
		}

		if !field.IsArray {
			continue
		}
		switch field.ArrayKind {
		case ArrayKindFixed, ArrayKindBounded:
			if field.ArraySize == nil || *field.ArraySize == 0 {
				err = multierr.Append(err, fmt.Errorf("%s: %s array needs a positive array_size", where, field.ArrayKind))
			}
		case ArrayKindUnbounded, "":
		default:
			err = multierr.Append(err, fmt.Errorf("%s: unknown array kind %q", where, field.ArrayKind))
		}
	}
	return err
}

// index returns the manifest's messages keyed by "package/Name".
func (m *CodegenManifest) index() map[string]MessageDefinition {
	idx := make(map[string]MessageDefinition, len(m.Messages))
	for _, msg := range m.Messages {
		idx[sanitizePackageName(msg.Package)+"/"+msg.Name] = msg
	}
	return idx
}
