package schema

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// FieldError represents a single structural violation with its location.
type FieldError struct {
	Path     string // JSON-path style field location (e.g., "practices[0].id")
	Message  string // Human-readable error description
	Expected string // What was expected (type, value, format)
	Actual   string // What was found
	Hint     string // Suggestion for fixing the error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Result represents the outcome of a structural schema check.
type Result struct {
	Valid  bool
	Errors []*FieldError
}

// AddError adds a structural violation to the result.
func (r *Result) AddError(err *FieldError) {
	r.Errors = append(r.Errors, err)
	r.Valid = false
}

// Validate checks a raw parsed JSON value against the schema. Violations are
// collected in the result; the error return is reserved for a malformed
// schema description (e.g. an invalid pattern), which aborts the pass.
func Validate(value any, s Schema) (*Result, error) {
	result := &Result{Valid: true}

	root, ok := value.(map[string]any)
	if !ok {
		result.AddError(&FieldError{
			Path:     "",
			Message:  "expected a JSON object at document root",
			Expected: "object",
			Actual:   typeName(value),
			Hint:     "The document must be a JSON object with practices, dependencies, and metadata fields",
		})
		return result, nil
	}

	if err := validateFields(root, s.Fields, "", result); err != nil {
		return nil, err
	}
	return result, nil
}

// validateFields checks an object's fields against their descriptors.
func validateFields(obj map[string]any, fields []SchemaField, path string, result *Result) error {
	for i := range fields {
		f := &fields[i]
		fieldPath := joinPath(path, f.Name)

		value, present := obj[f.Name]
		if !present || value == nil {
			if f.Required {
				result.AddError(&FieldError{
					Path:    fieldPath,
					Message: fmt.Sprintf("missing required field: %s", f.Name),
					Hint:    fmt.Sprintf("Add the '%s' field", f.Name),
				})
			}
			continue
		}

		if err := validateValue(value, f, fieldPath, result); err != nil {
			return err
		}
	}
	return nil
}

// validateValue checks a single value against its field descriptor.
func validateValue(value any, f *SchemaField, path string, result *Result) error {
	switch f.Type {
	case FieldTypeString:
		s, ok := value.(string)
		if !ok {
			addTypeError(result, path, "string", value)
			return nil
		}
		if len(f.Enum) > 0 && !contains(f.Enum, s) {
			result.AddError(&FieldError{
				Path:     path,
				Message:  fmt.Sprintf("invalid value for field '%s'", path),
				Expected: fmt.Sprintf("one of: %s", strings.Join(f.Enum, ", ")),
				Actual:   fmt.Sprintf("'%s'", s),
				Hint:     fmt.Sprintf("Use one of the valid values: %s", strings.Join(f.Enum, ", ")),
			})
			return nil
		}
		if f.Pattern != "" {
			re, err := regexp.Compile(f.Pattern)
			if err != nil {
				return fmt.Errorf("schema field %s: invalid pattern %q: %w", path, f.Pattern, err)
			}
			if !re.MatchString(s) {
				result.AddError(&FieldError{
					Path:     path,
					Message:  fmt.Sprintf("value does not match required format for '%s'", path),
					Expected: fmt.Sprintf("pattern %s", f.Pattern),
					Actual:   fmt.Sprintf("'%s'", s),
					Hint:     patternHint(f.Pattern),
				})
			}
		}

	case FieldTypeInt:
		if !isInteger(value) {
			addTypeError(result, path, "integer", value)
		}

	case FieldTypeBool:
		if _, ok := value.(bool); !ok {
			addTypeError(result, path, "bool", value)
		}

	case FieldTypeArray:
		arr, ok := value.([]any)
		if !ok {
			addTypeError(result, path, "array", value)
			return nil
		}
		return validateElements(arr, f, path, result)

	case FieldTypeObject:
		obj, ok := value.(map[string]any)
		if !ok {
			addTypeError(result, path, "object", value)
			return nil
		}
		return validateFields(obj, f.Children, path, result)

	default:
		return fmt.Errorf("schema field %s: unknown field type %q", path, f.Type)
	}
	return nil
}

// validateElements checks the elements of an array field. Arrays with
// Children hold objects; arrays with Elem hold scalars of that type.
func validateElements(arr []any, f *SchemaField, path string, result *Result) error {
	for i, elem := range arr {
		elemPath := fmt.Sprintf("%s[%d]", path, i)

		if len(f.Children) > 0 {
			obj, ok := elem.(map[string]any)
			if !ok {
				addTypeError(result, elemPath, "object", elem)
				continue
			}
			if err := validateFields(obj, f.Children, elemPath, result); err != nil {
				return err
			}
			continue
		}

		if f.Elem != "" {
			elemField := SchemaField{Name: f.Name, Type: f.Elem}
			if err := validateValue(elem, &elemField, elemPath, result); err != nil {
				return err
			}
		}
	}
	return nil
}

// addTypeError records a wrong-type violation.
func addTypeError(result *Result, path, expected string, value any) {
	result.AddError(&FieldError{
		Path:     path,
		Message:  fmt.Sprintf("wrong type for field '%s'", path),
		Expected: expected,
		Actual:   typeName(value),
		Hint:     fmt.Sprintf("Change '%s' to be a %s", path, expected),
	})
}

// isInteger reports whether a parsed JSON value is an integral number.
func isInteger(value any) bool {
	switch n := value.(type) {
	case json.Number:
		_, err := n.Int64()
		return err == nil
	case float64:
		return n == float64(int64(n))
	default:
		return false
	}
}

// typeName converts a parsed JSON value to a human-readable type name.
func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

// joinPath appends a field name to a JSON path.
func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// patternHint maps the well-known document patterns to friendlier hints.
func patternHint(pattern string) string {
	switch pattern {
	case KebabCasePattern:
		return "Use kebab-case: lowercase letters and digits joined by single hyphens (e.g. 'trunk-based-development')"
	case SemverPattern:
		return "Use a semantic version like '1.2.0'"
	case ISODatePattern:
		return "Use an ISO date like '2025-06-30'"
	default:
		return fmt.Sprintf("Value must match pattern %s", pattern)
	}
}
