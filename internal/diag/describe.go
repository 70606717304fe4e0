// Package diag renders arbitrary failure values as bounded, human-readable reports
// for the debug log.
package diag

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const (
	// MaxSubErrors bounds how many members of an aggregate failure are detailed.
	MaxSubErrors = 5

	// MaxStackLines bounds every printed stack trace.
	MaxStackLines = 10

	// MaxPropertyChars bounds the serialized form of a single property.
	MaxPropertyChars = 500

	// TruncationMarker is appended to a property cut at MaxPropertyChars.
	TruncationMarker = "... [truncated]"

	// UnserializableMarker replaces a property that could not be serialized.
	UnserializableMarker = "[unserializable]"

	// maxChainDepth guards against Unwrap chains that loop.
	maxChainDepth = 100
)

// standardProps are reported through dedicated lines and skipped when listing other properties.
var standardProps = map[string]struct{}{
	"name":    {},
	"message": {},
	"stack":   {},
	"code":    {},
	"errors":  {},
}

type (
	aggregate interface{ Unwrap() []error }

	stackCarrier interface{ StackTrace() []string }

	stringCoder interface{ Code() string }

	intCoder interface{ Code() int }
)

// Describe returns a multi-line report of failure. It never panics and never
// returns an empty string, whatever the shape of failure.
func Describe(failure any) (report string) {
	defer func() {
		if r := recover(); r != nil {
			report = fmt.Sprintf("Failed to describe value of type %T: %s", failure, UnserializableMarker)
		}
	}()

	var lines []string
	if err, ok := failure.(error); ok && !isNil(failure) {
		lines = describeError(err)
	} else {
		lines = describeValue(failure)
	}

	return strings.Join(lines, "\n")
}

func describeError(err error) []string {
	lines := []string{"Error type: " + typeName(err)}

	if msg := message(err); msg != "" {
		lines = append(lines, "Error message: "+msg)
	}

	if code, ok := errorCode(err); ok {
		lines = append(lines, "Error code: "+code)
	}

	if agg, ok := err.(aggregate); ok {
		lines = append(lines, describeAggregate(agg.Unwrap())...)
	}

	if trace := stackOf(err); len(trace) > 0 {
		lines = append(lines, "Stack trace:")
		lines = append(lines, stackLines(trace)...)
	}

	return append(lines, otherProperties(err)...)
}

func describeAggregate(members []error) []string {
	lines := []string{fmt.Sprintf("Number of errors: %d", len(members))}

	kept, omitted := Truncate(members, MaxSubErrors)
	for i, member := range kept {
		lines = append(lines, fmt.Sprintf("Error %d: %s", i+1, message(member)))
		if trace := stackOf(member); len(trace) > 0 {
			lines = append(lines, fmt.Sprintf("Stack trace %d:", i+1))
			lines = append(lines, stackLines(trace)...)
		}
	}

	if omitted > 0 {
		lines = append(lines, fmt.Sprintf("... and %d more errors not shown", omitted))
	}
	return lines
}

func describeValue(v any) []string {
	if !isObjectLike(v) {
		return []string{
			"Non-error value: " + fmt.Sprintf("%v", v),
			"Type: " + typeName(v),
		}
	}

	// Composite values are only printed through boundedJSON: %v would recurse
	// forever on a map or slice that contains itself.
	return []string{
		"Non-error value: [" + typeName(v) + "]",
		"Type: " + typeName(v),
		"Properties: " + boundedJSON(v),
	}
}

// otherProperties lists the exported fields of the concrete error that are
// not covered by the dedicated report lines.
func otherProperties(err error) []string {
	v := reflect.ValueOf(err)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	var names []string
	var lines []string
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if _, skip := standardProps[strings.ToLower(field.Name)]; skip {
			continue
		}
		names = append(names, field.Name)
		lines = append(lines, field.Name+": "+boundedJSON(v.Field(i).Interface()))
	}

	if len(names) == 0 {
		return nil
	}
	return append([]string{"Other properties: " + boundedJSON(names)}, lines...)
}

// boundedJSON serializes v and clips the result at MaxPropertyChars.
func boundedJSON(v any) (out string) {
	defer func() {
		if recover() != nil {
			out = UnserializableMarker
		}
	}()

	data, err := json.Marshal(v)
	if err != nil {
		return UnserializableMarker
	}
	return clip(string(data), MaxPropertyChars)
}

func message(err error) (msg string) {
	if err == nil || isNil(err) {
		return "<nil>"
	}
	defer func() {
		if recover() != nil {
			msg = UnserializableMarker
		}
	}()
	return err.Error()
}

// errorCode walks the single-cause chain looking for a non-zero code.
func errorCode(err error) (string, bool) {
	for i, e := 0, err; e != nil && i < maxChainDepth; i, e = i+1, errors.Unwrap(e) {
		switch c := e.(type) {
		case stringCoder:
			if code := c.Code(); code != "" {
				return code, true
			}
		case intCoder:
			if code := c.Code(); code != 0 {
				return strconv.Itoa(code), true
			}
		}
	}
	return "", false
}

// stackOf returns the first stack trace found along the single-cause chain.
func stackOf(err error) []string {
	for i, e := 0, err; e != nil && i < maxChainDepth; i, e = i+1, errors.Unwrap(e) {
		if sc, ok := e.(stackCarrier); ok {
			if trace := sc.StackTrace(); len(trace) > 0 {
				return trace
			}
		}
	}
	return nil
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func isObjectLike(v any) bool {
	if isNil(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
