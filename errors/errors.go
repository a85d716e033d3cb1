package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseSchema Phase = "schema" // node construction
	PhaseArray  Phase = "array"  // array descriptor lowering
	PhaseIR     Phase = "ir"     // IR type lowering
	PhaseNative Phase = "native" // native layout lowering and enum instances
	PhaseWIT    Phase = "wit"    // component-model type lowering
	PhaseParse  Phase = "parse"  // schema documents
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedSchema Kind = "malformed_schema"
	KindNoArrayMapping  Kind = "no_array_mapping"
	KindNoIRMapping     Kind = "no_ir_mapping"
	KindNoNativeMapping Kind = "no_native_mapping"
	KindNoWITMapping    Kind = "no_wit_mapping"
	KindRangeViolation  Kind = "range_violation"
	KindInvalidInput    Kind = "invalid_input"
	KindUnsupported     Kind = "unsupported"
)

// Sentinels for errors.Is. They carry only a kind, so they match an error
// of that kind raised in any phase.
var (
	ErrMalformedSchema = &Error{Kind: KindMalformedSchema}
	ErrNoArrayMapping  = &Error{Kind: KindNoArrayMapping}
	ErrNoIRMapping     = &Error{Kind: KindNoIRMapping}
	ErrNoNativeMapping = &Error{Kind: KindNoNativeMapping}
	ErrNoWITMapping    = &Error{Kind: KindNoWITMapping}
	ErrRangeViolation  = &Error{Kind: KindRangeViolation}
)

// Error is the structured error type used throughout the module.
type Error struct {
	// Node is the schema node the error is attributed to, if any.
	Node   any
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Schema string // rendering of Node
	Target string // target type involved, e.g. "c_long" or "i64"
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Schema != "" || e.Target != "" {
		b.WriteString(": ")
		switch {
		case e.Schema != "" && e.Target != "":
			b.WriteString(e.Schema)
			b.WriteString(" -> ")
			b.WriteString(e.Target)
		case e.Schema != "":
			b.WriteString(e.Schema)
		default:
			b.WriteString("target ")
			b.WriteString(e.Target)
		}
	}

	if e.Detail != "" {
		if e.Schema != "" || e.Target != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target without a phase
// matches on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase == "" {
		return e.Kind == t.Kind
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the name path from the schema root
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Node sets the offending node. If the node implements fmt.Stringer its
// rendering is recorded as well.
func (b *Builder) Node(n any) *Builder {
	b.err.Node = n
	if s, ok := n.(fmt.Stringer); ok && n != nil {
		b.err.Schema = s.String()
	}
	return b
}

// Target sets the target type name
func (b *Builder) Target(t string) *Builder {
	b.err.Target = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedSchema creates a construction-time validation error
func MalformedSchema(path []string, value any, detail string) *Error {
	return &Error{
		Phase:  PhaseSchema,
		Kind:   KindMalformedSchema,
		Path:   path,
		Value:  value,
		Detail: detail,
	}
}

// NoMapping creates the no-mapping error of the given lowering phase,
// attributed to node.
func NoMapping(phase Phase, node any, path []string, detail string) *Error {
	return New(phase, noMappingKind(phase)).
		Node(node).
		Path(path...).
		Detail(detail).
		Build()
}

func noMappingKind(phase Phase) Kind {
	switch phase {
	case PhaseArray:
		return KindNoArrayMapping
	case PhaseIR:
		return KindNoIRMapping
	case PhaseNative:
		return KindNoNativeMapping
	case PhaseWIT:
		return KindNoWITMapping
	default:
		return KindUnsupported
	}
}

// NoArrayMapping creates an array descriptor lowering error
func NoArrayMapping(node any, path []string, detail string) *Error {
	return NoMapping(PhaseArray, node, path, detail)
}

// NoIRMapping creates an IR type lowering error
func NoIRMapping(node any, path []string, detail string) *Error {
	return NoMapping(PhaseIR, node, path, detail)
}

// NoNativeMapping creates a native layout lowering error
func NoNativeMapping(node any, path []string, detail string) *Error {
	return NoMapping(PhaseNative, node, path, detail)
}

// NoWITMapping creates a component-model type lowering error
func NoWITMapping(node any, path []string, detail string) *Error {
	return NoMapping(PhaseWIT, node, path, detail)
}

// RangeViolation creates an error for a value outside an enumeration
func RangeViolation(enumName string, value any) *Error {
	return &Error{
		Phase:  PhaseNative,
		Kind:   KindRangeViolation,
		Target: enumName,
		Detail: fmt.Sprintf("value %v is not a member of %s", value, enumName),
		Value:  value,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Path:   path,
		Detail: detail,
	}
}

// ParseFailed creates a document parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidInput,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}

// Prepend returns a copy of err with prefix placed in front of its path.
// Errors of other types are returned unchanged.
func Prepend(err error, prefix ...string) error {
	e, ok := err.(*Error)
	if !ok || len(prefix) == 0 {
		return err
	}
	cp := *e
	cp.Path = append(append([]string(nil), prefix...), e.Path...)
	return &cp
}
