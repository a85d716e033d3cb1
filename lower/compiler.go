package lower

import (
	"strconv"
	"sync"

	"github.com/samber/lo"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/lltypes/dtype"
	"github.com/wippyai/lltypes/errors"
	"github.com/wippyai/lltypes/ir"
	"github.com/wippyai/lltypes/native"
	"github.com/wippyai/lltypes/schema"
)

// Compiler lowers schema trees and caches each root's result per target.
// It is safe for concurrent use. Warnings are emitted only while a root is
// first lowered for a target; cached results replay none.
type Compiler struct {
	opts    Options
	dtypes  sync.Map // schema.Type -> dtype.Descr
	irs     sync.Map // schema.Type -> ir.Type
	natives sync.Map // schema.Type -> native.Type
	wits    sync.Map // schema.Type -> wit.Type
}

func NewCompiler(opts Options) *Compiler {
	return &Compiler{opts: opts}
}

// NewWithDefaults creates a compiler for the running host.
func NewWithDefaults() *Compiler {
	return NewCompiler(DefaultOptions())
}

// Options returns the configuration.
func (c *Compiler) Options() Options {
	return c.opts
}

// DType lowers t to an array descriptor.
func (c *Compiler) DType(t schema.Type) (dtype.Descr, error) {
	if t == nil {
		return nil, nilRoot(errors.PhaseArray)
	}
	if cached, ok := c.dtypes.Load(t); ok {
		return cached.(dtype.Descr), nil
	}
	d, err := c.dtype(t, nil)
	if err != nil {
		return nil, err
	}
	actual, _ := c.dtypes.LoadOrStore(t, d)
	return actual.(dtype.Descr), nil
}

// IR lowers t to an IR type.
func (c *Compiler) IR(t schema.Type) (ir.Type, error) {
	if t == nil {
		return nil, nilRoot(errors.PhaseIR)
	}
	if cached, ok := c.irs.Load(t); ok {
		return cached.(ir.Type), nil
	}
	typ, err := c.ir(t, nil)
	if err != nil {
		return nil, err
	}
	actual, _ := c.irs.LoadOrStore(t, typ)
	return actual.(ir.Type), nil
}

// Native lowers t to a native layout for the configured ABI.
func (c *Compiler) Native(t schema.Type) (native.Type, error) {
	if t == nil {
		return nil, nilRoot(errors.PhaseNative)
	}
	if cached, ok := c.natives.Load(t); ok {
		return cached.(native.Type), nil
	}
	typ, err := c.native(t, nil)
	if err != nil {
		return nil, err
	}
	actual, _ := c.natives.LoadOrStore(t, typ)
	return actual.(native.Type), nil
}

// WIT lowers t to a component-model type.
func (c *Compiler) WIT(t schema.Type) (wit.Type, error) {
	if t == nil {
		return nil, nilRoot(errors.PhaseWIT)
	}
	if cached, ok := c.wits.Load(t); ok {
		return cached.(wit.Type), nil
	}
	typ, err := c.wit(t, nil)
	if err != nil {
		return nil, err
	}
	actual, _ := c.wits.LoadOrStore(t, typ)
	return actual.(wit.Type), nil
}

// Lower dispatches to the method for target.
func (c *Compiler) Lower(target Target, t schema.Type) (any, error) {
	switch target {
	case TargetArray:
		return c.DType(t)
	case TargetIR:
		return c.IR(t)
	case TargetNative:
		return c.Native(t)
	case TargetWIT:
		return c.WIT(t)
	default:
		return nil, errors.Unsupported(errors.PhaseSchema, "unknown target "+strconv.Itoa(int(target)))
	}
}

// ToDType lowers t to an array descriptor with default options.
func ToDType(t schema.Type) (dtype.Descr, error) {
	return NewWithDefaults().DType(t)
}

// ToIR lowers t to an IR type with default options.
func ToIR(t schema.Type) (ir.Type, error) {
	return NewWithDefaults().IR(t)
}

// ToNative lowers t to a native layout for the running host.
func ToNative(t schema.Type) (native.Type, error) {
	return NewWithDefaults().Native(t)
}

// ToWIT lowers t to a component-model type with default options.
func ToWIT(t schema.Type) (wit.Type, error) {
	return NewWithDefaults().WIT(t)
}

func nilRoot(phase errors.Phase) *errors.Error {
	return errors.InvalidInput(phase, nil, "schema is nil")
}

// extend returns path with t's name appended, never sharing the backing
// array with the caller.
func extend(path []string, t schema.Type) []string {
	return append(path[:len(path):len(path)], t.Name())
}

// uniqueNames fails when two named members share a name. Unnamed members
// are not compared.
func uniqueNames(phase errors.Phase, node schema.Type, path []string, members []schema.Type) error {
	names := lo.FilterMap(members, func(m schema.Type, _ int) (string, bool) {
		return m.Name(), m.Name() != ""
	})
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return errors.NoMapping(phase, node, path, "duplicate member name "+strconv.Quote(dups[0]))
	}
	return nil
}

// attach fills in the node and path of an error raised below the lowering
// layer, such as a native size overflow.
func attach(err error, node schema.Type, path []string) error {
	e, ok := err.(*errors.Error)
	if !ok || e.Node != nil {
		return err
	}
	cp := *e
	cp.Node = node
	cp.Schema = node.String()
	cp.Path = append([]string(nil), path...)
	return &cp
}
