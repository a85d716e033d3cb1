package lower

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/lltypes/schema"
)

// Target names a lowering target.
type Target uint8

const (
	TargetArray Target = iota
	TargetIR
	TargetNative
	TargetWIT
)

var targetNames = [...]string{
	TargetArray:  "array",
	TargetIR:     "ir",
	TargetNative: "native",
	TargetWIT:    "wit",
}

func (t Target) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return "unknown"
}

// Targets lists every target in a stable order.
var Targets = []Target{TargetArray, TargetIR, TargetNative, TargetWIT}

// ParseTarget resolves a target name.
func ParseTarget(name string) (Target, bool) {
	for _, t := range Targets {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// Warning reports a lossy but successful lowering. It never changes the
// lowered result.
type Warning struct {
	Node    schema.Type
	Message string
	Path    []string
	Target  Target
}

func (w Warning) String() string {
	return w.Target.String() + ": " + strings.Join(w.Path, ".") + ": " + w.Message
}

func (c *Compiler) warn(target Target, node schema.Type, path []string, msg string) {
	w := Warning{
		Target:  target,
		Path:    append([]string(nil), path...),
		Node:    node,
		Message: msg,
	}
	c.opts.logger().Warn(msg,
		zap.Stringer("target", target),
		zap.Strings("path", w.Path),
		zap.Stringer("node", node),
	)
	if c.opts.Warn != nil {
		c.opts.Warn(w)
	}
}
