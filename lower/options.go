package lower

import (
	"go.uber.org/zap"

	"github.com/wippyai/lltypes/native"
)

// Options configures lowering.
type Options struct {
	// ABI fixes native widths, byte order and the IR string length width.
	ABI native.ABI
	// Logger receives warnings. Nil uses the package logger.
	Logger *zap.Logger
	// Warn is called for every warning, in emission order.
	Warn func(Warning)
}

// DefaultOptions returns options for the running host.
func DefaultOptions() Options {
	return Options{
		ABI: native.HostABI(),
	}
}

func (o *Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return Logger()
}
