package report

import (
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvpath/core"
)

// Option configures a renderer.
type Option func(*options)

type options struct {
	thousands bool
}

// WithThousands formats distances with thousands separators.
func WithThousands() Option {
	return func(o *options) { o.thousands = true }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// distance renders a finite distance, or "INF" for core.Infinity.
func (o options) distance(d int64) string {
	if d == core.Infinity {
		return "INF"
	}
	if o.thousands {
		return humanize.Comma(d)
	}

	return strconv.FormatInt(d, 10)
}
