// Package tradeplot builds the interactive trade model figure and exports it
// as a standalone HTML document.
package tradeplot

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/output"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/runtime"
)

// DefaultOutputPath is the document written when no path is given.
const DefaultOutputPath = "interactive_trade_model.html"

// RuntimeMode represents how the plotly.js runtime reaches the document.
type RuntimeMode string

const (
	// RuntimeInline embeds the bundle in the document.
	RuntimeInline RuntimeMode = "inline"
	// RuntimeCDN references the pinned bundle on the plotly CDN.
	RuntimeCDN RuntimeMode = "cdn"
)

// ParseRuntimeMode parses a runtime mode name.
func ParseRuntimeMode(s string) (RuntimeMode, error) {
	switch RuntimeMode(strings.ToLower(strings.TrimSpace(s))) {
	case RuntimeInline, "":
		return RuntimeInline, nil
	case RuntimeCDN:
		return RuntimeCDN, nil
	default:
		return "", fmt.Errorf("%w: %s (must be inline or cdn)", ErrInvalidRuntimeMode, s)
	}
}

// Options configures export behavior.
type Options struct {
	// Runtime specifies how plotly.js is included (inline, cdn).
	Runtime RuntimeMode
	// PlotlyJSPath is the bundle read in inline mode. When empty, the embedded
	// bundle or runtime.DefaultPath is used, and the CDN is referenced if
	// neither exists.
	PlotlyJSPath string
	// RuntimeBundle, when set, is inlined instead of reading PlotlyJSPath.
	RuntimeBundle []byte
	// CDNURL is the script src used in cdn mode.
	CDNURL string
	// DivID overrides the derived plot element id.
	DivID string
	// JSONPath, when set, also receives the figure as indented JSON.
	JSONPath string
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{
		Runtime: RuntimeInline,
		CDNURL:  runtime.DefaultCDNURL,
	}
}

// htmlOptions resolves the runtime and returns document options.
func (o Options) htmlOptions() (output.HTMLOptions, error) {
	opts := output.HTMLOptions{DivID: o.DivID}
	switch o.Runtime {
	case RuntimeInline, "":
		bundle := o.RuntimeBundle
		if len(bundle) == 0 {
			data, ok, err := runtime.Resolve(o.PlotlyJSPath)
			if err != nil {
				return opts, err
			}
			if !ok {
				opts.RuntimeURL = o.cdnURL()
				slog.Warn("no plotly.js bundle to inline, referencing the CDN",
					"url", opts.RuntimeURL,
					"hint", "run `tradeplot fetch-runtime`",
				)
				return opts, nil
			}
			bundle = data
		}
		opts.Runtime = bundle
	case RuntimeCDN:
		opts.RuntimeURL = o.cdnURL()
	default:
		return opts, fmt.Errorf("%w: %s", ErrInvalidRuntimeMode, o.Runtime)
	}
	return opts, nil
}

func (o Options) cdnURL() string {
	if o.CDNURL == "" {
		return runtime.DefaultCDNURL
	}
	return o.CDNURL
}
