package runtime

import (
	"embed"
	"errors"
)

// assets holds files compiled into the binary. A bundle saved as
// assets/plotly.min.js before the build is inlined without any file lookup.
//
//go:embed assets
var assets embed.FS

const embeddedBundle = "assets/plotly.min.js"

// Embedded returns the bundle compiled into the binary, if any.
func Embedded() ([]byte, bool) {
	data, err := assets.ReadFile(embeddedBundle)
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

// Resolve returns the bundle to inline. An explicit path must be readable.
// Without one the embedded bundle is used, then the file at DefaultPath.
// ok is false when no bundle is available.
func Resolve(path string) (data []byte, ok bool, err error) {
	if path != "" {
		data, err := Load(path)
		if err != nil {
			return nil, false, err
		}
		return data, true, nil
	}

	if data, ok := Embedded(); ok {
		return data, true, nil
	}

	data, err = Load(DefaultPath)
	switch {
	case err == nil:
		return data, true, nil
	case errors.Is(err, ErrBundleNotFound):
		return nil, false, nil
	default:
		return nil, false, err
	}
}
