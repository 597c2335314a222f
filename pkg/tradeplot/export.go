package tradeplot

import (
	"log/slog"
	"os"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/output"
)

// Export builds the figure and writes it to path, replacing any existing file.
func Export(path string, opts Options) error {
	if path == "" {
		path = DefaultOutputPath
	}
	fig, err := BuildFigure()
	if err != nil {
		return NewExportError("build", path, err)
	}
	if err := WriteHTML(path, fig, opts); err != nil {
		return err
	}
	if opts.JSONPath != "" {
		return WriteJSON(opts.JSONPath, fig)
	}
	return nil
}

// WriteJSON writes fig to path as indented plotly figure JSON.
func WriteJSON(path string, fig *models.Figure) error {
	data, err := output.ToJSON(fig, true)
	if err != nil {
		return NewExportError("render", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return NewExportError("write", path, err)
	}
	slog.Info("figure JSON written", "path", path, "bytes", len(data))
	return nil
}

// WriteHTML writes fig to path as a standalone HTML document.
func WriteHTML(path string, fig *models.Figure, opts Options) error {
	htmlOpts, err := opts.htmlOptions()
	if err != nil {
		return NewExportError("runtime", path, err)
	}

	data, err := output.RenderHTML(fig, htmlOpts)
	if err != nil {
		return NewExportError("render", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return NewExportError("write", path, err)
	}

	slog.Info("figure written", "path", path, "bytes", len(data), "runtime", string(opts.Runtime))
	return nil
}
