package output

import (
	"bytes"
	"html/template"
	"io"

	"github.com/google/uuid"
	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
)

// HTMLOptions configures standalone document generation.
type HTMLOptions struct {
	// Runtime is the plotly.js bundle to inline. When empty, RuntimeURL is referenced instead.
	Runtime []byte
	// RuntimeURL is the script src used when Runtime is empty.
	RuntimeURL string
	// DivID is the id of the plot element. When empty it is derived from the figure.
	DivID string
}

var documentTemplate = template.Must(template.New("document").Parse(`<html>
<head><meta charset="utf-8" /></head>
<body>
    <div>
        <script type="text/javascript">window.PlotlyConfig = {MathJaxConfig: 'local'};</script>
{{- if .Runtime}}
        <script type="text/javascript">{{.Runtime}}</script>
{{- else}}
        <script charset="utf-8" src="{{.RuntimeURL}}"></script>
{{- end}}
        <div id="{{.DivID}}" class="plotly-graph-div" style="height:100%; width:100%;"></div>
        <script type="text/javascript">
            window.PLOTLYENV=window.PLOTLYENV || {};
            if (document.getElementById({{.DivID}})) {
                Plotly.newPlot(
                    {{.DivID}},
                    {{.Data}},
                    {{.Layout}},
                    {{.Config}}
                )
            };
        </script>
    </div>
</body>
</html>
`))

type documentData struct {
	Runtime    template.JS
	RuntimeURL string
	DivID      string
	Data       template.JS
	Layout     template.JS
	Config     template.JS
}

// ToHTML writes fig as a complete standalone HTML document.
// The output depends only on fig and opts, so equal inputs give equal bytes.
func ToHTML(w io.Writer, fig *models.Figure, opts HTMLOptions) error {
	if len(opts.Runtime) == 0 && opts.RuntimeURL == "" {
		return ErrNoRuntime
	}

	data, err := scriptSafeJSON(fig.Data)
	if err != nil {
		return err
	}
	layout, err := scriptSafeJSON(fig.Layout)
	if err != nil {
		return err
	}
	config, err := scriptSafeJSON(fig.Config)
	if err != nil {
		return err
	}

	divID := opts.DivID
	if divID == "" {
		divID = DivID(data, layout)
	}

	return documentTemplate.Execute(w, documentData{
		Runtime:    template.JS(opts.Runtime),
		RuntimeURL: opts.RuntimeURL,
		DivID:      divID,
		Data:       template.JS(data),
		Layout:     template.JS(layout),
		Config:     template.JS(config),
	})
}

// RenderHTML is ToHTML into a byte slice.
func RenderHTML(fig *models.Figure, opts HTMLOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := ToHTML(&buf, fig, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DivID derives a stable element id from the serialized figure.
func DivID(data, layout string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(data+"\n"+layout)).String()
}
