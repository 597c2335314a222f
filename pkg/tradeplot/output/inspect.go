package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/models"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	plotEnvMarker = "window.PLOTLYENV"
	newPlotCall   = "Plotly.newPlot("
)

// Document describes a parsed standalone figure document.
type Document struct {
	// DivID is the id passed to Plotly.newPlot.
	DivID string
	// Figure is the decoded data, layout and config.
	Figure models.Figure
	// RuntimeInline reports whether a script body other than the figure call was found.
	RuntimeInline bool
	// RuntimeSrc is the src of an external runtime script, if any.
	RuntimeSrc string
}

// ParseHTML extracts the figure from a document written by ToHTML.
func ParseHTML(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	found := false
	var walk func(n *html.Node) error
	walk = func(n *html.Node) error {
		if n.Type == html.ElementNode && n.DataAtom == atom.Script {
			if src := attr(n, "src"); src != "" {
				doc.RuntimeSrc = src
			}
			body := scriptText(n)
			switch {
			case strings.Contains(body, plotEnvMarker):
				if err := parseNewPlot(body, doc); err != nil {
					return err
				}
				found = true
			case strings.Contains(body, "window.PlotlyConfig"):
			case strings.TrimSpace(body) != "":
				doc.RuntimeInline = true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrPlotNotFound
	}
	return doc, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func scriptText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// parseNewPlot decodes the id, data, layout and config arguments of the call.
func parseNewPlot(body string, doc *Document) error {
	body = body[strings.Index(body, plotEnvMarker):]
	i := strings.Index(body, newPlotCall)
	if i < 0 {
		return ErrPlotNotFound
	}
	rest := body[i+len(newPlotCall):]

	args := make([]json.RawMessage, 0, 4)
	for len(args) < 4 {
		rest = strings.TrimLeft(rest, " \t\r\n,")
		if strings.HasPrefix(rest, ")") {
			break
		}
		dec := json.NewDecoder(strings.NewReader(rest))
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode Plotly.newPlot argument %d: %w", len(args)+1, err)
		}
		args = append(args, raw)
		rest = rest[dec.InputOffset():]
	}
	if len(args) < 3 {
		return fmt.Errorf("newPlot call: expected at least 3 arguments, got %d", len(args))
	}

	if err := json.Unmarshal(args[0], &doc.DivID); err != nil {
		return fmt.Errorf("decode div id: %w", err)
	}
	if err := json.Unmarshal(args[1], &doc.Figure.Data); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	if err := json.Unmarshal(args[2], &doc.Figure.Layout); err != nil {
		return fmt.Errorf("decode layout: %w", err)
	}
	if len(args) > 3 {
		if err := json.Unmarshal(args[3], &doc.Figure.Config); err != nil {
			return fmt.Errorf("decode config: %w", err)
		}
	}
	return nil
}
