package render

import (
	"strings"
	"testing"

	"github.com/loomui-dev/loom/pkg/vdom"
)

func renderToString(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	r := NewRenderer(RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return html
}

func TestRenderElement(t *testing.T) {
	html := renderToString(t, vdom.Div(vdom.ID("main"), vdom.Text("hello")))

	if html != `<div id="main">hello</div>` {
		t.Errorf("unexpected output: %s", html)
	}
}

func TestRenderSortsAttributes(t *testing.T) {
	html := renderToString(t, vdom.Input(
		vdom.Type("text"),
		vdom.Name("title"),
		vdom.ID("input-title"),
	))

	if html != `<input id="input-title" name="title" type="text">` {
		t.Errorf("expected sorted attributes, got %s", html)
	}
}

func TestRenderBooleanAttributes(t *testing.T) {
	html := renderToString(t, vdom.Input(vdom.Type("checkbox"), vdom.Checked()))
	if !strings.Contains(html, " checked") || strings.Contains(html, `checked="`) {
		t.Errorf("expected bare boolean attribute, got %s", html)
	}

	html = renderToString(t, vdom.Input(vdom.Type("checkbox"), vdom.AttrIf(false, vdom.Checked())))
	if strings.Contains(html, "checked") {
		t.Errorf("expected no checked attribute, got %s", html)
	}
}

func TestRenderVoidElement(t *testing.T) {
	html := renderToString(t, vdom.Br())
	if html != "<br>" {
		t.Errorf("expected no closing tag, got %s", html)
	}
}

func TestRenderEscapesText(t *testing.T) {
	html := renderToString(t, vdom.P(vdom.Text(`<script>alert("xss")</script>`)))

	if strings.Contains(html, "<script>") {
		t.Errorf("expected text escaped, got %s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("expected entity-escaped script tag, got %s", html)
	}
}

func TestRenderEscapesAttributes(t *testing.T) {
	html := renderToString(t, vdom.Div(vdom.Data("payload", `"><script>`)))

	if strings.Contains(html, `"><script>`) {
		t.Errorf("expected attribute escaped, got %s", html)
	}
	if !strings.Contains(html, "&quot;&gt;&lt;script&gt;") {
		t.Errorf("expected entity-escaped value, got %s", html)
	}
}

func TestRenderRawPassesThrough(t *testing.T) {
	html := renderToString(t, vdom.Div(vdom.Raw("<b>bold</b>")))
	if !strings.Contains(html, "<b>bold</b>") {
		t.Errorf("expected raw HTML untouched, got %s", html)
	}
}

func TestRenderFragmentHasNoWrapper(t *testing.T) {
	html := renderToString(t, vdom.Fragment(vdom.Span("a"), vdom.Span("b")))
	if html != "<span>a</span><span>b</span>" {
		t.Errorf("unexpected output: %s", html)
	}
}

func TestRenderNilNode(t *testing.T) {
	html := renderToString(t, nil)
	if html != "" {
		t.Errorf("expected empty output, got %s", html)
	}
}

func TestRenderSkipsEmptyAttributes(t *testing.T) {
	html := renderToString(t, vdom.Div(vdom.Class("")))
	if html != "<div></div>" {
		t.Errorf("expected empty class dropped, got %s", html)
	}
}

func TestRenderExplicitEmptyValue(t *testing.T) {
	html := renderToString(t, vdom.Option(vdom.ValueEmpty(), vdom.Text("Pick")))
	if html != `<option value="">Pick</option>` {
		t.Errorf("expected explicit empty value kept, got %s", html)
	}
}

func TestRenderIntAttributes(t *testing.T) {
	html := renderToString(t, vdom.Textarea(vdom.Rows(4)))
	if !strings.Contains(html, `rows="4"`) {
		t.Errorf("expected numeric attribute, got %s", html)
	}
}

func TestRenderPretty(t *testing.T) {
	r := NewRenderer(RendererConfig{Pretty: true})
	html, err := r.RenderToString(vdom.Div(vdom.P(vdom.Text("hello"))))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "\n") {
		t.Errorf("expected newlines in pretty output, got %q", html)
	}
	if !strings.Contains(html, "  <p>") {
		t.Errorf("expected indented child, got %q", html)
	}
}

func TestRenderToWriter(t *testing.T) {
	var sb strings.Builder
	r := NewRenderer(RendererConfig{})
	if err := r.RenderToWriter(&sb, vdom.Span("x")); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if sb.String() != "<span>x</span>" {
		t.Errorf("unexpected output: %s", sb.String())
	}
}
