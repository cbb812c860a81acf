package render

import (
	"strings"
	"testing"
)

func TestRenderSVG(t *testing.T) {
	data, err := RenderSVG("ZZ99")
	if err != nil {
		t.Fatal(err)
	}

	out := string(data)
	if !strings.Contains(out, "<svg") {
		t.Error("output missing <svg element")
	}
	if !strings.Contains(out, "fill:black") {
		t.Error("output has no bars")
	}
	if !strings.Contains(out, ">ZZ99<") {
		t.Error("output missing caption text")
	}
}

func TestRenderSVGWithoutText(t *testing.T) {
	data, err := RenderSVG("ZZ99", WithoutText())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "ZZ99") {
		t.Error("caption rendered despite WithoutText")
	}
}

func TestRenderSVGBarHeight(t *testing.T) {
	tall, err := RenderSVG("A1", WithoutText(), WithBarHeight(120))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(tall), `height="120"`) {
		t.Errorf("expected 120px tall image, got: %s", firstLine(string(tall)))
	}
}

func TestRenderSVGInvalidCode(t *testing.T) {
	if _, err := RenderSVG("bad\x00code"); err == nil {
		t.Fatal("expected error")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
