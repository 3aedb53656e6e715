package help

import (
	"strings"
	"testing"
)

func TestRender_Plain(t *testing.T) {
	out := Render(true)

	for _, want := range []string{
		"TASKLINE\n",
		"Usage\n",
		"Attributes\n",
		"    taskline add pri:H +home Call the plumber\n",
		"  • --config <path> read this configuration file\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}

	if strings.Contains(out, "\x1b[") {
		t.Error("plain output must not contain escape sequences")
	}
	if strings.Contains(out, "```") || strings.Contains(out, "## ") {
		t.Error("markdown syntax should not leak into rendered output")
	}
}

func TestRender_CustomDocument(t *testing.T) {
	src := []byte("# One\n\nBody text.\n\n## Two\n\n- a\n- b\n")
	out := render(src, true)
	want := "ONE\nBody text.\n\nTwo\n  • a\n  • b\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestMarkdown(t *testing.T) {
	if !strings.HasPrefix(Markdown(), "# taskline") {
		t.Error("expected embedded usage document")
	}
}
