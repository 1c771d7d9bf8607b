package markdown_test

import (
	"strings"
	"testing"

	"worksync/internal/platform/markdown"
)

type meta struct {
	ID       string `yaml:"id"`
	Progress int    `yaml:"progress"`
}

func TestFrontmatterRoundTripKeepsFieldOrder(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.RenderFrontmatter(meta{ID: "t1", Progress: 40}, "# Title\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(rendered, "---\nid: t1\nprogress: 40\n---\n") {
		t.Fatalf("unexpected frontmatter: %q", rendered)
	}
	var got meta
	body, err := markdown.SplitFrontmatter(rendered, &got)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if got.ID != "t1" || got.Progress != 40 || body != "# Title\n" {
		t.Fatalf("unexpected split result: %+v %q", got, body)
	}
}

func TestSplitFrontmatterRejectsUnclosedHeader(t *testing.T) {
	t.Parallel()
	if _, err := markdown.SplitFrontmatter("---\nid: x\n", &meta{}); err == nil {
		t.Fatalf("expected error for unclosed frontmatter")
	}
}

func TestBlockReplacePreservesUserText(t *testing.T) {
	t.Parallel()
	b := markdown.Block{Start: "<!-- s -->", End: "<!-- e -->"}
	body := b.Replace("my notes\n", "one")
	if body != "my notes\n\n<!-- s -->\none\n<!-- e -->\n" {
		t.Fatalf("unexpected first render: %q", body)
	}
	body = b.Replace(body, "two")
	if !strings.Contains(body, "my notes") || !strings.Contains(body, "\ntwo\n") || strings.Contains(body, "one") {
		t.Fatalf("unexpected second render: %q", body)
	}
	if got := b.Replace("", "x"); got != "<!-- s -->\nx\n<!-- e -->\n" {
		t.Fatalf("unexpected empty-body render: %q", got)
	}
}
