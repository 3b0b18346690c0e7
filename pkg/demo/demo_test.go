package demo

import (
	"strings"
	"testing"
)

func TestAllDemosBuildAndRender(t *testing.T) {
	g := NewGenerator()

	demos := g.GenerateAll()
	if len(demos) == 0 {
		t.Fatalf("expected at least one demo")
	}

	for _, d := range demos {
		t.Run(d.Name, func(t *testing.T) {
			c, err := d.Build()
			if err != nil {
				t.Fatalf("unexpected build error: %v", err)
			}
			frame, err := c.Render()
			if err != nil {
				t.Fatalf("unexpected render error: %v", err)
			}
			if len(frame.Rows()) == 0 {
				t.Errorf("expected a non-empty frame")
			}
		})
	}
}

func TestGetByName(t *testing.T) {
	g := NewGenerator()

	d, err := g.GetByName("trig")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name != "trig" {
		t.Errorf("expected demo trig, got %q", d.Name)
	}

	if _, err := g.GetByName("nope"); err == nil {
		t.Errorf("expected error for unknown demo")
	} else if !strings.Contains(err.Error(), "trig") {
		t.Errorf("expected error to list available demos, got %v", err)
	}
}

func TestSetSize(t *testing.T) {
	g := NewGenerator().SetSize(30, 8)

	d, err := g.GetByName("trig")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := d.Build()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if c.Width() != 30 || c.Height() != 8 {
		t.Errorf("expected 30x8 chart, got %dx%d", c.Width(), c.Height())
	}
}
