package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/codevideo/pkg/config"
	"github.com/matzehuels/codevideo/pkg/diagram"
	"github.com/matzehuels/codevideo/pkg/scene"
)

const boxesScript = `
title = "Deploy"

[[box]]
id = "web"
text = "Web"
edge = "left"

[[box]]
id = "db"
text = "Database"
of = "web"
direction = "right"
buff = 3

[[connect]]
from = "web"
to = "db"
label = "query"
`

func TestRenderBoxes(t *testing.T) {
	script, err := diagram.ParseScript([]byte(boxesScript))
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	lib := cfg.Library(scene.MonoMeasurer{})

	tests := []struct {
		format, engine string
		want           []string
	}{
		{"svg", engineScene, []string{"<svg", "Web", "Database", "query", "Deploy"}},
		{"dot", engineScene, []string{"digraph", "Web", "Database", "query"}},
		{"dot", engineGraphviz, []string{"digraph"}},
	}
	for _, tt := range tests {
		t.Run(tt.engine+"/"+tt.format, func(t *testing.T) {
			data, err := renderBoxes(context.Background(), cfg, lib, script, tt.format, tt.engine)
			if err != nil {
				t.Fatal(err)
			}
			for _, w := range tt.want {
				if !strings.Contains(string(data), w) {
					t.Errorf("output missing %q", w)
				}
			}
		})
	}

	if _, err := renderBoxes(context.Background(), cfg, lib, script, "gif", engineScene); err == nil {
		t.Error("unsupported format should fail")
	}
}
