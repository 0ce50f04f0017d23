package legend

import (
	"testing"

	"github.com/gogpu/ggchart/scene"
)

func TestBuild(t *testing.T) {
	spec := Spec{
		Labels:      []string{"property1", "property2", "property3"},
		Swatch:      scene.SwatchRect,
		Origin:      scene.Point{X: 500, Y: 30},
		LabelOffset: scene.Point{X: 15, Y: 7},
	}
	got := Build(spec)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, e := range got {
		if e.Label != spec.Labels[i] {
			t.Errorf("entry %d label = %q, want %q", i, e.Label, spec.Labels[i])
		}
		if e.FillIndex != i {
			t.Errorf("entry %d FillIndex = %d, want %d", i, e.FillIndex, i)
		}
		wantY := 30 + float64(i*RowHeight)
		if e.SwatchAt != (scene.Point{X: 500, Y: wantY}) {
			t.Errorf("entry %d SwatchAt = %+v", i, e.SwatchAt)
		}
		if e.LabelAt != (scene.Point{X: 515, Y: wantY + 7}) {
			t.Errorf("entry %d LabelAt = %+v", i, e.LabelAt)
		}
		if e.Swatch != scene.SwatchRect {
			t.Errorf("entry %d swatch = %v", i, e.Swatch)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	if got := Build(Spec{}); got != nil {
		t.Errorf("Build(empty) = %v, want nil", got)
	}
}
