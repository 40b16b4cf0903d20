package mode

import (
	"strings"
	"testing"
)

func TestBuiltin_FiveModes(t *testing.T) {
	want := []string{"code", "architect", "ask", "debug", "test"}

	registry := Builtin()
	slugs := registry.Slugs()
	if len(slugs) != len(want) {
		t.Fatalf("Builtin() has %d modes, want %d", len(slugs), len(want))
	}
	for i, slug := range want {
		if slugs[i] != slug {
			t.Errorf("Slugs()[%d] = %s, want %s", i, slugs[i], slug)
		}
	}
}

func TestBuiltin_FieldsNonEmpty(t *testing.T) {
	for _, m := range Builtin().Modes() {
		if m.Slug == "" || m.Name == "" || m.Description == "" {
			t.Errorf("mode %+v has an empty identity field", m)
		}
	}
}

func TestBuiltin_HandoffTargetsExist(t *testing.T) {
	registry := Builtin()
	for _, m := range registry.Modes() {
		for target, conditions := range m.Handoffs {
			if _, ok := registry.Get(target); !ok {
				t.Errorf("mode %s: hand-off target %q not in registry", m.Slug, target)
			}
			if len(conditions) == 0 {
				t.Errorf("mode %s: hand-off to %q declares no conditions", m.Slug, target)
			}
		}
	}
}

func TestBuiltin_Validates(t *testing.T) {
	if err := Builtin().Validate(); err != nil {
		t.Fatalf("Builtin().Validate() error: %v", err)
	}
}

func TestRegistry_Get(t *testing.T) {
	registry := Builtin()

	tests := []struct {
		name   string
		slug   string
		wantOK bool
	}{
		{"exact slug", "debug", true},
		{"uppercase slug", "DEBUG", true},
		{"unknown slug", "review", false},
		{"empty slug", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := registry.Get(tt.slug); ok != tt.wantOK {
				t.Errorf("Get(%q) ok = %v, want %v", tt.slug, ok, tt.wantOK)
			}
		})
	}
}

func TestRegistry_HandoffConditions(t *testing.T) {
	registry := Builtin()

	conditions, err := registry.HandoffConditions("code", "test")
	if err != nil {
		t.Fatalf("HandoffConditions() error: %v", err)
	}
	found := false
	for _, condition := range conditions {
		if condition == "feature_ready_for_testing" {
			found = true
		}
	}
	if !found {
		t.Errorf("code->test conditions = %v, want to include feature_ready_for_testing", conditions)
	}

	if _, err := registry.HandoffConditions("code", "review"); err == nil {
		t.Error("HandoffConditions() with unknown target succeeded, want error")
	}
	if _, err := registry.HandoffConditions("review", "code"); err == nil {
		t.Error("HandoffConditions() with unknown source succeeded, want error")
	}
}

func TestRegistry_Validate_Problems(t *testing.T) {
	tests := []struct {
		name        string
		modes       []Mode
		wantProblem string
	}{
		{
			name:        "empty name",
			modes:       []Mode{{Slug: "code", Description: "d"}},
			wantProblem: "empty name",
		},
		{
			name:        "empty description",
			modes:       []Mode{{Slug: "code", Name: "Code"}},
			wantProblem: "empty description",
		},
		{
			name:        "uppercase slug",
			modes:       []Mode{{Slug: "Code", Name: "Code", Description: "d"}},
			wantProblem: "must be lowercase",
		},
		{
			name: "dangling hand-off target",
			modes: []Mode{{
				Slug: "code", Name: "Code", Description: "d",
				Handoffs: map[string][]string{"review": {"x"}},
			}},
			wantProblem: `hand-off target "review" not in registry`,
		},
		{
			name:        "no modes",
			modes:       nil,
			wantProblem: "no modes registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry(tt.modes...).Validate()
			if err == nil {
				t.Fatal("Validate() succeeded, want error")
			}
			var vErr *ValidationError
			if !AsValidationError(err, &vErr) {
				t.Fatalf("error is not a ValidationError: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantProblem) {
				t.Errorf("Validate() = %q, want to contain %q", err.Error(), tt.wantProblem)
			}
		})
	}
}

func TestRegistry_Merge(t *testing.T) {
	registry := Builtin()
	registry.Merge([]Mode{
		{Slug: "code", Name: "Coder", Description: "replaced"},
		{Slug: "review", Name: "Review", Description: "added"},
	})

	code, ok := registry.Get("code")
	if !ok || code.Name != "Coder" {
		t.Errorf("merged code mode = %+v, want replaced name Coder", code)
	}
	if _, ok := registry.Get("review"); !ok {
		t.Error("merged registry missing added mode review")
	}
	if len(registry.Modes()) != 6 {
		t.Errorf("merged registry has %d modes, want 6", len(registry.Modes()))
	}
}
