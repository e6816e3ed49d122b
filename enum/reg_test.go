package enum

import "testing"

func TestRegistryResolve(t *testing.T) {
	reg := NewRegistry(
		New("Priority", "low", "medium", "high"),
		New("Status", "draft", "published"),
		New("Category", "bug", "chore"),
	)
	tests := []struct {
		attr string
		set  string
	}{
		{"priority", "priority"},
		{"priorities", "priority"},
		{"status", "status"},
		{"statuses", "status"},
		{"category", "category"},
		{"categories", "category"},
		{"Priority", "priority"},
	}
	for _, test := range tests {
		s, err := reg.Resolve(test.attr)
		if err != nil {
			t.Errorf("resolve %s: %v", test.attr, err)
			continue
		}
		if s.Key() != test.set {
			t.Errorf("resolve %s want %s got %s", test.attr, test.set, s.Key())
		}
	}
	if _, err := reg.Resolve("severity"); err == nil {
		t.Errorf("want resolve error for unknown attribute")
	}
	if _, err := reg.Lookup("severity"); err == nil {
		t.Errorf("want lookup error for unknown set")
	}
}

func TestRegistryRegister(t *testing.T) {
	var reg Registry
	s := New("Priority", "low")
	if err := reg.Register(s); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(s); err != nil {
		t.Errorf("re-register same set: %v", err)
	}
	if err := reg.Register(New("Priority", "high")); err == nil {
		t.Errorf("want error for conflicting key")
	}
	if got := reg.Set("priority"); got != s {
		t.Errorf("want registered set got %v", got)
	}
}
