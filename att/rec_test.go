package att

import (
	"testing"

	"github.com/martijnschouwe/classy-enum/enum"
)

func TestDocValidate(t *testing.T) {
	r := enum.NewRegistry(
		enum.New("Priority", "low", "medium", "high"),
		enum.New("Status", "draft", "published"),
	)
	s := NewSchema("post")
	MustBind(s, "priority", Opts{Reg: r})
	MustBind(s, "status", Opts{Reg: r})
	d := s.New()
	if d.Validate() {
		t.Fatalf("want two failures on empty doc")
	}
	if len(d.Errs()) != 2 {
		t.Fatalf("want 2 errs got %d: %v", len(d.Errs()), d.Errs())
	}
	d.WriteRaw("priority", Str("low"))
	if d.Validate() || len(d.Errs()) != 1 {
		t.Errorf("want 1 err after fixing priority got %v", d.Errs())
	}
	d.WriteRaw("status", Str("draft"))
	if !d.Validate() {
		t.Errorf("want valid doc got %v", d.Errs())
	}
	if len(d.Errs()) != 0 {
		t.Errorf("errs not rebuilt: %v", d.Errs())
	}
}

func TestRaw(t *testing.T) {
	tests := []struct {
		raw   Raw
		blank bool
		zero  bool
	}{
		{Null, false, true},
		{Str(""), true, true},
		{Str("  "), true, true},
		{Str("low"), false, false},
	}
	for _, test := range tests {
		if test.raw.Blank() != test.blank {
			t.Errorf("%+v want blank %v", test.raw, test.blank)
		}
		if test.raw.Zero() != test.zero {
			t.Errorf("%+v want zero %v", test.raw, test.zero)
		}
	}
}
