package enum

import (
	"encoding/json"
	"testing"
)

func TestSet(t *testing.T) {
	s := New("Priority", "low", "medium", "high")
	if s.Key() != "priority" {
		t.Errorf("want key priority got %s", s.Key())
	}
	if s.Len() != 3 {
		t.Errorf("want 3 consts got %d", s.Len())
	}
	tests := []struct {
		raw string
		ok  bool
		val int64
	}{
		{"low", true, 1},
		{"medium", true, 2},
		{"high", true, 3},
		{"High", true, 3},
		{"urgent", false, 0},
		{"", false, 0},
	}
	for _, test := range tests {
		if ok := s.Contains(test.raw); ok != test.ok {
			t.Errorf("contains %q want %v got %v", test.raw, test.ok, ok)
			continue
		}
		c, ok := s.Const(test.raw)
		if ok != test.ok {
			continue
		}
		if ok && c.Val != test.val {
			t.Errorf("const %q want val %d got %d", test.raw, test.val, c.Val)
		}
	}
	want := "{name:'Priority' consts:[{name:'low' val:1} {name:'medium' val:2} {name:'high' val:3}]}"
	if got := s.String(); got != want {
		t.Errorf("want str %s got %s", want, got)
	}
}

func TestSetKeysOptions(t *testing.T) {
	s := New("Severity", "info", "warn", "fatal")
	keys := s.Keys()
	if len(keys) != 3 || keys[0] != "info" || keys[2] != "fatal" {
		t.Errorf("unexpected keys %v", keys)
	}
	opts := s.Options()
	if len(opts) != 3 || opts[1].Key != "warn" || opts[1].Label != "Warn" {
		t.Errorf("unexpected options %v", opts)
	}
}

func TestBuild(t *testing.T) {
	s := New("Priority", "low", "medium", "high")
	tests := []struct {
		raw   string
		valid bool
		zero  bool
		key   string
	}{
		{"low", true, false, "low"},
		{"Medium", true, false, "medium"},
		{"urgent", false, false, "urgent"},
		{"", false, true, ""},
	}
	for _, test := range tests {
		m := s.Build(test.raw, Ctx{})
		if m.Valid() != test.valid {
			t.Errorf("build %q want valid %v", test.raw, test.valid)
		}
		if m.Zero() != test.zero {
			t.Errorf("build %q want zero %v", test.raw, test.zero)
		}
		if m.Key() != test.key {
			t.Errorf("build %q want key %q got %q", test.raw, test.key, m.Key())
		}
	}
}

func TestMember(t *testing.T) {
	s := New("Priority", "low", "medium", "high")
	low := s.MustBuild("low")
	high := s.MustBuild("high")
	if !low.Is("low") || low.Is("high") {
		t.Errorf("predicate failed for %s", low)
	}
	if low.Cmp(high) != -1 || high.Cmp(low) != 1 || low.Cmp(low) != 0 {
		t.Errorf("ordering failed")
	}
	if low.Name() != "low" || low.Val() != 1 {
		t.Errorf("want low 1 got %s %d", low.Name(), low.Val())
	}
	owner := &struct{ id int }{1}
	m := s.Build("medium", Ctx{Owner: owner})
	if m.Owner() != owner {
		t.Errorf("owner not kept")
	}
	if m.Set() != s {
		t.Errorf("set not kept")
	}
}

func TestMemberJSON(t *testing.T) {
	s := New("Priority", "low", "medium", "high")
	tests := []struct {
		raw  string
		ctx  Ctx
		want string
	}{
		{"low", Ctx{}, `"low"`},
		{"low", Ctx{JSON: true}, `{"name":"low","val":1}`},
		{"", Ctx{AllowEmpty: true}, `null`},
		{"urgent", Ctx{}, `"urgent"`},
	}
	for _, test := range tests {
		got, err := json.Marshal(s.Build(test.raw, test.ctx))
		if err != nil {
			t.Errorf("marshal %q: %v", test.raw, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("marshal %q want %s got %s", test.raw, test.want, got)
		}
	}
}

func TestMustBuild(t *testing.T) {
	s := New("Priority", "low")
	defer func() {
		if recover() == nil {
			t.Errorf("want panic for unknown key")
		}
	}()
	s.MustBuild("urgent")
}
