package enum

import (
	"strings"
	"testing"
)

func TestParseSets(t *testing.T) {
	sets, err := ParseSets("{Priority:['low' 'medium' 'high'] Status:['draft' 'published']}")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(sets) != 2 {
		t.Fatalf("want 2 sets got %d", len(sets))
	}
	if sets[0].Key() != "priority" || sets[0].Len() != 3 {
		t.Errorf("unexpected first set %s", sets[0])
	}
	if !sets[1].Contains("published") {
		t.Errorf("want published in %s", sets[1])
	}
	fails := []string{
		"['low']",
		"{Priority:'low'}",
		"{Priority:[]}",
		"{Priority:[1 2]}",
	}
	for _, raw := range fails {
		if _, err := ParseSets(raw); err == nil {
			t.Errorf("want parse error for %s", raw)
		}
	}
}

func TestReadSets(t *testing.T) {
	sets, err := ReadSets(strings.NewReader("{Severity:['info' 'warn' 'fatal']}"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(sets) != 1 || sets[0].Len() != 3 {
		t.Fatalf("unexpected sets %v", sets)
	}
}
