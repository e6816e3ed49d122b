package genpg

import (
	"strings"
	"testing"

	"github.com/martijnschouwe/classy-enum/enum"
)

func TestWriteEnum(t *testing.T) {
	tests := []struct {
		set  *enum.Set
		want string
	}{
		{enum.New("Priority", "low", "medium", "high"),
			"CREATE TYPE priority AS ENUM ('low', 'medium', 'high')"},
		{enum.New("Status", "draft"),
			"CREATE TYPE status AS ENUM ('draft')"},
		{enum.New("Odd", "it's"),
			"CREATE TYPE odd AS ENUM ('it''s')"},
	}
	for _, test := range tests {
		var b strings.Builder
		err := WriteEnum(NewCtx(&b), test.set)
		if err != nil {
			t.Errorf("write %s: %v", test.set.Key(), err)
			continue
		}
		if got := b.String(); got != test.want {
			t.Errorf("write %s want %s got %s", test.set.Key(), test.want, got)
		}
	}
}

func TestWriteFile(t *testing.T) {
	var b strings.Builder
	err := WriteFile(NewCtx(&b),
		enum.New("Priority", "low", "high"),
		enum.New("Status", "draft", "final"),
	)
	if err != nil {
		t.Fatalf("write file: %v", err)
	}
	want := "-- generated code\n\nBEGIN;\n\n" +
		"CREATE TYPE priority AS ENUM ('low', 'high');\n\n" +
		"CREATE TYPE status AS ENUM ('draft', 'final');\n\n" +
		"COMMIT;\n"
	if got := b.String(); got != want {
		t.Errorf("want\n%s got\n%s", want, got)
	}
}
