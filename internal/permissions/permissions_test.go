package permissions

import (
	"testing"

	"gorm.io/datatypes"
)

func TestGrantedFullWildcardMatchesEverything(t *testing.T) {
	t.Parallel()

	list := []string{"*"}
	for _, required := range []string{"projects.view", "users.delete", "dashboard.view", "x"} {
		if !Granted(list, required) {
			t.Fatalf("Granted([*], %q) = false, want true", required)
		}
	}
}

func TestGrantedVerbatimMatch(t *testing.T) {
	t.Parallel()

	list := []string{"dashboard.view", "projects.view"}
	if !Granted(list, "projects.view") {
		t.Fatalf("expected verbatim match for projects.view")
	}
	if Granted(list, "projects.delete") {
		t.Fatalf("projects.delete should be denied")
	}
}

func TestGrantedTrailingWildcardKeepsDot(t *testing.T) {
	t.Parallel()

	list := []string{"projects.*"}
	if !Granted(list, "projects.view") {
		t.Fatalf("projects.* should match projects.view")
	}
	if Granted(list, "projects") {
		t.Fatalf("projects.* must not match bare projects")
	}
	if Granted(list, "project.view") {
		t.Fatalf("projects.* must not match project.view")
	}
	if Granted(list, "projectsother") {
		t.Fatalf("projects.* must not match projectsother")
	}
}

func TestGrantedEmptyListDenies(t *testing.T) {
	t.Parallel()

	if Granted(nil, "projects.view") {
		t.Fatalf("nil list should deny")
	}
	if Granted([]string{}, "projects.view") {
		t.Fatalf("empty list should deny")
	}
}

func TestGrantsAny(t *testing.T) {
	t.Parallel()

	list := []string{"skills.*"}
	if !GrantsAny(list, "projects.view", "skills.edit") {
		t.Fatalf("expected skills.edit to satisfy GrantsAny")
	}
	if GrantsAny(list, "projects.view", "users.view") {
		t.Fatalf("expected denial when no entry matches")
	}
}

func TestParseMalformedAndEmpty(t *testing.T) {
	t.Parallel()

	if got := Parse(nil); len(got) != 0 {
		t.Fatalf("Parse(nil) = %v, want empty", got)
	}
	if got := Parse(datatypes.JSON(`{not json`)); len(got) != 0 {
		t.Fatalf("Parse(malformed) = %v, want empty", got)
	}
	got := Parse(datatypes.JSON(`["a.b","c.*"]`))
	if len(got) != 2 || got[0] != "a.b" || got[1] != "c.*" {
		t.Fatalf("Parse = %v", got)
	}
}

func TestNormalizeDropsEmptiesAndDuplicates(t *testing.T) {
	t.Parallel()

	got := Normalize([]string{" projects.view ", "", "projects.view", "skills.*"})
	if len(got) != 2 || got[0] != "projects.view" || got[1] != "skills.*" {
		t.Fatalf("Normalize = %v", got)
	}
}

func TestValidateRejectsMalformedEntries(t *testing.T) {
	t.Parallel()

	if err := Validate([]string{"*", "projects.view", "skills.*"}); err != nil {
		t.Fatalf("valid list rejected: %v", err)
	}
	for _, bad := range [][]string{{"projects"}, {".view"}, {"projects."}, {"a b.c"}} {
		if err := Validate(bad); err == nil {
			t.Fatalf("Validate(%v) accepted, want error", bad)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	raw, errMarshal := Marshal([]string{"projects.*"})
	if errMarshal != nil {
		t.Fatalf("marshal: %v", errMarshal)
	}
	got := Parse(raw)
	if len(got) != 1 || got[0] != "projects.*" {
		t.Fatalf("round trip = %v", got)
	}

	raw, errMarshal = Marshal(nil)
	if errMarshal != nil {
		t.Fatalf("marshal nil: %v", errMarshal)
	}
	if string(raw) != "[]" {
		t.Fatalf("Marshal(nil) = %s, want []", raw)
	}
}
