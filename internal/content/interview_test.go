package content

import "testing"

func TestSetsAreWellFormed(t *testing.T) {
	sets := Sets()
	if len(sets) == 0 {
		t.Fatalf("catalogue must not be empty")
	}

	seen := map[string]struct{}{}
	for _, s := range sets {
		if s.Slug == "" || s.Title == "" || s.Category == "" || s.Difficulty == "" {
			t.Fatalf("set %+v missing metadata", s)
		}
		if _, dup := seen[s.Slug]; dup {
			t.Fatalf("duplicate slug %q", s.Slug)
		}
		seen[s.Slug] = struct{}{}
		if len(s.Questions) == 0 {
			t.Fatalf("set %q has no questions", s.Slug)
		}
		for _, q := range s.Questions {
			if q.Prompt == "" {
				t.Fatalf("set %q has an empty prompt", s.Slug)
			}
		}
	}
}

func TestSetBySlug(t *testing.T) {
	set, ok := SetBySlug("behavioral-basics")
	if !ok {
		t.Fatalf("expected behavioral-basics to exist")
	}
	if set.Slug != "behavioral-basics" {
		t.Fatalf("wrong set returned: %q", set.Slug)
	}

	if _, ok := SetBySlug("no-such-set"); ok {
		t.Fatalf("expected miss for unknown slug")
	}
}

func TestSetsReturnsCopy(t *testing.T) {
	a := Sets()
	a[0].Title = "mutated"
	b := Sets()
	if b[0].Title == "mutated" {
		t.Fatalf("Sets must not expose the backing array")
	}
}
