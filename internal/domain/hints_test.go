package domain

import "testing"

func TestHintSet_SetGetCount(t *testing.T) {
	t.Parallel()

	h := HintSet{}
	h.Set("する", "仕事", "to do one's job")
	h.Set("する", "勉強", "to study")
	h.Set("のむ", "水", "to drink water")

	if got, ok := h.Get("する", "仕事"); !ok || got != "to do one's job" {
		t.Errorf("Get = %q, %v", got, ok)
	}
	if h.Has("のむ", "薬") {
		t.Error("Has reported a missing pair")
	}
	if h.Count() != 3 {
		t.Errorf("Count = %d, want 3", h.Count())
	}
}

func TestHintSet_MergeKeepsExisting(t *testing.T) {
	t.Parallel()

	h := HintSet{"する": {"仕事": "X"}}
	added := h.Merge(HintSet{
		"する": {"仕事": "Y", "勉強": "to study"},
		"のむ": {"水": "to drink water"},
	})

	if added != 2 {
		t.Errorf("Merge added %d, want 2", added)
	}
	if got, _ := h.Get("する", "仕事"); got != "X" {
		t.Errorf("existing hint overwritten: %q", got)
	}
}

func TestHintSet_Reverse(t *testing.T) {
	t.Parallel()

	h := HintSet{
		"する": {"仕事": "to work"},
		"のむ": {"水": "to drink water", "薬": "to take medicine"},
	}
	r := h.Reverse()

	if got, _ := r.Get("水", "のむ"); got != "to drink water" {
		t.Errorf("reverse hint = %q", got)
	}
	if r.Count() != h.Count() {
		t.Errorf("reverse count %d != forward count %d", r.Count(), h.Count())
	}
}

func TestHintSet_CloneIsDeep(t *testing.T) {
	t.Parallel()

	h := HintSet{"する": {"仕事": "X"}}
	c := h.Clone()
	c.Set("する", "仕事", "Y")

	if got, _ := h.Get("する", "仕事"); got != "X" {
		t.Errorf("clone shares storage with original: %q", got)
	}
}

func TestHintSet_Missing(t *testing.T) {
	t.Parallel()

	set := sampleSet()
	h := HintSet{"する": {"仕事": "X"}}

	missing := h.Missing(set)
	if len(missing) != 2 {
		t.Fatalf("Missing = %v, want 2 pairs", missing)
	}
	if missing[0].ObjectWord != "勉強" || missing[1].ObjectWord != "水" {
		t.Errorf("unexpected missing pairs: %+v", missing)
	}
}
