package board

import "testing"

func TestCrossLayout(t *testing.T) {
	b, err := NewCross(7, 7)
	if err != nil {
		t.Fatalf("NewCross failed: %v", err)
	}
	want := "OOPPPOO" +
		"OOPPPOO" +
		"PPPPPPP" +
		"PPPHPPP" +
		"PPPPPPP" +
		"OOPPPOO" +
		"OOPPPOO"
	if got := b.String(); got != want {
		t.Errorf("cross descriptor = %q, want %q", got, want)
	}
	if !b.TouchesAllEdges() {
		t.Error("cross board does not touch all edges")
	}
}

func TestOctagonLayout(t *testing.T) {
	b, err := NewOctagon(7, 7)
	if err != nil {
		t.Fatalf("NewOctagon failed: %v", err)
	}
	want := "OOPPPOO" +
		"OPPPPPO" +
		"PPPPPPP" +
		"PPPHPPP" +
		"PPPPPPP" +
		"OPPPPPO" +
		"OOPPPOO"
	if got := b.String(); got != want {
		t.Errorf("octagon descriptor = %q, want %q", got, want)
	}
	if !b.TouchesAllEdges() {
		t.Error("octagon board does not touch all edges")
	}
}

func TestTypeTable(t *testing.T) {
	cases := []struct {
		id    Type
		title string
		key   string
	}{
		{TypeCross, "Cross", "cross"},
		{TypeOctagon, "Octagon", "octagon"},
		{TypeRandom, "Random", "random"},
	}
	for _, tc := range cases {
		if got := tc.id.Title(); got != tc.title {
			t.Errorf("Title(%d) = %q, want %q", tc.id, got, tc.title)
		}
		if got := tc.id.Key(); got != tc.key {
			t.Errorf("Key(%d) = %q, want %q", tc.id, got, tc.key)
		}
		id, ok := TypeFromKey(tc.key)
		if !ok || id != tc.id {
			t.Errorf("TypeFromKey(%q) = %d, %v, want %d", tc.key, id, ok, tc.id)
		}
	}
	if _, ok := TypeFromKey("hexagon"); ok {
		t.Error("TypeFromKey accepted an unknown key")
	}
}
