package mood

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    Mood
		wantErr bool
	}{
		"symbol":        {in: "🎉", want: Celebrating},
		"meaning":       {in: "happy", want: Happy},
		"meaning case":  {in: "Unsure", want: Unsure},
		"alias":         {in: "mad", want: Angry},
		"padded":        {in: "  party  ", want: Celebrating},
		"unknown":       {in: "ecstatic", wantErr: true},
		"empty":         {in: "", wantErr: true},
		"wrong symbol":  {in: "🙂", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestAllOrder(t *testing.T) {
	moods := All()
	glyphs := DefaultGlyphs()
	if len(moods) != len(glyphs) {
		t.Fatalf("got %d moods for %d glyphs", len(moods), len(glyphs))
	}
	want := []string{"🎉", "😊", "😕", "😠"}
	for i, m := range moods {
		if !m.Valid() {
			t.Fatalf("mood %d failed Valid()", i)
		}
		if m.String() != want[i] {
			t.Fatalf("mood %d = %s, want %s", i, m, want[i])
		}
	}
}

func TestInvalidMood(t *testing.T) {
	if Mood(-1).Valid() || Mood(4).Valid() {
		t.Fatal("out of range moods must not validate")
	}
	if got := Mood(9).String(); got != "" {
		t.Fatalf("out of range String() = %q, want empty", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(Unsure)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"😕"` {
		t.Fatalf("marshal = %s", b)
	}

	var m Mood
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m != Unsure {
		t.Fatalf("unmarshal = %s, want %s", m, Unsure)
	}

	if err := json.Unmarshal([]byte(`"nope"`), &m); err == nil {
		t.Fatal("expected error for unknown symbol")
	}
}
