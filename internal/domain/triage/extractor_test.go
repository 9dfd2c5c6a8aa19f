package triage

import (
	"strings"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func TestExtract(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		name string
		text string
		want []Symptom
	}{
		{
			name: "cardiac description",
			text: "I have chest pain and feel dizzy and am sweating",
			want: []Symptom{"chest_pain", "dizziness", "sweating"},
		},
		{
			name: "flu description",
			text: "High fever with a bad headache, my body is aching and I keep coughing",
			want: []Symptom{"fever", "cough", "headache", "body_ache"},
		},
		{
			name: "case insensitive",
			text: "FEVER and Sore Throat",
			want: []Symptom{"fever", "sore_throat"},
		},
		{
			name: "no whole-word match inside larger words",
			text: "my childish nephew visited",
			want: nil,
		},
		{
			name: "no recognized symptoms",
			text: "I feel absolutely fine today",
			want: nil,
		},
		{
			name: "variant phrase",
			text: "can't breathe properly and having palpitations",
			want: []Symptom{"shortness_of_breath", "rapid_heartbeat"},
		},
		{
			name: "symptom recorded once despite multiple variants",
			text: "vomit vomiting throwing up",
			want: []Symptom{"vomiting"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reg.Extract(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Extract(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtract_OutputFollowsDictionaryOrder(t *testing.T) {
	reg := newTestRegistry(t)

	// Input mentions sweating before fever; output must follow the
	// dictionary order (fever first), not input order.
	got := reg.Extract("sweating a lot, then fever started")
	want := []Symptom{"fever", "sweating"}
	if len(got) != len(want) {
		t.Fatalf("Extract = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtract_CanonicalIdentifiersRoundTrip(t *testing.T) {
	reg := newTestRegistry(t)

	// Feeding the canonical names back as a phrase must recover at least
	// the original set (extras from overlapping keywords are fine).
	all := reg.Symptoms()
	var phrase []string
	for _, s := range all {
		phrase = append(phrase, string(s))
	}

	got := reg.Extract(strings.Join(phrase, " "))
	found := make(map[Symptom]bool, len(got))
	for _, s := range got {
		found[s] = true
	}
	for _, s := range all {
		if !found[s] {
			t.Errorf("canonical identifier %q not recovered by extraction", s)
		}
	}
}
