package demo

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestToggleChallenge(t *testing.T) {
	var r Request
	for _, c := range []string{"Labor costs", "Space utilization"} {
		if err := r.ToggleChallenge(c); err != nil {
			t.Fatalf("ToggleChallenge(%q): %v", c, err)
		}
	}
	if diff := cmp.Diff([]string{"Labor costs", "Space utilization"}, r.Challenges); diff != "" {
		t.Errorf("after selecting two (-want +got):\n%s", diff)
	}
	if !r.HasChallenge("Labor costs") {
		t.Error("HasChallenge(Labor costs) = false, want true")
	}

	if err := r.ToggleChallenge("Labor costs"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Space utilization"}, r.Challenges); diff != "" {
		t.Errorf("after deselecting (-want +got):\n%s", diff)
	}
	if r.HasChallenge("Labor costs") {
		t.Error("HasChallenge(Labor costs) = true after deselecting")
	}

	if err := r.ToggleChallenge("Parking"); !errors.Is(err, ErrUnknownChallenge) {
		t.Errorf("ToggleChallenge(Parking) error = %v, want ErrUnknownChallenge", err)
	}
	if diff := cmp.Diff([]string{"Space utilization"}, r.Challenges); diff != "" {
		t.Errorf("unknown challenge changed the selection (-want +got):\n%s", diff)
	}
}

func TestToggleChallenge_twiceRestores(t *testing.T) {
	for _, c := range ChallengeOptions {
		t.Run(c, func(t *testing.T) {
			r := Request{Challenges: []string{"Returns processing", "Inventory accuracy"}}
			before := append([]string(nil), r.Challenges...)
			for range 2 {
				if err := r.ToggleChallenge(c); err != nil {
					t.Fatal(err)
				}
			}
			sorted := cmpopts.SortSlices(func(a, b string) bool { return a < b })
			if diff := cmp.Diff(before, r.Challenges, sorted); diff != "" {
				t.Errorf("selection not restored (-want +got):\n%s", diff)
			}
			seen := map[string]bool{}
			for _, s := range r.Challenges {
				if seen[s] {
					t.Errorf("duplicate %q in %v", s, r.Challenges)
				}
				seen[s] = true
			}
		})
	}
}

func TestToggleChallenge_doesNotAliasCaller(t *testing.T) {
	shared := make([]string, 1, 4)
	shared[0] = "Labor costs"
	a := Request{Challenges: shared}
	b := Request{Challenges: shared}
	if err := a.ToggleChallenge("Space utilization"); err != nil {
		t.Fatal(err)
	}
	if err := b.ToggleChallenge("Returns processing"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Labor costs", "Space utilization"}, a.Challenges); diff != "" {
		t.Errorf("a (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Labor costs", "Returns processing"}, b.Challenges); diff != "" {
		t.Errorf("b (-want +got):\n%s", diff)
	}
}

func TestNormalize(t *testing.T) {
	r := Request{
		Name:       "  Ada  ",
		Email:      " ada@example.com",
		Challenges: []string{"Labor costs", "", "Labor costs", "Space utilization"},
	}
	r.Normalize()
	want := Request{
		Name:       "Ada",
		Email:      "ada@example.com",
		Challenges: []string{"Labor costs", "Space utilization"},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeFields(t *testing.T) {
	r := Request{Challenges: []string{"Labor costs"}}
	r.MergeFields(Request{Name: "Ada", Company: "Acme", Challenges: []string{"Returns processing"}})
	want := Request{Name: "Ada", Company: "Acme", Challenges: []string{"Labor costs"}}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("MergeFields mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBillingCycle(t *testing.T) {
	tests := map[string]BillingCycle{
		"":        Monthly,
		"monthly": Monthly,
		"annual":  Annual,
		"Annual ": Annual,
		"yearly":  Annual,
		"weekly":  Monthly,
	}
	for in, want := range tests {
		if got := ParseBillingCycle(in); got != want {
			t.Errorf("ParseBillingCycle(%q) = %v, want %v", in, got, want)
		}
	}
}
