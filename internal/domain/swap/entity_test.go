package swap

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"pending to accepted", StatusPending, StatusAccepted, true},
		{"pending to declined", StatusPending, StatusDeclined, true},
		{"pending to pending", StatusPending, StatusPending, false},
		{"accepted to declined", StatusAccepted, StatusDeclined, false},
		{"accepted to accepted", StatusAccepted, StatusAccepted, false},
		{"declined to accepted", StatusDeclined, StatusAccepted, false},
		{"unknown from", Status("cancelled"), StatusAccepted, false},
		{"unknown to", StatusPending, Status("cancelled"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Fatalf("CanTransition(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Fatalf("pending must not be terminal")
	}
	if !StatusAccepted.Terminal() || !StatusDeclined.Terminal() {
		t.Fatalf("accepted and declined must be terminal")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusAccepted, StatusDeclined} {
		if !s.Valid() {
			t.Fatalf("%q should be valid", s)
		}
	}
	if Status("").Valid() || Status("cancelled").Valid() {
		t.Fatalf("unexpected valid status")
	}
}
