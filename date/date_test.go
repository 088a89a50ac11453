package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-01-15", "2025-01-15", false},
		{"2025-1-5", "2025-01-05", false},
		{"2025-13-01", "", true},
		{"15/01/2025", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got.String() != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_Ordering(t *testing.T) {
	a := New(2025, time.January, 15)
	b := New(2025, time.February, 1)
	if !a.Before(b) || !b.After(a) {
		t.Error("ordering broken")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a date is neither before nor after itself")
	}
}

func TestDate_AddNormalizes(t *testing.T) {
	got := New(2025, time.January, 31).Add(1)
	if got.String() != "2025-02-01" {
		t.Errorf("Jan 31 + 1 = %s, want 2025-02-01", got)
	}
	got = New(2024, time.February, 28).Add(1)
	if got.String() != "2024-02-29" {
		t.Errorf("leap year: %s, want 2024-02-29", got)
	}
}

func TestDate_JSON(t *testing.T) {
	d := New(2025, time.June, 3)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-06-03"` {
		t.Errorf("marshal = %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}

	var zero Date
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatal(err)
	}
	if !zero.IsZero() {
		t.Error("empty string must decode to the zero date")
	}
}
