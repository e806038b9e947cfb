package filters

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func boolPtr(b bool) *bool { return &b }

func TestPassMembers(t *testing.T) {
	tests := []struct {
		name  string
		model *MembersModel
		field *bool
		want  bool
	}{
		{name: "nil model passes true", model: nil, field: boolPtr(true), want: true},
		{name: "nil model passes false", model: nil, field: boolPtr(false), want: true},
		{name: "nil model passes missing", model: nil, field: nil, want: true},
		{name: "all passes true", model: &MembersModel{Value: MembersAll}, field: boolPtr(true), want: true},
		{name: "all passes missing", model: &MembersModel{Value: MembersAll}, field: nil, want: true},
		{name: "members passes true", model: &MembersModel{Value: MembersOnly}, field: boolPtr(true), want: true},
		{name: "members rejects false", model: &MembersModel{Value: MembersOnly}, field: boolPtr(false), want: false},
		{name: "members rejects missing", model: &MembersModel{Value: MembersOnly}, field: nil, want: false},
		{name: "non-members passes false", model: &MembersModel{Value: NonMembersOnly}, field: boolPtr(false), want: true},
		{name: "non-members rejects true", model: &MembersModel{Value: NonMembersOnly}, field: boolPtr(true), want: false},
		{name: "non-members rejects missing", model: &MembersModel{Value: NonMembersOnly}, field: nil, want: false},
		{name: "unknown value fails open", model: &MembersModel{Value: "free-to-play"}, field: boolPtr(true), want: true},
		{name: "empty value fails open", model: &MembersModel{}, field: boolPtr(false), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PassMembers(tt.model, tt.field)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PassMembers mismatch (-want +got):\n%s", diff)
			}
			if again := PassMembers(tt.model, tt.field); again != got {
				t.Errorf("second evaluation = %v, first = %v", again, got)
			}
		})
	}
}

func TestMembersValueNext(t *testing.T) {
	got := []MembersValue{}
	v := MembersAll
	for range 4 {
		v = v.Next()
		got = append(got, v)
	}
	want := []MembersValue{MembersOnly, NonMembersOnly, MembersAll, MembersOnly}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Next cycle mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMembersValue(t *testing.T) {
	for _, s := range []string{"all", "members", "non-members"} {
		v, err := ParseMembersValue(s)
		if err != nil {
			t.Fatalf("ParseMembersValue(%q): %v", s, err)
		}
		if string(v) != s {
			t.Errorf("ParseMembersValue(%q) = %q", s, v)
		}
	}
	if _, err := ParseMembersValue("nonmembers"); err == nil {
		t.Error("expected error for unknown value")
	}
}

func TestMembersValueLabel(t *testing.T) {
	tests := map[MembersValue]string{
		MembersAll:     "All Items",
		MembersOnly:    "Members Only",
		NonMembersOnly: "Non-Members Only",
	}
	for v, want := range tests {
		if got := v.Label(); got != want {
			t.Errorf("%q.Label() = %q, want %q", v, got, want)
		}
	}
}
