package model

import "testing"

func TestParseSortKey(t *testing.T) {
	cases := []struct {
		value   string
		want    SortKey
		wantErr bool
	}{
		{"char", SortByChar, false},
		{"count", SortByCount, false},
		{"", SortByChar, true},
		{"Count", SortByChar, true},
		{"frequency", SortByChar, true},
	}
	for _, tc := range cases {
		got, err := ParseSortKey(tc.value)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseSortKey(%q): expected error", tc.value)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSortKey(%q): unexpected error: %v", tc.value, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSortKey(%q) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func intPtr(v int) *int {
	return &v
}

func TestResolveModeDefaultsToPlain(t *testing.T) {
	mode := ResolveMode(ModeFlags{})
	if mode.Kind != ModePlain {
		t.Fatalf("expected plain mode, got %v", mode.Kind)
	}
}

func TestResolveModeSingleFlag(t *testing.T) {
	cases := []struct {
		name  string
		flags ModeFlags
		want  DisplayMode
	}{
		{"percent", ModeFlags{Percent: true}, DisplayMode{Kind: ModePercent}},
		{"top", ModeFlags{TopN: intPtr(3)}, DisplayMode{Kind: ModeTopN, N: 3}},
		{"more than", ModeFlags{MoreThan: intPtr(2)}, DisplayMode{Kind: ModeMoreThan, N: 2}},
		{"less than", ModeFlags{LessThan: intPtr(5)}, DisplayMode{Kind: ModeLessThan, N: 5}},
		{"exactly", ModeFlags{Exactly: intPtr(1)}, DisplayMode{Kind: ModeExactly, N: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveMode(tc.flags); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestResolveModePrecedence(t *testing.T) {
	all := ModeFlags{
		Percent:  true,
		TopN:     intPtr(1),
		MoreThan: intPtr(2),
		LessThan: intPtr(3),
		Exactly:  intPtr(4),
	}
	if got := ResolveMode(all); got.Kind != ModePercent {
		t.Fatalf("percent should win over every other flag, got %v", got.Kind)
	}

	noPercent := all
	noPercent.Percent = false
	if got := ResolveMode(noPercent); got.Kind != ModeTopN || got.N != 1 {
		t.Fatalf("top-n should win once percent is absent, got %+v", got)
	}

	onlyThresholds := ModeFlags{MoreThan: intPtr(2), LessThan: intPtr(3), Exactly: intPtr(4)}
	if got := ResolveMode(onlyThresholds); got.Kind != ModeMoreThan || got.N != 2 {
		t.Fatalf("more-than should win among thresholds, got %+v", got)
	}
}
