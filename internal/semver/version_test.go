package semver

import "testing"

func TestVersionString(t *testing.T) {
	cases := []struct {
		v    Version
		want string
	}{
		{Version{Major: 1}, "1"},
		{Version{Major: 1, Minor: 2, HasMinor: true}, "1.2"},
		{Version{Major: 1, Minor: 2, HasMinor: true, Patch: 3, HasPatch: true}, "1.2.3"},
		{Version{Major: Wildcard}, "*"},
		{Version{Major: 0, Minor: 8, HasMinor: true, Patch: Wildcard, HasPatch: true}, "0.8.*"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("Version{%+v}.String() = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestVersionCompare(t *testing.T) {
	v := func(major, minor, patch uint32) Version {
		return Version{Major: Number(major), Minor: Number(minor), HasMinor: true, Patch: Number(patch), HasPatch: true}
	}

	if v(1, 2, 3).Compare(v(1, 2, 3)) != 0 {
		t.Error("expected equal versions to compare 0")
	}
	if v(1, 2, 4).Compare(v(1, 2, 3)) <= 0 {
		t.Error("expected 1.2.4 > 1.2.3")
	}
	if v(1, 2, 3).Compare(v(1, 3, 0)) >= 0 {
		t.Error("expected 1.2.3 < 1.3.0")
	}
	if v(0, 8, 0).Compare(v(1, 0, 0)) >= 0 {
		t.Error("expected 0.8.0 < 1.0.0")
	}
}

func TestVersionCompareMissingComponentsAreVacuous(t *testing.T) {
	a := Version{Major: 1}
	b := Version{Major: 1, Minor: 5, HasMinor: true}
	if a.Compare(b) != 0 {
		t.Errorf("expected bare major-only version to compare equal ignoring unspecified components, got %d", a.Compare(b))
	}
}

func TestVersionCompareWildcard(t *testing.T) {
	a := Version{Major: 1, Minor: Wildcard, HasMinor: true}
	b := Version{Major: 1, Minor: 9, HasMinor: true}
	if a.Compare(b) != 0 {
		t.Errorf("expected wildcard minor to compare equal to any minor, got %d", a.Compare(b))
	}
}
