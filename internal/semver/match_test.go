package semver

import "testing"

func v(s string) Version {
	req, err := Parse(s, 0)
	if err != nil {
		panic(err)
	}
	return req.Dis[0].Components[0].Kind.Lo
}

func TestMatchesCaret(t *testing.T) {
	req, err := Parse("^0.8.0", 0)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		version string
		want    bool
	}{
		{"0.8.0", true},
		{"0.8.7", true},
		{"0.9.0", false},
		{"0.7.9", false},
		{"1.0.0", false},
	}
	for _, c := range cases {
		if got := req.Matches(v(c.version)); got != c.want {
			t.Errorf("^0.8.0 matches %s = %v, want %v", c.version, got, c.want)
		}
	}

	req2, err := Parse("^1.2.3", 0)
	if err != nil {
		t.Fatal(err)
	}
	cases2 := []struct {
		version string
		want    bool
	}{
		{"1.2.3", true},
		{"1.9.9", true},
		{"1.2.2", false},
		{"2.0.0", false},
	}
	for _, c := range cases2 {
		if got := req2.Matches(v(c.version)); got != c.want {
			t.Errorf("^1.2.3 matches %s = %v, want %v", c.version, got, c.want)
		}
	}
}

func TestMatchesTilde(t *testing.T) {
	req, err := Parse("~0.8.3", 0)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		version string
		want    bool
	}{
		{"0.8.3", true},
		{"0.8.9", true},
		{"0.8.2", false},
		{"0.9.0", false},
	}
	for _, c := range cases {
		if got := req.Matches(v(c.version)); got != c.want {
			t.Errorf("~0.8.3 matches %s = %v, want %v", c.version, got, c.want)
		}
	}
}

func TestMatchesRange(t *testing.T) {
	req, err := Parse("0.8.0 - 0.8.4", 0)
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		version string
		want    bool
	}{
		{"0.8.0", true},
		{"0.8.4", true},
		{"0.8.2", true},
		{"0.7.9", false},
		{"0.8.5", false},
	}
	for _, c := range cases {
		if got := req.Matches(v(c.version)); got != c.want {
			t.Errorf("0.8.0 - 0.8.4 matches %s = %v, want %v", c.version, got, c.want)
		}
	}
}

func TestMatchesDisjunction(t *testing.T) {
	req, err := Parse("^0.8.0 || 0.7.0 - 0.7.6", 0)
	if err != nil {
		t.Fatal(err)
	}
	if !req.Matches(v("0.8.5")) {
		t.Error("expected 0.8.5 to satisfy ^0.8.0 branch")
	}
	if !req.Matches(v("0.7.3")) {
		t.Error("expected 0.7.3 to satisfy the range branch")
	}
	if req.Matches(v("0.6.0")) {
		t.Error("expected 0.6.0 to satisfy neither branch")
	}
}

func TestMatchesBareVersionIsExact(t *testing.T) {
	req, err := Parse("0.8.0", 0)
	if err != nil {
		t.Fatal(err)
	}
	if !req.Matches(v("0.8.0")) {
		t.Error("expected bare version to match itself exactly")
	}
	if req.Matches(v("0.8.1")) {
		t.Error("expected bare version to reject a patch bump")
	}
}

func TestMatchesWildcardComponent(t *testing.T) {
	req, err := Parse("0.8.x", 0)
	if err != nil {
		t.Fatal(err)
	}
	if !req.Matches(v("0.8.0")) || !req.Matches(v("0.8.9")) {
		t.Error("expected 0.8.x to match any patch under 0.8")
	}
	if req.Matches(v("0.9.0")) {
		t.Error("expected 0.8.x to reject a different minor")
	}
}
