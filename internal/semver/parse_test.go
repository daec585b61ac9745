package semver

import "testing"

func mustParse(t *testing.T, s string) Req {
	t.Helper()
	req, err := Parse(s, 0)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return req
}

func TestParseSimpleOps(t *testing.T) {
	cases := []struct {
		s    string
		want string
	}{
		{"0.8.0", "0.8.0"},
		{"^0.8.0", "^0.8.0"},
		{"~0.8.0", "~0.8.0"},
		{">=0.7.0", ">=0.7.0"},
		{"<=0.9.0", "<=0.9.0"},
		{">0.7.0", ">0.7.0"},
		{"<0.9.0", "<0.9.0"},
		{"=0.8.0", "=0.8.0"},
	}
	for _, c := range cases {
		req := mustParse(t, c.s)
		if got := req.String(); got != c.want {
			t.Errorf("Parse(%q).String() = %q, want %q", c.s, got, c.want)
		}
	}
}

func TestParseRange(t *testing.T) {
	req := mustParse(t, "0.8.0 - 0.8.4")
	if len(req.Dis) != 1 || len(req.Dis[0].Components) != 1 {
		t.Fatalf("expected a single range component, got %+v", req)
	}
	kind := req.Dis[0].Components[0].Kind
	if !kind.Range {
		t.Fatalf("expected Range component, got %+v", kind)
	}
	if kind.Lo.String() != "0.8.0" || kind.Hi.String() != "0.8.4" {
		t.Errorf("unexpected range bounds: %s - %s", kind.Lo, kind.Hi)
	}
}

func TestParseConjunction(t *testing.T) {
	req := mustParse(t, ">=0.7.0 <0.9.0")
	if len(req.Dis) != 1 || len(req.Dis[0].Components) != 2 {
		t.Fatalf("expected one con with two and-ed components, got %+v", req)
	}
}

func TestParseDisjunction(t *testing.T) {
	req := mustParse(t, "^0.8.0 || 0.7.0 - 0.7.6")
	if len(req.Dis) != 2 {
		t.Fatalf("expected two or-ed cons, got %d", len(req.Dis))
	}
}

func TestParseWildcard(t *testing.T) {
	req := mustParse(t, "0.8.x")
	v := req.Dis[0].Components[0].Kind.Lo
	if !v.HasPatch || v.Patch != Wildcard {
		t.Fatalf("expected wildcard patch, got %+v", v)
	}

	req2 := mustParse(t, "*")
	if req2.Dis[0].Components[0].Kind.Lo.Major != Wildcard {
		t.Fatalf("expected wildcard major for bare '*'")
	}
}

func TestParseEmptyIsError(t *testing.T) {
	if _, err := Parse("", 0); err == nil {
		t.Fatal("expected error for empty requirement")
	}
	if _, err := Parse("   ", 0); err == nil {
		t.Fatal("expected error for whitespace-only requirement")
	}
}

func TestParseTrailingGarbageIsError(t *testing.T) {
	if _, err := Parse("0.8.0abc", 0); err == nil {
		t.Fatal("expected error for trailing garbage after version")
	}
}

func TestParseMissingWhitespaceBetweenComponentsIsError(t *testing.T) {
	if _, err := Parse(">=0.7.0<0.9.0", 0); err == nil {
		t.Fatal("expected error: components in a conjunction must be separated by whitespace")
	}
}

func TestParseSpanIsAnchoredAtBase(t *testing.T) {
	const base = uint32(100)
	req, err := Parse("^0.8.0", base)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sp := req.Dis[0].Components[0].Span
	if sp.Lo != base {
		t.Errorf("expected component span to start at base offset %d, got %d", base, sp.Lo)
	}
}

func TestParseErrorSpanIsAnchoredAtBase(t *testing.T) {
	const base = uint32(50)
	_, err := Parse("", base)
	if err == nil {
		t.Fatal("expected error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if pe.Span.Lo != base {
		t.Errorf("expected error span anchored at base %d, got %d", base, pe.Span.Lo)
	}
}
