package source

import "testing"

func TestSession_InternRoundtrip(t *testing.T) {
	sess := NewSession()
	a := sess.Intern("Ownable")
	b := sess.Intern("Ownable")
	if a != b {
		t.Errorf("Intern(Intern(s).as_str()) should equal Intern(s): got %d != %d", a, b)
	}
	if sess.Str(a) != "Ownable" {
		t.Errorf("Str(a) = %q, want Ownable", sess.Str(a))
	}
}

func TestSession_KeywordsPreinterned(t *testing.T) {
	sess := NewSession()
	if sess.Keywords.Contract == NoSymbol {
		t.Error("kw.Contract should be interned at session creation")
	}
	if got := sess.Intern("contract"); got != sess.Keywords.Contract {
		t.Errorf("re-interning %q should return the prelude Symbol, got %d want %d", "contract", got, sess.Keywords.Contract)
	}
}
