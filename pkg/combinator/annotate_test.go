package combinator

import "testing"

func TestAnnotate(t *testing.T) {
	var captured []string
	p := Annotate(identifier(), func(text string) {
		captured = append(captured, text)
	})

	out := p(MustSource("abc123 ").Start())
	if !out.OK || out.Next.Pos() != 6 {
		t.Fatalf("outcome = %v/%d, want true/6", out.OK, out.Next.Pos())
	}
	if len(captured) != 1 || captured[0] != "abc123" {
		t.Errorf("captured = %v, want [abc123]", captured)
	}
}

func TestAnnotate_NotCalledOnFailure(t *testing.T) {
	called := false
	p := Annotate(Literal("ab"), func(string) { called = true })

	out := p(MustSource("ax").Start())
	if out.OK {
		t.Fatal("expected failure")
	}
	if called {
		t.Error("onMatch must not run on failure")
	}
}

func TestAnnotate_ReturnsOutcomeUnchanged(t *testing.T) {
	inner := Sequence(Equals('a'), Equals('b'))
	wrapped := Annotate(inner, func(string) {})

	for _, input := range []string{"ab", "ax", ""} {
		c := MustSource(input).Start()
		want := inner(c)
		got := wrapped(c)
		if got.OK != want.OK || got.Next.Pos() != want.Next.Pos() {
			t.Errorf("%q: got %v/%d, want %v/%d", input, got.OK, got.Next.Pos(), want.OK, want.Next.Pos())
		}
	}
}

func TestAnnotate_NilCallback(t *testing.T) {
	if !Annotate(Equals('a'), nil)(MustSource("a").Start()).OK {
		t.Error("nil callback should still match")
	}
}

func TestAnnotate_CapturesInnerMatchesInOrder(t *testing.T) {
	var captured []string
	word := Annotate(OneOrMore(IsAlpha()), func(text string) {
		captured = append(captured, text)
	})
	words := ZeroOrMore(Alternative(IsSpace(), word))

	out := words(MustSource("int main ret").Start())
	if !out.OK || !out.Next.AtEnd() {
		t.Fatalf("outcome = %v/%d", out.OK, out.Next.Pos())
	}

	want := []string{"int", "main", "ret"}
	if len(captured) != len(want) {
		t.Fatalf("captured = %v, want %v", captured, want)
	}
	for i := range want {
		if captured[i] != want[i] {
			t.Errorf("captured[%d] = %q, want %q", i, captured[i], want[i])
		}
	}
}
