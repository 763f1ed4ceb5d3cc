package hunk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	normaliser := New()
	require.NotNil(t, normaliser)
	assert.IsType(t, &Normaliser{}, normaliser)
}

func TestNormalise(t *testing.T) {
	cases := map[string]struct {
		input string
		want  string
	}{
		"strips function context": {
			input: "@@ -1,2 +1,3 @@ func foo() {",
			want:  "@@ -1,2 +1,3 @@",
		},
		"header without context": {
			input: "@@ -10 +10 @@",
			want:  "@@ -10 +10 @@",
		},
		"zero context single line ranges": {
			input: "@@ -0,0 +1 @@ package main",
			want:  "@@ -0,0 +1 @@",
		},
		"context containing at signs": {
			input: "@@ -4 +4 @@ def f(x): return x @@ y",
			want:  "@@ -4 +4 @@",
		},
		"only hunk lines change": {
			input: "diff --git a/a.go b/a.go\n" +
				"index 1111111..2222222 100644\n" +
				"--- a/a.go\n" +
				"+++ b/a.go\n" +
				"@@ -3 +3 @@ func main() {\n" +
				"-\tprintln(\"a\")\n" +
				"+\tprintln(\"b\")\n",
			want: "diff --git a/a.go b/a.go\n" +
				"index 1111111..2222222 100644\n" +
				"--- a/a.go\n" +
				"+++ b/a.go\n" +
				"@@ -3 +3 @@\n" +
				"-\tprintln(\"a\")\n" +
				"+\tprintln(\"b\")\n",
		},
		"added line that mentions hunk markers is untouched": {
			input: "+// @@ -1 +1 @@ not a header",
			want:  "+// @@ -1 +1 @@ not a header",
		},
		"empty": {
			input: "",
			want:  "",
		},
	}
	normaliser := New()
	for name := range cases {
		tc := cases[name]
		t.Run(name, func(t *testing.T) {
			got := normaliser.Normalise(tc.input)
			require.Empty(t, cmp.Diff(tc.want, got), "normalise")
		})
	}
}

func TestNormalise_Idempotent(t *testing.T) {
	inputs := []string{
		"@@ -1,2 +1,3 @@ func foo() {",
		"@@ -1 +1 @@\n-a\n+b\n@@ -9,0 +10,2 @@ type T struct {\n+x\n+y",
		"@@ malformed header without closing marker",
		"plain text\nwith no hunks\n",
		"@@@ -1,2 -1,2 +1,3 @@@ combined diff",
		"",
	}
	normaliser := New()
	for _, input := range inputs {
		once := normaliser.Normalise(input)
		twice := normaliser.Normalise(once)
		assert.Equal(t, once, twice, "normalise twice: %q", input)
	}
}

func TestNormalise_MalformedHeaderUnchanged(t *testing.T) {
	normaliser := New()
	input := "@@ header never closes"
	assert.Equal(t, input, normaliser.Normalise(input))
}
