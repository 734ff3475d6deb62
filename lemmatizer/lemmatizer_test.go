package lemmatizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultLemmatizer(t *testing.T) {
	analyze, err := NewLemmatizer("")
	require.NoError(t, err)

	cases := []struct {
		form     string
		pos      string
		expected string
	}{
		{"batteries", "NNS", "battery"},
		{"Screens", "NNS", "screen"},
		{"boxes", "NNS", "box"},
		{"children", "NNS", "child"},
		{"is", "VBZ", "be"},
		{"was", "VBD", "be"},
		{"loved", "VBD", "love"},
		{"drains", "VBZ", "drain"},
		{"charging", "VBG", "charge"},
		{"stopped", "VBD", "stop"},
		{"better", "JJR", "good"},
		{"bigger", "JJR", "big"},
		{"n't", "RB", "not"},
		{"ca", "MD", "can"},
		{"third", "CD", "#ord#"},
		{"twenty", "CD", "#crd#"},
		{"www.example.com", "NN", "#url#"},
		{"123", "CD", "0"},
		{"screen", "NN", "screen"},
	}
	for _, c := range cases {
		t.Run(c.form, func(t *testing.T) {
			require.Equal(t, c.expected, analyze(c.form, c.pos))
		})
	}
}

func TestGuessBase(t *testing.T) {
	cases := []struct {
		form     string
		pos      string
		expected string
	}{
		{"zippers", "NNS", "zipper"},
		{"glitches", "NNS", "glitch"},
		{"bonuses", "NNS", "bonus"},
		{"hopping", "VBG", "hop"},
		{"hoping", "VBG", "hope"},
		{"squeezed", "VBD", "squeeze"},
		{"carried", "VBD", "carry"},
		{"flimsier", "JJR", "flimsy"},
		{"loudest", "JJS", "loud"},
		{"balancing", "VBG", "balance"},
	}
	for _, c := range cases {
		t.Run(c.form, func(t *testing.T) {
			got, ok := guessBase(c.form, c.pos)
			require.True(t, ok)
			require.Equal(t, c.expected, got)
		})
	}

	_, ok := guessBase("screen", "NN")
	require.False(t, ok)
}

func TestLemmatizerFromFolder(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"abbr_rule.bsv": "",
		"adj_rule.bsv":  "er|\n",
		"noun_rule.bsv": "s|\n",
		"verb_rule.bsv": "ed|\n",
		"noun_exc.bsv":  "mice|mouse\n",
		"verb_exc.bsv":  "",
		"adj_exc.bsv":   "",
		"adv_exc.bsv":   "",
		"noun_base.txt": "gadget\n",
		"verb_base.txt": "",
		"adj_base.txt":  "",
		"adv_base.txt":  "",
		"ord_base.txt":  "",
		"crd_base.txt":  "",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	analyze, err := NewLemmatizer(dir)
	require.NoError(t, err)
	require.Equal(t, "mouse", analyze("mice", "NNS"))
	require.Equal(t, "gadget", analyze("gadgets", "NNS"))
}

func TestReadRuleListRejectsBrokenRule(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "noun_rule.bsv"), []byte("s|x|y\n"), 0o644))
	_, err := ReadRuleList(os.DirFS(dir), "noun_rule.bsv")
	require.Error(t, err)
}
