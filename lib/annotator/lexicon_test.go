package annotator

import (
	"context"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/pos"
	"gitlab.mdcatapult.io/informatics/software-engineering/prose-feedback/lib/testhelpers"
)

var testLexicon = Lexicon{
	"han":    pos.PRON,
	"var":    pos.AUX,
	"alltid": pos.ADV,
	"trött":  pos.ADJ,
	"log":    pos.VERB,
}

func TestLexiconAnnotate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []pos.Sentence
	}{
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "single sentence",
			text: "Han var alltid trött.",
			want: []pos.Sentence{
				testhelpers.Sent("Han/PRON", "var/AUX", "alltid/ADV", "trött/ADJ", "./PUNCT"),
			},
		},
		{
			name: "sentences split on end punctuation",
			text: "Han log! Han log?",
			want: []pos.Sentence{
				testhelpers.Sent("Han/PRON", "log/VERB", "!/PUNCT"),
				testhelpers.Sent("Han/PRON", "log/VERB", "?/PUNCT"),
			},
		},
		{
			name: "unterminated sentence, numbers and unknown words",
			text: "Han har 3 hundar, sa hon",
			want: []pos.Sentence{
				testhelpers.Sent("Han/PRON", "har/X", "3/NUM", "hundar/X", ",/PUNCT", "sa/X", "hon/X"),
			},
		},
		{
			name: "decomposed letters are composed",
			text: "tro\u0308tt",
			want: []pos.Sentence{
				testhelpers.Sent("trött/ADJ"),
			},
		},
	}
	annotator := NewLexicon(testLexicon)
	for _, tt := range tests {
		t.Log(tt.name)
		got, err := annotator.Annotate(context.Background(), tt.text)
		assert.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestLexiconInvalidEncoding(t *testing.T) {
	_, err := NewLexicon(testLexicon).Annotate(context.Background(), "Han \xff log")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestLoadLexicon(t *testing.T) {
	file, err := ioutil.TempFile(".", "*.yml")
	require.NoError(t, err)
	defer os.Remove(file.Name())

	_, err = file.WriteString("ADJ: [trött, Glad]\nPRON:\n  - han\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	lex, err := LoadLexicon(file.Name())
	require.NoError(t, err)
	assert.Equal(t, Lexicon{"trött": pos.ADJ, "glad": pos.ADJ, "han": pos.PRON}, lex)

	_, err = LoadLexicon("does-not-exist.yml")
	assert.Error(t, err)
}

func TestLoadLexiconUnknownTag(t *testing.T) {
	file, err := ioutil.TempFile(".", "*.yml")
	require.NoError(t, err)
	defer os.Remove(file.Name())

	_, err = file.WriteString("ADJEKTIV: [trött]\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	_, err = LoadLexicon(file.Name())
	assert.Error(t, err)
}
