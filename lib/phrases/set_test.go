package phrases

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []string
	}{
		{
			name: "empty input",
			raw:  nil,
			want: []string{},
		},
		{
			name: "only whitespace",
			raw:  []string{"", "  ", "\t"},
			want: []string{},
		},
		{
			name: "trims, lower cases and deduplicates",
			raw:  []string{" Alltid", "alltid ", "ALLTID", "nog"},
			want: []string{"alltid", "nog"},
		},
		{
			name: "collapses whitespace inside a phrase",
			raw:  []string{"kom   igen", "Kom\tigen"},
			want: []string{"kom igen"},
		},
		{
			name: "swedish letters",
			raw:  []string{"ÅTERIGEN", "Även"},
			want: []string{"återigen", "även"},
		},
		{
			name: "decomposed letters are composed",
			raw:  []string{"pa\u030a", "på", "PA\u030a", "tro\u0308tt"},
			want: []string{"på", "trött"},
		},
	}
	for _, tt := range tests {
		t.Log(tt.name)
		assert.Equal(t, tt.want, New(tt.raw...).Display())
	}
}

func TestNormalizedEntries(t *testing.T) {
	set := ParseInline(" Hej ,, HEJ,  då ,  ,Kom Igen , x")
	for _, phrase := range set.Display() {
		assert.NotEmpty(t, phrase)
		assert.Equal(t, strings.ToLower(strings.TrimSpace(phrase)), phrase)
	}
	assert.Equal(t, 4, set.Len())
}

func TestNormalizationIsIdempotent(t *testing.T) {
	first := ParseInline("Alltid, nog ,kom igen, KOM IGEN, 10 ord, 2 ord")
	second := New(first.Display()...)
	assert.Equal(t, first.Display(), second.Display())

	third := ParseInline(first.String())
	assert.Equal(t, first.Display(), third.Display())
}

func TestParseFileAndInlineAreDistinct(t *testing.T) {
	file := ParseFile("alltid\r\nkom igen, nu\n\n  nog  \n")
	assert.Equal(t, []string{"alltid", "kom igen, nu", "nog"}, file.Display())

	classic := ParseFile("alltid\rnog\r\rkom igen\r")
	assert.Equal(t, []string{"alltid", "kom igen", "nog"}, classic.Display())

	inline := ParseInline("alltid\nnog, kom igen")
	assert.Equal(t, []string{"alltid nog", "kom igen"}, inline.Display())
}

func TestDisplayIsNatural(t *testing.T) {
	set := New("ord10", "ord2", "ord1", "zebra", "öga", "äpple", "åska", "apa")
	assert.Equal(t, []string{"apa", "ord1", "ord2", "ord10", "zebra", "åska", "äpple", "öga"}, set.Display())
	assert.Equal(t, "apa, ord1, ord2, ord10, zebra, åska, äpple, öga", set.String())
}

func TestMatchOrder(t *testing.T) {
	set := New("kom", "kom igen", "nu", "är det", "så")
	assert.Equal(t, []string{"kom igen", "är det", "kom", "nu", "så"}, set.MatchOrder())
}

func TestContains(t *testing.T) {
	set := New("Alltid")
	assert.True(t, set.Contains("alltid"))
	assert.False(t, set.Contains("Alltid"))
	assert.False(t, Set{}.Contains("alltid"))
	assert.Equal(t, 0, Set{}.Len())
	assert.Empty(t, Set{}.MatchOrder())
}

func TestDefault(t *testing.T) {
	set := Default()
	assert.True(t, set.Contains("alltid"))
	assert.True(t, set.Contains("väldigt"))
	assert.Len(t, set.Display(), set.Len())
	assert.Equal(t, len(defaultForbidden), set.Len())
}

func TestLoad(t *testing.T) {
	file, err := ioutil.TempFile(".", "*.yml")
	require.NoError(t, err)
	defer os.Remove(file.Name())

	_, err = file.WriteString("forbidden_words:\n  - Alltid\n  - kom igen\n  - '  '\n")
	require.NoError(t, err)
	require.NoError(t, file.Close())

	set, err := Load(file.Name())
	assert.NoError(t, err)
	assert.Equal(t, []string{"alltid", "kom igen"}, set.Display())

	_, err = Load("does-not-exist.yml")
	assert.Error(t, err)
}
