package tokenize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordCodec treats each whitespace-separated word as one token unit, which
// makes window arithmetic exact and keeps the tests offline.
type wordCodec struct {
	words       []string
	decodeCalls int
}

func newWordCodec(text string) *wordCodec {
	return &wordCodec{words: strings.Fields(text)}
}

func (c *wordCodec) Encode(text string) []int {
	c.words = strings.Fields(text)
	ids := make([]int, len(c.words))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

func (c *wordCodec) Decode(tokens []int) string {
	c.decodeCalls++
	parts := make([]string, len(tokens))
	for i, id := range tokens {
		parts[i] = c.words[id]
	}
	return strings.Join(parts, " ")
}

// repeatWords builds a text of n distinct word tokens.
func repeatWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "w" + string(rune('a'+i%26)) + "_" + strings.Repeat("x", i%3)
	}
	return strings.Join(words, " ")
}

func TestSplitShortTextSingleChunk(t *testing.T) {
	codec := newWordCodec("")
	splitter, err := NewSplitter(10, 2, WithCodec(codec))
	require.NoError(t, err)

	text := "short text that fits the window"
	chunks := splitter.Split(text)

	require.Len(t, chunks, 1)
	// Verbatim, not decoded back through the codec.
	assert.Equal(t, text, chunks[0])
	assert.Zero(t, codec.decodeCalls)
}

func TestSplitExactWindowSingleChunk(t *testing.T) {
	codec := newWordCodec("")
	splitter, err := NewSplitter(8, 3, WithCodec(codec))
	require.NoError(t, err)

	text := repeatWords(8)
	chunks := splitter.Split(text)

	require.Len(t, chunks, 1)
	assert.Equal(t, text, chunks[0])
}

func TestSplitChunkCountFormula(t *testing.T) {
	tests := []struct {
		name            string
		total           int
		window, overlap int
	}{
		{"no overlap even split", 30, 10, 0},
		{"no overlap remainder", 31, 10, 0},
		{"with overlap", 25, 10, 3},
		{"one over the window", 11, 10, 2},
		{"large overlap", 100, 10, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := newWordCodec("")
			splitter, err := NewSplitter(tt.window, tt.overlap, WithCodec(codec))
			require.NoError(t, err)

			chunks := splitter.Split(repeatWords(tt.total))

			step := tt.window - tt.overlap
			want := (tt.total - tt.overlap + step - 1) / step // ceil((T-O)/(W-O))
			assert.Len(t, chunks, want)
		})
	}
}

func TestSplitCoverageAndOverlap(t *testing.T) {
	const total, window, overlap = 23, 10, 4
	codec := newWordCodec("")
	splitter, err := NewSplitter(window, overlap, WithCodec(codec))
	require.NoError(t, err)

	text := repeatWords(total)
	allWords := strings.Fields(text)
	chunks := splitter.Split(text)
	require.Greater(t, len(chunks), 1)

	// Each window must start exactly step tokens after the previous one and
	// the union of windows must cover every token index once or twice.
	covered := make([]int, total)
	step := window - overlap
	for i, chunk := range chunks {
		words := strings.Fields(chunk)
		start := i * step
		for j, w := range words {
			require.Equal(t, allWords[start+j], w, "chunk %d token %d", i, j)
			covered[start+j]++
		}
	}

	for idx, count := range covered {
		assert.GreaterOrEqual(t, count, 1, "token %d uncovered", idx)
		assert.LessOrEqual(t, count, 2, "token %d covered more than twice", idx)
	}

	// Last window ends at the final token.
	lastWords := strings.Fields(chunks[len(chunks)-1])
	assert.Equal(t, allWords[total-1], lastWords[len(lastWords)-1])
}

func TestNewSplitterValidation(t *testing.T) {
	codec := newWordCodec("")

	_, err := NewSplitter(0, 0, WithCodec(codec))
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewSplitter(10, -1, WithCodec(codec))
	assert.ErrorIs(t, err, ErrInvalidOverlap)

	_, err = NewSplitter(10, 10, WithCodec(codec))
	assert.ErrorIs(t, err, ErrInvalidOverlap)

	_, err = NewSplitter(10, 2, WithCodec(nil))
	assert.ErrorIs(t, err, ErrCodecRequired)

	s, err := NewSplitter(1024, 100, WithCodec(codec))
	require.NoError(t, err)
	assert.Equal(t, 1024, s.WindowSize())
	assert.Equal(t, 100, s.Overlap())
}
