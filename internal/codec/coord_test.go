package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlio-dev/mlio/mat"
)

func TestCoordRoundTrip(t *testing.T) {
	s, err := mat.NewSparseCOO(3, 4,
		[]int{0, 2, 1},
		[]int{0, 1, 3},
		[]float64{1.5, -2, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, coordCodec{}.Encode(&buf, s, nil))

	got, err := coordCodec{}.Decode(&buf, nil)
	require.NoError(t, err)
	// Coordinate lists carry no explicit dimensions; trailing zero rows
	// and columns are not recoverable.
	assert.Equal(t, 3, got.Rows())
	assert.Equal(t, 4, got.Cols())
	assert.True(t, s.Equal(got))
}

func TestCoordTrailingZeroDimensionsNotRestored(t *testing.T) {
	// Dimensions are inferred from the largest index, so all-zero
	// trailing rows and columns shrink away.
	s, err := mat.NewSparseCOO(4, 4, []int{0}, []int{0}, []float64{1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, coordCodec{}.Encode(&buf, s, nil))
	got, err := coordCodec{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Rows())
	assert.Equal(t, 1, got.Cols())
	assert.Equal(t, 1.0, got.At(0, 0))
}

func TestCoordDecodeTriples(t *testing.T) {
	got, err := coordCodec{}.Decode(strings.NewReader("0 0 1\n2 1 5\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Rows())
	assert.Equal(t, 2, got.Cols())
	assert.Equal(t, 1.0, got.At(0, 0))
	assert.Equal(t, 5.0, got.At(2, 1))
}

func TestCoordDecodeGrid(t *testing.T) {
	// A delimited dense grid converts to sparse form; here every row has
	// four fields, so the coordinate-list guess does not apply.
	got, err := coordCodec{}.Decode(strings.NewReader("1,0,0,2\n0,0,3,0\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Rows())
	assert.Equal(t, 4, got.Cols())
	assert.Equal(t, 3, got.NNZ())
	assert.Equal(t, 3.0, got.At(1, 2))
}

func TestCoordThreeColumnGridIsCoordinates(t *testing.T) {
	// Three fields per row with integral leading fields reads as a
	// coordinate list even if a grid was intended.
	got, err := coordCodec{}.Decode(strings.NewReader("0 1 2\n1 0 3\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.At(0, 1))
	assert.Equal(t, 3.0, got.At(1, 0))
}

func TestCoordNonIntegralFirstFieldIsGrid(t *testing.T) {
	got, err := coordCodec{}.Decode(strings.NewReader("0.5 1 2\n1 0 3\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Rows())
	assert.Equal(t, 3, got.Cols())
	assert.Equal(t, 0.5, got.At(0, 0))
}

func TestCoordNegativeCoordinate(t *testing.T) {
	_, err := coordCodec{}.Decode(strings.NewReader("-1 0 5\n"), nil)
	require.Error(t, err)
}

func TestCoordDuplicatesSummed(t *testing.T) {
	got, err := coordCodec{}.Decode(strings.NewReader("0 0 1\n0 0 2\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.At(0, 0))
	assert.Equal(t, 1, got.NNZ())
}

func TestCoordEmpty(t *testing.T) {
	got, err := coordCodec{}.Decode(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got.NNZ())
}
