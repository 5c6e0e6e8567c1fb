package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlio-dev/mlio/mat"
)

func TestArmaBinaryRoundTrip(t *testing.T) {
	m := testMatrix(t)
	var buf bytes.Buffer
	require.NoError(t, armaBinaryCodec{}.Encode(&buf, m, nil))
	assert.True(t, strings.HasPrefix(buf.String(), "ARMA_MAT_BIN_FN008\n2 3\n"))
	// Two header lines plus 6 little-endian float64 elements.
	assert.Equal(t, len("ARMA_MAT_BIN_FN008\n2 3\n")+6*8, buf.Len())

	got, err := armaBinaryCodec{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.True(t, m.Equal(got), "binary round trip must be bit-exact")
}

func TestArmaBinaryTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, armaBinaryCodec{}.Encode(&buf, testMatrix(t), nil))
	short := bytes.NewReader(buf.Bytes()[:buf.Len()-4])
	_, err := armaBinaryCodec{}.Decode(short, nil)
	require.Error(t, err)
}

func TestArmaBinaryCorruptDims(t *testing.T) {
	_, err := armaBinaryCodec{}.Decode(strings.NewReader("ARMA_MAT_BIN_FN008\n2 -1\n"), nil)
	require.Error(t, err)

	_, err = armaBinaryCodec{}.Decode(strings.NewReader("ARMA_MAT_BIN_FN008\ntwo three\n"), nil)
	require.Error(t, err)
}

func TestArmaBinaryHugeDimensionsRejected(t *testing.T) {
	// A dimensions line whose product overflows must fail as a decode
	// error, never panic or allocate for the promised count.
	_, err := armaBinaryCodec{}.Decode(strings.NewReader("ARMA_MAT_BIN_FN008\n4000000000 4000000000\n"), nil)
	require.Error(t, err)
}

func TestArmaBinaryDimensionsBeyondPayload(t *testing.T) {
	// Plausible product, stream far too short: the reader must hit the end
	// of the stream instead of allocating for two billion elements.
	_, err := armaBinaryCodec{}.Decode(strings.NewReader("ARMA_MAT_BIN_FN008\n1000000000 2\n\x00\x00"), nil)
	require.Error(t, err)
}

func TestSparseArmaBinaryRoundTrip(t *testing.T) {
	s, err := mat.NewSparseCOO(4, 3,
		[]int{0, 3, 1, 2},
		[]int{0, 0, 1, 2},
		[]float64{1.5, -2, 3, 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, spArmaBinaryCodec{}.Encode(&buf, s, nil))
	assert.True(t, strings.HasPrefix(buf.String(), "ARMA_SPM_BIN_FN008\n4 3 4\n"))

	got, err := spArmaBinaryCodec{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.True(t, s.Equal(got))
}

func TestSparseArmaBinaryEmpty(t *testing.T) {
	s := mat.NewSparse(3, 3)
	var buf bytes.Buffer
	require.NoError(t, spArmaBinaryCodec{}.Encode(&buf, s, nil))

	got, err := spArmaBinaryCodec{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got.NNZ())
	assert.Equal(t, 3, got.Rows())
	assert.Equal(t, 3, got.Cols())
}

func TestSparseArmaBinaryTruncated(t *testing.T) {
	s, _ := mat.NewSparseCOO(2, 2, []int{0}, []int{0}, []float64{1})
	var buf bytes.Buffer
	require.NoError(t, spArmaBinaryCodec{}.Encode(&buf, s, nil))
	short := bytes.NewReader(buf.Bytes()[:buf.Len()-2])
	_, err := spArmaBinaryCodec{}.Decode(short, nil)
	require.Error(t, err)
}

func TestSparseArmaBinaryHugeNNZRejected(t *testing.T) {
	// The entry count is bounded by rows*cols; a corrupt header cannot
	// drive the payload allocation.
	_, err := spArmaBinaryCodec{}.Decode(strings.NewReader("ARMA_SPM_BIN_FN008\n10 10 4000000000000000000\n"), nil)
	require.Error(t, err)
}

func TestSparseArmaBinaryHugeColumnCountRejected(t *testing.T) {
	_, err := spArmaBinaryCodec{}.Decode(strings.NewReader("ARMA_SPM_BIN_FN008\n1 4000000000000000000 0\n"), nil)
	require.Error(t, err)
}

func TestRawBinaryRoundTrip(t *testing.T) {
	m, err := mat.NewDenseData(4, 1, []float64{1, -2.5, 3, 0})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rawBinaryCodec{}.Encode(&buf, m, nil))
	assert.Equal(t, 4*8, buf.Len(), "raw binary is a bare element stream")

	got, err := rawBinaryCodec{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.True(t, m.Equal(got))
}

func TestRawBinaryDecodesToColumn(t *testing.T) {
	// The format carries no dimensions; any matrix comes back as one column.
	m := testMatrix(t)
	var buf bytes.Buffer
	require.NoError(t, rawBinaryCodec{}.Encode(&buf, m, nil))

	got, err := rawBinaryCodec{}.Decode(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, got.Rows())
	assert.Equal(t, 1, got.Cols())
	assert.Equal(t, m.Data(), got.Data())
}

func TestRawBinaryOddSize(t *testing.T) {
	_, err := rawBinaryCodec{}.Decode(bytes.NewReader(make([]byte, 13)), nil)
	require.Error(t, err)
}

func TestHDF5Disabled(t *testing.T) {
	err := hdf5Codec{}.Encode(&bytes.Buffer{}, testMatrix(t), nil)
	assert.ErrorIs(t, err, ErrHDF5NotEnabled)

	_, err = hdf5Codec{}.Decode(strings.NewReader(""), nil)
	assert.ErrorIs(t, err, ErrHDF5NotEnabled)
}
