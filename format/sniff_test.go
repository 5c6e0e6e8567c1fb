// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package format

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSniffArmaASCII(t *testing.T) {
	r := bytes.NewReader([]byte("ARMA_MAT_TXT_FN008\n2 2\n1 2\n3 4\n"))
	f, err := Sniff(r, []FileFormat{RawASCII, ArmaASCII})
	require.NoError(t, err)
	assert.Equal(t, ArmaASCII, f)
}

func TestSniffRawASCIIFallback(t *testing.T) {
	r := bytes.NewReader([]byte("1 2\n3 4\n"))
	f, err := Sniff(r, []FileFormat{RawASCII, ArmaASCII})
	require.NoError(t, err)
	assert.Equal(t, RawASCII, f)
}

func TestSniffArmaBinary(t *testing.T) {
	r := bytes.NewReader([]byte("ARMA_MAT_BIN_FN008\n2 2\n\x00\x00"))
	f, err := Sniff(r, []FileFormat{RawBinary, ArmaBinary})
	require.NoError(t, err)
	assert.Equal(t, ArmaBinary, f)
}

func TestSniffSparseBinaryHeader(t *testing.T) {
	// The sparse payload tag also selects the Armadillo binary codec.
	r := bytes.NewReader([]byte("ARMA_SPM_BIN_FN008\n2 2 1\n"))
	f, err := Sniff(r, []FileFormat{RawBinary, ArmaBinary})
	require.NoError(t, err)
	assert.Equal(t, ArmaBinary, f)
}

func TestSniffRawBinaryFallback(t *testing.T) {
	r := bytes.NewReader([]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07})
	f, err := Sniff(r, []FileFormat{RawBinary, ArmaBinary})
	require.NoError(t, err)
	assert.Equal(t, RawBinary, f)
}

func TestSniffRestoresPosition(t *testing.T) {
	content := []byte("ARMA_MAT_TXT_FN008\n1 1\n5\n")
	r := bytes.NewReader(content)

	_, err := Sniff(r, []FileFormat{RawASCII, ArmaASCII})
	require.NoError(t, err)

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, content, rest, "sniffing must not consume the stream")
}

func TestSniffShortFile(t *testing.T) {
	// Shorter than the sniff prefix; untagged fallback still applies.
	r := bytes.NewReader([]byte("1 2\n"))
	f, err := Sniff(r, []FileFormat{RawASCII, ArmaASCII})
	require.NoError(t, err)
	assert.Equal(t, RawASCII, f)
}

func TestSniffAmbiguous(t *testing.T) {
	// Tagged-only candidate set with no matching magic token.
	r := bytes.NewReader([]byte("plain text\n"))
	_, err := Sniff(r, []FileFormat{ArmaASCII, ArmaBinary})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguous)
}
