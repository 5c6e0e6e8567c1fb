package codec

import (
	"errors"
	"io"

	"github.com/mlio-dev/mlio/mat"
)

// ErrHDF5NotEnabled is reported for .h5/.hdf5/.hdf/.he5 files. HDF5 is part
// of the format contract but this build carries no HDF5 codec; the table
// entry stays live so enabling one later is a one-entry change.
var ErrHDF5NotEnabled = errors.New("HDF5 support not enabled in this build")

type hdf5Codec struct{}

func (hdf5Codec) Encode(io.Writer, *mat.Dense, *TextOptions) error {
	return ErrHDF5NotEnabled
}

func (hdf5Codec) Decode(io.Reader, *TextOptions) (*mat.Dense, error) {
	return nil, ErrHDF5NotEnabled
}
