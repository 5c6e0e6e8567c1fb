// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"github.com/mlio-dev/mlio/format"
	"github.com/mlio-dev/mlio/internal/codec"
)

// SaveModel serializes model to filename as a JSON, XML, or binary archive,
// detected from the extension unless opts requests a format explicitly. The
// archive entry is named opts.Name ("model" by default); loading must use
// the same name. A nil opts means defaults.
func SaveModel(filename string, model any, opts *ModelOptions) bool {
	o := modelOptions(opts)

	det, err := resolveSave(filename, format.Model, &o.DataOptions)
	if err != nil {
		return report("save", filename, format.Model, format.AutoDetect, err, &o.DataOptions)
	}

	err = func() error {
		w, closeW, err := openWrite(filename)
		if err != nil {
			return err
		}
		if err := codec.Model(det.Format).Encode(w, o.name(), model); err != nil {
			_ = closeW()
			return err
		}
		return closeW()
	}()
	return report("save", filename, format.Model, det.Format, err, &o.DataOptions)
}

// LoadModel deserializes filename into model, which must be a pointer. The
// archive entry name in opts must match the one the file was saved with.
func LoadModel(filename string, model any, opts *ModelOptions) bool {
	o := modelOptions(opts)

	var det format.Detection
	err := func() error {
		r, closeR, err := openRead(filename)
		if err != nil {
			return err
		}
		defer func() { _ = closeR() }()

		det, err = resolveLoad(filename, format.Model, &o.DataOptions, r)
		if err != nil {
			return err
		}
		return codec.Model(det.Format).Decode(r, o.name(), model)
	}()
	return report("load", filename, format.Model, det.Format, err, &o.DataOptions)
}
