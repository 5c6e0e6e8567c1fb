package codec

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	json "github.com/goccy/go-json"
)

// ErrWrongEntryName is returned when a model archive does not contain the
// entry name the caller asked for. Loading must use the same name that was
// used for saving.
var ErrWrongEntryName = errors.New("archive entry name mismatch")

// jsonArchive wraps the model in a single-entry JSON document keyed by the
// archive entry name.
type jsonArchive struct{}

func (jsonArchive) Encode(w io.Writer, name string, model any) error {
	payload, err := json.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to serialize model: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]json.RawMessage{name: payload})
}

func (jsonArchive) Decode(r io.Reader, name string, model any) error {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("malformed JSON archive: %w", err)
	}
	payload, ok := doc[name]
	if !ok {
		return fmt.Errorf("%w: no entry %q (archive has %s)", ErrWrongEntryName, name, entryNames(doc))
	}
	if err := json.Unmarshal(payload, model); err != nil {
		return fmt.Errorf("failed to deserialize model: %w", err)
	}
	return nil
}

// xmlArchive wraps the model in a root element named after the archive
// entry.
type xmlArchive struct{}

func (xmlArchive) Encode(w io.Writer, name string, model any) error {
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeElement(model, start); err != nil {
		return fmt.Errorf("failed to serialize model: %w", err)
	}
	return enc.Flush()
}

func (xmlArchive) Decode(r io.Reader, name string, model any) error {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("malformed XML archive: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != name {
			return fmt.Errorf("%w: no entry %q (archive has %q)", ErrWrongEntryName, name, start.Name.Local)
		}
		if err := dec.DecodeElement(model, &start); err != nil {
			return fmt.Errorf("failed to deserialize model: %w", err)
		}
		return nil
	}
}

// binArchive wraps the model in a single-entry CBOR map keyed by the archive
// entry name.
type binArchive struct{}

func (binArchive) Encode(w io.Writer, name string, model any) error {
	payload, err := cbor.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to serialize model: %w", err)
	}
	return cbor.NewEncoder(w).Encode(map[string]cbor.RawMessage{name: payload})
}

func (binArchive) Decode(r io.Reader, name string, model any) error {
	var doc map[string]cbor.RawMessage
	if err := cbor.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("malformed binary archive: %w", err)
	}
	payload, ok := doc[name]
	if !ok {
		return fmt.Errorf("%w: no entry %q", ErrWrongEntryName, name)
	}
	if err := cbor.Unmarshal(payload, model); err != nil {
		return fmt.Errorf("failed to deserialize model: %w", err)
	}
	return nil
}

func entryNames(doc map[string]json.RawMessage) string {
	s := ""
	for k := range doc {
		if s != "" {
			s += ", "
		}
		s += fmt.Sprintf("%q", k)
	}
	if s == "" {
		return "no entries"
	}
	return s
}
