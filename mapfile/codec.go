// Package mapfile loads and saves scene documents.
package mapfile

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/lanemap/scene"
)

// Codec determines how documents are encoded.
type Codec interface {
	Encode(w io.Writer, doc *scene.Document) error
	Decode(r io.Reader) (*scene.Document, error)
}

// JSONCodec encodes documents as JSON.
type JSONCodec struct{}

// Encode writes the document as indented JSON.
func (c JSONCodec) Encode(w io.Writer, doc *scene.Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	return encoder.Encode(toFile(doc))
}

// Decode reads a JSON document. Unknown fields are rejected.
func (c JSONCodec) Decode(r io.Reader) (*scene.Document, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	fd := fileDocument{}

	err := decoder.Decode(&fd)
	if err != nil {
		return nil, errors.Wrap(err, "decoding json document")
	}

	return fromFile(fd)
}

// YAMLCodec encodes documents as YAML.
type YAMLCodec struct{}

// Encode writes the document as YAML.
func (c YAMLCodec) Encode(w io.Writer, doc *scene.Document) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	err := encoder.Encode(toFile(doc))
	if err != nil {
		return err
	}

	return encoder.Close()
}

// Decode reads a YAML document. Unknown fields are rejected.
func (c YAMLCodec) Decode(r io.Reader) (*scene.Document, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	fd := fileDocument{}

	err := decoder.Decode(&fd)
	if err != nil {
		return nil, errors.Wrap(err, "decoding yaml document")
	}

	return fromFile(fd)
}

// CodecFor selects a codec from the extension of a file name.
func CodecFor(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONCodec{}, nil
	case ".yaml", ".yml":
		return YAMLCodec{}, nil
	default:
		return nil, errors.Errorf("unsupported document format: %s", path)
	}
}

// Load reads a document from a file.
func Load(path string) (*scene.Document, error) {
	codec, err := CodecFor(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	doc, err := codec.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	return doc, nil
}

// Save writes a document to a file, replacing its content.
func Save(path string, doc *scene.Document) error {
	codec, err := CodecFor(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	err = codec.Encode(file, doc)
	if err != nil {
		file.Close()
		return errors.Wrapf(err, "saving %s", path)
	}

	return file.Close()
}
