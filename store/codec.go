package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rgodd/dfaconfig"
)

// Codec encodes and decodes DFAConfig records.
type Codec interface {
	Encode(w io.Writer, c *dfaconfig.DFAConfig) error
	Decode(r io.Reader) (*dfaconfig.DFAConfig, error)
	// Ext is the file extension including the leading dot.
	Ext() string
}

// YAML is the default codec.
var YAML Codec = yamlCodec{}

// JSON encodes records as indented JSON.
var JSON Codec = jsonCodec{}

type yamlCodec struct{}

func (yamlCodec) Encode(w io.Writer, c *dfaconfig.DFAConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}

	return enc.Close()
}

func (yamlCodec) Decode(r io.Reader) (*dfaconfig.DFAConfig, error) {
	var c dfaconfig.DFAConfig
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	normalise(&c)

	return &c, nil
}

func (yamlCodec) Ext() string { return ".yaml" }

type jsonCodec struct{}

func (jsonCodec) Encode(w io.Writer, c *dfaconfig.DFAConfig) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(c)
}

func (jsonCodec) Decode(r io.Reader) (*dfaconfig.DFAConfig, error) {
	var c dfaconfig.DFAConfig
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	normalise(&c)

	return &c, nil
}

func (jsonCodec) Ext() string { return ".json" }

// Snappy frames the output of inner with snappy block compression.
func Snappy(inner Codec) Codec { return snappyCodec{inner: inner} }

type snappyCodec struct{ inner Codec }

func (s snappyCodec) Encode(w io.Writer, c *dfaconfig.DFAConfig) error {
	var buf bytes.Buffer
	if err := s.inner.Encode(&buf, c); err != nil {
		return err
	}
	_, err := w.Write(snappy.Encode(nil, buf.Bytes()))

	return err
}

func (s snappyCodec) Decode(r io.Reader) (*dfaconfig.DFAConfig, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, err
	}

	return s.inner.Decode(bytes.NewReader(data))
}

func (s snappyCodec) Ext() string { return s.inner.Ext() + ".sz" }

// CodecFor picks a codec from a file name: .yaml/.yml, .json, each
// optionally followed by .sz.
func CodecFor(name string) (Codec, error) {
	compressed := strings.HasSuffix(name, ".sz")
	base := strings.TrimSuffix(name, ".sz")

	var c Codec
	switch strings.ToLower(filepath.Ext(base)) {
	case ".yaml", ".yml":
		c = YAML
	case ".json":
		c = JSON
	default:
		return nil, fmt.Errorf("CodecFor: %q: %w", name, ErrUnknownFormat)
	}
	if compressed {
		c = Snappy(c)
	}

	return c, nil
}

// normalise replaces nil slices left by decoders with empty ones.
func normalise(c *dfaconfig.DFAConfig) {
	if c.Observable == nil {
		c.Observable = []string{}
	}
	if c.FaultClasses == nil {
		c.FaultClasses = []dfaconfig.FaultClassRecord{}
	}
	if c.Transitions == nil {
		c.Transitions = []dfaconfig.TransitionRecord{}
	}
}
