// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// A Format selects the encoding of saved results.
type Format string

const (
	JSON  Format = "json"
	YAML  Format = "yaml"
	Table Format = "table" // summary only; no structured file
)

// ParseFormat parses a -output-format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case JSON, YAML, Table:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want json, yaml, or table)", s)
}

// Ext returns the file extension for f, or "" if f writes no file.
func (f Format) Ext() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	}
	return ""
}

// Encode encodes v in format f.
func Encode(f Format, v interface{}) ([]byte, error) {
	switch f {
	case JSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("format %q has no encoding", f)
}

// WriteFile encodes v in format f and writes it to path, creating the
// parent directory if needed.
func WriteFile(path string, f Format, v interface{}) error {
	data, err := Encode(f, v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return writeFile(path, data)
}

// WriteText writes s to path, creating the parent directory if needed.
func WriteText(path, s string) error {
	return writeFile(path, []byte(s))
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0666)
}
