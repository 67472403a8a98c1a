// Package schemafile reads command schema documents from disk.
//
// A schema document describes a command surface: metadata for the
// interactive prompt, the commands with their positional arguments and
// named options, and options shared by every command. The same document
// can be authored as YAML, JSON, JSONC (JSON with comments and trailing
// commas), TOML or HCL; the format is chosen by file extension.
//
// The typical flow:
//
//  1. Load or Parse: bytes → schema.Document
//  2. schema.Check: structural problems, all reported at once
//  3. registry.Build: name and alias uniqueness
package schemafile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/log"
	"github.com/footprint-tools/cmdspec/internal/schema"
)

type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatTOML  Format = "toml"
	FormatHCL   Format = "hcl"
)

var extensions = map[string]Format{
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".json":  FormatJSON,
	".jsonc": FormatJSONC,
	".toml":  FormatTOML,
	".hcl":   FormatHCL,
}

// ErrUnsupportedFormat is returned for file extensions with no decoder.
var ErrUnsupportedFormat = errors.New("unsupported schema format")

// Error describes a document that could not be read, decoded or checked.
type Error struct {
	Path   string
	Format Format
	Err    error
}

func (e *Error) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("schema %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("schema %s (%s): %v", e.Path, e.Format, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FormatOf picks a format from a file name's extension.
func FormatOf(path string) (Format, error) {
	if f, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want .yaml, .yml, .json, .jsonc, .toml or .hcl)", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads, decodes and checks the schema document at path.
func Load(path string) (schema.Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return schema.Document{}, &Error{Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return schema.Document{}, &Error{Path: path, Format: format, Err: err}
	}

	return Parse(data, format, path)
}

// Parse decodes and checks a schema document. name is used in error
// messages and, for HCL, diagnostics.
func Parse(data []byte, format Format, name string) (schema.Document, error) {
	raw, err := decode(data, format, name)
	if err != nil {
		return schema.Document{}, &Error{Path: name, Format: format, Err: err}
	}

	doc, err := raw.document()
	if err != nil {
		return schema.Document{}, &Error{Path: name, Format: format, Err: err}
	}

	if err := schema.Check(doc); err != nil {
		return schema.Document{}, &Error{Path: name, Format: format, Err: err}
	}

	log.Debug("schemafile: loaded %s (%s): %d commands, %d global options", name, format, len(doc.Commands), len(doc.GlobalOptions))
	return doc, nil
}

func decode(data []byte, format Format, name string) (*fileDocument, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON:
		return decodeJSON(data)
	case FormatJSONC:
		return decodeJSONC(data)
	case FormatTOML:
		return decodeTOML(data)
	case FormatHCL:
		return decodeHCL(data, name)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
