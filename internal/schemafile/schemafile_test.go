package schemafile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/cmdspec/internal/schema"
)

const yamlDoc = `
metadata:
  version: "1.2"
  prompt: calc
global_options:
  - name: verbose
    short: v
    long: verbose
    type: bool
    default: false
commands:
  - name: add
    aliases: [plus]
    description: Add two numbers
    required: true
    implementation: add
    arguments:
      - name: a
        type: float
        required: true
      - name: b
        arg_type: float
        required: true
    options:
      - name: precision
        short: p
        long: precision
        type: integer
        default: 2
        validation:
          - min: 0
            max: 10
  - name: load
    implementation: load
    arguments:
      - name: file
        type: path
        required: true
        validation:
          - must_exist: true
          - extensions: [json, yaml]
    options:
      - name: mode
        long: mode
        choices: [fast, safe]
`

const jsoncDoc = `{
  // prompt shown by the shell
  "metadata": {"version": "1.2", "prompt": "calc"},
  "global_options": [
    {"name": "verbose", "short": "v", "long": "verbose", "type": "bool", "default": false},
  ],
  "commands": [
    {
      "name": "add", "aliases": ["plus"], "description": "Add two numbers",
      "required": true, "implementation": "add",
      "arguments": [
        {"name": "a", "type": "float", "required": true},
        {"name": "b", "arg_type": "float", "required": true},
      ],
      "options": [
        {"name": "precision", "short": "p", "long": "precision", "type": "integer",
         "default": 2, "validation": [{"min": 0, "max": 10}]},
      ],
    },
    {
      "name": "load", "implementation": "load",
      "arguments": [
        {"name": "file", "type": "path", "required": true,
         "validation": [{"must_exist": true}, {"extensions": ["json", "yaml"]}]},
      ],
      "options": [{"name": "mode", "long": "mode", "choices": ["fast", "safe"]}],
    },
  ],
}`

const tomlDoc = `
[metadata]
version = "1.2"
prompt = "calc"

[[global_options]]
name = "verbose"
short = "v"
long = "verbose"
type = "bool"
default = false

[[commands]]
name = "add"
aliases = ["plus"]
description = "Add two numbers"
required = true
implementation = "add"

  [[commands.arguments]]
  name = "a"
  type = "float"
  required = true

  [[commands.arguments]]
  name = "b"
  arg_type = "float"
  required = true

  [[commands.options]]
  name = "precision"
  short = "p"
  long = "precision"
  type = "integer"
  default = 2
  validation = [{ min = 0, max = 10 }]

[[commands]]
name = "load"
implementation = "load"

  [[commands.arguments]]
  name = "file"
  type = "path"
  required = true
  validation = [{ must_exist = true }, { extensions = ["json", "yaml"] }]

  [[commands.options]]
  name = "mode"
  long = "mode"
  choices = ["fast", "safe"]
`

const hclDoc = `
metadata {
  version = "1.2"
  prompt  = "calc"
}

global_option "verbose" {
  short   = "v"
  long    = "verbose"
  type    = "bool"
  default = false
}

command "add" {
  aliases        = ["plus"]
  description    = "Add two numbers"
  required       = true
  implementation = "add"

  argument "a" {
    type     = "float"
    required = true
  }
  argument "b" {
    type     = "float"
    required = true
  }
  option "precision" {
    short   = "p"
    long    = "precision"
    type    = "integer"
    default = 2
    validation {
      min = 0
      max = 10
    }
  }
}

command "load" {
  implementation = "load"

  argument "file" {
    type     = "path"
    required = true
    validation {
      must_exist = true
    }
    validation {
      extensions = ["json", "yaml"]
    }
  }
  option "mode" {
    long    = "mode"
    choices = ["fast", "safe"]
  }
}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func requireCalculator(t *testing.T, doc schema.Document) {
	t.Helper()

	require.Equal(t, "1.2", doc.Metadata.Version)
	require.Equal(t, "calc", doc.Metadata.Prompt)
	require.Equal(t, schema.DefaultPromptSuffix, doc.Metadata.PromptSuffix)

	require.Len(t, doc.GlobalOptions, 1)
	verbose := doc.GlobalOptions[0]
	require.Equal(t, schema.TypeBool, verbose.Type)
	require.Equal(t, "v", verbose.Short)
	require.NotNil(t, verbose.Default)
	require.Equal(t, "false", *verbose.Default)

	require.Len(t, doc.Commands, 2)
	add := doc.Commands[0]
	require.Equal(t, "add", add.Name)
	require.Equal(t, []string{"plus"}, add.Aliases)
	require.True(t, add.Required)
	require.Equal(t, "add", add.Implementation)
	require.Len(t, add.Arguments, 2)
	require.Equal(t, schema.TypeFloat, add.Arguments[0].Type)
	require.Equal(t, schema.TypeFloat, add.Arguments[1].Type)

	require.Len(t, add.Options, 1)
	precision := add.Options[0]
	require.Equal(t, schema.TypeInteger, precision.Type)
	require.Equal(t, "2", *precision.Default)
	require.Equal(t, []schema.Rule{schema.Between(0, 10)}, precision.Rules)

	load := doc.Commands[1]
	require.False(t, load.Required)
	file := load.Arguments[0]
	require.Equal(t, schema.TypePath, file.Type)
	require.Equal(t, []schema.Rule{schema.MustExist(), schema.Extensions("json", "yaml")}, file.Rules)
	mode := load.Options[0]
	require.Equal(t, schema.TypeString, mode.Type)
	require.Equal(t, []string{"fast", "safe"}, mode.Choices)
	require.Nil(t, mode.Default)
}

func TestLoad_AllFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "calc.yaml", yamlDoc},
		{"yml", "calc.yml", yamlDoc},
		{"jsonc", "calc.jsonc", jsoncDoc},
		{"toml", "calc.toml", tomlDoc},
		{"hcl", "calc.hcl", hclDoc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			requireCalculator(t, doc)
		})
	}
}

func TestLoad_PlainJSON(t *testing.T) {
	content := `{
  "metadata": {"prompt": "calc", "prompt_suffix": "$ "},
  "commands": [{"name": "echo", "implementation": "echo",
    "arguments": [{"name": "text", "default": "hi"}]}]
}`
	doc, err := Load(writeFile(t, "calc.json", content))
	require.NoError(t, err)
	require.Equal(t, "calc$ ", doc.Metadata.PromptLine())
	require.Equal(t, schema.TypeString, doc.Commands[0].Arguments[0].Type)
	require.Equal(t, "hi", *doc.Commands[0].Arguments[0].Default)
}

func TestLoad_JSONRejectsComments(t *testing.T) {
	_, err := Load(writeFile(t, "calc.json", jsoncDoc))
	require.Error(t, err)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load(writeFile(t, "calc.ini", "x=1"))
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	var serr *Error
	require.True(t, errors.As(err, &serr))
	require.Equal(t, Format(""), serr.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("/etc/app/CALC.YML")
	require.NoError(t, err)
	require.Equal(t, FormatYAML, f)

	f, err = FormatOf("schema.jsonc")
	require.NoError(t, err)
	require.Equal(t, FormatJSONC, f)

	_, err = FormatOf("schema")
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParse_UnknownFieldsRejected(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"yaml", FormatYAML, "commands:\n  - name: a\n    implementation: a\n    colour: red\n"},
		{"json", FormatJSON, `{"commands": [{"name": "a", "implementation": "a", "colour": "red"}]}`},
		{"toml", FormatTOML, "[[commands]]\nname = \"a\"\nimplementation = \"a\"\ncolour = \"red\"\n"},
		{"hcl", FormatHCL, "command \"a\" {\n  implementation = \"a\"\n  colour = \"red\"\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format, "inline")
			require.Error(t, err)
			var serr *Error
			require.True(t, errors.As(err, &serr))
			require.Equal(t, tt.format, serr.Format)
		})
	}
}

func TestParse_RuleVariants(t *testing.T) {
	base := "commands:\n  - name: a\n    implementation: a\n    arguments:\n      - name: n\n        type: integer\n        validation:\n"

	t.Run("must_exist false is dropped", func(t *testing.T) {
		data := "commands:\n  - name: a\n    implementation: a\n    arguments:\n      - name: p\n        type: path\n        validation:\n          - must_exist: false\n"
		doc, err := Parse([]byte(data), FormatYAML, "inline")
		require.NoError(t, err)
		require.Empty(t, doc.Commands[0].Arguments[0].Rules)
	})

	t.Run("min only", func(t *testing.T) {
		doc, err := Parse([]byte(base+"          - min: 1\n"), FormatYAML, "inline")
		require.NoError(t, err)
		require.Equal(t, []schema.Rule{schema.AtLeast(1)}, doc.Commands[0].Arguments[0].Rules)
	})

	t.Run("two variants in one entry", func(t *testing.T) {
		_, err := Parse([]byte(base+"          - min: 1\n            extensions: [txt]\n"), FormatYAML, "inline")
		require.ErrorContains(t, err, "exactly one")
	})

	t.Run("empty entry", func(t *testing.T) {
		_, err := Parse([]byte(base+"          - {}\n"), FormatYAML, "inline")
		require.ErrorContains(t, err, "empty rule")
	})
}

func TestParse_TypeErrors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		data := `{"commands": [{"name": "a", "implementation": "a", "arguments": [{"name": "x", "type": "duration"}]}]}`
		_, err := Parse([]byte(data), FormatJSON, "inline")
		require.ErrorContains(t, err, "unknown type")
		require.ErrorContains(t, err, "commands[0].arguments[0]")
	})

	t.Run("conflicting spellings", func(t *testing.T) {
		data := `{"commands": [{"name": "a", "implementation": "a", "options": [{"name": "x", "long": "x", "type": "int", "option_type": "float"}]}]}`
		_, err := Parse([]byte(data), FormatJSON, "inline")
		require.ErrorContains(t, err, "conflicting types")
	})

	t.Run("aliases accepted", func(t *testing.T) {
		data := `{"commands": [{"name": "a", "implementation": "a", "arguments": [{"name": "x", "type": "Number"}]}]}`
		doc, err := Parse([]byte(data), FormatJSON, "inline")
		require.NoError(t, err)
		require.Equal(t, schema.TypeFloat, doc.Commands[0].Arguments[0].Type)
	})

	t.Run("non-scalar default", func(t *testing.T) {
		data := `{"commands": [{"name": "a", "implementation": "a", "arguments": [{"name": "x", "default": [1]}]}]}`
		_, err := Parse([]byte(data), FormatJSON, "inline")
		require.Error(t, err)
	})
}

func TestParse_StructuralProblemsReported(t *testing.T) {
	data := `
commands:
  - name: copy
    implementation: copy
    arguments:
      - name: src
      - name: dst
        required: true
    options:
      - name: retries
        type: integer
        validation:
          - extensions: [txt]
`
	_, err := Parse([]byte(data), FormatYAML, "inline")
	require.Error(t, err)

	var cerr *schema.CheckError
	require.True(t, errors.As(err, &cerr))
	require.Contains(t, err.Error(), "commands[0](copy)")
}

func TestParse_EmptyYAML(t *testing.T) {
	doc, err := Parse(nil, FormatYAML, "empty")
	require.NoError(t, err)
	require.Empty(t, doc.Commands)
	require.Equal(t, schema.DefaultPromptSuffix, doc.Metadata.PromptSuffix)
}

func TestParse_TOMLScalarDefaults(t *testing.T) {
	data := `
[[commands]]
name = "scale"
implementation = "scale"

  [[commands.arguments]]
  name = "factor"
  type = "float"
  default = 1.5
  choices = [0.5, 1.5, 3]
`
	doc, err := Parse([]byte(data), FormatTOML, "inline")
	require.NoError(t, err)
	arg := doc.Commands[0].Arguments[0]
	require.Equal(t, "1.5", *arg.Default)
	require.Equal(t, []string{"0.5", "1.5", "3"}, arg.Choices)
}
