// Package calculator is the demo command set served by the cmdspec
// binary: arithmetic with memory slots over a shared context.
package calculator

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdspec/internal/dispatch"
	"github.com/footprint-tools/cmdspec/internal/domain"
	"github.com/footprint-tools/cmdspec/internal/parser"
)

// Schema is the command document for the calculator.
//
//go:embed calculator.yaml
var Schema []byte

// SchemaName is the name Schema is parsed under.
const SchemaName = "calculator.yaml"

const DefaultPrecision = 2

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrNotFinite      = errors.New("result is not a finite number")
)

// Calculator is the application context every handler mutates.
type Calculator struct {
	Last      float64
	HasLast   bool
	Precision int
	Memory    map[string]float64

	deps Deps
}

// Deps are the calculator's side effects.
type Deps struct {
	Out      io.Writer
	Styler   domain.Styler
	ReadFile func(string) ([]byte, error)
}

func New(deps Deps) *Calculator {
	return &Calculator{
		Precision: DefaultPrecision,
		Memory:    map[string]float64{},
		deps:      deps,
	}
}

// Handlers binds every implementation named in Schema.
func Handlers() dispatch.Handlers[*Calculator] {
	return dispatch.Handlers[*Calculator]{
		"add":       binary("+", func(a, b float64) (float64, error) { return a + b, nil }),
		"subtract":  binary("-", func(a, b float64) (float64, error) { return a - b, nil }),
		"multiply":  binary("*", func(a, b float64) (float64, error) { return a * b, nil }),
		"divide":    binary("/", divide),
		"power":     power,
		"store":     store,
		"recall":    recall,
		"clear":     reset,
		"precision": setPrecision,
		"count":     count,
		"echo":      echo,
	}
}

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

func binary(op string, fn func(a, b float64) (float64, error)) dispatch.HandlerFunc[*Calculator] {
	return func(c *Calculator, args parser.Args) error {
		a, b := args.Float("a", 0), args.Float("b", 0)
		result, err := fn(a, b)
		if err != nil {
			return err
		}
		return c.result(args, fmt.Sprintf("%s %s %s", c.format(a, args), op, c.format(b, args)), result)
	}
}

func power(c *Calculator, args parser.Args) error {
	base, exp := args.Float("base", 0), args.Float("exponent", 2)
	return c.result(args, fmt.Sprintf("%s ^ %s", c.format(base, args), c.format(exp, args)), math.Pow(base, exp))
}

// result records and prints a computed value. Non-finite results are
// rejected and leave Last unchanged.
func (c *Calculator) result(args parser.Args, expr string, v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return ErrNotFinite
	}
	c.Last, c.HasLast = v, true

	text := c.format(v, args)
	if args.Globals().Bool("verbose") {
		c.printf("%s = %s\n", expr, c.deps.Styler.Success(text))
		return nil
	}
	c.printf("%s\n", c.deps.Styler.Success(text))
	return nil
}

func (c *Calculator) format(v float64, args parser.Args) string {
	digits := int(args.Int("precision", int64(c.Precision)))
	return strconv.FormatFloat(v, 'f', digits, 64)
}

func (c *Calculator) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.deps.Out, format, a...)
}

func store(c *Calculator, args parser.Args) error {
	name := args.String("name", "")
	value, ok := c.Last, c.HasLast
	if args.Has("value") {
		value, ok = args.Float("value", 0), true
	}
	if !ok {
		return fmt.Errorf("nothing to store in %q: no result yet, pass a value", name)
	}

	c.Memory[name] = value
	c.printf("%s = %s\n", name, c.deps.Styler.Success(strconv.FormatFloat(value, 'f', c.Precision, 64)))
	return nil
}

func recall(c *Calculator, args parser.Args) error {
	if name, ok := args.Get("name"); ok {
		v, found := c.Memory[name]
		if !found {
			return fmt.Errorf("no value stored in %q", name)
		}
		c.printf("%s\n", strconv.FormatFloat(v, 'f', c.Precision, 64))
		return nil
	}

	if len(c.Memory) == 0 {
		c.printf("%s\n", c.deps.Styler.Muted("memory is empty"))
		return nil
	}
	for _, name := range slices.Sorted(maps.Keys(c.Memory)) {
		c.printf("%s = %s\n", c.deps.Styler.Info(name), strconv.FormatFloat(c.Memory[name], 'f', c.Precision, 64))
	}
	return nil
}

func reset(c *Calculator, args parser.Args) error {
	c.Last, c.HasLast = 0, false
	if args.Bool("memory") {
		c.Memory = map[string]float64{}
		c.printf("cleared result and memory\n")
		return nil
	}
	c.printf("cleared result\n")
	return nil
}

func setPrecision(c *Calculator, args parser.Args) error {
	c.Precision = int(args.Int("digits", DefaultPrecision))
	c.printf("precision set to %d\n", c.Precision)
	return nil
}

func count(c *Calculator, args parser.Args) error {
	path := args.Path("file", "")
	data, err := c.deps.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var n int
	switch args.String("by", "lines") {
	case "words":
		n = len(strings.Fields(string(data)))
	case "chars":
		n = len([]rune(string(data)))
	default:
		n = strings.Count(string(data), "\n")
		if len(data) > 0 && data[len(data)-1] != '\n' {
			n++
		}
	}

	if args.Globals().Bool("verbose") {
		c.printf("%d %s in %s\n", n, args.String("by", "lines"), path)
		return nil
	}
	c.printf("%d\n", n)
	return nil
}

func echo(c *Calculator, args parser.Args) error {
	msg := args.String("message", "")
	if args.Bool("upper") {
		msg = strings.ToUpper(msg)
	}
	for range args.Int("times", 1) {
		c.printf("%s\n", msg)
	}
	return nil
}
