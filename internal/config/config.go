// Package config loads kbridge run configuration from CUE.
//
// A configuration file is a plain CUE struct. It is unified with the
// embedded #Config schema, which supplies defaults and rejects unknown
// fields, then checked for concreteness and decoded into Config.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/kbridge/internal/bench"
)

//go:embed schema.cue
var schemaSource []byte

// Color modes for text reports.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is a fully defaulted run configuration.
type Config struct {
	Bridges      Bridges  `json:"bridges"`
	Bench        Bench    `json:"bench"`
	Suites       []string `json:"suites"`
	FailOnAssert bool     `json:"failOnAssert"`
	Color        string   `json:"color"`
}

// Bridges names the two implementations under comparison.
type Bridges struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Bench holds benchmark parameters.
type Bench struct {
	Start  float64 `json:"start"`
	Step   float64 `json:"step"`
	Length int     `json:"length"`
	Repeat int     `json:"repeat"`
	Seed   uint64  `json:"seed"`
}

// Schedule converts the bench section to a bench.Schedule.
func (b Bench) Schedule() bench.Schedule {
	return bench.Schedule{Start: b.Start, Step: b.Step, Length: b.Length}
}

// Error codes.
const (
	ErrCodeRead     = "CONFIG_READ"
	ErrCodeCompile  = "CONFIG_COMPILE"
	ErrCodeValidate = "CONFIG_VALIDATE"
	ErrCodeDecode   = "CONFIG_DECODE"
)

// Error is a configuration failure, positioned when CUE reports a position.
type Error struct {
	Code    string
	Message string
	Pos     token.Pos
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsConfigError reports whether err is or wraps a *Error.
func IsConfigError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}

// Default returns the schema defaults.
func Default() (*Config, error) {
	return Parse("default.cue", nil)
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Code: ErrCodeRead, Message: fmt.Sprintf("reading config: %v", err)}
	}
	return Parse(path, data)
}

// Parse validates CUE source against the schema. filename is used in
// error positions only.
func Parse(filename string, src []byte) (*Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, &Error{Code: ErrCodeCompile, Message: fmt.Sprintf("compiling schema: %v", err)}
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	user := ctx.CompileBytes(src, cue.Filename(filename))
	if err := user.Err(); err != nil {
		return nil, cueError(ErrCodeCompile, err)
	}

	value := def.Unify(user)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, cueError(ErrCodeValidate, err)
	}

	var cfg Config
	if err := value.Decode(&cfg); err != nil {
		return nil, cueError(ErrCodeDecode, err)
	}
	if cfg.Suites == nil {
		cfg.Suites = []string{}
	}
	return &cfg, nil
}

// cueError converts a CUE error into an *Error carrying the first position.
func cueError(code string, err error) *Error {
	e := &Error{Code: code, Message: cueerrors.Details(err, nil)}
	for _, ce := range cueerrors.Errors(err) {
		if pos := ce.Position(); pos.IsValid() {
			e.Pos = pos
			e.Message = ce.Error()
			break
		}
	}
	return e
}
