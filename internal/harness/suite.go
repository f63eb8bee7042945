package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/kbridge/internal/kval"
)

// Suite is an ordered list of conformance cases run against one bridge.
type Suite struct {
	// Name identifies the suite in reports.
	Name string

	// Description explains what the suite covers.
	Description string

	// Cases run in order.
	Cases []Case
}

// Case invokes one exported symbol and checks its outcome.
// Exactly one of Expect and Error is set.
type Case struct {
	// Label is the ledger entry name.
	Label string

	// Call is the exported symbol ("concat", "print_int", ...).
	Call string

	// Args are passed positionally. Their count is the call's arity.
	Args []kval.Value

	// Expect is the value the call must return.
	Expect kval.Value

	// Error is the exact diagnostic the call must fail with.
	Error string
}

// WantsError reports whether the case expects a failure.
func (c Case) WantsError() bool { return c.Error != "" }

// suiteFile is the on-disk form of a Suite.
type suiteFile struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Cases       []caseFile `yaml:"cases"`
}

type caseFile struct {
	Label  string    `yaml:"label"`
	Call   string    `yaml:"call"`
	Args   []Literal `yaml:"args"`
	Expect *Literal  `yaml:"expect,omitempty"`
	Error  *string   `yaml:"error,omitempty"`
}

// LoadSuite reads and parses a suite YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields, or is missing required fields.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	s, err := ParseSuite(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// SuiteNotFoundError is returned when a suite path doesn't exist.
type SuiteNotFoundError struct {
	Path         string
	ResolvedPath string
}

// Error implements the error interface.
func (e *SuiteNotFoundError) Error() string {
	return fmt.Sprintf("suite %q does not exist (resolved to: %s)", e.Path, e.ResolvedPath)
}

// ResolveSuitePaths expands paths into suite files. Relative paths are
// resolved against baseDir; a directory contributes its *.yaml and *.yml
// files in lexical order.
func ResolveSuitePaths(paths []string, baseDir string) ([]string, error) {
	var out []string
	for _, p := range paths {
		resolved := p
		if !filepath.IsAbs(resolved) && baseDir != "" {
			resolved = filepath.Join(baseDir, resolved)
		}

		info, err := os.Stat(resolved)
		if os.IsNotExist(err) {
			return nil, &SuiteNotFoundError{Path: p, ResolvedPath: resolved}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to stat suite %s: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, resolved)
			continue
		}

		var found []string
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(resolved, pattern))
			if err != nil {
				return nil, fmt.Errorf("failed to list suites in %s: %w", p, err)
			}
			found = append(found, matches...)
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}

// LoadSuites resolves paths and loads every suite they name.
func LoadSuites(paths []string, baseDir string) ([]*Suite, error) {
	files, err := ResolveSuitePaths(paths, baseDir)
	if err != nil {
		return nil, err
	}
	suites := make([]*Suite, 0, len(files))
	for _, f := range files {
		s, err := LoadSuite(f)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	return suites, nil
}

// ParseSuite parses suite YAML.
func ParseSuite(data []byte) (*Suite, error) {
	var f suiteFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSuite(&f); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	s := &Suite{Name: f.Name, Description: f.Description, Cases: make([]Case, len(f.Cases))}
	for i, cf := range f.Cases {
		c := Case{Label: cf.Label, Call: cf.Call, Args: make([]kval.Value, len(cf.Args))}
		for j, a := range cf.Args {
			c.Args[j] = a.Value
		}
		if cf.Expect != nil {
			c.Expect = cf.Expect.Value
		} else {
			c.Error = *cf.Error
		}
		s.Cases[i] = c
	}
	return s, nil
}

// validateSuite checks that required fields are present and valid.
func validateSuite(f *suiteFile) error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(f.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(f.Cases))
	for i, c := range f.Cases {
		if c.Label == "" {
			return fmt.Errorf("cases[%d]: label is required", i)
		}
		if seen[c.Label] {
			return fmt.Errorf("cases[%d]: duplicate label %q", i, c.Label)
		}
		seen[c.Label] = true

		if c.Call == "" {
			return fmt.Errorf("cases[%d] %q: call is required", i, c.Label)
		}
		if (c.Expect == nil) == (c.Error == nil) {
			return fmt.Errorf("cases[%d] %q: exactly one of expect or error is required", i, c.Label)
		}
		if c.Error != nil && *c.Error == "" {
			return fmt.Errorf("cases[%d] %q: error message must be non-empty", i, c.Label)
		}
	}
	return nil
}
