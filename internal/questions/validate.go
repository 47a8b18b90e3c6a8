package questions

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const convertedSchemaURL = "schema://converted-questions.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Problem describes a record that is well-formed but not usable by the
// quiz API.
type Problem struct {
	Index   int // zero-based position in the file
	ID      int
	Message string
}

// Report is the outcome of checking a converted question file.
type Report struct {
	Path     string
	Count    int
	Problems []Problem
}

// OK reports whether no problems were found.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Check reads the file at path and validates it with Validate.
func Check(path string) (*Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}
	rep, err := Validate(raw)
	if err != nil {
		return nil, err
	}
	rep.Path = path
	return rep, nil
}

// Validate checks raw against ConvertedSchema and then looks for records
// the quiz cannot grade: duplicate ids, options out of letter order and
// a correct_answer that names no option. Schema violations are returned
// as *ErrInvalidFormat; everything else is collected in the Report.
func Validate(raw []byte) (*Report, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidFormat{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalidFormat{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, &ErrInvalidFormat{Err: err}
	}

	rep := &Report{Count: len(qs)}
	seen := make(map[int]int, len(qs))

	for i, q := range qs {
		add := func(format string, args ...any) {
			rep.Problems = append(rep.Problems, Problem{
				Index:   i,
				ID:      q.ID,
				Message: fmt.Sprintf(format, args...),
			})
		}

		if first, dup := seen[q.ID]; dup {
			add("duplicate id (first used by record %d)", first)
		} else {
			seen[q.ID] = i
		}

		letters := make([]string, 0, len(q.Options))
		for j, opt := range q.Options {
			if want := OptionLetter(j); opt.ID != want {
				add("option %d has id %q, want %q", j, opt.ID, want)
			}
			letters = append(letters, opt.ID)
		}

		switch {
		case q.CorrectAnswer == nil:
			add("correct_answer is null")
		case !slices.Contains(letters, *q.CorrectAnswer):
			add("correct_answer %q matches no option", *q.CorrectAnswer)
		}
	}

	return rep, nil
}

// getCompiledSchema compiles ConvertedSchema on first use.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, so round-trip the Go
		// literal through encoding/json.
		defBytes, err := json.Marshal(ConvertedSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(convertedSchemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(convertedSchemaURL)
	})
	return compiledSchema, compileErr
}
