// Package counter tokenizes and counts tokens in strings, files, directories,
// and file lists, delegating the actual byte-pair encoding to package encoding
// and text decoding to package textdecode.
package counter

import (
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/tiktally/tiktally/tiktally/encoding"
	"github.com/tiktally/tiktally/tiktally/progress"
)

// DefaultReporter is the process-wide progress ledger used when a Params does
// not inject its own Reporter.
var DefaultReporter progress.Reporter = progress.NewLedger()

// Params configures tokenize and count operations. Model, EncodingName, and
// Encoding may be set in any combination; they are reconciled once at the
// entry boundary and an inconsistent combination fails the whole call.
type Params struct {
	Model        string
	EncodingName string
	Encoding     *encoding.Encoding

	// Recursive controls whether directory operations descend into
	// subdirectories.
	Recursive bool
	// Quiet suppresses all progress reporting.
	Quiet bool
	// ExitOnListError aborts list processing on the first failing entry
	// instead of skipping it.
	ExitOnListError bool
	// IgnorePatterns holds gitignore-style patterns; matching files and
	// directories are skipped during traversal.
	IgnorePatterns []string
	// Reporter overrides the process-wide progress ledger.
	Reporter progress.Reporter
}

// NewParams returns Params with the defaults callers usually want: recursive
// traversal, visible progress, abort on list errors.
func NewParams() *Params {
	return &Params{
		Recursive:       true,
		ExitOnListError: true,
	}
}

// runCtx carries the state of one top-level operation: the resolved encoding,
// the chosen reporter, and the compiled ignore matcher.
type runCtx struct {
	p      *Params
	enc    *encoding.Encoding
	rep    progress.Reporter
	ignore *ignore.GitIgnore
}

// newRun reconciles Params into a runCtx. All validation failures surface
// here, before any filesystem work starts.
func newRun(params *Params) (*runCtx, error) {
	p := params
	if p == nil {
		p = NewParams()
	}

	enc, err := encoding.Resolve(encoding.Request{
		Model:        p.Model,
		EncodingName: p.EncodingName,
		Encoding:     p.Encoding,
	})
	if err != nil {
		return nil, err
	}

	rep := p.Reporter
	if p.Quiet {
		rep = progress.Nop{}
	} else if rep == nil {
		rep = DefaultReporter
	}

	var ign *ignore.GitIgnore
	if len(p.IgnorePatterns) > 0 {
		ign = ignore.CompileIgnoreLines(p.IgnorePatterns...)
	}

	return &runCtx{p: p, enc: enc, rep: rep, ignore: ign}, nil
}

// skipped reports whether a path matches the ignore patterns.
func (rc *runCtx) skipped(path string) bool {
	return rc.ignore != nil && rc.ignore.MatchesPath(path)
}
