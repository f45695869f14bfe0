package compiler

import "github.com/tsforge/tsc/internal/ast"

// Options controls aspects of a Compile run that don't affect the
// lowering semantics themselves, only what the resulting image carries.
type Options struct {
	// Optimize runs the tail-call/rest-reuse rewrite on every subroutine
	// as it's popped. Defaults to true; set false to keep every Call as
	// Call, which makes the raw emission easier to diff while debugging
	// the emitter itself.
	Optimize *bool

	// EmitSourceMap controls whether Pack includes the SourceMap block.
	// Defaults to true.
	EmitSourceMap *bool
}

func (o Options) optimize() bool      { return o.Optimize == nil || *o.Optimize }
func (o Options) emitSourceMap() bool { return o.EmitSourceMap == nil || *o.EmitSourceMap }

// Result is the outcome of compiling a single source file: the packaged
// byte image plus any diagnostics collected along the way. Errors do not
// stop emission — each one is also embedded into the image as an
// OpError, so the VM reports them too if it ever reaches that point of
// the program.
type Result struct {
	Program *Program
	Image   []byte
	Errors  []error
}

// Compile lowers file into a packaged bytecode image under the default
// Options (optimizer on, sourcemap emitted).
func Compile(file *ast.SourceFile) *Result {
	return CompileWithOptions(file, Options{})
}

// CompileWithOptions lowers file the way Compile does, but honors opts —
// typically sourced from a project's tsc.yaml.
func CompileWithOptions(file *ast.SourceFile, opts Options) *Result {
	e := NewEmitter(file.FileName)
	e.Program.optimize = opts.optimize()
	e.EmitSourceFile(file)

	errs := make([]error, len(e.Errors))
	for i, d := range e.Errors {
		errs[i] = d
	}

	return &Result{
		Program: e.Program,
		Image:   e.Program.Pack(opts.emitSourceMap()),
		Errors:  errs,
	}
}
