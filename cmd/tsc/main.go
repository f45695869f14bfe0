// Command tsc drives the compiler over a single source file's AST,
// written as JSON by an external lexer/parser, and writes the packaged
// bytecode image to the -o path, or, without -o, into the output
// directory of the nearest tsc.yaml, or next to the input when no tsc.yaml
// is found. It owns none of the lowering logic itself —
// that lives in internal/compiler — only argument parsing, project
// configuration, and diagnostic reporting.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/tsforge/tsc/internal/ast"
	"github.com/tsforge/tsc/internal/compiler"
	"github.com/tsforge/tsc/internal/config"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("TSC_DEBUG") == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "this is a bug; please report it")
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.ast.json> [-o out.tsb]\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	color := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	runID := uuid.NewString()

	inputPath, outputPath := parseArgs(os.Args[1:])
	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: tsc <file.ast.json> [-o out.tsb]")
		os.Exit(1)
	}

	logf(color, "[%s] compiling %s", runID, inputPath)

	file, err := loadSourceFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	cfg, cfgPath, err := loadProjectConfig(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	result := compiler.CompileWithOptions(file, compiler.Options{
		Optimize:      cfg.Optimize,
		EmitSourceMap: cfg.EmitSourceMap,
	})

	for _, diagErr := range result.Errors {
		reportDiagnostic(color, diagErr)
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath, cfg, cfgPath)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error: creating output directory: %s\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outputPath, result.Image, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: writing image: %s\n", err)
		os.Exit(1)
	}

	logf(color, "[%s] wrote %s (%d bytes, %d subroutines)", runID, outputPath, len(result.Image), len(result.Program.Subroutines))

	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}

func parseArgs(args []string) (input, output string) {
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-o" && i+1 < len(args):
			output = args[i+1]
			i++
		case strings.HasPrefix(args[i], "-"):
			// unrecognized flag; ignored
		case input == "":
			input = args[i]
		}
	}
	return input, output
}

func loadSourceFile(path string) (*ast.SourceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	fileName := strings.TrimSuffix(strings.TrimSuffix(path, ".json"), ".ast")
	file, err := ast.DecodeSourceFile(data, fileName)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return file, nil
}

func loadProjectConfig(inputPath string) (*config.Config, string, error) {
	dir := filepath.Dir(inputPath)
	found, err := config.Find(dir)
	if err != nil {
		return nil, "", err
	}
	if found == "" {
		return &config.Config{}, "", nil
	}
	cfg, err := config.Load(found)
	if err != nil {
		return nil, "", err
	}
	return cfg, found, nil
}

func defaultOutputPath(inputPath string, cfg *config.Config, cfgPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	base = strings.TrimSuffix(base, ".ast")
	name := base + ".tsb"
	if cfgPath == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}
	return filepath.Join(cfg.OutputDir(filepath.Dir(cfgPath)), name)
}

func reportDiagnostic(color bool, err error) {
	msg := err.Error()
	if color {
		fmt.Fprintf(os.Stderr, "\033[31merror\033[0m: %s\n", msg)
		return
	}
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
}

func logf(color bool, format string, args ...any) {
	if color {
		fmt.Fprintf(os.Stderr, "\033[2m%s\033[0m\n", fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(os.Stderr, "%s\n", fmt.Sprintf(format, args...))
}
