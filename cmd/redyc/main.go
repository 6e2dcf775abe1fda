// Command redyc is the boundary driver spec.md §6 treats as an
// external collaborator: it parses flags, reads an optional TOML
// config, runs the front-end pipeline (internal/compiler) over one or
// more .ry files, and prints the rendered diagnostics. Grounded on
// teacher cmd/main.go for the "build args into an options value, run
// the pipeline, report" shape, re-expressed with urfave/cli per
// SPEC_FULL §11.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"go.redy.dev/internal/compiler"
	"go.redy.dev/internal/diagnostic"
	"go.redy.dev/internal/i18n"
)

// readLine reads the lineNo-th (1-indexed) line of the file at path,
// used by pathOnlyResolver since the driver reports diagnostics after
// the compiling FileManager (and its in-memory content) has already
// gone out of scope.
func readLine(path string, lineNo int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		if n == lineNo {
			return scanner.Bytes(), nil
		}
	}
	return nil, scanner.Err()
}

func buildType(c *cli.Context) string {
	switch {
	case c.Bool("debug"):
		return "debug"
	case c.Bool("release"):
		return "release"
	case c.Bool("rel_w_deb_info"):
		return "rel_w_deb_info"
	case c.Bool("min_size_rel"):
		return "min_size_rel"
	default:
		return "debug"
	}
}

func run(c *cli.Context) error {
	cfg := fileConfig{Workers: 1}
	if path := c.String("config"); path != "" {
		loaded, err := loadConfig(path)
		if err != nil {
			return fmt.Errorf("redyc: config %q: %w", path, err)
		}
		cfg = loaded
	}

	opts := compiler.Options{
		Mode:   parseMode(cfg.Mode),
		Strict: cfg.Strict,
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	if c.Bool("verbose") {
		log.Printf("redyc: build=%s mode=%v strict=%v workers=%d", buildType(c), opts.Mode, opts.Strict, workers)
	}

	paths := c.Args().Slice()
	if len(paths) == 0 {
		return cli.Exit("redyc: expected at least one source file", 1)
	}

	results, err := compiler.Batch(paths, opts, workers)
	if err != nil {
		return fmt.Errorf("redyc: %w", err)
	}

	translator := i18n.New(i18n.Regional(parseLanguage(cfg.Language)), i18n.DefaultEnglishTable)
	failed := false
	for _, res := range results {
		if len(res.Entries) == 0 {
			continue
		}
		failed = true
		engine := diagnostic.NewEngine(pathOnlyResolver{res.Path}, translator)
		for _, entry := range res.Entries {
			engine.Push(entry)
		}
		fmt.Print(engine.PopAndClear())
	}

	if failed {
		return cli.Exit("", 1)
	}
	fmt.Println("Ok")
	return nil
}

// pathOnlyResolver renders diagnostics for a single already-compiled
// file without keeping its FileManager alive past compilation: the
// driver only needs the file's own name and line text, and reads the
// latter straight off disk since compiler.File already unloaded
// nothing itself (the manager stays resident for the call's duration
// but doesn't outlive it).
type pathOnlyResolver struct{ path string }

func (r pathOnlyResolver) Name(diagnostic.FileID) (string, bool) { return r.path, true }

func (r pathOnlyResolver) Line(_ diagnostic.FileID, lineNo int) ([]byte, error) {
	return readLine(r.path, lineNo)
}

func main() {
	app := &cli.App{
		Name:  "redyc",
		Usage: "compile .ry source files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "TOML config file path"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"V"}, Usage: "log pipeline configuration before running"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "build type: debug"},
			&cli.BoolFlag{Name: "release", Aliases: []string{"r"}, Usage: "build type: release"},
			&cli.BoolFlag{Name: "rel_w_deb_info", Aliases: []string{"rd"}, Usage: "build type: release with debug info"},
			&cli.BoolFlag{Name: "min_size_rel", Aliases: []string{"mr"}, Usage: "build type: minimum size release"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
