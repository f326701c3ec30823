// Fixedmapgen generates direct-storage support code for finite enumeration
// types: a Default<T> function, a <T>Domain descriptor, and <T>MapStorage /
// <T>SetStorage types with constructors. It is meant to run from a
// go:generate directive next to the type declaration:
//
//	//go:generate fixedmapgen -type=Suit
//
// The named type must be a defined integer type whose declared constants
// form the enumeration, in declaration order. Any other shape is rejected
// with a definition error before code is written.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/llxisdsh/fixedmap/internal/codegen"
)

func main() {
	var (
		typeNames = flag.String("type", "", "comma-separated list of enumeration type names; required")
		output    = flag.String("output", "", "output file name; default <type>_fixedmap.go, one file per type")
		verbose   = flag.Bool("v", false, "verbose diagnostics")
	)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: fixedmapgen -type=T[,U...] [-output=file] [package]")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *typeNames == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintln(os.Stderr, "fixedmapgen:", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	types := strings.Split(*typeNames, ",")
	if *output != "" && len(types) > 1 {
		fmt.Fprintln(os.Stderr, "fixedmapgen: -output cannot be combined with multiple types")
		os.Exit(2)
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	if err := run(logger, patterns, types, *output); err != nil {
		fmt.Fprintln(os.Stderr, "fixedmapgen:", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, patterns, typeNames []string, output string) error {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return errors.Wrap(err, "loading package")
	}
	if n := packages.PrintErrors(pkgs); n > 0 {
		return errors.Errorf("%d errors while loading %s", n, strings.Join(patterns, " "))
	}
	if len(pkgs) != 1 {
		return errors.Errorf("expected one package, got %d", len(pkgs))
	}
	pkg := pkgs[0]
	logger.Info("package loaded",
		zap.String("package", pkg.PkgPath),
		zap.Int("files", len(pkg.Syntax)))

	src := codegen.FromPackage(pkg)
	for _, typeName := range typeNames {
		enum, err := codegen.Extract(src, typeName)
		if err != nil {
			return err
		}
		logger.Info("enumeration extracted",
			zap.String("type", enum.Type),
			zap.Int("variants", len(enum.Variants)),
			zap.Bool("contiguous", enum.Contiguous))

		code, err := codegen.Emit(enum)
		if err != nil {
			return err
		}
		file := output
		if file == "" {
			file = codegen.OutputFile(enum)
		}
		if err := os.WriteFile(file, code, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", file)
		}
		logger.Info("support code written",
			zap.String("type", enum.Type),
			zap.String("file", file),
			zap.Int("bytes", len(code)))
	}
	return nil
}
