package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	arg "github.com/alexflint/go-arg"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonast"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonenv"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythonresolve"
	"github.com/kiteco/pyresolve/kite-go/lang/python/pythontype"
	"github.com/kiteco/pyresolve/kite-golib/errors"
	"github.com/kiteco/pyresolve/kite-golib/kitelog"
	"github.com/kiteco/pyresolve/kite-golib/rollbar"
)

type args struct {
	Root       string `arg:"positional,required" help:"directory of python sources to load"`
	File       string `arg:"--file" help:"only report references in files whose path contains this"`
	NoDataFlow bool   `arg:"--no-dataflow" help:"disable reaching-definition analysis"`
	Stubs      bool   `arg:"--stubs" help:"summarize files and read assigned values from the summaries"`
	KnownTypes string `arg:"--known-types" help:"YAML table of dotted names to builtin types"`
	Verbose    bool   `arg:"-v,--verbose" help:"log provider and flow diagnostics"`
}

func main() {
	a := args{}
	arg.MustParse(&a)

	logger := kitelog.Basic.WithDurations()
	defer rollbar.Wait()

	opts, err := pythonresolve.OptionsFromEnv()
	if err != nil {
		log.Fatalln(err)
	}
	if a.NoDataFlow {
		opts.AllowDataFlow = false
	}
	if a.Stubs {
		opts.AllowStubToAST = false
	}

	done := logger.Durations.Measure("load")
	tree, err := pythonenv.LoadDir(a.Root)
	done()
	if tree == nil {
		log.Fatalln(err)
	}
	if err != nil {
		logger.Printf("syntax errors: %s", errors.Summary(err, 5))
	}

	engine := pythonresolve.NewEngine(tree, opts)
	engine.Logger = kitelog.Discard
	if a.Verbose {
		engine.Logger = logger
	}
	engine.Report = func(err error, data ...interface{}) {
		logger.Printf("%v %v", err, data)
	}
	if a.KnownTypes != "" {
		known, err := loadKnownTypes(a.KnownTypes)
		if err != nil {
			log.Fatalln(err)
		}
		engine.Registry = pythonresolve.NewRegistry(append(engine.Registry.Providers(), known)...)
	}

	var paths []string
	for path, f := range tree.Files {
		if strings.Contains(path, a.File) {
			if a.Stubs {
				f.BuildStubs()
			}
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	tw := tabwriter.NewWriter(os.Stdout, 4, 4, 2, ' ', 0)
	var refs, typed int
	for _, path := range paths {
		f := tree.Files[path]
		done := logger.Durations.Measure("analyze")
		for _, ref := range f.References() {
			if ref.RefUsage() == pythonast.Assign {
				continue
			}
			refs++
			ctx := engine.NewContext()
			t := ctx.InferType(f, ref)
			if t != nil {
				typed++
			}
			line, col := f.Position(ref.Begin())
			fmt.Fprintf(tw, "%s:%d:%d\t%s\t%v\t%s\t%s\t%s\n",
				path, line, col,
				f.Text(ref),
				pythonresolve.Classify(f, ref),
				describe(engine.Resolve(f, ref, pythonresolve.ResolveContext{Types: ctx})),
				ctx.FollowAssignments(f, ref),
				pythontype.String(t))
		}
		done()
	}
	tw.Flush()

	logger.Printf("typed %d of %d references in %d files", typed, refs, len(paths))
	logger.Durations.Flush(logger)
}

func loadKnownTypes(path string) (*pythonresolve.KnownTypesProvider, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return pythonresolve.ReadKnownTypes(r)
}

func describe(results []pythonresolve.ResolveResult) string {
	if len(results) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, "; ")
}
