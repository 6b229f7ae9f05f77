package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/bindings"
	"github.com/wippyai/bindings/binder"
	"github.com/wippyai/bindings/loader"
	"github.com/wippyai/bindings/locate"
)

func main() {
	var (
		root        = flag.String("root", "", "Project root to search (default: working directory)")
		candidates  = flag.Bool("candidates", false, "Print the candidate probe list and exit")
		list        = flag.Bool("list", false, "Load the artifact and list its exports")
		callName    = flag.String("call", "", "Wasm export to call after loading")
		callArgs    = flag.String("args", "", "Arguments for -call (comma-separated integers)")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		locate.SetLogger(log)
		loader.SetLogger(log)
	}

	if *candidates {
		printCandidates(*root)
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*root); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*root, *callName, *callArgs, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printCandidates(root string) {
	if root == "" {
		root, _ = os.Getwd()
	}
	env := locate.CurrentEnv()
	for _, name := range []string{bindings.NativeFileName, bindings.WasmFileName} {
		fmt.Printf("%s:\n", name)
		for i, path := range locate.Candidates(root, name, env) {
			fmt.Printf("  %d. %s\n", i+1, path)
		}
	}
}

func run(root, callName, callArgs string, listOnly bool) error {
	ctx := context.Background()

	b := binder.New()

	spec, err := b.Find(root)
	if err != nil {
		return err
	}

	fmt.Printf("Artifact: %s\n", spec.ResolvedPath)
	fmt.Printf("Kind: %s\n", spec.Kind)

	if !listOnly && callName == "" {
		return nil
	}

	binding, err := b.Initialize(ctx, spec)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(binding.Exports))
	for name := range binding.Exports {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("\nExports (%d):\n", len(names))
	for _, name := range names {
		switch v := binding.Exports[name].(type) {
		case *loader.Func:
			fmt.Printf("  %s  func/%d -> %d\n", name, v.ParamCount(), v.ResultCount())
		default:
			fmt.Printf("  %s  %T\n", name, v)
		}
	}

	if callName == "" {
		return nil
	}

	fn, ok := binding.Exports[callName].(*loader.Func)
	if !ok {
		return fmt.Errorf("export %q is not a callable wasm function", callName)
	}

	var args []uint64
	if callArgs != "" {
		for _, part := range strings.Split(callArgs, ",") {
			v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return fmt.Errorf("parse argument %q: %w", part, err)
			}
			args = append(args, v)
		}
	}

	results, err := fn.Call(ctx, args...)
	if err != nil {
		return fmt.Errorf("call %s: %w", callName, err)
	}

	fmt.Printf("\n%s(%s) = %v\n", callName, callArgs, results)
	return nil
}
