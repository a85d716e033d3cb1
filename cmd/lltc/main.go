package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/lltypes/internal/schemadoc"
	"github.com/wippyai/lltypes/lower"
	"github.com/wippyai/lltypes/native"
	"github.com/wippyai/lltypes/schema"
)

func main() {
	var (
		list        = flag.Bool("list", false, "List built-in schemas and exit")
		sampleName  = flag.String("schema", "", "Built-in schema to lower")
		docFile     = flag.String("f", "", "Path to a YAML or JSON schema document")
		targetName  = flag.String("target", "all", "Target: all, array, ir, native or wit")
		abiName     = flag.String("abi", "host", "Native ABI: host, lp64, llp64 or ilp32")
		dump        = flag.Bool("dump", false, "Print the schema as a YAML document instead of lowering it")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Debug logging")
	)
	flag.Parse()

	if *list {
		for _, name := range sampleNames() {
			fmt.Println(name)
		}
		return
	}

	a, ok := native.ABIByName(*abiName)
	if !ok {
		fail(fmt.Errorf("unknown ABI %q", *abiName))
	}

	log := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fail(err)
		}
		log = l
	}
	defer func() { _ = log.Sync() }()
	lower.SetLogger(log)

	opts := lower.DefaultOptions()
	opts.ABI = a
	opts.Logger = log
	opts.Warn = func(w lower.Warning) {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}

	if *interactive {
		opts.Warn = nil
		if err := runInteractive(lower.NewCompiler(opts)); err != nil {
			fail(err)
		}
		return
	}

	if *sampleName == "" && *docFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: lltc -schema <name> [-target all|array|ir|native|wit] [-abi host|lp64|llp64|ilp32]")
		fmt.Fprintln(os.Stderr, "       lltc -f <schema.yaml> [-target ...] [-dump]")
		fmt.Fprintln(os.Stderr, "       lltc -list")
		fmt.Fprintln(os.Stderr, "       lltc -i  (interactive mode)")
		os.Exit(1)
	}

	root, err := loadSchema(*sampleName, *docFile)
	if err != nil {
		fail(err)
	}
	log.Debug("schema loaded", zap.Stringer("root", root), zap.Int("nodes", schema.Count(root)))

	if *dump {
		data, err := schemadoc.Marshal(root)
		if err != nil {
			fail(err)
		}
		os.Stdout.Write(data)
		return
	}

	targets := lower.Targets
	if *targetName != "all" {
		t, ok := lower.ParseTarget(*targetName)
		if !ok {
			fail(fmt.Errorf("unknown target %q", *targetName))
		}
		targets = []lower.Target{t}
	}

	ok = run(lower.NewCompiler(opts), root, targets, term.IsTerminal(int(os.Stdout.Fd())))
	if !ok && len(targets) == 1 {
		os.Exit(1)
	}
}

func loadSchema(sampleName, docFile string) (schema.Type, error) {
	if docFile != "" {
		return schemadoc.ParseFile(docFile)
	}
	build, ok := samples[sampleName]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q (see -list)", sampleName)
	}
	return build()
}

// run prints every target's lowering and reports whether all succeeded.
func run(c *lower.Compiler, root schema.Type, targets []lower.Target, styled bool) bool {
	heading := func(s string) string { return "== " + s + " ==" }
	errText := func(s string) string { return s }
	if styled {
		heading = titleStyle.Render
		errText = errorStyle.Render
	}

	fmt.Printf("%s (%s)\n\n", root, c.Options().ABI.Name)
	ok := true
	for _, target := range targets {
		fmt.Println(heading(target.String()))
		out, err := render(c, target, root)
		if err != nil {
			fmt.Println(errText(err.Error()))
			ok = false
		} else {
			fmt.Println(indent(out))
		}
		fmt.Println()
	}
	return ok
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, lipgloss.NewStyle().Bold(true).Render("Error:"), err)
	os.Exit(1)
}
