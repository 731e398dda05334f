package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdwizard/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for command dispatch.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFlags   = errors.New("invalid flags")
)

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS before sizing build workers.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if isVerbose(os.Args) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, env)
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and maps its error to an exit code.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if err := run(ctx, args, env); err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run routes args[1] to its command. args[0] is the program name.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) < 2 {
		printUsage(env.Stdout)
		return nil
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "build":
		flags, positional, err := parseBuildFlags(rest)
		if err != nil {
			return flagError(cmd, err, env)
		}
		return runBuild(ctx, positional, flags, env)
	case "preview":
		flags, positional, err := parsePreviewFlags(rest)
		if err != nil {
			return flagError(cmd, err, env)
		}
		return runPreview(ctx, positional, flags, env)
	case "docs":
		flags, err := parseDocsFlags(rest)
		if err != nil {
			return flagError(cmd, err, env)
		}
		return runDocs(flags, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "mdwizard %s\n", Version)
		return nil
	case "help", "-h", "--help":
		return runHelp(rest, env)
	}
	return fmt.Errorf("%w: %q%s", ErrUnknownCommand, cmd, hints.ForUnknownCommand())
}

// flagError turns -h/--help into command help; other parse errors are
// returned unchanged.
func flagError(cmd string, err error, env *Environment) error {
	if errors.Is(err, flag.ErrHelp) {
		return runHelp([]string{cmd}, env)
	}
	return err
}

// isVerbose reports whether -v or --verbose appears among args.
func isVerbose(args []string) bool {
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}
