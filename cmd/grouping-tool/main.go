// Command grouping-tool partitions student identifiers into groups of two or
// three members, reading its roster interactively from a terminal or in batch
// from a pipe or file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	grouping "github.com/maysay-D/grouping-tool"
	"github.com/maysay-D/grouping-tool/internal/logging"
	"github.com/maysay-D/grouping-tool/source"
	"github.com/maysay-D/grouping-tool/strategy"
	"github.com/maysay-D/grouping-tool/types"
)

var (
	// Global flags
	batchMode bool
	inputPath string
	verbose   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "grouping-tool",
	Short: "Partition student identifiers into groups of 2-3 members",
	Long: `grouping-tool reads a roster of student identifiers and reorganizes it
into groups of two or three members (three preferred).

With a terminal on stdin it runs interactively: identifiers are entered one
per line, groups seal automatically at three members, /next seals a partial
group early and /remove NAME corrects a typo. With piped or file input it
runs in batch mode: blank-line-delimited blocks form the initial groups,
which are then split and merged into valid sizes.

Press Ctrl+C to end input early; the groups entered so far are still
reorganized and reported.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().BoolVar(&batchMode, "batch", false, "force batch mode even on a terminal")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "read the roster from a file (implies batch mode)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(ctx context.Context, out io.Writer) error {
	in := io.Reader(os.Stdin)
	interactive := !batchMode && stdinIsTerminal()

	if inputPath != "" {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
		interactive = false
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		src  grouping.RosterSource
		opts []grouping.Option
	)
	if interactive {
		session := newSession(out)
		src = source.NewInteractive(in, session.hooks())
		session.start()
	} else {
		src = source.NewStream(in)
		opts = append(opts, grouping.WithStrategy(strategy.NewBatch()))
	}
	opts = append(opts, grouping.WithLogger(logging.NewZap(logger.Sugar())))

	planner, err := grouping.NewPlanner(src, opts...)
	if err != nil {
		return err
	}

	partition, unplaced, err := planner.Plan(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, renderReport(partition, unplaced))
	return nil
}

// stdinIsTerminal reports whether stdin is attached to a character device
// rather than a pipe or redirected file.
func stdinIsTerminal() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}

// session provides the per-line feedback of an interactive run: echo each
// accepted identifier, announce sealed groups, prompt for the next one.
type session struct {
	out io.Writer
}

func newSession(out io.Writer) *session {
	return &session{out: out}
}

func (s *session) start() {
	fmt.Fprintln(s.out, promptStyle.Render(
		"Enter one identifier per line. /next seals the current group, /remove NAME drops an entry, Ctrl+D finishes."))
	s.prompt(0)
}

func (s *session) hooks() *types.Hooks {
	return &types.Hooks{
		OnMemberAdded: func(member string, groupIndex int) {
			fmt.Fprintf(s.out, "  %s\n", echoStyle.Render(
				fmt.Sprintf("+ %s (group %s)", member, grouping.GroupLabel(groupIndex))))
		},
		OnGroupComplete: func(groupIndex int, group types.Group) {
			fmt.Fprintln(s.out, sealedStyle.Render(
				fmt.Sprintf("group %s sealed with %d members", grouping.GroupLabel(groupIndex), group.Size())))
			s.prompt(groupIndex + 1)
		},
	}
}

func (s *session) prompt(groupIndex int) {
	fmt.Fprintln(s.out, promptStyle.Render(
		fmt.Sprintf("group %s:", grouping.GroupLabel(groupIndex))))
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}
