package main

import (
	"fmt"
	"io"
	"os"

	"github.com/clarete/ruled"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("ruled.cmd")

// options are the flags shared by every grammar command
type options struct {
	verbose    int
	logFile    string
	trace      bool
	requireEnd bool
	showConfig bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "ruled",
		Short:         "Run the example grammars built with ruled",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.logFile != "" {
				commonlog.Configure(opts.verbose, &opts.logFile)
			} else {
				commonlog.Configure(opts.verbose, nil)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbose, "verbose", "v", "log more details, repeat for debug messages")
	flags.StringVar(&opts.logFile, "log", "", "write the log to this file instead of stderr")
	flags.BoolVar(&opts.trace, "trace", false, "log every rule the parser applies (needs -vv)")
	flags.BoolVar(&opts.requireEnd, "require-end", true, "fail if the grammar doesn't consume the whole input")
	flags.BoolVar(&opts.showConfig, "show-config", false, "print the parser configuration before parsing")

	rootCmd.AddCommand(newJSONCmd(opts))
	rootCmd.AddCommand(newNumCmd(opts))
	rootCmd.AddCommand(newXMLCmd(opts))

	return rootCmd
}

// readInput reads the file named by the only argument, or stdin when
// there's none.  It also returns the name to report locations with.
func readInput(cmd *cobra.Command, args []string) (string, []byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("read input: %w", err)
	}
	return args[0], data, nil
}

// newConfig turns the command line options into the configuration of
// the parser that reads `name`
func newConfig(cmd *cobra.Command, opts *options, name string) *ruled.Config {
	cfg := ruled.NewConfig()
	cfg.SetString("parser.input_file", name)
	cfg.SetBool("parser.require_end", opts.requireEnd)
	cfg.SetBool("trace.enabled", opts.trace)
	cfg.SetString("trace.name", "ruled."+cmd.Name())
	if opts.showConfig {
		cfg.Debug(cmd.ErrOrStderr())
	}
	log.Infof("parsing %s with the %s grammar", name, cmd.Name())
	return cfg
}
