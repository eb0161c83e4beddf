// Package cli implements the foldkit command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/foldkit/foldkit/bitlist"
	"github.com/foldkit/foldkit/collector"
	"github.com/foldkit/foldkit/commonerrors"
	"github.com/foldkit/foldkit/config"
	"github.com/foldkit/foldkit/logs"
	"github.com/foldkit/foldkit/store"
)

const (
	CommandEncode = "encode"
	CommandDecode = "decode"
	CommandReport = "report"
	loggerSource  = "foldkit"
)

// LoggersFactory creates the loggers once the configuration is known.
type LoggersFactory func(verbose bool) (logs.Loggers, error)

// Command runs a foldkit command and prints its result to Out.
type Command struct {
	Out        io.Writer
	NewLoggers LoggersFactory
}

func newFlagSet(session *viper.Viper) (flagSet *pflag.FlagSet, err error) {
	defaults := config.DefaultFoldConfiguration()
	flagSet = pflag.NewFlagSet(loggerSource, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.Int("workers", defaults.Workers, "number of partitions folded concurrently (0: one per CPU)")
	flagSet.Int("partition-size", defaults.PartitionSize, "maximum number of elements per partition (0: derived from workers)")
	flagSet.String("separator", defaults.Separator, "separator used when joining customer names")
	flagSet.String("dataset", defaults.Dataset, "path to a YAML dataset (default: built-in dataset)")
	flagSet.BoolP("verbose", "v", defaults.Verbose, "trace partitioning and merging")
	bindings := map[string]string{
		"workers":        "FOLDKIT_WORKERS",
		"partition-size": "FOLDKIT_PARTITION_SIZE",
		"separator":      "FOLDKIT_SEPARATOR",
		"dataset":        "FOLDKIT_DATASET",
		"verbose":        "FOLDKIT_VERBOSE",
	}
	for _, name := range slices.Sorted(maps.Keys(bindings)) {
		err = config.BindFlagToEnv(session, config.EnvVarPrefix, bindings[name], flagSet.Lookup(name))
		if err != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "could not bind flag %v", name)
			return
		}
	}
	return
}

// Usage describes the command line.
func Usage() string {
	session := viper.New()
	flagSet, err := newFlagSet(session)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(`Usage: foldkit [flags] <command> [argument]

Commands:
  %v <spec>   converts a bit-list specification e.g. "1-3,7" into a bit string
  %v <bits>   converts a bit string back into its shortest specification
  %v          runs the online store queries over the dataset

Flags:
%v`, CommandEncode, CommandDecode, CommandReport, flagSet.FlagUsages())
}

// Run parses args, loads the configuration (flags, environment, .env) and runs the requested command.
// Any error is also logged.
func (c *Command) Run(ctx context.Context, args []string) (err error) {
	if c.Out == nil || c.NewLoggers == nil {
		err = commonerrors.UndefinedVariable("command output or loggers")
		return
	}
	cfg, remaining, err := configure(args)
	verbose := err == nil && cfg.Verbose
	loggers, subErr := c.NewLoggers(verbose)
	if subErr != nil {
		err = commonerrors.Join(err, subErr)
		return
	}
	defer func() { _ = loggers.Close() }()
	if err == nil {
		err = c.run(ctx, loggers, cfg, remaining)
	}
	if err != nil {
		loggers.LogError(err)
	}
	return
}

func configure(args []string) (cfg *config.FoldConfiguration, remaining []string, err error) {
	session := viper.New()
	flagSet, err := newFlagSet(session)
	if err != nil {
		return
	}
	err = flagSet.Parse(args)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid flags")
		return
	}
	c := &config.FoldConfiguration{}
	err = config.LoadFromViper(session, config.EnvVarPrefix, c, config.DefaultFoldConfiguration())
	if err != nil {
		return
	}
	cfg = c
	remaining = flagSet.Args()
	return
}

func (c *Command) run(ctx context.Context, loggers logs.Loggers, cfg *config.FoldConfiguration, args []string) error {
	if len(args) == 0 {
		return commonerrors.New(commonerrors.ErrInvalid, "missing command")
	}
	command, args := args[0], args[1:]
	err := loggers.SetLogSource(command)
	if err != nil {
		return err
	}
	options := []collector.Option{
		collector.Workers(cfg.Workers),
		collector.PartitionSize(cfg.PartitionSize),
		collector.WithLogger(logs.ToLogr(loggers)),
	}
	switch command {
	case CommandEncode:
		argument, err := singleArgument(command, args)
		if err != nil {
			return err
		}
		bits, err := bitlist.EncodeParallel(ctx, argument, options...)
		if err != nil {
			return err
		}
		return c.println(bits)
	case CommandDecode:
		argument, err := singleArgument(command, args)
		if err != nil {
			return err
		}
		spec, err := bitlist.Decode(argument)
		if err != nil {
			return err
		}
		return c.println(spec)
	case CommandReport:
		if len(args) > 0 {
			return commonerrors.Newf(commonerrors.ErrInvalid, "%v takes no argument", command)
		}
		mall, err := loadDataset(loggers, cfg.Dataset)
		if err != nil {
			return err
		}
		return c.report(ctx, mall, cfg.Separator, options...)
	default:
		return commonerrors.Newf(commonerrors.ErrUnsupported, "unknown command %q", command)
	}
}

func singleArgument(command string, args []string) (string, error) {
	// An empty specification is valid, so the argument may be omitted.
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	default:
		return "", commonerrors.Newf(commonerrors.ErrInvalid, "%v takes a single argument but %d were provided", command, len(args))
	}
}

func loadDataset(loggers logs.Loggers, path string) (*store.Mall, error) {
	if path == "" {
		return store.ClassicOnlineStore()
	}
	loggers.Log("loading dataset", path)
	return store.LoadMallFromFile(path)
}

func (c *Command) println(line string) error {
	_, err := fmt.Fprintln(c.Out, line)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not write output")
	}
	return nil
}

func (c *Command) report(ctx context.Context, mall *store.Mall, separator string, options ...collector.Option) (err error) {
	names, err := store.JoinCustomerNames(mall, separator)
	if err != nil {
		return
	}
	itemsToCustomers, err := store.ItemsToCustomers(ctx, mall, options...)
	if err != nil {
		return
	}
	rich, err := store.CustomersWithEnoughMoney(mall)
	if err != nil {
		return
	}
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "customers: %v\n", names)
	b.WriteString("items to customers:\n")
	for _, item := range slices.Sorted(maps.Keys(itemsToCustomers)) {
		customers := itemsToCustomers[item].ToSlice()
		slices.Sort(customers)
		_, _ = fmt.Fprintf(&b, "  %v: %v\n", item, strings.Join(customers, separator))
	}
	_, _ = fmt.Fprintf(&b, "items not on sale: %v\n", strings.Join(store.ItemsNotOnSale(mall), separator))
	_, _ = fmt.Fprintf(&b, "customers with enough money: %v", strings.Join(rich, separator))
	return c.println(b.String())
}
