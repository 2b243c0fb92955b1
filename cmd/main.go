// Package main is the addressbook binary. It loads configuration, sets up
// logging and runs the selected subcommand.
package main

import (
	"addressbook/internal/config"
	"addressbook/pkg/logger"
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "addressbook",
		Short: "In-memory contact book",
	}

	// cobra parses flags only when a command runs, so the config path is read
	// with the standard flag package first. The cobra flag exists so cobra
	// accepts -c on the command line.
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config File Path")

	fs := flag.NewFlagSet("addressbook", flag.ContinueOnError)
	configPath := fs.String("c", "", "The config file path")
	fs.SetOutput(os.Stderr)
	_ = fs.Parse(configArgs(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config: ", err)
	}

	if err := logger.Setup(cfg.Environment); err != nil {
		log.Fatal("could not set up logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync(ctx)

			panic(p)
		}
	}()

	rootCmd.AddCommand(demoCommand(cfg))

	err = rootCmd.ExecuteContext(ctx)
	logger.Sync(ctx)
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs picks the -c/--config flag and its value out of args so the
// standard flag package does not stop at the subcommand name.
func configArgs(args []string) []string {
	for i, a := range args {
		switch a {
		case "-c", "--config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		default:
			for _, prefix := range []string{"-c=", "--config="} {
				if v, ok := strings.CutPrefix(a, prefix); ok {
					return []string{"-c", v}
				}
			}
			// pflag also accepts the value glued to the shorthand: -cconfig.yml
			if v, ok := strings.CutPrefix(a, "-c"); ok && v != "" && !strings.HasPrefix(a, "--") {
				return []string{"-c", v}
			}
		}
	}

	return nil
}
