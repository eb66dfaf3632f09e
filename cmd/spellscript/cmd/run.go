package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/repr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sirbread/spellscript/internal/host"
	"github.com/sirbread/spellscript/internal/interp"
	"github.com/sirbread/spellscript/internal/tokenizer"
)

var debugDump bool

var runCmd = &cobra.Command{
	Use:   "run <file.spell>",
	Short: "Cast a spell from a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpell,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&debugDump, "debug-dump", false, "pretty-print the tokenized statement stream before running")
}

func runSpell(_ *cobra.Command, args []string) error {
	path := args[0]

	logger := logrus.New()
	level := logrus.WarnLevel
	if verbose {
		level = logrus.InfoLevel
	}
	if debug {
		level = logrus.DebugLevel
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cfg.LogLevel != "" && !verbose && !debug {
		if parsed, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			level = parsed
		}
	}
	logger.SetLevel(level)

	nativeHost := host.NewNative(logger)
	nativeHost.FastMode = cfg.SuppressSleep
	if cfg.MaxPonderSeconds > 0 {
		nativeHost.MaxSleep = time.Duration(cfg.MaxPonderSeconds * float64(time.Second))
	}

	source, err := nativeHost.ReadSource(path)
	if err != nil {
		fmt.Println("the spell has backfired: " + err.Error())
		os.Exit(1)
	}

	if debugDump {
		if statements, tokErr := tokenizer.Tokenize(source); tokErr == nil {
			repr.Println(statements)
		}
	}

	ip := interp.New(nativeHost, logger)
	if err := ip.Run(source); err != nil {
		fmt.Println("the spell has backfired: " + err.Error())
		os.Exit(1)
	}

	if debugDump {
		if summary := nativeHost.PonderSummary(); summary != "" {
			fmt.Println("total time spent pondering: " + summary)
		}
	}
	return nil
}
