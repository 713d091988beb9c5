package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/framemesh/asmdef"
	"github.com/hupe1980/framemesh/asmdef/watch"
	"github.com/hupe1980/framemesh/logging"
)

var scanCmd = &cobra.Command{
	Use:   "scan [root]",
	Short: "List the .asmdef files of a project tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

var patchCmd = &cobra.Command{
	Use:   "patch [root]",
	Short: "Apply the rule file to every .asmdef under root",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPatch,
}

var watchCmd = &cobra.Command{
	Use:   "watch [root]",
	Short: "Keep applying the rule file as .asmdef files change",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	patchCmd.Flags().Bool("dry-run", false, "log changes without writing files")
	_ = viper.BindPFlag("dry_run", patchCmd.Flags().Lookup("dry-run"))

	rootCmd.AddCommand(scanCmd, patchCmd, watchCmd)
}

func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func newLogger() logging.Logger {
	level := logging.LogLevelInfo
	switch viper.GetString("log.level") {
	case "debug":
		level = logging.LogLevelDebug
	case "warn":
		level = logging.LogLevelWarn
	case "error":
		level = logging.LogLevelError
	}
	return logging.NewSlogLogger(level, viper.GetString("log.format"), false)
}

func newPatcher(logger logging.Logger) (*asmdef.Patcher, error) {
	rules, err := asmdef.LoadRules(viper.GetString("rules"))
	if err != nil {
		return nil, err
	}

	p := asmdef.NewPatcher(rules, logger)
	p.DryRun = viper.GetBool("dry_run")
	p.IgnoreDirs = append(p.IgnoreDirs, viper.GetStringSlice("ignore")...)

	return p, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	paths, err := asmdef.Scan(rootArg(args), append(asmdef.DefaultIgnoreDirs, viper.GetStringSlice("ignore")...))
	if err != nil {
		return err
	}

	for _, path := range paths {
		f, err := asmdef.Load(path)
		if err != nil {
			fmt.Printf("%s: %v\n", path, err)
			continue
		}
		fmt.Printf("%s (%s): %d references\n", path, f.Name(), len(f.References()))
		for _, dup := range f.Duplicates() {
			fmt.Printf("  duplicate reference: %s\n", dup)
		}
	}

	return nil
}

func runPatch(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	p, err := newPatcher(logger)
	if err != nil {
		return err
	}

	rep, err := p.PatchTree(rootArg(args))
	if err != nil {
		return err
	}

	fmt.Printf("patched %d, unchanged %d, failed %d\n", rep.Patched, rep.Unchanged, len(rep.Failed))

	return rep.Err()
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	p, err := newPatcher(logger)
	if err != nil {
		return err
	}

	w, err := watch.New(p, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(rootArg(args)); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching", "root", rootArg(args))

	if err := w.Run(ctx); err != nil && err != context.Canceled {
		return err
	}

	return nil
}
