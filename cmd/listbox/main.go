package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gravitrone/listbox/internal/cmd"
	"github.com/gravitrone/listbox/internal/config"
	"github.com/gravitrone/listbox/internal/logging"
	"github.com/gravitrone/listbox/internal/scroll"
)

var errNotInteractive = errors.New("listbox needs an interactive terminal on stdin and stdout")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "listbox",
		Short: "Scrollable single-selection list box",
		Long:  "listbox shows a list of items in a fixed-height window and prints the one you confirm.",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return runListBox(cfg, os.Stdin, os.Stdout)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fs := root.Flags()
	fs.Int("height", 0, "visible rows; 0 or less shows every item without scrolling")
	fs.Int("x", 0, "column of the list box (1-based)")
	fs.Int("y", 0, "row of the list box (1-based)")
	fs.String("items", "", "items file (.yaml, .toml or one item per line)")
	fs.String("frontend", "", "front end: ansi or tea")
	fs.String("input", "", "ansi input mode: blocking or poll")
	fs.Bool("vim", false, "also move with k and j")
	fs.String("log-file", "", "log file; empty discards logs")
	fs.String("log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(cmd.ConfigCmd())
	root.AddCommand(cmd.ItemsCmd())
	return root
}

// loadConfig reads the config file and applies any flags set on c.
func loadConfig(c *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	fs := c.Flags()
	ints := map[string]*int{"height": &cfg.Height, "x": &cfg.OriginX, "y": &cfg.OriginY}
	for name, dst := range ints {
		if fs.Changed(name) {
			*dst, _ = fs.GetInt(name)
		}
	}
	strs := map[string]*string{
		"items":     &cfg.ItemsFile,
		"frontend":  &cfg.Frontend,
		"input":     &cfg.Input,
		"log-file":  &cfg.LogFile,
		"log-level": &cfg.LogLevel,
	}
	for name, dst := range strs {
		if fs.Changed(name) {
			*dst, _ = fs.GetString(name)
		}
	}
	if fs.Changed("vim") {
		cfg.VimKeys, _ = fs.GetBool("vim")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runListBox(cfg *config.Config, in, out *os.File) error {
	store, err := cmd.LoadItems(cfg.ItemsFile)
	if err != nil {
		return err
	}

	if !isInteractiveTerminal(in) || !isInteractiveTerminal(out) {
		return errNotInteractive
	}

	logFile := cfg.LogFile
	if logFile == "" && cfg.LogLevel == "debug" {
		logFile = logging.DefaultPath()
	}
	logger, closer, err := logging.Setup(logFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Info("list box start", "items", store.Len(), "height", cfg.Height, "frontend", cfg.Frontend)

	var sel scroll.Selection
	switch cfg.Frontend {
	case config.FrontendTea:
		sel, err = cmd.RunTea(cfg, store, logger)
	default:
		sel, err = cmd.RunANSI(cfg, store, in, out, logger)
	}
	if err != nil {
		return err
	}

	logger.Info("list box done", "index", sel.Index)
	printSelection(out, sel)
	return nil
}

func printSelection(w io.Writer, sel scroll.Selection) {
	fmt.Fprintln(w, sel.String())
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
