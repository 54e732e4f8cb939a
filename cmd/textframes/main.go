package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kataras/textframes"
	"github.com/kataras/textframes/pkg/config"
	"github.com/kataras/textframes/pkg/export"
	"github.com/kataras/textframes/pkg/formatter"
	"github.com/kataras/textframes/pkg/prompt"
)

var (
	configFile   string
	snapshotPath string
	figmaFile    string
	figmaURL     string
	accessToken  string
	nodeIDs      string
	deep         bool
	targetName   string
	orderName    string
	direction    string
	mode         string
	outputFile   string
	indent       int
	escapeQuotes bool
	normalize    bool
	interactive  bool
	quiet        bool
	verbose      bool
)

// lookupEnv reads the environment for settings no file or flag set.
var lookupEnv = os.LookupEnv

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and binds every flag to its variable,
// resetting it to the flag default.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "textframes",
		Short: "Export the text contents of every artboard",
		Long:  "A tool to export the text of every artboard (or top-level Figma frame) of a design document, ordered by stacking order or position",
		Run:   run,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Config file (.toml, .yaml, .yml or .json)")
	flags.StringVarP(&snapshotPath, "snapshot", "s", "", "Document snapshot (YAML or JSON)")
	flags.StringVar(&figmaFile, "figma-file", "", "Figma file JSON saved from the API")
	flags.StringVarP(&figmaURL, "url", "u", "", "Figma file URL")
	flags.StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token (default $"+config.TokenEnv+")")
	flags.StringVarP(&nodeIDs, "node-ids", "n", "", "Comma-separated node IDs to extract (optional, restricts regions to these nodes)")
	flags.BoolVar(&deep, "deep", false, "Select every descendant of a Figma frame, not only its direct children")
	flags.StringVar(&targetName, "target", "allItems", "Export target: allItems or firstItemPriorTextFrame")
	flags.StringVar(&orderName, "order", "stacking", "Order: stacking (layer), positionX or positionY")
	flags.StringVar(&direction, "direction", "asc", "Order direction: asc or desc")
	flags.StringVarP(&mode, "mode", "m", "json", "Output mode: json, lines or markdown")
	flags.StringVarP(&outputFile, "output", "o", "", "Output file (skips the save dialog)")
	flags.IntVar(&indent, "indent", 2, "Indent width of json output, 0 for a single line")
	flags.BoolVar(&escapeQuotes, "escape-quotes", false, "Escape double quotes in json output")
	flags.BoolVar(&normalize, "normalize", false, "Normalize text to Unicode NFC")
	flags.BoolVarP(&interactive, "interactive", "i", false, "Ask for options and the output file in the terminal")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Hide the progress bar")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every sorted item")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export text contents (default command)",
		Run:   run,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("textframes version %s\n", textframes.Version)
		},
	}

	rootCmd.AddCommand(exportCmd, versionCmd)
	return rootCmd
}

func run(cmd *cobra.Command, args []string) {
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	fail := func(err error) {
		red.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cyan.Fprintln(os.Stderr, "\n📝 TextFrame Contents Exporter")
	cyan.Fprintln(os.Stderr, "==============================")
	cyan.Fprintln(os.Stderr)

	cfg, err := loadConfig(cmd)
	if err != nil {
		fail(err)
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		fail(err)
	}

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	var logOut io.Writer = os.Stderr
	if !quiet {
		palette := prompt.NewPalette(os.Stderr, "Extracting", cfg.IndicatorWidth)
		opts.Progress = palette
		logOut = palette.Writer(os.Stderr)
	}
	opts.Logger = newLogger(logOut, level)

	if interactive {
		opts.Dialog = prompt.Dialog{}
	}
	switch {
	case cfg.Output != "":
		opts.Files = export.Static{Path: cfg.Output}
	case interactive:
		opts.Files = prompt.SaveDialog{}
	default:
		opts.Files = export.Static{}
	}

	result, err := textframes.Run(opts)
	if err != nil {
		fail(err)
	}

	switch {
	case result.Canceled:
		cyan.Fprintln(os.Stderr, "\nNothing exported.")
	case result.SaveCanceled:
		cyan.Fprintln(os.Stderr, "\nSaving canceled, nothing written.")
	default:
		cyan.Fprintln(os.Stderr, "\n📊 Extraction Summary:")
		fmt.Fprintf(os.Stderr, "  • Regions: %d\n", result.Contents.Len())
		fmt.Fprintf(os.Stderr, "  • Text items: %d\n", result.Contents.Count())
		green.Fprintf(os.Stderr, "\n✨ Successfully exported text contents to %s\n\n", result.Path)
	}
}

// loadConfig reads the config file, if any, then applies the flags the user
// set explicitly. The environment only fills the token when neither did.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return cfg, fmt.Errorf("config %s: %w", configFile, err)
		}
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("target", func() { cfg.Target = targetName })
	set("order", func() { cfg.Order = orderName })
	set("direction", func() { cfg.Direction = direction })
	set("mode", func() { cfg.Mode = mode })
	set("output", func() { cfg.Output = outputFile })
	set("indent", func() { cfg.Indent = &indent })
	set("escape-quotes", func() { cfg.EscapeQuotes = escapeQuotes })
	set("normalize", func() { cfg.Normalize = normalize })
	set("deep", func() { cfg.Deep = deep })
	set("token", func() { cfg.Figma.Token = accessToken })
	set("url", func() { cfg.Figma.URL = figmaURL })

	cfg.ApplyEnv(lookupEnv)
	return cfg, nil
}

func buildOptions(cfg config.Config) (textframes.Options, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return textframes.Options{}, err
	}
	outMode, err := formatter.ParseMode(cfg.Mode)
	if err != nil {
		return textframes.Options{}, err
	}

	opts := textframes.Options{
		SnapshotPath:    snapshotPath,
		FigmaFile:       figmaFile,
		FigmaURL:        cfg.Figma.URL,
		AccessToken:     cfg.Figma.Token,
		Deep:            cfg.Deep,
		Policy:          policy,
		Mode:            outMode,
		Indent:          cfg.IndentWidth(),
		Compact:         cfg.IndentWidth() == 0,
		EscapeQuotes:    cfg.EscapeQuotes,
		DefaultFileName: cfg.DefaultFileName,
		Prompt:          cfg.Prompt,
	}
	if nodeIDs != "" {
		opts.NodeIDs = textframes.ParseNodeIDs(nodeIDs)
	}

	return opts, nil
}

// newLogger creates a logger with timestamp formatting that writes to w
// and filters messages at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
