// Package cli wires the cobra commands: the bare command launches the GUI,
// "download" runs one job headless and "version" prints the build version.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/download"
	"github.com/ytget/yt-clipper/internal/logging"
)

// AppName is the command name
const AppName = "yt-clipper"

// rootOptions holds state shared by all commands
type rootOptions struct {
	cfgFile string
	version string
	v       *viper.Viper
	opts    *config.Options

	// serviceOpts are passed to every download service the commands create
	serviceOpts []download.Option
}

// NewRootCommand builds the command tree
func NewRootCommand(version string) *cobra.Command {
	ro := &rootOptions{
		version: version,
		v:       config.NewViper(),
		opts:    &config.Options{},
	}

	cmd := &cobra.Command{
		Use:   AppName,
		Short: "Download YouTube videos or clips of them with yt-dlp",
		Long: `yt-clipper is a front-end for yt-dlp. Without a subcommand it opens
a window to preview a URL, choose the whole video or a time range, pick
MP4 and/or WEBM and start the download.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: ro.load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(ro.opts, ro.version)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&ro.cfgFile, "config", "", "Configuration file path (yaml, toml or json)")
	pf.String("log-level", config.DefaultLogLevel, "Log level (trace, debug, info, warn, error)")
	pf.String("log-format", config.DefaultLogFormat, "Log format (text, json)")
	pf.String("ytdlp", "", "yt-dlp executable name or path (overrides settings)")
	pf.StringP("output-dir", "o", "", "Directory to save downloads (overrides settings)")

	_ = ro.v.BindPFlag(config.OptLogLevel, pf.Lookup("log-level"))
	_ = ro.v.BindPFlag(config.OptLogFormat, pf.Lookup("log-format"))
	_ = ro.v.BindPFlag(config.OptYtDlp, pf.Lookup("ytdlp"))
	_ = ro.v.BindPFlag(config.OptOutputDir, pf.Lookup("output-dir"))

	cmd.AddCommand(newDownloadCommand(ro), newVersionCommand(ro))

	return cmd
}

// load resolves options and configures logging before any command runs
func (ro *rootOptions) load(cmd *cobra.Command, args []string) error {
	opts, err := config.LoadOptions(ro.v, ro.cfgFile)
	if err != nil {
		return err
	}
	ro.opts = opts

	if err := logging.Setup(opts.LogLevel, opts.LogFormat, os.Stderr); err != nil {
		log.WithError(err).Warn("Using default logging settings")
	}
	log.WithFields(log.Fields{
		"config":  ro.cfgFile,
		"version": ro.version,
	}).Debug("Options loaded")
	return nil
}

// Execute runs the root command and exits with status 1 on failure.
// This is called by main.main().
func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newVersionCommand(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", AppName, ro.version)
		},
	}
}
