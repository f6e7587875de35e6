// Package cli builds the expedition command tree.
package cli

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/expedition/internal/version"
	"github.com/arthur-debert/expedition/pkg/cobrax/topics"
	"github.com/arthur-debert/expedition/pkg/config"
	"github.com/arthur-debert/expedition/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbosity    int
	configPath   string
	format       string
	colorProfile string
	themePath    string
}

// overrides maps the flags the user actually set onto config keys.
func (g *globalOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	out := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("format") {
		out["output.format"] = g.format
	}
	if flags.Changed("color-profile") {
		out["output.color_profile"] = g.colorProfile
	}
	if flags.Changed("theme") {
		out["theme.file"] = g.themePath
	}
	return out
}

func (g *globalOptions) loadConfig(cmd *cobra.Command, extra map[string]interface{}) (*config.Config, error) {
	overrides := g.overrides(cmd)
	for k, v := range extra {
		overrides[k] = v
	}
	cfg, err := config.LoadWithOverrides(g.configPath, overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	g := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "expedition",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVarP(&g.configPath, "config", "c", "", MsgFlagConfig)
	pf.StringVarP(&g.format, "format", "f", "auto", MsgFlagFormat)
	pf.StringVar(&g.colorProfile, "color-profile", "auto", MsgFlagColorProfile)
	pf.StringVar(&g.themePath, "theme", "", MsgFlagTheme)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(g))
	rootCmd.AddCommand(newRunsCmd(g))
	rootCmd.AddCommand(newConvertCmd(g))
	rootCmd.AddCommand(newHighlightCmd(g))
	rootCmd.AddCommand(newStylesCmd(g))
	rootCmd.AddCommand(newLayoutCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	sub, err := fs.Sub(topicFiles, "topics")
	if err == nil {
		opts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer("auto", 80),
		}
		if _, err := topics.InitializeWithOptions(rootCmd, sub, opts); err != nil {
			log.Debug().Err(err).Msg("help topics unavailable")
		}
	}

	return rootCmd
}
