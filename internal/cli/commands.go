package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/arthur-debert/expedition/internal/version"
	"github.com/arthur-debert/expedition/pkg/codec"
	"github.com/arthur-debert/expedition/pkg/config"
	"github.com/arthur-debert/expedition/pkg/highlight"
	"github.com/arthur-debert/expedition/pkg/logging"
	"github.com/arthur-debert/expedition/pkg/runs"
	"github.com/arthur-debert/expedition/pkg/spans"
	"github.com/arthur-debert/expedition/pkg/style"
	"github.com/arthur-debert/expedition/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"
)

var dumper = litter.Options{
	StripPackageNames: true,
	HideZeroValues:    true,
}

// render writes b through the backend selected by cfg.
func render(cmd *cobra.Command, cfg *config.Config, b *spans.Buffer) error {
	defer logging.LogOperationStart(logging.GetLogger("cli"), "render")()

	opts, err := cfg.RendererOptions()
	if err != nil {
		return err
	}
	r, err := ui.NewRenderer(cfg.Output.Format, cmd.OutOrStdout(), opts...)
	if err != nil {
		return err
	}
	return ui.Render(r, b)
}

func newRenderCmd(g *globalOptions) *cobra.Command {
	var doc documentFlags
	cmd := &cobra.Command{
		Use:     "render <file>",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			b, err := doc.readDocument(cmd, cfg, args[0])
			if err != nil {
				return err
			}
			return render(cmd, cfg, b)
		},
	}
	doc.register(cmd)
	return cmd
}

func newRunsCmd(g *globalOptions) *cobra.Command {
	var (
		doc  documentFlags
		dump bool
	)
	cmd := &cobra.Command{
		Use:     "runs <file>",
		Short:   MsgRunsShort,
		Long:    MsgRunsLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			b, err := doc.readDocument(cmd, cfg, args[0])
			if err != nil {
				return err
			}
			rs := runs.Resolve(b)

			if dump {
				fmt.Fprintln(cmd.OutOrStdout(), dumper.Sdump(rs))
				return nil
			}

			data := [][]string{{MsgHeaderRange, MsgHeaderText, MsgHeaderStyle}}
			for _, r := range rs {
				desc := r.Style.String()
				if desc == "" {
					desc = "-"
				}
				data = append(data, []string{r.Range.String(), fmt.Sprintf("%q", r.Text), desc})
			}
			return pterm.DefaultTable.
				WithHasHeader().
				WithData(data).
				WithWriter(cmd.OutOrStdout()).
				Render()
		},
	}
	doc.register(cmd)
	cmd.Flags().BoolVar(&dump, "dump", false, MsgFlagDump)
	return cmd
}

func newConvertCmd(g *globalOptions) *cobra.Command {
	var (
		doc    documentFlags
		to     string
		output string
	)
	cmd := &cobra.Command{
		Use:     "convert <file>",
		Short:   MsgConvertShort,
		Long:    MsgConvertLong,
		Example: MsgConvertExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := codec.ParseFormat(to)
			if err != nil {
				return err
			}
			cfg, err := g.loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			b, err := doc.readDocument(cmd, cfg, args[0])
			if err != nil {
				return err
			}

			var out bytes.Buffer
			if err := codec.Encode(&out, b, target); err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(out.Bytes())
				return err
			}
			if err := os.WriteFile(output, out.Bytes(), 0644); err != nil {
				return fmt.Errorf(MsgErrWriteOutput, output, err)
			}
			logger := logging.WithFields(map[string]interface{}{
				"component": "cli",
				"path":      output,
				"format":    target.String(),
			})
			logger.Info().Msg("wrote document")
			return nil
		},
	}
	doc.register(cmd)
	cmd.Flags().StringVarP(&to, "to", "t", "json", MsgFlagTo)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	return cmd
}

func newHighlightCmd(g *globalOptions) *cobra.Command {
	var lexer, chromaStyle string
	cmd := &cobra.Command{
		Use:     "highlight <file>",
		Short:   MsgHighlightShort,
		Long:    MsgHighlightLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra := map[string]interface{}{}
			if cmd.Flags().Changed("style") {
				extra["highlight.style"] = chromaStyle
			}
			cfg, err := g.loadConfig(cmd, extra)
			if err != nil {
				return err
			}

			r, closeFn, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeFn()
			var src bytes.Buffer
			if _, err := src.ReadFrom(r); err != nil {
				return fmt.Errorf(MsgErrOpenInput, args[0], err)
			}

			opts := cfg.HighlightOptions()
			if lexer != "" {
				opts = append(opts, highlight.WithLexer(lexer))
			}
			name := args[0]
			if name == "-" {
				name = ""
			}
			b, err := highlight.Source(name, src.String(), opts...)
			if err != nil {
				return err
			}
			return render(cmd, cfg, b)
		},
	}
	cmd.Flags().StringVarP(&lexer, "lexer", "l", "", MsgFlagLexer)
	cmd.Flags().StringVarP(&chromaStyle, "style", "s", "", MsgFlagStyle)
	return cmd
}

func newStylesCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "styles",
		Short:   MsgStylesShort,
		Long:    MsgStylesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			th, err := cfg.LoadTheme()
			if err != nil {
				return err
			}
			names := th.Names()
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNoStyles)
				return nil
			}

			width := 0
			for _, name := range names {
				width = max(width, len(name))
			}
			label := style.Identity().Bold()
			swatches := spans.Text("")
			for _, name := range names {
				st, _ := th.Get(name)
				swatches.With(
					spans.Text(fmt.Sprintf("%-*s  ", width, name)).Styled(label),
					spans.Text(MsgSample).Styled(st),
					spans.Text("\n"),
				)
			}
			return render(cmd, cfg, swatches.Buffer())
		},
	}
}

func newLayoutCmd(g *globalOptions) *cobra.Command {
	var doc documentFlags
	cmd := &cobra.Command{
		Use:     "layout <file>",
		Short:   MsgLayoutShort,
		Long:    MsgLayoutLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd, nil)
			if err != nil {
				return err
			}
			b, err := doc.readDocument(cmd, cfg, args[0])
			if err != nil {
				return err
			}
			job := cfg.StyleToFormat().ToJob(b)
			fmt.Fprintln(cmd.OutOrStdout(), dumper.Sdump(job))
			return nil
		},
	}
	doc.register(cmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.SetOut(cmd.OutOrStdout())
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
