package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Resolve and render styled text"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgRenderShort     = "Render a styled document"
	MsgRunsShort       = "Show the resolved runs of a document"
	MsgConvertShort    = "Convert a document between formats"
	MsgHighlightShort  = "Syntax-highlight a source file"
	MsgStylesShort     = "Show the styles of the current theme"
	MsgStylesLong      = "Styles renders every named style of the current theme as a swatch."
	MsgLayoutShort     = "Dump the GUI layout job of a document"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgVersionFormat = "expedition version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
	MsgNoStyles      = "The theme defines no styles."
	MsgSample        = "The quick brown fox"

	// Table headers
	MsgHeaderRange = "RANGE"
	MsgHeaderText  = "TEXT"
	MsgHeaderStyle = "STYLE"

	// Errors
	MsgErrNoCommand    = "no command specified"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrOpenInput    = "failed to open %s: %w"
	MsgErrWriteOutput  = "failed to write %s: %w"
	MsgErrLinesNoText  = "lines documents need --text"
	MsgErrTextWithText = "--text only applies to lines documents"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig       = "Config file (default is $XDG_CONFIG_HOME/expedition/config.toml)"
	MsgFlagFormat       = "Output format (auto, term, ansi, palette, text, json)"
	MsgFlagColorProfile = "Colour profile (auto, truecolor, ansi256, ansi, ascii)"
	MsgFlagTheme        = "Theme file used to resolve span classes"
	MsgFlagInput        = "Document format (json, yaml, toml, xml, lines); default from extension"
	MsgFlagText         = "Plain text file for lines documents"
	MsgFlagTo           = "Target document format (json, yaml, toml, xml, lines)"
	MsgFlagOutput       = "Write to file instead of standard output"
	MsgFlagDump         = "Dump run values instead of a table"
	MsgFlagLexer        = "Lexer name, overriding detection from the file name"
	MsgFlagStyle        = "Chroma style name"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/runs-long.txt
	msgRunsLongRaw string
	MsgRunsLong    = strings.TrimSpace(msgRunsLongRaw)

	//go:embed msgs/convert-long.txt
	msgConvertLongRaw string
	MsgConvertLong    = strings.TrimSpace(msgConvertLongRaw)

	//go:embed msgs/convert-example.txt
	msgConvertExampleRaw string
	MsgConvertExample    = strings.TrimRight(msgConvertExampleRaw, "\n")

	//go:embed msgs/highlight-long.txt
	msgHighlightLongRaw string
	MsgHighlightLong    = strings.TrimSpace(msgHighlightLongRaw)

	//go:embed msgs/layout-long.txt
	msgLayoutLongRaw string
	MsgLayoutLong    = strings.TrimSpace(msgLayoutLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
