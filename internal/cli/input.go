package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/expedition/pkg/codec"
	"github.com/arthur-debert/expedition/pkg/config"
	"github.com/arthur-debert/expedition/pkg/logging"
	"github.com/arthur-debert/expedition/pkg/spans"
	"github.com/spf13/cobra"
)

// documentFlags are the flags of commands that read a document.
type documentFlags struct {
	input    string
	textPath string
}

func (d *documentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&d.input, "input", "i", "", MsgFlagInput)
	cmd.Flags().StringVar(&d.textPath, "text", "", MsgFlagText)
}

// format is --input when set, else inferred from the path. Standard input
// defaults to JSON.
func (d *documentFlags) format(path string) (codec.Format, error) {
	if d.input != "" {
		return codec.ParseFormat(d.input)
	}
	if path == "-" {
		return codec.FormatJSON, nil
	}
	return codec.FormatFromPath(path)
}

// readDocument decodes the document at path, "-" meaning cmd's input, and
// resolves its classes through the configured theme.
func (d *documentFlags) readDocument(cmd *cobra.Command, cfg *config.Config, path string) (*spans.Buffer, error) {
	logger := logging.GetLogger("cli")

	f, err := d.format(path)
	if err != nil {
		return nil, err
	}
	th, err := cfg.LoadTheme()
	if err != nil {
		return nil, err
	}
	opts := []codec.DecodeOption{codec.WithTheme(th)}

	switch {
	case f == codec.FormatLines && d.textPath == "":
		return nil, fmt.Errorf(MsgErrLinesNoText)
	case f != codec.FormatLines && d.textPath != "":
		return nil, fmt.Errorf(MsgErrTextWithText)
	case d.textPath != "":
		text, err := os.ReadFile(d.textPath)
		if err != nil {
			return nil, fmt.Errorf(MsgErrOpenInput, d.textPath, err)
		}
		opts = append(opts, codec.WithText(string(text)))
	}

	r, closeFn, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	logger.Debug().Str("path", path).Str("format", f.String()).Msg("reading document")
	return codec.Decode(r, f, opts...)
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrOpenInput, path, err)
	}
	return file, func() { _ = file.Close() }, nil
}
