package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/embedkit/hexlit/encoder"
	"github.com/embedkit/hexlit/logging"
	"github.com/embedkit/hexlit/prefs"
	"github.com/embedkit/hexlit/scan"
)

// Execute runs the hexlit CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "hexlit",
		Usage:                  "Emit binary files as hex string literals for embedding in source code",
		Version:                version,
		ArgsUsage:              "[file ...]",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "escaped",
				Aliases: []string{"e"},
				Usage:   "Emit \\xNN escape pairs instead of bare digit pairs",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "Literal opening delimiter",
			},
			&cli.StringFlag{
				Name:  "suffix",
				Usage: "Literal closing delimiter",
			},
			&cli.IntFlag{
				Name:    "wrap",
				Aliases: []string{"w"},
				Usage:   "Break the literal after every N bytes (0 = single line)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the literal to a file instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   "Show debug output",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"C"},
				Usage:   "Disable ANSI color output",
			},
		},
		Action: encodeAction,
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "Decode a hex literal back to raw bytes",
				ArgsUsage: "<file | ->",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "prefix",
						Usage: "Literal opening delimiter to strip",
					},
					&cli.StringFlag{
						Name:  "suffix",
						Usage: "Literal closing delimiter to strip",
					},
				},
				Action: decodeAction,
			},
			{
				Name:  "ignore",
				Usage: "Manage file extensions skipped during directory scans",
				Commands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "Show the ignored extensions",
						Action: ignoreListAction,
					},
					{
						Name:      "add",
						Usage:     "Add extensions to the ignored list",
						ArgsUsage: "<ext[,ext...]> ...",
						Action:    ignoreAddAction,
					},
					{
						Name:      "remove",
						Usage:     "Remove extensions from the ignored list",
						ArgsUsage: "<ext[,ext...]> ...",
						Action:    ignoreRemoveAction,
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func encodeAction(ctx context.Context, cmd *cli.Command) error {
	logger := logging.New(cmd.Bool("verbose"), cmd.Bool("no-color"))

	cfg, err := prefs.Load()
	if err != nil {
		return err
	}
	format := cfg.Format
	if cmd.IsSet("escaped") {
		format.Escaped = cmd.Bool("escaped")
	}
	if cmd.IsSet("prefix") {
		format.Prefix = cmd.String("prefix")
	}
	if cmd.IsSet("suffix") {
		format.Suffix = cmd.String("suffix")
	}
	if cmd.IsSet("wrap") {
		format.Wrap = int(cmd.Int("wrap"))
	}

	out := io.Writer(os.Stdout)
	if path := cmd.String("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("cannot create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	files := cmd.Args().Slice()
	if len(files) == 0 {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		files, err = scan.Candidates(dir, cfg.Ignored)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			logger.Info("no suitable files found", "dir", dir)
			return nil
		}
		logger.Debug("scanned directory", "dir", dir, "files", len(files))
	}

	for _, path := range files {
		if err := encodeFile(logger, format, out, path); err != nil {
			return err
		}
	}
	return nil
}

func encodeFile(logger *slog.Logger, format encoder.Format, w io.Writer, path string) error {
	var r io.Reader
	if path == "-" {
		logger.Debug("reading standard input")
		r = os.Stdin
	} else {
		logger.Debug("processing file", "path", path)
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	n, err := writeLiteral(format, w, r)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	logger.Debug("encoded", "path", path, "bytes", n)
	return nil
}

// writeLiteral buffers the whole literal before touching w so a read
// failure never leaves partial output on stdout.
func writeLiteral(format encoder.Format, w io.Writer, r io.Reader) (int64, error) {
	var buf bytes.Buffer
	n, err := format.EncodeTo(&buf, r)
	if err != nil {
		return n, err
	}
	buf.WriteByte('\n')
	if _, err := buf.WriteTo(w); err != nil {
		return n, fmt.Errorf("writing literal: %w", err)
	}
	return n, nil
}

func decodeAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: hexlit decode <file | ->")
	}
	cfg, err := prefs.Load()
	if err != nil {
		return err
	}
	format := cfg.Format
	if cmd.IsSet("prefix") {
		format.Prefix = cmd.String("prefix")
	}
	if cmd.IsSet("suffix") {
		format.Suffix = cmd.String("suffix")
	}

	path := cmd.Args().First()
	var text []byte
	if path == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	data, err := decodeLiteral(format, string(text))
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// decodeLiteral tries the configured delimiters first, then falls back
// to the lenient quote-style parse, so literals produced with a custom
// prefix/suffix decode alongside plain quoted ones.
func decodeLiteral(format encoder.Format, text string) ([]byte, error) {
	if data, err := format.Decode(text); err == nil {
		return data, nil
	}
	return encoder.Decode(text)
}

func ignoreListAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := prefs.Load()
	if err != nil {
		return err
	}
	for _, ext := range cfg.Ignored {
		fmt.Println(ext)
	}
	return nil
}

func ignoreAddAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: hexlit ignore add <ext[,ext...]>")
	}
	cfg, err := prefs.Load()
	if err != nil {
		return err
	}
	n := cfg.AddIgnored(cmd.Args().Slice())
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%d extension(s) added\n", n)
	return nil
}

func ignoreRemoveAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: hexlit ignore remove <ext[,ext...]>")
	}
	cfg, err := prefs.Load()
	if err != nil {
		return err
	}
	n := cfg.RemoveIgnored(cmd.Args().Slice())
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%d extension(s) removed\n", n)
	return nil
}
