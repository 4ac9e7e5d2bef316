package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/sbewire"
	"github.com/rawbytedev/sbewire/internal/logger"
	"github.com/rawbytedev/sbewire/pkg/baseline"
	"github.com/rawbytedev/sbewire/pkg/capture"
)

var ErrUnknownFormat = errors.New("unknown output format")

// frameDump is one capture frame with every message it holds.
type frameDump struct {
	Index      int                `json:"frame" yaml:"frame"`
	Compressed bool               `json:"compressed" yaml:"compressed"`
	Bytes      int                `json:"bytes" yaml:"bytes"`
	Messages   []baseline.Message `json:"messages" yaml:"messages"`
}

func dumpCmd(g *globals) *cli.Command {
	var format string

	return &cli.Command{
		Name:      "dump",
		Usage:     "Decode every message of a capture file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "json or yaml", Value: "json", Destination: &format},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cfg, err := g.setup(ctx, cmd)
			if err != nil {
				return err
			}
			if cfg.Format != "" && !cmd.IsSet("format") {
				format = cfg.Format
			}
			path := cmd.Args().First()
			if path == "" {
				return cli.Exit("error: dump needs a capture file", 1)
			}

			f, err := os.Open(path)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: open capture: %v", err), 1)
			}
			defer f.Close()

			frames, err := readCapture(logger.WithContext(ctx, logger.FromContext(ctx).With("file", path)), f)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			if err := writeFrames(cmd.Root().Writer, format, frames); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			return nil
		},
	}
}

// readCapture decodes every frame of r, chaining through the messages of
// each payload by their headers.
func readCapture(ctx context.Context, r io.Reader) ([]frameDump, error) {
	log := logger.FromContext(ctx)
	cr := capture.NewReader(r)
	defer cr.Close()

	var frames []frameDump
	for {
		raw, h, err := cr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return frames, err
		}
		msgs, err := baseline.DecodeAll(sbewire.ReadBufOf(raw))
		if err != nil {
			return frames, fmt.Errorf("frame %d: %w", len(frames), err)
		}
		log.Debug("frame decoded", "index", len(frames), "bytes", len(raw), "messages", len(msgs))
		frames = append(frames, frameDump{
			Index:      len(frames),
			Compressed: h.Compressed(),
			Bytes:      len(raw),
			Messages:   msgs,
		})
	}
	log.Info("capture decoded", "frames", len(frames))
	return frames, nil
}

func writeFrames(w io.Writer, format string, frames []frameDump) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(frames)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(frames); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
