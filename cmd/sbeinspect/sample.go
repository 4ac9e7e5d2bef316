package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rawbytedev/sbewire"
	"github.com/rawbytedev/sbewire/internal/logger"
	"github.com/rawbytedev/sbewire/pkg/baseline"
	"github.com/rawbytedev/sbewire/pkg/capture"
)

// sampleFrameSize comfortably holds one sample Car followed by one Ping.
const sampleFrameSize = 1024

func sampleCmd(g *globals) *cli.Command {
	var (
		out      string
		count    int
		compress bool
	)

	return &cli.Command{
		Name:  "sample",
		Usage: "Write frames of sample Car and Ping messages to a capture file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "capture file to create",
				Destination: &out,
				Required:    true,
			},
			&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "number of frames", Value: 1, Destination: &count},
			&cli.BoolFlag{Name: "zstd", Usage: "compress frame payloads", Destination: &compress},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, cfg, err := g.setup(ctx, cmd)
			if err != nil {
				return err
			}
			if cfg.Zstd != nil && !cmd.IsSet("zstd") {
				compress = *cfg.Zstd
			}
			if cfg.Count != nil && !cmd.IsSet("count") {
				count = *cfg.Count
			}
			if count < 1 {
				return cli.Exit("error: --count must be at least 1", 1)
			}
			log := logger.FromContext(ctx).With("file", out)

			f, err := os.Create(out)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: create capture: %v", err), 1)
			}
			defer f.Close()

			w := capture.NewWriter(f, compress)
			defer w.Close()

			data := make([]byte, sampleFrameSize)
			for i := range count {
				n, err := packSample(data, uint64(i))
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: encode frame %d: %v", i, err), 1)
				}
				if err := w.WriteFrame(data[:n]); err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				log.Debug("frame written", "index", i, "bytes", n)
			}
			if err := f.Close(); err != nil {
				return cli.Exit(fmt.Sprintf("error: close capture: %v", err), 1)
			}
			log.Info("capture written", "frames", w.Frames(), "zstd", compress)
			return nil
		},
	}
}

// packSample encodes a Car followed by a Ping into data and returns the
// number of bytes used.
func packSample(data []byte, seq uint64) (int, error) {
	buf := sbewire.WriteBufOf(data)
	car := baseline.SampleCar()
	car.SerialNumber += seq
	offset, err := car.Encode(buf, 0)
	if err != nil {
		return 0, err
	}
	ping := baseline.PingSnapshot{Seq: seq, Flags: 1}
	return ping.Encode(buf, offset)
}
