package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/rawbytedev/sbewire"
	"github.com/rawbytedev/sbewire/internal/logger"
	"github.com/rawbytedev/sbewire/pkg/baseline"
)

func profileCmd(g *globals) *cli.Command {
	var (
		iterations int
		heapPath   string
	)

	return &cli.Command{
		Name:  "profile",
		Usage: "Run an encode/decode loop over the sample Car and optionally write a heap profile",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "iterations", Aliases: []string{"i"}, Usage: "loop count", Value: 10000, Destination: &iterations},
			&cli.StringFlag{Name: "heap", Usage: "write a heap profile to this file", Destination: &heapPath},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, _, err := g.setup(ctx, cmd)
			if err != nil {
				return err
			}
			if iterations < 1 {
				return cli.Exit("error: --iterations must be at least 1", 1)
			}
			log := logger.FromContext(ctx)

			if heapPath != "" {
				prev := runtime.MemProfileRate
				runtime.MemProfileRate = 1
				defer func() { runtime.MemProfileRate = prev }()
			}

			elapsed, n, err := runProfile(iterations)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			perOp := elapsed / time.Duration(iterations)
			log.Info("profile finished", "iterations", iterations, "elapsed", elapsed, "per_op", perOp, "bytes", n)
			_, _ = fmt.Fprintf(cmd.Root().Writer, "%d iterations, %d bytes each, %s/op\n", iterations, n, perOp)

			if heapPath == "" {
				return nil
			}
			f, err := os.Create(heapPath)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: create heap profile: %v", err), 1)
			}
			defer f.Close()
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				return cli.Exit(fmt.Sprintf("error: write heap profile: %v", err), 1)
			}
			log.Info("heap profile written", "file", heapPath)
			return f.Close()
		},
	}
}

// runProfile encodes and fully decodes the sample Car n times into one
// reused buffer. It returns the elapsed time and the message size.
func runProfile(n int) (time.Duration, int, error) {
	data := make([]byte, sampleFrameSize)
	wbuf := sbewire.WriteBufOf(data)
	rbuf := wbuf.ReadBuf()
	car := baseline.SampleCar()

	var (
		size int
		dec  baseline.CarDecoder
	)
	start := time.Now()
	for i := range n {
		car.SerialNumber = uint64(i)
		next, err := car.Encode(wbuf, 0)
		if err != nil {
			return 0, 0, fmt.Errorf("encode %d: %w", i, err)
		}
		if err := dec.WrapAndReadHeader(rbuf, 0); err != nil {
			return 0, 0, fmt.Errorf("wrap %d: %w", i, err)
		}
		snap, err := baseline.Snapshot(&dec)
		if err != nil {
			return 0, 0, fmt.Errorf("decode %d: %w", i, err)
		}
		if snap.SerialNumber != uint64(i) {
			return 0, 0, fmt.Errorf("decode %d: serial number %d", i, snap.SerialNumber)
		}
		size = next
	}
	return time.Since(start), size, nil
}
