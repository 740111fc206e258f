// Command mqttdump decodes a capture of back-to-back MQTT v5.0 control
// packets and prints each one with packets.Dump. It never opens a network
// connection — it only reads a local file or stdin — matching the wire
// codec's own non-goal of not implementing transport.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/anvil-labs/mqtt5codec/packets"
)

func main() {
	app := cli.NewApp()
	app.Name = "mqttdump"
	app.Usage = "decode and print a capture of MQTT v5.0 control packets"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "file, f",
			Usage: "path to a file of concatenated raw packets (default: stdin)",
		},
		cli.BoolFlag{
			Name:  "hex",
			Usage: "treat the input as hex text instead of raw bytes",
		},
		cli.BoolFlag{
			Name:  "view",
			Usage: "decode in zero-copy view mode instead of owning mode",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("mqttdump: %v", err))
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	var r io.Reader = os.Stdin
	if path := c.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	if c.Bool("hex") {
		raw, err = hex.DecodeString(strings.TrimSpace(string(raw)))
		if err != nil {
			return fmt.Errorf("decode hex input: %w", err)
		}
	}

	mode := packets.ModeOwning
	if c.Bool("view") {
		mode = packets.ModeView
	}

	buf := raw
	index := 0
	for len(buf) > 0 {
		result, err := packets.DecodePacket(buf, mode)
		if err != nil {
			return fmt.Errorf("packet %d: %w", index, err)
		}

		header := color.New(color.FgCyan, color.Bold).Sprintf("packet %d (%d bytes)", index, result.Consumed)
		fmt.Println(header)
		if result.Outcome == packets.OutcomeShortcut {
			fmt.Println(color.YellowString("  (shortcut form: trailing fields default to zero)"))
		}
		fmt.Print(packets.Dump(result.Packet))

		buf = buf[result.Consumed:]
		index++
	}

	return nil
}
