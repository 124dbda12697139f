package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itsbrex/loopy/constants"
	"github.com/itsbrex/loopy/sequence"
	"github.com/itsbrex/loopy/timing"
)

var (
	decodeSig        string
	decodeResolution string
	decodeSpace      string
	decodeRestId     int
	decodeBPM        float64
	decodeOut        string
)

func init() {
	decodeCmd.Flags().StringVar(&decodeSig, "sig", constants.DefaultSignature, "time signature")
	decodeCmd.Flags().StringVar(&decodeResolution, "resolution", "1/16", "length of one step")
	decodeCmd.Flags().StringVar(&decodeSpace, "space", "midi", "id space of steps (midi or piano)")
	decodeCmd.Flags().IntVar(&decodeRestId, "rest", constants.RestId, "rest sentinel value")
	decodeCmd.Flags().Float64Var(&decodeBPM, "bpm", constants.DefaultBPM, "tempo for midi export")
	decodeCmd.Flags().StringVar(&decodeOut, "out", "", "write a .mid file instead of printing")
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode [steps]",
	Short: "Decodes a step sequence into note events",
	Long:  `Decodes a comma-separated step sequence into note events, optionally exporting a midi file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return decode(args[0])
	},
}

func parseSteps(arg string) ([]int, error) {
	var steps []int
	for _, tok := range strings.Split(arg, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("bad step %q: %w", tok, err)
		}
		steps = append(steps, v)
	}
	return steps, nil
}

func decode(arg string) error {
	steps, err := parseSteps(arg)
	if err != nil {
		return err
	}
	resolution, err := timing.ParseResolution(decodeResolution)
	if err != nil {
		return err
	}

	opts := sequence.Options{
		Signature:  decodeSig,
		Resolution: resolution,
		Space:      sequence.IdSpace(decodeSpace),
		RestId:     decodeRestId,
	}
	events, err := sequence.Decode(steps, opts)
	if err != nil {
		return err
	}

	if decodeOut != "" {
		f, err := os.Create(decodeOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := sequence.WriteSMF(f, events, decodeSig, decodeBPM); err != nil {
			return err
		}
		fmt.Printf("Wrote %v events to %v\n", len(events), decodeOut)
		return nil
	}

	for _, e := range events {
		fmt.Printf("%-4s duration=%v position=%v\n", e.Pitch, e.Duration, e.Position)
	}
	return nil
}
