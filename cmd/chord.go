package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itsbrex/loopy/model"
	"github.com/itsbrex/loopy/theory"
)

var (
	chordRoot         string
	chordScale        string
	chordOctave       string
	chordRemoveSecond bool
	chordLowerOctave  bool
	chordUpperOctave  bool
)

func init() {
	chordCmd.Flags().StringVar(&chordRoot, "root", "C", "scale root letter")
	chordCmd.Flags().StringVar(&chordScale, "scale", "maj", "scale type (maj or min)")
	chordCmd.Flags().StringVar(&chordOctave, "octave", "4", "octave area of the scale root")
	chordCmd.Flags().BoolVar(&chordRemoveSecond, "remove-second", false, "drop the middle chord tone")
	chordCmd.Flags().BoolVar(&chordLowerOctave, "lower-octave", false, "add the lowest tone an octave down")
	chordCmd.Flags().BoolVar(&chordUpperOctave, "upper-octave", false, "add the highest tone an octave up")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord [degree]",
	Short: "Prints the notes of a diatonic chord",
	Long:  `Prints the notes of the chord built on a scale degree (1-7).`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var degree int
		if _, err := fmt.Sscanf(args[0], "%d", &degree); err != nil {
			return fmt.Errorf("bad degree %q: %w", args[0], err)
		}
		spec := model.ChordSpec{
			Degree:         degree,
			ScaleRoot:      chordRoot,
			ScaleType:      chordScale,
			OctaveArea:     chordOctave,
			RemoveSecond:   chordRemoveSecond,
			AddLowerOctave: chordLowerOctave,
			AddUpperOctave: chordUpperOctave,
		}
		notes, err := theory.ChordNotes(spec)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(notes, " "))
		return nil
	},
}
