package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/itsbrex/loopy/constants"
	"github.com/itsbrex/loopy/mix"
	"github.com/itsbrex/loopy/model"
	"github.com/itsbrex/loopy/pattern"
	"github.com/itsbrex/loopy/pitch"
	"github.com/itsbrex/loopy/sequence"
	"github.com/itsbrex/loopy/timing"
	"github.com/itsbrex/loopy/util"
	"github.com/itsbrex/loopy/wav"
)

var (
	renderSig        string
	renderResolution string
	renderSpace      string
	renderRestId     int
	renderBPM        float64
	renderOut        string
)

func init() {
	renderCmd.Flags().StringVar(&renderSig, "sig", constants.DefaultSignature, "time signature")
	renderCmd.Flags().StringVar(&renderResolution, "resolution", "1/16", "length of one step")
	renderCmd.Flags().StringVar(&renderSpace, "space", "midi", "id space of steps (midi or piano)")
	renderCmd.Flags().IntVar(&renderRestId, "rest", constants.RestId, "rest sentinel value")
	renderCmd.Flags().Float64Var(&renderBPM, "bpm", constants.DefaultBPM, "tempo")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "output wav path (default: uuid name in the render dir)")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render [steps]",
	Short: "Renders a step sequence to a wav file",
	Long:  `Renders a comma-separated step sequence to a wav file with a built-in sine voice.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return render(args[0])
	},
}

// sineVoice is demo glue for the render command, not a synthesis engine:
// one sine per note with a linear fade-out.
type sineVoice struct {
	sig        model.TimeSignature
	bpm        float64
	sampleRate int
}

func (v sineVoice) Render(name string, duration, position float64) (mix.Buffer, error) {
	midiId, err := pitch.ToMidiId(name)
	if err != nil {
		return nil, err
	}
	freq := 440 * math.Pow(2, float64(midiId-69)/12)
	seconds := duration / v.sig.BeatValue * 60 / v.bpm
	frames := int(seconds * float64(v.sampleRate))

	b := mix.New(frames, 2)
	for i := range b {
		t := float64(i) / float64(v.sampleRate)
		fade := 1 - float64(i)/float64(frames)
		s := 0.4 * fade * math.Sin(2*math.Pi*freq*t)
		b[i][0] = s
		b[i][1] = s
	}
	return b, nil
}

func render(arg string) error {
	steps, err := parseSteps(arg)
	if err != nil {
		return err
	}
	resolution, err := timing.ParseResolution(renderResolution)
	if err != nil {
		return err
	}
	ts, err := timing.ParseSignature(renderSig)
	if err != nil {
		return err
	}

	// enough bars to hold the whole sequence
	wholeNotes := resolution * float64(len(steps))
	barLen := float64(ts.BeatsPerBar) * ts.BeatValue
	bars := int(math.Ceil(wholeNotes / barLen))
	if bars < 1 {
		bars = 1
	}

	p, err := pattern.New(bars, renderSig, renderBPM, constants.DefaultSampleRate)
	if err != nil {
		return err
	}
	opts := sequence.Options{
		Signature:  renderSig,
		Resolution: resolution,
		Space:      sequence.IdSpace(renderSpace),
		RestId:     renderRestId,
	}
	voice := sineVoice{sig: ts, bpm: renderBPM, sampleRate: constants.DefaultSampleRate}
	if err := p.AddSequence(steps, opts, voice); err != nil {
		return err
	}

	master, err := p.Render()
	if err != nil {
		return err
	}

	out := renderOut
	if out == "" {
		dir := constants.GetRenderDir()
		if err := os.MkdirAll(dir, 0777); err != nil {
			return err
		}
		out = filepath.Join(dir, uuid.New().String()+".wav")
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := wav.Encode(f, master, constants.DefaultSampleRate); err != nil {
		return err
	}

	seconds := float64(master.Frames()) / constants.DefaultSampleRate
	fmt.Printf("Wrote %v (%v)\n", out, util.SecToClock(seconds))
	return nil
}
