package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/itsbrex/loopy/constants"
	"github.com/itsbrex/loopy/model"
	"github.com/itsbrex/loopy/sequence"
	"github.com/itsbrex/loopy/theory"
	"github.com/itsbrex/loopy/timing"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the decode and chord endpoints",
	Long:  `Serves the decode and chord endpoints`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func handleDecode(w http.ResponseWriter, r *http.Request) {
	var input model.DecodeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, fmt.Errorf("could not unmarshal request body: %w", err))
		return
	}

	opts := sequence.DefaultOptions()
	if input.Sig != "" {
		opts.Signature = input.Sig
	}
	if input.Resolution != "" {
		resolution, err := timing.ParseResolution(input.Resolution)
		if err != nil {
			writeError(w, 400, err)
			return
		}
		opts.Resolution = resolution
	}
	if input.Space != "" {
		opts.Space = sequence.IdSpace(input.Space)
	}
	opts.RestId = input.RestId

	events, err := sequence.Decode(input.Steps, opts)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	json.NewEncoder(w).Encode(model.DecodeResponse{Events: events})
}

func handleChord(w http.ResponseWriter, r *http.Request) {
	var input model.ChordRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, fmt.Errorf("could not unmarshal request body: %w", err))
		return
	}

	spec := model.ChordSpec{
		Degree:         input.Degree,
		ScaleRoot:      input.Root,
		ScaleType:      input.Scale,
		OctaveArea:     input.Octave,
		RemoveSecond:   input.RemoveSecond,
		AddLowerOctave: input.LowerOctave,
		AddUpperOctave: input.UpperOctave,
	}
	if spec.ScaleType == "" {
		spec.ScaleType = "maj"
	}
	if spec.OctaveArea == "" {
		spec.OctaveArea = "4"
	}

	notes, err := theory.ChordNotes(spec)
	if err != nil {
		writeError(w, 400, err)
		return
	}
	json.NewEncoder(w).Encode(model.ChordResponse{Notes: notes})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/decode", handleDecode).Methods("POST")
	router.HandleFunc("/chord", handleChord).Methods("POST")
	router.HandleFunc("/health", handleHealth).Methods("GET")

	handler := cors.Default().Handler(router)
	addr := constants.GetServeAddr()
	log.Printf("listening on %v", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
