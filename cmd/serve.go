package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/0d0b3nus/chorale-writer/bucket"
	"github.com/0d0b3nus/chorale-writer/chord"
	"github.com/0d0b3nus/chorale-writer/constants"
	"github.com/0d0b3nus/chorale-writer/midi"
	"github.com/0d0b3nus/chorale-writer/model"
	"github.com/0d0b3nus/chorale-writer/theory"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var port int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&port, "port", 0, "port to listen on (default $PORT or 8080)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analyzer over HTTP",
	Long: `Serves the analyzer over HTTP.

  POST /analyze        JSON body {"key", "ticks_per_beat", "voices"}
  POST /analyze/midi   a standard midi file, optional ?key= override
  GET  /health`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if port == 0 {
			port = constants.GetPort()
		}
		addr := fmt.Sprintf(":%d", port)
		log.WithField("addr", addr).Info("listening")
		return http.ListenAndServe(addr, NewRouter())
	},
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods(http.MethodPost)
	router.HandleFunc("/analyze/midi", HandleAnalyzeMidi).Methods(http.MethodPost)
	router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Warn("writing response")
	}
}

// statusOf maps analysis errors caused by the request to 400.
func statusOf(err error) int {
	switch {
	case errors.Is(err, theory.ErrValidation),
		errors.Is(err, theory.ErrNoSpelling),
		errors.Is(err, bucket.ErrEmptyBucket),
		errors.Is(err, midi.ErrWrongTrackCount),
		errors.Is(err, midi.ErrNoKeySignature),
		errors.Is(err, midi.ErrUnsupportedTiming),
		errors.Is(err, midi.ErrUnknownKeySignature):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, id string, status int, err error) {
	entry := log.WithFields(log.Fields{"id": id, "status": status})
	if status >= http.StatusInternalServerError {
		entry.WithError(err).Error("request failed")
	} else {
		entry.WithError(err).Debug("bad request")
	}
	writeJSON(w, status, model.ErrorResponse{ID: id, Error: err.Error()})
}

func respond(w http.ResponseWriter, id string, score model.Score) {
	key, progression, err := chord.AnalyzeScore(score)
	if err != nil {
		writeError(w, id, statusOf(err), err)
		return
	}
	log.WithFields(log.Fields{"id": id, "key": key.String(), "buckets": progression.Len()}).Info("analyzed")
	writeJSON(w, http.StatusOK, model.AnalyzeResponse{
		ID:          id,
		Key:         key.String(),
		Buckets:     progression.Len(),
		Progression: progression.Names(),
	})
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	var input model.AnalyzeRequestBody
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, constants.MaxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		writeError(w, id, http.StatusBadRequest, errors.Wrap(err, "could not read request body"))
		return
	}
	respond(w, id, model.Score{Key: input.Key, TicksPerBeat: input.TicksPerBeat, Voices: input.Voices})
}

func HandleAnalyzeMidi(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	s, err := midi.Read(http.MaxBytesReader(w, r.Body, constants.MaxRequestBytes))
	if err != nil {
		writeError(w, id, http.StatusBadRequest, err)
		return
	}
	score, err := midi.ScoreFrom(s)
	if err != nil {
		writeError(w, id, statusOf(err), err)
		return
	}
	if key := r.URL.Query().Get("key"); key != "" {
		score.Key = key
	}
	respond(w, id, score)
}
