package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/pcset/constants"
	"github.com/jsphweid/pcset/model"
	"github.com/jsphweid/pcset/pcset"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&addr, "addr", constants.GetAddr(), "address to listen on")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the pitch-class set operations over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(addr)
	},
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("could not write response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func queryInput(r *http.Request) (pcset.Input, error) {
	raw := r.URL.Query().Get("input")
	if raw == "" {
		return nil, errors.New("missing input query parameter")
	}
	return pcset.ParseInput(raw), nil
}

func HandlePcset(w http.ResponseWriter, r *http.Request) {
	in, err := queryInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, pcset.Get(in))
}

func HandleChromas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pcset.Chromas())
}

func HandleIntervals(w http.ResponseWriter, r *http.Request) {
	in, err := queryInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, pcset.Intervals(in))
}

func HandleModes(w http.ResponseWriter, r *http.Request) {
	in, err := queryInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	all := false
	if raw := r.URL.Query().Get("all"); raw != "" {
		all, err = strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.Wrap(err, "bad all query parameter"))
			return
		}
	}
	writeJSON(w, http.StatusOK, model.ModesResponse{
		Input: pcset.Get(in),
		Modes: pcset.ModeStrings(in, !all),
	})
}

func HandleRelation(w http.ResponseWriter, r *http.Request) {
	var input model.RelationRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "could not unmarshal request body"))
		return
	}
	res, err := relate(input.Op, input.Reference, input.Candidate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.RelationResponse{Op: input.Op, Result: res})
}

func HandleFilter(w http.ResponseWriter, r *http.Request) {
	var input model.FilterRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "could not unmarshal request body"))
		return
	}
	kept := pcset.Filter(pcset.ParseInput(input.Reference))(input.Notes)
	writeJSON(w, http.StatusOK, model.FilterResponse{Notes: kept})
}

func HandleMode(w http.ResponseWriter, r *http.Request) {
	res, err := describeMode(mux.Vars(r)["name"], r.URL.Query().Get("tonic"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		logrus.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"duration":   time.Since(start),
		}).Info("handled request")
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/pcset", HandlePcset).Methods("GET")
	router.HandleFunc("/chromas", HandleChromas).Methods("GET")
	router.HandleFunc("/intervals", HandleIntervals).Methods("GET")
	router.HandleFunc("/modes", HandleModes).Methods("GET")
	router.HandleFunc("/relation", HandleRelation).Methods("POST")
	router.HandleFunc("/filter", HandleFilter).Methods("POST")
	router.HandleFunc("/mode/{name}", HandleMode).Methods("GET")
	router.Use(logRequests)

	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetCorsOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})
	return c.Handler(router)
}

func serve(addr string) error {
	logrus.WithField("addr", addr).Info("serving")
	return http.ListenAndServe(addr, NewRouter())
}
