package utils

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. Development gets a console writer.
func InitLogger(env string) {
	zerolog.TimeFieldFormat = time.RFC3339
	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Str("service", "edusystem").Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func PrintLogInfo(caller *string, statusCode int, functionName string, err *error) {
	var logColor string

	switch statusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		logColor = Green
	case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict, http.StatusUnprocessableEntity:
		logColor = Yellow
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		logColor = Red
	default:
		logColor = Reset
	}

	who := "Unknown"
	if caller != nil {
		who = *caller
	}

	event := log.Info()
	if statusCode >= http.StatusInternalServerError {
		event = log.Error()
	} else if statusCode >= http.StatusBadRequest {
		event = log.Warn()
	}
	if err != nil && *err != nil {
		event = event.Err(*err)
	}
	event.Str("caller", who).Int("status", statusCode).Str("function", functionName).Send()

	if zerolog.GlobalLevel() <= zerolog.DebugLevel {
		fmt.Printf("%sCaller: %s | Status: %s | Function: %s%s\n", logColor, who, ColorStatus(statusCode), functionName, Reset)
	}
}
