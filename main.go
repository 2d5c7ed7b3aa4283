package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"yashubustudio/symptomcheck/internal/app"
	"yashubustudio/symptomcheck/internal/logging"
)

func main() {
	if err := app.Run(); err != nil {
		logger, lerr := logging.New(os.Stderr, "error", true)
		if lerr != nil {
			logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		}
		var ge *goerr.Error
		if errors.As(err, &ge) {
			logger.Error("symptomcheck failed to start", slog.String("error", err.Error()), slog.Any("values", ge.Values()))
		} else {
			logger.Error("symptomcheck failed to start", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}
}
