package app

import (
	"context"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"yashubustudio/symptomcheck/internal/logging"
	"yashubustudio/symptomcheck/symptomcheck"
)

const fyneAppID = "studio.yashubu.symptomcheck"

// Run loads the predictor and starts the desktop UI. The configuration path
// is read from SYMPTOMCHECK_CONFIG and defaults to ./symptomcheck.toml.
func Run() error {
	cfg, err := symptomcheck.LoadConfig(os.Getenv("SYMPTOMCHECK_CONFIG"))
	if err != nil {
		return err
	}

	pane := newLogPane()
	logger, err := logging.New(pane, cfg.Log.Level, false)
	if err != nil {
		return err
	}

	p, err := symptomcheck.Open(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer p.Close()

	a := fyneapp.NewWithID(fyneAppID)
	u := buildUI(a, p, pane)
	u.w.ShowAndRun()
	return nil
}
