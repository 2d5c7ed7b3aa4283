package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v2"

	"yashubustudio/symptomcheck/internal/formatter"
	"yashubustudio/symptomcheck/internal/logging"
	"yashubustudio/symptomcheck/symptomcheck"
)

// demoQueries are the example inputs printed by the demo command.
var demoQueries = []string{
	"feeling tired and restless",
	"lack of sleep and anxiety",
	"depressed mood",
}

var errNoQueries = goerr.New("no symptom descriptions given")

// newCLIApp creates the CLI application with all commands.
func newCLIApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	app := &cli.App{
		Name:      "symptomcheck-cli",
		Usage:     "Predict a mental-health condition from a symptom description",
		Version:   Version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, EnvVars: []string{"SYMPTOMCHECK_CONFIG"}, Usage: "Path to symptomcheck.toml"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: string(formatter.FormatHuman), Usage: "Output format: human|json|yaml"},
			&cli.StringFlag{Name: "log-level", Usage: "Override the configured log level (debug|info|warn|error)"},
		},
		Commands: []*cli.Command{
			predictCmd(),
			insightsCmd(),
			demoCmd(),
		},
	}
	// Errors are reported by main so tests can inspect them.
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// predictCmd creates the predict command.
func predictCmd() *cli.Command {
	return &cli.Command{
		Name:      "predict",
		Usage:     "Predict a condition for each description",
		ArgsUsage: "[TEXT...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "Read one description per line from FILE, or stdin with -"},
		},
		Action: func(c *cli.Context) error {
			format, err := formatter.ParseFormat(c.String("format"))
			if err != nil {
				return err
			}
			queries, err := collectQueries(c)
			if err != nil {
				return err
			}
			p, err := openPredictor(c)
			if err != nil {
				return err
			}
			defer p.Close()

			report := formatter.Report{}
			for _, q := range queries {
				pred, err := p.Predict(q)
				if err != nil {
					return goerr.Wrap(err, "prediction failed", goerr.V("query", q))
				}
				report.Predictions = append(report.Predictions, pred)
			}
			return formatter.Write(c.App.Writer, format, report)
		},
	}
}

// insightsCmd creates the insights command.
func insightsCmd() *cli.Command {
	return &cli.Command{
		Name:  "insights",
		Usage: "Summarize the loaded symptom datasets",
		Action: func(c *cli.Context) error {
			format, err := formatter.ParseFormat(c.String("format"))
			if err != nil {
				return err
			}
			p, err := openPredictor(c)
			if err != nil {
				return err
			}
			defer p.Close()

			insights := p.Insights()
			return formatter.Write(c.App.Writer, format, formatter.Report{Insights: &insights})
		},
	}
}

// demoCmd creates the demo command.
func demoCmd() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Print dataset insights and predictions for built-in examples",
		Action: func(c *cli.Context) error {
			format, err := formatter.ParseFormat(c.String("format"))
			if err != nil {
				return err
			}
			p, err := openPredictor(c)
			if err != nil {
				return err
			}
			defer p.Close()

			insights := p.Insights()
			report := formatter.Report{Insights: &insights}
			for _, q := range demoQueries {
				pred, err := p.Predict(q)
				if err != nil {
					return goerr.Wrap(err, "prediction failed", goerr.V("query", q))
				}
				report.Predictions = append(report.Predictions, pred)
			}
			return formatter.Write(c.App.Writer, format, report)
		},
	}
}

// openPredictor loads configuration and builds the predictor, showing a
// spinner on interactive terminals.
func openPredictor(c *cli.Context) (*symptomcheck.Predictor, error) {
	cfg, err := symptomcheck.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	level := cfg.Log.Level
	if override := c.String("log-level"); override != "" {
		level = override
	}
	interactive := isTerminal(c.App.ErrWriter)
	logger, err := logging.New(c.App.ErrWriter, level, cfg.Log.Color && interactive)
	if err != nil {
		return nil, err
	}

	if interactive {
		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(c.App.ErrWriter))
		s.Suffix = " Loading symptom datasets..."
		s.Start()
		defer s.Stop()
	}
	return symptomcheck.Open(context.Background(), cfg, logger)
}

// collectQueries gathers descriptions from arguments and --input.
func collectQueries(c *cli.Context) ([]string, error) {
	queries := append([]string(nil), c.Args().Slice()...)

	switch path := c.String("input"); path {
	case "":
	case "-":
		lines, err := readLines(c.App.Reader)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read stdin")
		}
		queries = append(queries, lines...)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open input file", goerr.V(symptomcheck.PathKey, path))
		}
		defer f.Close()
		lines, err := readLines(f)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read input file", goerr.V(symptomcheck.PathKey, path))
		}
		queries = append(queries, lines...)
	}

	if len(queries) == 0 {
		return nil, goerr.Wrap(errNoQueries, "pass TEXT arguments or --input")
	}
	return queries, nil
}

// readLines returns the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// isTerminal reports whether w is a character device.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// reportError logs err together with any goerr values attached to it.
func reportError(w io.Writer, err error) {
	logger, lerr := logging.New(w, "error", isTerminal(w))
	if lerr != nil {
		logger = slog.New(slog.NewTextHandler(w, nil))
	}

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error("symptomcheck-cli failed",
			slog.String("error", err.Error()),
			slog.Any("values", ge.Values()),
		)
		return
	}
	logger.Error("symptomcheck-cli failed", slog.String("error", err.Error()))
}
