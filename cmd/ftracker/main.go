package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	echoadapter "github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/bzimmer/ftracker"
)

func config(c *cli.Context) (*ftracker.Config, error) {
	var r io.Reader
	switch c.IsSet("config") {
	case true:
		log.Info().Str("file", c.String("config")).Msg("config")
		fp, err := os.Open(c.String("config"))
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		r = fp
	case false:
		log.Info().Str("file", "etc/packages.json").Msg("config")
		fp, err := ftracker.Content.Open("etc/packages.json")
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		r = fp
	}
	return ftracker.ReadConfig(r)
}

func formatter(c *cli.Context) ftracker.Formatter {
	if c.Bool("json") {
		return ftracker.JSONFormatter
	}
	return ftracker.TextFormatter
}

func report(c *cli.Context) error {
	cfg, err := config(c)
	if err != nil {
		return err
	}
	return ftracker.Report(c.App.Writer, cfg.Packages, formatter(c))
}

func read(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("expected a workout code and its data")
	}
	pkg := ftracker.Package{Code: c.Args().First()}
	for _, arg := range c.Args().Tail() {
		val, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("%w: %v", ftracker.ErrInputData, err)
		}
		pkg.Data = append(pkg.Data, val)
	}
	return ftracker.Report(c.App.Writer, []ftracker.Package{pkg}, formatter(c))
}

func serve(c *cli.Context) error {
	u, err := url.Parse(c.String("base-url"))
	if err != nil {
		return err
	}
	engine := ftracker.NewEngine(u.Path)
	_, port, _ := net.SplitHostPort(u.Host)
	address := fmt.Sprintf("0.0.0.0:%s", port)
	log.Info().Str("address", address).Msg("serving")
	return http.ListenAndServe(address, engine)
}

func function(c *cli.Context) error {
	u, err := url.Parse(c.String("base-url"))
	if err != nil {
		return err
	}
	engine := ftracker.NewEngine(u.Path)
	log.Info().Msg("running function")
	lambda.Start(ftracker.LambdaHandler(echoadapter.New(engine)))
	return nil
}

func formatFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Value: false,
			Usage: "encode summaries as json",
		},
	}
}

func baseURLFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "base-url",
		Value:   "http://localhost:9001",
		Usage:   "Base URL",
		EnvVars: []string{"BASE_URL"},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "ftracker",
		HelpName: "ftracker",
		Usage:    "Fitness tracker training summaries",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Value:   false,
				Usage:   "enable debug logging",
				EnvVars: []string{"FTRACKER_VERBOSE"},
			},
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			log.Error().Err(err).Msg(c.App.Name)
		},
		Before: func(c *cli.Context) error {
			level := zerolog.InfoLevel
			if c.Bool("verbose") {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			zerolog.DurationFieldUnit = time.Millisecond
			zerolog.DurationFieldInteger = false
			log.Logger = log.Output(
				zerolog.ConsoleWriter{
					Out:        c.App.ErrWriter,
					NoColor:    false,
					TimeFormat: time.RFC3339,
				},
			)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "report",
				Usage: "summarize every package in the configuration",
				Flags: append(formatFlags(), &cli.StringFlag{
					Name:    "config",
					Usage:   "file with the packages to summarize",
					EnvVars: []string{"FTRACKER_CONFIG"},
				}),
				Action: report,
			},
			{
				Name:      "read",
				Usage:     "summarize a single package",
				ArgsUsage: "CODE VALUE...",
				Flags:     formatFlags(),
				Action:    read,
			},
			{
				Name:   "serve",
				Usage:  "serve the training api",
				Flags:  []cli.Flag{baseURLFlag()},
				Action: serve,
			},
			{
				Name:   "function",
				Usage:  "run the training api as a lambda function",
				Flags:  []cli.Flag{baseURLFlag()},
				Action: function,
			},
		},
	}
}

func main() {
	if err := newApp().RunContext(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
	os.Exit(0)
}
