package main

import (
	"context"
	"os"
	"time"

	"github.com/joncooperworks/httpbuster"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func actionHTTPBuster(c *cli.Context) error {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if c.Bool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}

	permutations := httpbuster.NewPermutationSpec(
		c.String("prepend"),
		c.String("append"),
		c.String("swap"),
		c.String("extensions"),
	)
	permutations.Unique = c.Bool("unique")

	config := httpbuster.Config{
		URL:                c.String("url"),
		WordlistPath:       c.String("wordlist"),
		Permutations:       permutations,
		Workers:            c.Int("threads"),
		Timeout:            time.Duration(c.Int("time")) * time.Second,
		InsecureSkipVerify: c.Bool("no-tls"),
		UserAgent:          c.String("agent"),
		Headers:            c.StringSlice("header"),
		Cookies:            c.StringSlice("cookie"),
		AddSlash:           c.Bool("add-slash"),
		RateLimit:          c.Float64("rate"),
		RequestDelay:       time.Duration(c.Int("delay-ms")) * time.Millisecond,
		Discard:            c.IntSlice("discard"),
		Display: httpbuster.DisplayOptions{
			Quiet:        c.Bool("quiet"),
			Verbose:      c.Bool("verbose"),
			NoProgress:   c.Bool("no-progress"),
			ShowLength:   c.Bool("show-len"),
			ShowRedirect: c.Bool("show-redir"),
			Expand:       c.Bool("expand"),
			HideStatus:   c.Bool("no-status"),
			ShowTitle:    c.Bool("show-title"),
			Color:        !c.Bool("no-color"),
		},
		Output:         os.Stdout,
		ProgressOutput: os.Stderr,
		Logger:         logger,
	}

	return httpbuster.Run(context.Background(), config)
}

func main() {
	app := &cli.App{
		Name:   "httpbuster",
		Usage:  "find hidden paths on a web server using a wordlist",
		Action: actionHTTPBuster,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Aliases:  []string{"u"},
				Required: true,
				Usage:    "target url",
			},
			&cli.StringFlag{
				Name:     "wordlist",
				Aliases:  []string{"w"},
				Required: true,
				Usage:    "newline separated wordlist",
			},
			&cli.IntFlag{
				Name:    "threads",
				Aliases: []string{"t"},
				Value:   httpbuster.DefaultWorkers,
				Usage:   "number of concurrent requests",
			},
			&cli.IntFlag{
				Name:  "time",
				Value: int(httpbuster.DefaultTimeout / time.Second),
				Usage: "request timeout in seconds",
			},
			&cli.BoolFlag{
				Name:    "show-len",
				Aliases: []string{"l"},
				Usage:   "display the size of each response",
			},
			&cli.BoolFlag{
				Name:    "show-redir",
				Aliases: []string{"r"},
				Usage:   "display the target of 301 redirects",
			},
			&cli.BoolFlag{
				Name:    "no-status",
				Aliases: []string{"n"},
				Usage:   "don't display HTTP status codes",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "display every response and log request errors",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "don't print the banner",
			},
			&cli.BoolFlag{
				Name:    "no-progress",
				Aliases: []string{"z"},
				Usage:   "disable the progress bar",
			},
			&cli.BoolFlag{
				Name:    "expand",
				Aliases: []string{"e"},
				Usage:   "display the full url",
			},
			&cli.StringSliceFlag{
				Name:    "header",
				Aliases: []string{"H"},
				Usage:   "custom headers (-H \"H1: V1\" -H \"H2: V2\")",
			},
			&cli.StringSliceFlag{
				Name:    "cookie",
				Aliases: []string{"C"},
				Usage:   "custom cookies (-C \"C1=V1\" -C \"C2=V2\")",
			},
			&cli.StringFlag{
				Name:    "agent",
				Aliases: []string{"A"},
				Value:   httpbuster.DefaultUserAgent,
				Usage:   "user agent",
			},
			&cli.StringFlag{
				Name:    "prepend",
				Aliases: []string{"p"},
				Usage:   "words to prepend to each wordlist entry (csv)",
			},
			&cli.StringFlag{
				Name:    "append",
				Aliases: []string{"a"},
				Usage:   "words to append to each wordlist entry (csv)",
			},
			&cli.StringFlag{
				Name:    "extensions",
				Aliases: []string{"x"},
				Usage:   "extensions to search (csv)",
			},
			&cli.StringFlag{
				Name:    "swap",
				Aliases: []string{"s"},
				Usage:   "words to swap in for entries that contain " + httpbuster.SwapMarker + " (csv)",
			},
			&cli.BoolFlag{
				Name:    "add-slash",
				Aliases: []string{"f"},
				Usage:   "add a trailing / to each request",
			},
			&cli.BoolFlag{
				Name:    "no-tls",
				Aliases: []string{"k"},
				Usage:   "skip verifying TLS certificates",
			},
			&cli.BoolFlag{
				Name:  "unique",
				Usage: "don't request the same candidate twice for a wordlist entry",
			},
			&cli.IntSliceFlag{
				Name:  "discard",
				Value: cli.NewIntSlice(httpbuster.DefaultDiscard...),
				Usage: "status codes to hide",
			},
			&cli.Float64Flag{
				Name:  "rate",
				Usage: "maximum requests per second, 0 for no limit",
			},
			&cli.IntFlag{
				Name:  "delay-ms",
				Usage: "the delay between each HTTP request in milliseconds",
			},
			&cli.BoolFlag{
				Name:  "show-title",
				Usage: "display the title of HTML pages",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable coloured output",
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		logrus.Fatal(err)
	}
}
