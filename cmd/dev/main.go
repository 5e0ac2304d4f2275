package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"welfare-lottery-mcp/internal/fetch"
	"welfare-lottery-mcp/internal/logging"
	"welfare-lottery-mcp/internal/lottery"
	"welfare-lottery-mcp/internal/summary"
)

// dev runs one lookup outside of any MCP host and prints the rendered result.
func main() {
	var (
		apiBase  = flag.String("api-base", fetch.DefaultBaseURL, "lottery history API base URL")
		count    = flag.Int("count", 0, "number of draws to request (0 = API default)")
		form     = flag.String("form", "both", "output form: compact|narrative|both")
		linkBase = flag.String("link-base", summary.DefaultLinkBase, "site prefixed to video/details links")
		logLevel = flag.String("log-level", "info", "log level")
	)
	flag.Parse()

	log, err := logging.New(*logLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	forms, err := outputForms(*form)
	if err != nil {
		log.Fatal(err)
	}

	client := fetch.NewClient()
	client.BaseURL = *apiBase
	svc := lottery.NewService(client, log)

	var n *int
	if *count > 0 {
		n = count
	}
	res := svc.Last(context.Background(), n)
	log.WithField("status", res.Status.String()).Info("lookup finished")

	printResult(os.Stdout, res, forms, *linkBase)
	if res.Status != lottery.StatusOK {
		os.Exit(1)
	}
}

func outputForms(s string) ([]summary.Form, error) {
	if s == "both" {
		return []summary.Form{summary.FormCompact, summary.FormNarrative}, nil
	}
	f, err := summary.ParseForm(s)
	if err != nil {
		return nil, err
	}
	return []summary.Form{f}, nil
}

func printResult(w io.Writer, res lottery.Result, forms []summary.Form, linkBase string) {
	if res.Status != lottery.StatusOK {
		fmt.Fprintln(w, res.Text(summary.FormCompact, linkBase))
		return
	}
	for _, f := range forms {
		fmt.Fprintln(w, res.Text(f, linkBase))
	}
}
