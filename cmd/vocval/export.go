package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/vocval/export"
	"github.com/c360studio/vocval/fetch"
	"github.com/c360studio/vocval/rdf"
	"github.com/c360studio/vocval/vocabulary"
)

// exportCmd fetches one vocabulary and prints the normalized term graph the
// rules would be evaluated against, in the requested serialization.
func exportCmd() *cobra.Command {
	var (
		format  string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "export URI",
		Short: "Fetch a vocabulary and print its normalized term graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := vocabulary.Reference(args[0])
			fetcher := fetch.NewFetcher(timeout, fetch.WithUserAgent(appName))

			ctx := context.Background()
			data, err := fetcher.Fetch(ctx, ref, fetch.FormatTurtle)
			var graph *vocabulary.TermGraph
			if err == nil {
				graph, err = rdf.ParseTurtle(ref, data)
			} else {
				data, err = fetcher.Fetch(ctx, ref, fetch.FormatRDFXML)
				if err != nil {
					return fmt.Errorf("fetch vocabulary: %w", err)
				}
				graph, err = rdf.ParseRDFXML(ref, data)
			}
			if err != nil {
				return fmt.Errorf("parse vocabulary: %w", err)
			}

			out, err := export.Export(graph, export.Format(format))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(os.Stdout, out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", string(export.FormatTurtle),
		"Output format (turtle, ntriples, jsonld)")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Per-request HTTP timeout")
	return cmd
}
