package main

import (
	"context"
	"io"
	"os"

	"github.com/katalvlaran/kruskal/core"
	"github.com/katalvlaran/kruskal/graphio"
	"github.com/katalvlaran/kruskal/prim_kruskal"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	rootCmd := createRootCommand(ctx, newInput(), version)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kruskal",
		Short: "Compute a minimum spanning tree (or forest) of an undirected weighted graph read from stdin.",
		Long: "Reads \"V M\" followed by M \"origin destination weight\" triples, prints the\n" +
			"adjacency list and the edges selected by Kruskal's algorithm with their total cost.",
		Args:              cobra.NoArgs,
		RunE:              newRunCommand(ctx, input),
		PersistentPreRunE: setupLogging(input),
		Version:           version,
		SilenceUsage:      true,
	}
	rootCmd.Flags().StringVarP(&input.graphFile, "file", "f", "", "read the graph from a file instead of stdin")
	rootCmd.Flags().VarP(&input.output, "output", "o", "output format: text or yaml")
	rootCmd.Flags().VarP(&input.method, "method", "m", "algorithm: kruskal or prim")
	rootCmd.Flags().BoolVar(&input.earlyExit, "early-exit", false, "stop scanning edges once V-1 are accepted")
	rootCmd.Flags().BoolVar(&input.requireConnected, "require-connected", false, "fail when the graph is not connected")
	rootCmd.Flags().BoolVar(&input.simple, "simple", false, "reject self-loops and parallel edges")
	rootCmd.Flags().BoolVarP(&input.quiet, "quiet", "q", false, "skip the adjacency list in text output")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newGenerateCommand(input))

	return rootCmd
}

func setupLogging(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(log.InfoLevel)
		if input.verbose {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}
}

func newRunCommand(ctx context.Context, input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		src, err := input.openGraph(cmd.InOrStdin())
		if err != nil {
			return err
		}
		defer src.Close()

		if input.graphFile == "" && checkIfTerminal(cmd.InOrStdin()) {
			log.Info("Reading graph from stdin: \"V M\" followed by M \"origin destination weight\" lines")
		}

		g, err := graphio.Read(src, input.GraphOptions()...)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"vertices": g.VertexCount(),
			"edges":    g.EdgeCount(),
		}).Debug("graph loaded")

		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "interrupted")
		}

		res, mstErr := prim_kruskal.Compute(g, input.MSTOptions()...)
		if mstErr != nil && !errors.Is(mstErr, prim_kruskal.ErrDisconnected) {
			return errors.Wrap(mstErr, "compute spanning forest")
		}
		log.WithFields(log.Fields{
			"method":   string(input.method),
			"accepted": len(res.Edges),
			"total":    res.Total,
		}).Debug("spanning forest computed")

		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "interrupted")
		}

		if err := render(cmd.OutOrStdout(), input, g, res); err != nil {
			return err
		}
		if mstErr != nil {
			log.WithField("components", res.Components()).Error("graph is not connected")
			return mstErr
		}

		return nil
	}
}

// render prints the graph and the forest in the selected format.
func render(w io.Writer, input *Input, g *core.Graph, res prim_kruskal.Result) error {
	method := string(input.method)
	if input.output == outputYAML {
		return graphio.WriteYAML(w, graphio.NewReport(method, g, res))
	}

	if !input.quiet {
		if err := graphio.WriteAdjacency(w, g); err != nil {
			return err
		}
	}
	if err := graphio.WriteTotals(w, g); err != nil {
		return err
	}

	return graphio.WriteResult(w, method, res)
}
