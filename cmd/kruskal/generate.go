package main

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/kruskal/builder"
	"github.com/katalvlaran/kruskal/graphio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// generators maps KIND to the constructors it applies, in order.
var generators = map[string]func(in *Input) []builder.Constructor{
	"path":     func(*Input) []builder.Constructor { return []builder.Constructor{builder.Path()} },
	"cycle":    func(*Input) []builder.Constructor { return []builder.Constructor{builder.Cycle()} },
	"star":     func(*Input) []builder.Constructor { return []builder.Constructor{builder.Star()} },
	"complete": func(*Input) []builder.Constructor { return []builder.Constructor{builder.Complete()} },
	"tree":     func(*Input) []builder.Constructor { return []builder.Constructor{builder.RandomTree()} },
	"random": func(in *Input) []builder.Constructor {
		return []builder.Constructor{builder.RandomTree(), builder.RandomSparse(in.probability)}
	},
}

func generatorKinds() string {
	return "path|cycle|star|complete|tree|random"
}

func newGenerateCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate KIND N",
		Short: "Print a generated graph with N vertices in the input format",
		Long: "Print a graph in the \"V M\" + edge-triple format. KIND is one of " + generatorKinds() + ".\n" +
			"random is a spanning tree plus every other pair with probability --p.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := strings.ToLower(args[0])
			cons, ok := generators[kind]
			if !ok {
				return errors.Errorf("unknown graph kind %q (want %s)", args[0], generatorKinds())
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrapf(err, "invalid vertex count %q", args[1])
			}
			if err := builder.CheckIntegerRange(input.minWeight, input.maxWeight); err != nil {
				return errors.Wrap(err, "--min-weight/--max-weight")
			}

			g, err := builder.BuildGraph(n, nil, []builder.BuilderOption{
				builder.WithSeed(input.seed),
				builder.WithIntegerWeight(input.minWeight, input.maxWeight),
			}, cons(input)...)
			if err != nil {
				return errors.Wrapf(err, "generate %s", kind)
			}
			log.WithFields(log.Fields{
				"kind":     kind,
				"vertices": g.VertexCount(),
				"edges":    g.EdgeCount(),
				"seed":     input.seed,
			}).Debug("graph generated")

			return graphio.WriteEdgeList(cmd.OutOrStdout(), g)
		},
	}
	cmd.Flags().Int64Var(&input.seed, "seed", input.seed, "random seed")
	cmd.Flags().Float64Var(&input.probability, "p", input.probability, "edge probability for the random kind")
	cmd.Flags().IntVar(&input.minWeight, "min-weight", input.minWeight, "smallest integer weight")
	cmd.Flags().IntVar(&input.maxWeight, "max-weight", input.maxWeight, "largest integer weight")

	return cmd
}
