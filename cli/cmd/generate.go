package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/cruciblebio/crucible-go/types"
)

// GenerateCommand returns the generate command.
// Runs one iterative decoding call against the configured model and
// prints the completed protein as JSON.
func GenerateCommand() *cli.Command {
	flags := append(ClientFlags(),
		InputFlag,
		&cli.StringFlag{
			Name:     "track",
			Usage:    "Track to generate (sequence, structure, secondary_structure, sasa, function, residue_annotations)",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "tensor",
			Usage: "Treat the input file as a tokenized protein",
		},
		&cli.IntFlag{
			Name:  "num-steps",
			Usage: "Number of decoding steps",
			Value: 1,
		},
		&cli.Float64Flag{
			Name:  "temperature",
			Usage: "Sampling temperature",
			Value: 1.0,
		},
		&cli.Float64Flag{
			Name:  "top-p",
			Usage: "Nucleus sampling threshold",
			Value: 1.0,
		},
		&cli.StringFlag{
			Name:  "schedule",
			Usage: "Decoding schedule",
			Value: "cosine",
		},
		&cli.BoolFlag{
			Name:  "condition-on-coordinates-only",
			Usage: "Condition only on the coordinates track",
		},
	)

	return &cli.Command{
		Name:   "generate",
		Usage:  "Generate a track for a protein",
		Flags:  flags,
		Action: generateAction,
	}
}

func generateAction(c *cli.Context) error {
	client, err := newClient(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	cfg := types.GenerationConfig{
		Track:                      c.String("track"),
		Schedule:                   c.String("schedule"),
		NumSteps:                   c.Int("num-steps"),
		Temperature:                c.Float64("temperature"),
		TopP:                       c.Float64("top-p"),
		ConditionOnCoordinatesOnly: c.Bool("condition-on-coordinates-only"),
	}

	var input types.ProteinValue
	if c.Bool("tensor") {
		tensor, err := readTensor(c.String("input"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		input = tensor
	} else {
		protein, err := readProtein(c.String("input"))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		input = protein
	}

	switch result := client.Generate(c.Context, input, cfg).(type) {
	case *types.Protein:
		return printJSON(proteinToWire(result))
	case *types.ProteinTensor:
		return printJSON(tensorToWire(result))
	case *types.ProteinError:
		return cli.Exit(result.Msg, 1)
	default:
		return cli.Exit("unexpected result type", 1)
	}
}
