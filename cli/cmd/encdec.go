package cmd

import (
	"github.com/urfave/cli/v2"
)

// EncodeCommand returns the encode command.
// Tokenizes a human-readable protein file and prints the tensor
// representation as JSON.
func EncodeCommand() *cli.Command {
	return &cli.Command{
		Name:   "encode",
		Usage:  "Tokenize a protein into its tensor representation",
		Flags:  append(ClientFlags(), InputFlag),
		Action: encodeAction,
	}
}

func encodeAction(c *cli.Context) error {
	client, err := newClient(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	protein, err := readProtein(c.String("input"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	tensor, err := client.Encode(c.Context, protein)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return printJSON(tensorToWire(tensor))
}

// DecodeCommand returns the decode command.
// Reconstructs a human-readable protein from a tokenized protein file
// and prints it as JSON.
func DecodeCommand() *cli.Command {
	return &cli.Command{
		Name:   "decode",
		Usage:  "Reconstruct a protein from its tensor representation",
		Flags:  append(ClientFlags(), InputFlag),
		Action: decodeAction,
	}
}

func decodeAction(c *cli.Context) error {
	client, err := newClient(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	tensor, err := readTensor(c.String("input"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	protein, err := client.Decode(c.Context, tensor)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	return printJSON(proteinToWire(protein))
}
