package crucible

import (
	"context"

	"github.com/cruciblebio/crucible-go/types"
)

// Encode tokenizes a human-readable protein into its tensor
// representation. Transport failures are returned to the caller.
func (c *Client) Encode(ctx context.Context, input *types.Protein) (*types.ProteinTensor, error) {
	req := map[string]any{
		"model":  c.model,
		"inputs": proteinInputs(input),
	}

	data, err := c.post(ctx, "encode", req)
	if err != nil {
		return nil, err
	}
	return parseTensor(outputs(data)), nil
}

// Decode reconstructs a human-readable protein from its tensor
// representation, including the read-only plddt/ptm confidence
// values. Transport failures are returned to the caller.
func (c *Client) Decode(ctx context.Context, input *types.ProteinTensor) (*types.Protein, error) {
	req := map[string]any{
		"model":  c.model,
		"inputs": tensorInputs(input),
	}

	data, err := c.post(ctx, "decode", req)
	if err != nil {
		return nil, err
	}
	return parseProtein(outputs(data)), nil
}
