package crucible

import (
	"context"
	"fmt"

	"github.com/cruciblebio/crucible-go/types"
)

// Generate runs one iterative decoding call for the track named in
// config and returns the completed protein in the same representation
// as the input.
//
// Generate never returns a raised transport failure: the result is
// either the generated protein or a *types.ProteinError carrying the
// failure text. Inputs outside the closed ProteinValue set yield an
// unsupported-input error value.
func (c *Client) Generate(ctx context.Context, input types.ProteinValue, config types.GenerationConfig) types.ProteinValue {
	var output types.ProteinValue
	switch in := input.(type) {
	case *types.Protein:
		output = c.generateProtein(ctx, in, config)
	case *types.ProteinTensor:
		output = c.generateTensor(ctx, in, config)
	default:
		return &types.ProteinError{Msg: fmt.Sprintf("unsupported input type %T", input)}
	}

	// Function and residue-annotation token codecs are lossy, so a
	// round trip through the service is not guaranteed to reproduce
	// the caller's annotations. Unless one of those tracks was the
	// generation target, force the output annotations to the input's.
	if out, ok := output.(*types.Protein); ok {
		in, isProtein := input.(*types.Protein)
		if isProtein && config.Track != types.TrackFunction && config.Track != types.TrackResidueAnnotations {
			out.FunctionAnnotations = in.FunctionAnnotations
		}
	}
	return output
}

// generationRequest composes the canonical generate/generate_tensor
// request body: model, per-track inputs, and the flattened config.
func (c *Client) generationRequest(inputs map[string]any, config types.GenerationConfig) map[string]any {
	invalid := config.InvalidIDs
	if invalid == nil {
		invalid = []int64{}
	}
	return map[string]any{
		"model":                         c.model,
		"inputs":                        inputs,
		"track":                         config.Track,
		"invalid_ids":                   invalid,
		"schedule":                      config.Schedule,
		"num_steps":                     config.NumSteps,
		"temperature":                   config.Temperature,
		"top_p":                         config.TopP,
		"condition_on_coordinates_only": config.ConditionOnCoordinatesOnly,
	}
}

func (c *Client) generateProtein(ctx context.Context, input *types.Protein, config types.GenerationConfig) types.ProteinValue {
	req := c.generationRequest(proteinInputs(input), config)

	data, err := c.post(ctx, "generate", req)
	if err != nil {
		return &types.ProteinError{Msg: err.Error()}
	}
	return parseProtein(outputs(data))
}

func (c *Client) generateTensor(ctx context.Context, input *types.ProteinTensor, config types.GenerationConfig) types.ProteinValue {
	req := c.generationRequest(tensorInputs(input), config)

	data, err := c.post(ctx, "generate_tensor", req)
	if err != nil {
		return &types.ProteinError{Msg: err.Error()}
	}
	return parseTensor(outputs(data))
}
