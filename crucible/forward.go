package crucible

import (
	"context"
	"math"

	"github.com/cruciblebio/crucible-go/codec"
	"github.com/cruciblebio/crucible-go/types"
)

// ForwardAndSample runs one forward pass over a tokenized protein and
// samples each configured track, returning the sampled tokens plus
// the per-track distribution bundles.
//
// Embedding outputs are not carried over this transport: requesting
// them logs a warning and the call proceeds without the field.
// Transport failures are returned to the caller.
func (c *Client) ForwardAndSample(ctx context.Context, input *types.ProteinTensor, config types.SamplingConfig) (*types.ForwardAndSampleOutput, error) {
	if config.ReturnMeanEmbedding || config.ReturnPerResidueEmbeddings {
		c.logger.Warn("embedding outputs are not supported over this transport, continuing without them", map[string]any{
			"return_mean_embedding":         config.ReturnMeanEmbedding,
			"return_per_residue_embeddings": config.ReturnPerResidueEmbeddings,
		})
	}

	// Every categorical track gets an explicit entry: an object when
	// the caller configured sampling for it, null otherwise.
	samplingConfig := map[string]any{
		types.TrackSequence:           samplingTrack(config.Sequence),
		types.TrackStructure:          samplingTrack(config.Structure),
		types.TrackSecondaryStructure: samplingTrack(config.SecondaryStructure),
		types.TrackSASA:               samplingTrack(config.SASA),
		types.TrackFunction:           samplingTrack(config.Function),
	}

	req := map[string]any{
		"model":            c.model,
		"inputs":           tensorInputs(input),
		"sampling_config":  samplingConfig,
		"embedding_config": nil,
	}

	data, err := c.post(ctx, "forward_and_sample", req)
	if err != nil {
		return nil, err
	}

	// The response carries one object per track at the top level of
	// the normalized body, with one field per statistic. A null track
	// or a null statistic stays absent, never defaulted.
	get := func(track, field string) any {
		tm, ok := data[track].(map[string]any)
		if !ok {
			return nil
		}
		return tm[field]
	}

	trackData := func(field string) types.ForwardTrackData {
		return types.ForwardTrackData{
			Sequence:           codec.Floats1D(get(types.TrackSequence, field)),
			Structure:          codec.Floats1D(get(types.TrackStructure, field)),
			SecondaryStructure: codec.Floats1D(get(types.TrackSecondaryStructure, field)),
			SASA:               codec.Floats1D(get(types.TrackSASA, field)),
			Function:           codec.Floats1D(get(types.TrackFunction, field)),
		}
	}

	tokens := &types.ProteinTensor{
		Sequence:           codec.Ints1D(get(types.TrackSequence, "tokens")),
		Structure:          codec.Ints1D(get(types.TrackStructure, "tokens")),
		SecondaryStructure: codec.Ints1D(get(types.TrackSecondaryStructure, "tokens")),
		SASA:               codec.Floats1D(get(types.TrackSASA, "tokens")),
		Function:           codec.Ints2D(get(types.TrackFunction, "tokens")),
	}

	logprob := trackData("logprobs")
	output := &types.ForwardAndSampleOutput{
		ProteinTensor: tokens,
		Logprob:       logprob,
		Prob:          logprob.Apply(expSlice),
		Entropy:       trackData("entropy"),
		TopkLogprob: types.ForwardTrackTopK{
			Sequence:           codec.Floats2D(get(types.TrackSequence, "topk_logprobs")),
			Structure:          codec.Floats2D(get(types.TrackStructure, "topk_logprobs")),
			SecondaryStructure: codec.Floats2D(get(types.TrackSecondaryStructure, "topk_logprobs")),
			SASA:               codec.Floats2D(get(types.TrackSASA, "topk_logprobs")),
			Function:           codec.Floats2D(get(types.TrackFunction, "topk_logprobs")),
		},
		TopkTokens: types.ForwardTrackTopKTokens{
			Sequence:           codec.Ints2D(get(types.TrackSequence, "topk_tokens")),
			Structure:          codec.Ints2D(get(types.TrackStructure, "topk_tokens")),
			SecondaryStructure: codec.Ints2D(get(types.TrackSecondaryStructure, "topk_tokens")),
			SASA:               codec.Ints2D(get(types.TrackSASA, "topk_tokens")),
			Function:           codec.Ints2D(get(types.TrackFunction, "topk_tokens")),
		},
	}
	return output, nil
}

// samplingTrack encodes one per-track sampling sub-configuration, or
// an explicit null when the track is not sampled.
func samplingTrack(t *types.SamplingTrackConfig) any {
	if t == nil {
		return nil
	}
	invalid := t.InvalidIDs
	if invalid == nil {
		invalid = []int64{}
	}
	return map[string]any{
		"temperature":               t.Temperature,
		"top_p":                     t.TopP,
		"only_sample_masked_tokens": t.OnlySampleMaskedTokens,
		"invalid_ids":               invalid,
		"topk_logprobs":             t.TopKLogprobs,
	}
}

// expSlice exponentiates a log-probability slice element-wise.
func expSlice(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = math.Exp(f)
	}
	return out
}
