package types

// ForwardTrackData holds one per-position statistic across the five
// sampled tracks. A nil slice means the service returned no value for
// that track; derived statistics preserve nil rather than computing
// on absent data.
type ForwardTrackData struct {
	Sequence           []float64
	Structure          []float64
	SecondaryStructure []float64
	SASA               []float64
	Function           []float64
}

// Apply returns a new ForwardTrackData with fn applied independently
// to each present track. Absent (nil) tracks stay absent.
func (d ForwardTrackData) Apply(fn func([]float64) []float64) ForwardTrackData {
	apply := func(v []float64) []float64 {
		if v == nil {
			return nil
		}
		return fn(v)
	}
	return ForwardTrackData{
		Sequence:           apply(d.Sequence),
		Structure:          apply(d.Structure),
		SecondaryStructure: apply(d.SecondaryStructure),
		SASA:               apply(d.SASA),
		Function:           apply(d.Function),
	}
}

// ForwardTrackTopK holds a per-position top-k log-probability matrix
// for each sampled track.
type ForwardTrackTopK struct {
	Sequence           [][]float64
	Structure          [][]float64
	SecondaryStructure [][]float64
	SASA               [][]float64
	Function           [][]float64
}

// ForwardTrackTopKTokens holds a per-position top-k token id matrix
// for each sampled track.
type ForwardTrackTopKTokens struct {
	Sequence           [][]int64
	Structure          [][]int64
	SecondaryStructure [][]int64
	SASA               [][]int64
	Function           [][]int64
}

// ForwardAndSampleOutput is the full result of a forward_and_sample
// call: the sampled tokens plus the per-track distribution bundles.
type ForwardAndSampleOutput struct {
	// ProteinTensor holds the sampled tokens per track.
	ProteinTensor *ProteinTensor
	// Logprob is the log-probability of each sampled token.
	Logprob ForwardTrackData
	// Prob is exp(Logprob), computed element-wise per present track.
	Prob ForwardTrackData
	// Entropy is the per-position distribution entropy.
	Entropy ForwardTrackData
	// TopkLogprob holds the top-k log-probabilities per position.
	TopkLogprob ForwardTrackTopK
	// TopkTokens holds the top-k token ids per position.
	TopkTokens ForwardTrackTopKTokens
}
