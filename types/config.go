package types

// GenerationConfig controls a single generate or generate_tensor call.
// All fields are flattened into the request body alongside the inputs.
type GenerationConfig struct {
	// Track is the track to generate (e.g. TrackSequence).
	Track string
	// InvalidIDs are token ids the sampler must not emit.
	InvalidIDs []int64
	// Schedule is the decoding schedule name.
	Schedule string
	// NumSteps is the number of decoding steps.
	NumSteps int
	// Temperature is the sampling temperature.
	Temperature float64
	// TopP is the nucleus sampling threshold.
	TopP float64
	// ConditionOnCoordinatesOnly restricts conditioning to the
	// coordinates track, ignoring other structure inputs.
	ConditionOnCoordinatesOnly bool
}

// NewGenerationConfig returns a GenerationConfig for the given track
// with the service defaults.
func NewGenerationConfig(track string) GenerationConfig {
	return GenerationConfig{
		Track:       track,
		Schedule:    "cosine",
		NumSteps:    1,
		Temperature: 1.0,
		TopP:        1.0,
	}
}

// SamplingTrackConfig holds per-track sampling settings for
// forward_and_sample. A nil *SamplingTrackConfig means the track is
// not sampled and its wire entry is an explicit null.
type SamplingTrackConfig struct {
	// Temperature is the sampling temperature.
	Temperature float64
	// TopP is the nucleus sampling threshold.
	TopP float64
	// OnlySampleMaskedTokens restricts sampling to masked positions.
	OnlySampleMaskedTokens bool
	// InvalidIDs are token ids the sampler must not emit.
	InvalidIDs []int64
	// TopKLogprobs is the number of top-k log-probabilities to return.
	TopKLogprobs int
}

// NewSamplingTrackConfig returns a SamplingTrackConfig with the
// service defaults.
func NewSamplingTrackConfig() *SamplingTrackConfig {
	return &SamplingTrackConfig{
		Temperature:            1.0,
		TopP:                   1.0,
		OnlySampleMaskedTokens: true,
	}
}

// SamplingConfig configures forward_and_sample across the five
// categorical tracks. Unset tracks are sent as explicit nulls.
//
// The embedding-return options are accepted for interface
// compatibility but are not supported by this transport: requesting
// them degrades to a warning, never an error.
type SamplingConfig struct {
	Sequence           *SamplingTrackConfig
	Structure          *SamplingTrackConfig
	SecondaryStructure *SamplingTrackConfig
	SASA               *SamplingTrackConfig
	Function           *SamplingTrackConfig

	ReturnPerResidueEmbeddings bool
	ReturnMeanEmbedding        bool
}
