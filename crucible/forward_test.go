package crucible

import (
	"bytes"
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cruciblebio/crucible-go/log"
	"github.com/cruciblebio/crucible-go/types"
)

// forwardBody samples only the sequence track; every other track is
// null.
const forwardBody = `{
	"sequence": {
		"tokens": [4, 5, 6],
		"logprobs": [-0.1, -0.5, -1.0],
		"entropy": [0.2, 0.4, 0.6],
		"topk_logprobs": [[-0.1, -2.0], [-0.5, -1.5], [-1.0, -1.2]],
		"topk_tokens": [[4, 9], [5, 11], [6, 13]]
	},
	"structure": null,
	"secondary_structure": null,
	"sasa": null,
	"function": null
}`

func TestForwardAndSample(t *testing.T) {
	var gotReq map[string]any
	ts := httptest.NewServer(jsonHandler(t, http.StatusOK, forwardBody, &gotReq))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	cfg := types.SamplingConfig{Sequence: types.NewSamplingTrackConfig()}
	out, err := c.ForwardAndSample(context.Background(), &types.ProteinTensor{Sequence: []int64{4, 5, 6}}, cfg)
	if err != nil {
		t.Fatalf("forward_and_sample: %v", err)
	}

	if len(out.ProteinTensor.Sequence) != 3 || out.ProteinTensor.Sequence[0] != 4 {
		t.Errorf("unexpected sampled tokens: %v", out.ProteinTensor.Sequence)
	}
	if out.ProteinTensor.Structure != nil {
		t.Error("null track should yield no tokens")
	}

	// prob = exp(logprob) element-wise wherever logprob is present.
	for i, lp := range out.Logprob.Sequence {
		want := math.Exp(lp)
		if math.Abs(out.Prob.Sequence[i]-want) > 1e-12 {
			t.Errorf("prob[%d]: expected %v, got %v", i, want, out.Prob.Sequence[i])
		}
	}
	if out.Logprob.Structure != nil || out.Prob.Structure != nil {
		t.Error("absent logprob must stay absent, never exponentiated")
	}

	if len(out.Entropy.Sequence) != 3 {
		t.Errorf("unexpected entropy: %v", out.Entropy.Sequence)
	}
	if len(out.TopkLogprob.Sequence) != 3 || len(out.TopkLogprob.Sequence[0]) != 2 {
		t.Errorf("unexpected topk logprobs: %v", out.TopkLogprob.Sequence)
	}
	if out.TopkTokens.Sequence[1][1] != 11 {
		t.Errorf("unexpected topk tokens: %v", out.TopkTokens.Sequence)
	}

	// The request carries an explicit entry for all five tracks:
	// a config object for sequence, null for the rest.
	samplingConfig, _ := gotReq["sampling_config"].(map[string]any)
	if len(samplingConfig) != 5 {
		t.Fatalf("expected 5 sampling_config entries, got %v", samplingConfig)
	}
	if samplingConfig["structure"] != nil {
		t.Errorf("unset track should be explicit null, got %v", samplingConfig["structure"])
	}
	seqCfg, _ := samplingConfig["sequence"].(map[string]any)
	if seqCfg["only_sample_masked_tokens"] != true {
		t.Errorf("unexpected sequence sampling config: %v", seqCfg)
	}

	// embedding_config is always carried as null.
	if v, present := gotReq["embedding_config"]; !present || v != nil {
		t.Errorf("expected explicit null embedding_config, got %v", gotReq["embedding_config"])
	}
}

func TestForwardAndSample_EmbeddingRequestWarnsAndSucceeds(t *testing.T) {
	ts := httptest.NewServer(jsonHandler(t, http.StatusOK, forwardBody, nil))
	defer ts.Close()

	var buf bytes.Buffer
	logger := log.NewLogger("test-model", ts.URL).WithOutput(&buf)
	c, err := New("test-model", "test-token",
		WithBaseURL(ts.URL),
		WithLogger(logger),
		WithTimeout(5*time.Second),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	cfg := types.SamplingConfig{
		Sequence:            types.NewSamplingTrackConfig(),
		ReturnMeanEmbedding: true,
	}
	out, err := c.ForwardAndSample(context.Background(), &types.ProteinTensor{Sequence: []int64{4, 5, 6}}, cfg)
	if err != nil {
		t.Fatalf("call should succeed despite unsupported embedding request: %v", err)
	}

	if !strings.Contains(buf.String(), "not supported") {
		t.Error("expected a warning about unsupported embedding outputs")
	}

	// Degradation is silent beyond the warning: the bundles still hold.
	for i, lp := range out.Logprob.Sequence {
		if math.Abs(out.Prob.Sequence[i]-math.Exp(lp)) > 1e-12 {
			t.Errorf("prob[%d] should equal exp(logprob)", i)
		}
	}
}

func TestForwardAndSample_TransportFailurePropagates(t *testing.T) {
	ts := httptest.NewServer(jsonHandler(t, http.StatusServiceUnavailable, "busy", nil))
	defer ts.Close()

	c := newTestClient(t, ts.URL)
	_, err := c.ForwardAndSample(context.Background(), &types.ProteinTensor{Sequence: []int64{4}}, types.SamplingConfig{})
	if err == nil {
		t.Fatal("expected transport failure to propagate")
	}
}
