package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/cruciblebio/crucible-go/cli/config"
	"github.com/cruciblebio/crucible-go/crucible"
	"github.com/cruciblebio/crucible-go/transcript"
)

// newClient builds a crucible client from the config file (if any)
// with flag overrides applied on top.
func newClient(c *cli.Context) (*crucible.Client, error) {
	cfg := &config.Config{}
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	model := firstNonEmpty(c.String("model"), cfg.Model)
	token := firstNonEmpty(c.String("token"), cfg.Token)

	var opts []crucible.Option
	if base := firstNonEmpty(c.String("base-url"), cfg.BaseURL); base != "" {
		opts = append(opts, crucible.WithBaseURL(base))
	}
	if t := c.Duration("timeout"); t > 0 {
		opts = append(opts, crucible.WithTimeout(t))
	} else if cfg.Timeout.Duration > 0 {
		opts = append(opts, crucible.WithTimeout(cfg.Timeout.Duration))
	}
	if cfg.Transcript != "" {
		rec, err := transcript.NewRecorder(cfg.Transcript)
		if err != nil {
			return nil, err
		}
		opts = append(opts, crucible.WithTranscript(rec))
	}

	return crucible.New(model, token, opts...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
