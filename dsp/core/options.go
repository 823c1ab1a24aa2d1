package core

// ProcessorConfig defines common sample-stream settings.
type ProcessorConfig struct {
	SampleRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns sensible defaults for sensor-rate streams.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 100,
	}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// NodeConfig holds the settings shared by every graph node.
type NodeConfig struct {
	// Name labels the node in diagnostics. Empty means the node kind.
	Name string
}

// NodeOption mutates a NodeConfig.
type NodeOption func(*NodeConfig)

// WithName sets the diagnostic name of a node.
func WithName(name string) NodeOption {
	return func(cfg *NodeConfig) {
		cfg.Name = name
	}
}

// ApplyNodeOptions applies zero or more options to an empty NodeConfig.
func ApplyNodeOptions(opts ...NodeOption) NodeConfig {
	var cfg NodeConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
