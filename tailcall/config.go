package tailcall

import (
	"fmt"
	"io"
	"io/ioutil"
	"runtime"

	"github.com/giltho/CompCert/rtl"
	"gopkg.in/yaml.v3"
)

// DefaultBound is the default number of instructions
// the epilogue recognizer follows.
const DefaultBound = 5

// DefaultConfigFile is the file name written by the CLI init command.
const DefaultConfigFile = ".rtltail.yaml"

type Config struct {
	// Bound is the number of instructions the epilogue recognizer follows.
	Bound int `yaml:"bound"`
	// MaxRegArgs is the number of arguments passed in registers
	// by DefaultABI.
	MaxRegArgs int `yaml:"max_reg_args"`
	// Workers limits the number of functions
	// transformed concurrently by TransformConcurrent.
	Workers int `yaml:"workers"`

	// ABI decides whether a call's signature permits a tail call.
	// If nil, DefaultABI{MaxRegArgs} is used.
	ABI ABI `yaml:"-"`
	// Trace, if non-nil, receives a line for each call considered.
	Trace io.Writer `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Bound:      DefaultBound,
		MaxRegArgs: 8,
		Workers:    runtime.GOMAXPROCS(0),
	}
}

func (cfg Config) abi() ABI {
	if cfg.ABI != nil {
		return cfg.ABI
	}
	return DefaultABI{MaxRegArgs: cfg.MaxRegArgs}
}

func (cfg Config) validate() error {
	switch {
	case cfg.Bound < 0:
		return fmt.Errorf("bound must be non-negative, got %d", cfg.Bound)
	case cfg.MaxRegArgs < 0:
		return fmt.Errorf("max_reg_args must be non-negative, got %d", cfg.MaxRegArgs)
	case cfg.Workers < 0:
		return fmt.Errorf("workers must be non-negative, got %d", cfg.Workers)
	}
	return nil
}

// ParseConfig parses a YAML configuration.
// Fields missing from the YAML keep their DefaultConfig values.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// MarshalConfig returns the YAML encoding of a configuration.
func MarshalConfig(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// An ABI decides which calls may become tail calls.
type ABI interface {
	// TailcallSafe returns whether a call with signature callee,
	// made from a function with signature caller,
	// can reuse the caller's frame.
	TailcallSafe(callee, caller rtl.Signature) bool
}

// DefaultABI passes the first MaxRegArgs arguments in registers
// and the rest on the caller's stack.
type DefaultABI struct {
	MaxRegArgs int
}

// TailcallSafe returns true if no argument of the callee
// is passed in the caller's outgoing stack area
// and the callee returns the caller's result type.
func (abi DefaultABI) TailcallSafe(callee, caller rtl.Signature) bool {
	return !callee.Varargs && len(callee.Args) <= abi.MaxRegArgs && callee.Res == caller.Res
}
