package reporters

import (
	"fmt"
	"strings"
)

// Config is the compiled reporter configuration for one run. StandardOut,
// StandardErr and Graphic are singletons; file and custom reporters repeat.
type Config struct {
	Graphic     *GraphicConfig
	StandardOut *ConsoleConfig
	StandardErr *ConsoleConfig
	Files       []FileConfig
	Custom      []CustomConfig
}

// GraphicConfig configures the graphical reporter sink.
type GraphicConfig struct {
	Filters FilterSet
}

// ConsoleConfig configures a standard-out or standard-err sink.
type ConsoleConfig struct {
	Filters FilterSet
}

// FileConfig configures one file sink.
type FileConfig struct {
	Filters  FilterSet
	Filename string
}

// CustomConfig configures one custom sink, resolved by registered name.
type CustomConfig struct {
	Filters FilterSet
	Name    string
}

// compileState tracks which token the compiler expects next.
type compileState int

const (
	scanning compileState = iota
	awaitingFileName
	awaitingCustomName
)

// Compile parses the reporter bucket into a Config. One token is consumed
// per transition: -f and -r move to a state that consumes the following
// token as a file or reporter name; every other recognized flag completes
// in place. An empty bucket compiles to an empty Config.
func Compile(tokens []string) (*Config, error) {
	cfg := &Config{}
	state := scanning
	var pending FilterSet

	for _, tok := range tokens {
		switch state {
		case awaitingFileName:
			cfg.Files = append(cfg.Files, FileConfig{Filters: pending, Filename: tok})
			state = scanning

		case awaitingCustomName:
			cfg.Custom = append(cfg.Custom, CustomConfig{Filters: pending, Name: tok})
			state = scanning

		case scanning:
			switch {
			case strings.HasPrefix(tok, "-g"):
				set, err := parseSinkSuffix(tok, "-g")
				if err != nil {
					return nil, err
				}
				if set.Has(PresentWithoutColor) || set.Has(PresentStackTraces) {
					return nil, fmt.Errorf("presentation letters are not valid for the graphic reporter: %s", tok)
				}
				if cfg.Graphic != nil {
					return nil, fmt.Errorf("only one graphic reporter may be configured, got a second: %s", tok)
				}
				cfg.Graphic = &GraphicConfig{Filters: set}

			case strings.HasPrefix(tok, "-o"):
				set, err := parseSinkSuffix(tok, "-o")
				if err != nil {
					return nil, err
				}
				if cfg.StandardOut != nil {
					return nil, fmt.Errorf("only one standard-out reporter may be configured, got a second: %s", tok)
				}
				cfg.StandardOut = &ConsoleConfig{Filters: set}

			case strings.HasPrefix(tok, "-e"):
				set, err := parseSinkSuffix(tok, "-e")
				if err != nil {
					return nil, err
				}
				if cfg.StandardErr != nil {
					return nil, fmt.Errorf("only one standard-err reporter may be configured, got a second: %s", tok)
				}
				cfg.StandardErr = &ConsoleConfig{Filters: set}

			case strings.HasPrefix(tok, "-f"):
				set, err := parseSinkSuffix(tok, "-f")
				if err != nil {
					return nil, err
				}
				pending = set
				state = awaitingFileName

			case strings.HasPrefix(tok, "-r"):
				set, err := parseSinkSuffix(tok, "-r")
				if err != nil {
					return nil, err
				}
				pending = set
				state = awaitingCustomName

			default:
				return nil, fmt.Errorf("unrecognized reporter argument: %s", tok)
			}
		}
	}

	switch state {
	case awaitingFileName:
		return nil, fmt.Errorf("-f must be followed by a file name")
	case awaitingCustomName:
		return nil, fmt.Errorf("-r must be followed by a reporter name")
	}
	return cfg, nil
}

func parseSinkSuffix(tok, flag string) (FilterSet, error) {
	set, err := ParseConfigSet(strings.TrimPrefix(tok, flag))
	if err != nil {
		return nil, fmt.Errorf("invalid %s configuration %q: %w", flag, tok, err)
	}
	return set, nil
}
