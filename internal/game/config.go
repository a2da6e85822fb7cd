package game

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/feltworks/pokertable/internal/eval"
)

// Config holds the rules for one table.
type Config struct {
	Variant        eval.Variant
	SmallBlind     int
	BigBlind       int
	MinPlayers     int
	MaxPlayers     int
	BuyIn          int
	TurnTimeoutSec int
	LowQualifier   int
}

// configFile is the root HCL document: one or more table blocks.
type configFile struct {
	Tables []tableBlock `hcl:"table,block"`
}

type tableBlock struct {
	Name           string `hcl:"name,label"`
	Variant        string `hcl:"variant,optional"`
	SmallBlind     int    `hcl:"small_blind"`
	BigBlind       int    `hcl:"big_blind"`
	MinPlayers     int    `hcl:"min_players,optional"`
	MaxPlayers     int    `hcl:"max_players,optional"`
	BuyIn          int    `hcl:"buy_in,optional"`
	TurnTimeoutSec int    `hcl:"turn_timeout_seconds,optional"`
	LowQualifier   int    `hcl:"low_qualifier,optional"`
}

func (b tableBlock) toConfig() Config {
	return Config{
		Variant:        eval.Variant(b.Variant),
		SmallBlind:     b.SmallBlind,
		BigBlind:       b.BigBlind,
		MinPlayers:     b.MinPlayers,
		MaxPlayers:     b.MaxPlayers,
		BuyIn:          b.BuyIn,
		TurnTimeoutSec: b.TurnTimeoutSec,
		LowQualifier:   b.LowQualifier,
	}
}

// DefaultConfig returns a playable heads-up-capable no-limit hold'em
// configuration.
func DefaultConfig() Config {
	return Config{
		Variant:        eval.TexasHoldem,
		SmallBlind:     5,
		BigBlind:       10,
		MinPlayers:     2,
		MaxPlayers:     9,
		BuyIn:          1000,
		TurnTimeoutSec: 30,
		LowQualifier:   eval.DefaultLowQualifier,
	}
}

// normalize fills zero-valued optional fields with defaults.
func (c Config) normalize() Config {
	def := DefaultConfig()
	if c.Variant == "" {
		c.Variant = def.Variant
	}
	if c.MinPlayers == 0 {
		c.MinPlayers = def.MinPlayers
	}
	if c.MaxPlayers == 0 {
		c.MaxPlayers = def.MaxPlayers
	}
	if c.BuyIn == 0 {
		c.BuyIn = def.BuyIn
	}
	if c.TurnTimeoutSec == 0 {
		c.TurnTimeoutSec = def.TurnTimeoutSec
	}
	if c.LowQualifier == 0 {
		c.LowQualifier = def.LowQualifier
	}
	return c
}

// Validate checks the configuration for contradictions.
func (c Config) Validate() error {
	if c.SmallBlind <= 0 || c.BigBlind <= 0 {
		return fmt.Errorf("blinds must be positive, got %d/%d", c.SmallBlind, c.BigBlind)
	}
	if c.SmallBlind > c.BigBlind {
		return fmt.Errorf("small blind %d exceeds big blind %d", c.SmallBlind, c.BigBlind)
	}
	if c.MinPlayers < 2 {
		return fmt.Errorf("min_players must be at least 2, got %d", c.MinPlayers)
	}
	if c.MaxPlayers < c.MinPlayers {
		return fmt.Errorf("max_players %d below min_players %d", c.MaxPlayers, c.MinPlayers)
	}
	if _, err := eval.New(c.Variant); err != nil {
		return err
	}
	return nil
}

// LoadConfigs loads table configurations from an HCL file. A missing
// file yields a single default table.
func LoadConfigs(filename string) (map[string]Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return map[string]Config{"main": DefaultConfig()}, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config: %s", diags.Error())
	}

	var root configFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	configs := make(map[string]Config, len(root.Tables))
	for _, tbl := range root.Tables {
		cfg := tbl.toConfig().normalize()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("table %q: %w", tbl.Name, err)
		}
		configs[tbl.Name] = cfg
	}
	if len(configs) == 0 {
		configs["main"] = DefaultConfig()
	}

	return configs, nil
}
