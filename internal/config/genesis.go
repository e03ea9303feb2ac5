package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-economy/internal/entities"
	"github.com/KirkDiggler/rpg-economy/internal/errors"
)

// Genesis fixes the contract owner and the launch tunables. Values come
// from the YAML file, then the environment, then the defaults.
type Genesis struct {
	Owner         string `yaml:"owner" env:"ECONOMY_OWNER"`
	EvolutionCost uint64 `yaml:"evolution_cost" env:"ECONOMY_EVOLUTION_COST"`
	DungeonReward uint64 `yaml:"dungeon_reward" env:"ECONOMY_DUNGEON_REWARD"`
}

// LoadGenesis reads path (optional) and applies environment overrides
func LoadGenesis(path string) (Genesis, error) {
	g := Genesis{
		EvolutionCost: entities.DefaultEvolutionCost,
		DungeonReward: entities.DefaultDungeonReward,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Genesis{}, errors.Wrapf(err, "read genesis %s", path)
		}
		if err := yaml.Unmarshal(data, &g); err != nil {
			return Genesis{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse genesis "+path)
		}
	}

	if err := env.Parse(&g); err != nil {
		return Genesis{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse genesis overrides")
	}

	if err := g.Validate(); err != nil {
		return Genesis{}, err
	}
	return g, nil
}

// Validate requires an owner
func (g Genesis) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("owner", g.Owner, vb)
	return vb.Build()
}

// Principal returns the owner identity
func (g Genesis) Principal() entities.Principal {
	return entities.Principal(g.Owner)
}

// Params returns the launch tunables
func (g Genesis) Params() entities.Params {
	return entities.Params{
		EvolutionCost: g.EvolutionCost,
		DungeonReward: g.DungeonReward,
	}
}
