// Package config loads process configuration from the environment and the
// genesis file that fixes the contract owner and launch tunables.
package config
