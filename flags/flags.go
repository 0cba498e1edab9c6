package flags

import (
	"github.com/urfave/cli/v2"

	opservice "github.com/ethereum-optimism/optimism/op-service"
	oplog "github.com/ethereum-optimism/optimism/op-service/log"
)

const EnvVarPrefix = "SPECRUN"

var (
	DefaultsFile = &cli.StringFlag{
		Name:    "defaults",
		Value:   "",
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "DEFAULTS"),
		Usage:   "Path to a YAML file of default argument tokens prepended to the argument vector",
	}
	RunInterval = &cli.DurationFlag{
		Name:    "run-interval",
		Value:   0,
		EnvVars: opservice.PrefixEnvVar(EnvVarPrefix, "RUN_INTERVAL"),
		Usage:   "Interval between runs (e.g. '1h', '30m'). Set to 0 or omit for run-once mode.",
	}
)

var optionalFlags = []cli.Flag{
	DefaultsFile,
	RunInterval,
}

var Flags []cli.Flag

func init() {
	optionalFlags = append(optionalFlags, oplog.CLIFlags(EnvVarPrefix)...)

	Flags = optionalFlags
}
