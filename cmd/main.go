package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/honeycombio/otel-config-go/otelconfig"
	"github.com/urfave/cli/v2"

	specrun "github.com/specrun/specrun"
	"github.com/specrun/specrun/args"
	"github.com/specrun/specrun/exitcodes"
	"github.com/specrun/specrun/flags"
	"github.com/specrun/specrun/metrics"
	"github.com/specrun/specrun/service"
	"github.com/ethereum-optimism/optimism/op-service/cliapp"
	"github.com/ethereum-optimism/optimism/op-service/ctxinterrupt"
	oplog "github.com/ethereum-optimism/optimism/op-service/log"
)

var (
	Version   = "v0.1.0"
	GitCommit = ""
	GitDate   = ""
)

func main() {
	app := cli.NewApp()
	app.Version = fmt.Sprintf("%s-%s-%s", Version, GitCommit, GitDate)
	app.Name = "specrun"
	app.Usage = "Suite Runner Service"
	app.Description = "specrun classifies a legacy argument vector, compiles its reporter configuration and drives suite runs"
	app.ArgsUsage = "[-- legacy argument vector]"
	app.Flags = cliapp.ProtectFlags(flags.Flags)
	app.Action = cliapp.LifecycleCmd(run)
	app.Commands = []*cli.Command{
		{
			Name:      "validate",
			Usage:     "Dry-validate an argument vector and exit",
			ArgsUsage: "[legacy argument vector]",
			Action:    validate,
		},
	}
	app.ExitErrHandler = func(c *cli.Context, err error) {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			cli.HandleExitCoder(exitErr)
		} else if err != nil {
			if specrun.IsRuntimeError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.RuntimeErr))
			} else if specrun.IsTestFailureError(err) {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.TestFailure))
			} else {
				cli.HandleExitCoder(cli.Exit(err.Error(), exitcodes.TestFailure))
			}
		}
	}

	// Start telemetry
	shutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithServiceName(app.Name),
		otelconfig.WithServiceVersion(app.Version),
	)
	if err != nil {
		log.Crit("Failed to setup open telemetry", "message", err)
	}
	defer shutdown()

	// Start server
	ctx := context.Background()
	svc := service.New()
	svc.Start(ctx)
	defer svc.Shutdown()

	// Start CLI
	ctx = ctxinterrupt.WithSignalWaiterMain(ctx)
	err = app.RunContext(ctx, os.Args)
	if err != nil {
		log.Crit("Application failed", "message", err)
	}
}

func run(ctx *cli.Context, closeApp context.CancelCauseFunc) (cliapp.Lifecycle, error) {
	logCfg := oplog.ReadCLIConfig(ctx)
	logger := oplog.NewLogger(oplog.AppOut(ctx), logCfg)
	oplog.SetGlobalLogHandler(logger.Handler())
	oplog.SetupDefaults()

	cfg, err := specrun.NewConfig(ctx, logger, ctx.Args().Slice())
	if err != nil {
		metrics.RecordValidationError(err)
		// Wrap in RuntimeError to signal this should exit with code 2
		return nil, specrun.NewRuntimeError(fmt.Errorf("failed to create config: %w", err))
	}

	logger.Debug("Config", "argv", cfg.Argv, "suites", cfg.Plan.Suites)

	svc, err := specrun.New(ctx.Context, cfg, Version, closeApp)
	if err != nil {
		return nil, specrun.NewRuntimeError(fmt.Errorf("failed to create service: %w", err))
	}

	return svc, nil
}

// validate runs the eager validity check and reports the diagnostic without
// starting anything.
func validate(ctx *cli.Context) error {
	argv := ctx.Args().Slice()
	if argv == nil {
		argv = []string{}
	}
	if err := args.CheckValidity(argv); err != nil {
		metrics.RecordValidationError(err)
		return cli.Exit(err.Error(), exitcodes.RuntimeErr)
	}
	fmt.Println("argument vector is well-formed")
	return nil
}
