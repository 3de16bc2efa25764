package main

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/strview/codec"
	"github.com/wippyai/strview/config"
	"github.com/wippyai/strview/view"
)

// app carries the state shared by all subcommands once flags are parsed.
type app struct {
	out    io.Writer
	cfg    *config.Config
	view   *view.View
	log    *zap.Logger
	faults int

	configPath string
	encoding   string
	logLevel   string
	styled     bool
}

func newRootCmd(out io.Writer, styled bool) *cobra.Command {
	a := &app{out: out, styled: styled}

	root := &cobra.Command{
		Use:           "strview",
		Short:         "Encode and decode text in fixed-size byte buffers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVarP(&a.encoding, "encoding", "e", "", "encoding name (default from config, else UTF-8)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newLengthCmd(a),
		newEncodingsCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("encoding") {
		cfg.Encoding = a.encoding
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	v, err := cfg.NewView(logger, view.WithObserver(view.ObserverFunc(func(view.Event) {
		a.faults++
	})))
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger
	a.view = v
	return nil
}

func (a *app) enc() codec.Encoding {
	return a.cfg.DefaultEncoding()
}
