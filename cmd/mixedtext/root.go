package main

import (
	"github.com/npillmayer/mixedtext"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app holds the objects shared by all sub-commands.
type app struct {
	traceLevel string
	parser     *mixedtext.Parser
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mixedtext",
		Short: "Segment and display text mixing Arabic, Urdu and Latin script",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupTracing()
			a.parser = mixedtext.NewParser(mixedtext.ConfigFrom(flagConfig{cmd.Flags()}))
		},
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.traceLevel, "trace", "Error", "trace level (Error, Info, Debug)")
	pf.Int(flagCacheMax, 0, "maximum number of cached texts")
	pf.Int(flagCacheEvict, 0, "number of cached texts evicted at once")
	pf.Int(flagAsyncThreshold, 0, "texts with more characters are parsed asynchronously")
	root.AddCommand(newLinesCmd(a), newSegmentsCmd(a), newExplainCmd(a))
	return root
}

func (a *app) setupTracing() {
	tracer := gologadapter.New()
	tracer.SetTraceLevel(tracing.TraceLevelFromString(a.traceLevel))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
}

// --- Configuration from command line flags ---------------------------------

const (
	flagCacheMax       = "cache-max"
	flagCacheEvict     = "cache-evict"
	flagAsyncThreshold = "async-threshold"
)

var flagForKey = map[string]string{
	mixedtext.KeyCacheMax:       flagCacheMax,
	mixedtext.KeyCacheEvict:     flagCacheEvict,
	mixedtext.KeyAsyncThreshold: flagAsyncThreshold,
}

// flagConfig is a schuko.Configuration reading values from command line flags.
type flagConfig struct {
	flags *pflag.FlagSet
}

var _ schuko.Configuration = flagConfig{}

func (fc flagConfig) InitDefaults() {}

func (fc flagConfig) IsSet(key string) bool {
	name, ok := flagForKey[key]
	return ok && fc.flags.Changed(name)
}

func (fc flagConfig) GetString(key string) string {
	if !fc.IsSet(key) {
		return ""
	}
	return fc.flags.Lookup(flagForKey[key]).Value.String()
}

func (fc flagConfig) GetInt(key string) int {
	if !fc.IsSet(key) {
		return 0
	}
	n, err := fc.flags.GetInt(flagForKey[key])
	if err != nil {
		return 0
	}
	return n
}

func (fc flagConfig) GetBool(key string) bool {
	return fc.GetString(key) == "true"
}

func (fc flagConfig) IsInteractive() bool { return false }
