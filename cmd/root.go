package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/baish/quirkeval/internal/eval"
	"github.com/baish/quirkeval/internal/judge"
	"github.com/baish/quirkeval/internal/llm"
	"github.com/baish/quirkeval/internal/quirks"
	"github.com/baish/quirkeval/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quirkeval",
	Short: "Judge-based behavioral quirk evaluation for language models",
	Long: "Quirkeval measures whether a system-prompt quirk reliably changes a model's " +
		"behavior, using a second model as judge and paired stimulus/baseline trials.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Keys are commonly kept in a .env next to the binary; missing
		// file is fine.
		_ = godotenv.Load()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite event log (overrides QUIRKEVAL_DB)")
	rootCmd.PersistentFlags().String("quirk-file", "", "YAML file with additional quirk definitions")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(suiteCmd)
	rootCmd.AddCommand(quirksCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the event log path using --db flag (highest
// priority), then QUIRKEVAL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadRegistry builds the quirk registry: built-ins plus any user file.
func loadRegistry(cmd *cobra.Command) (*quirks.Registry, error) {
	registry := quirks.Builtin()
	if path, _ := cmd.Flags().GetString("quirk-file"); path != "" {
		if err := registry.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// providerConfig resolves the provider config from env, falling back to
// discovery of standard API key variables, with flag overrides applied.
func providerConfig(cmd *cobra.Command) (llm.Config, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return llm.Config{}, fmt.Errorf("no provider configured: %w", err)
		}
		cfg = discovered
	}

	if m, _ := cmd.Flags().GetString("model"); m != "" {
		cfg = cfg.WithModel(m)
	}
	if m, _ := cmd.Flags().GetString("judge-model"); m != "" {
		cfg.JudgeModel = m
	}

	return cfg, cfg.Validate()
}

// buildRunner wires the full evaluation stack: event log, target and
// judge providers, judge, runner.
func buildRunner(cmd *cobra.Command, registry *quirks.Registry) (*eval.Runner, *store.Store, error) {
	ctx := cmd.Context()

	cfg, err := providerConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve event log path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open event log: %w", err)
	}
	eventRepo := st.EventRepo()

	target, err := llm.NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	judgeProvider, err := llm.NewJudgeProvider(ctx, cfg, eventRepo)
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	judgeCfg := judge.DefaultConfig()
	if strict, _ := cmd.Flags().GetBool("strict"); strict {
		judgeCfg.Strict = true
	}

	j := judge.New(judgeProvider, registry, judgeCfg)
	runner := eval.NewRunner(target, j, registry, eval.DefaultConfig())
	return runner, st, nil
}
