package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/driftdev/drift/internal/compiler"
	"github.com/driftdev/drift/internal/config"
	"github.com/driftdev/drift/internal/entrypoints"
	"github.com/driftdev/drift/internal/logging"
	"github.com/driftdev/drift/internal/reload"
	"github.com/driftdev/drift/internal/watcher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var devCmd = &cobra.Command{
	Use:     "dev",
	Aliases: []string{"d"},
	Short:   "Compile the plan and keep it fresh while you develop",
	Long: `Compile the execution plan, watch the configuration file, and recompile
the plan wholesale whenever it changes. Connected dev clients are notified
over WebSocket at /_drift/reload; the current plan is served as JSON at
/_drift/plan for the serving engine and for debugging.`,
	RunE: runDev,
}

func init() {
	rootCmd.AddCommand(devCmd)

	devCmd.Flags().Int("port", 0, "override the dev endpoint port")
	viper.BindPFlag("dev.port", devCmd.Flags().Lookup("port"))
}

func runDev(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stderr,
	}).WithComponent("dev")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	plan, err := compilePlan(cfg)
	if err != nil {
		return fmt.Errorf("failed to compile plan: %w", err)
	}

	var current atomic.Pointer[compiler.Plan]
	current.Store(plan)
	logger.Info(ctx, "plan compiled", "scripts", len(plan.Scripts), "entrypoints", len(plan.KnownEntrypoints))

	broadcaster := reload.NewBroadcaster()

	// Recompile wholesale on config change; the old plan is discarded and
	// the new one swapped in atomically.
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		configWatcher, err := watcher.NewConfigWatcher(200 * time.Millisecond)
		if err != nil {
			return fmt.Errorf("failed to create config watcher: %w", err)
		}
		defer configWatcher.Close()

		// Watch the directory: editors replace files on save, which would
		// otherwise drop the watch on the file itself.
		if err := configWatcher.AddPath(filepath.Dir(configFile)); err != nil {
			return fmt.Errorf("failed to watch config: %w", err)
		}

		configWatcher.AddHandler(func(paths []string) {
			if !containsPath(paths, configFile) {
				return
			}
			if err := viper.ReadInConfig(); err != nil {
				logger.Error(ctx, err, "config reload failed")
				return
			}
			freshCfg, err := config.Load()
			if err != nil {
				logger.Error(ctx, err, "config reload failed")
				return
			}
			freshPlan, err := compilePlan(freshCfg)
			if err != nil {
				logger.Error(ctx, err, "plan recompilation failed, keeping previous plan")
				return
			}
			current.Store(freshPlan)
			logger.Info(ctx, "plan recompiled", "scripts", len(freshPlan.Scripts))
			broadcaster.Broadcast(ctx, reload.Event{Type: "plan-swap", Scripts: len(freshPlan.Scripts)})
		})

		go configWatcher.Start(ctx)
	}

	mux := http.NewServeMux()
	mux.Handle("/_drift/reload", broadcaster)
	mux.HandleFunc("/_drift/plan", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"scripts":           planRows(current.Load()),
			"known_entrypoints": current.Load().KnownEntrypoints,
		})
	})

	server := &http.Server{
		Addr:    fmt.Sprintf("localhost:%d", cfg.Dev.Port),
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Info(ctx, "dev endpoints listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// compilePlan compiles once, scans the mounted directories for HTML
// entrypoints, and recompiles with the discovered entrypoints merged in. The
// compiler itself stays free of file I/O.
func compilePlan(cfg *config.Config) (*compiler.Plan, error) {
	input := cfg.CompilerInput(newRegistry())

	plan, err := compiler.Compile(input)
	if err != nil {
		return nil, err
	}

	discovered := scanMountEntrypoints(plan)
	if len(discovered) == 0 {
		return plan, nil
	}

	input = cfg.CompilerInput(newRegistry())
	input.KnownEntrypoints = append(input.KnownEntrypoints, discovered...)
	return compiler.Compile(input)
}

// scanMountEntrypoints reads index.html from each user-declared mount and
// extracts local <script src> references.
func scanMountEntrypoints(plan *compiler.Plan) []string {
	var found []string
	for _, script := range plan.Scripts {
		if script.Type != compiler.ScriptMount || script.Mount == nil {
			continue
		}
		if script.ID == compiler.WebModulesScriptID {
			continue
		}

		file, err := os.Open(filepath.Join(script.Mount.FromDisk, "index.html"))
		if err != nil {
			continue
		}
		eps, err := entrypoints.ScanHTML(file)
		file.Close()
		if err != nil {
			continue
		}
		found = append(found, eps...)
	}
	return found
}

func containsPath(paths []string, target string) bool {
	cleanTarget := filepath.Clean(target)
	for _, p := range paths {
		if filepath.Clean(p) == cleanTarget {
			return true
		}
	}
	return false
}
