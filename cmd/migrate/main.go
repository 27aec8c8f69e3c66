// Command migrate applies the versioned SQL files under migrations/ with the
// atlas CLI, which must be on PATH.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"parcel-registry/internal/handler/middleware"
	"parcel-registry/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the migration files and atlas.sum")
	dryRun := flag.Bool("dry-run", false, "print pending statements without executing them")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	var logCfg config.LogConfig
	if err := envconfig.Process("", &logCfg); err != nil {
		slog.Error("failed to load log config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(logCfg)

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		logger.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	cmd := "apply"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, logger, cmd, *dir, *atlasBin, atlasURL(dbCfg), *dryRun); err != nil {
		logger.Error("migration failed", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, cmd, dir, atlasBin, dbURL string, dryRun bool) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return fmt.Errorf("failed to prepare working dir: %w", err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return fmt.Errorf("failed to create atlas client: %w", err)
	}

	switch cmd {
	case "apply":
		res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
			URL:    dbURL,
			DryRun: dryRun,
		})
		if err != nil {
			return err
		}
		logger.Info("migrations applied",
			"applied", len(res.Applied),
			"current", res.Current,
			"target", res.Target,
			"dry_run", dryRun)
	case "status":
		res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: dbURL})
		if err != nil {
			return err
		}
		logger.Info("migration status",
			"status", res.Status,
			"current", res.Current,
			"next", res.Next,
			"pending", len(res.Pending))
	default:
		return fmt.Errorf("unknown command %q (want apply or status)", cmd)
	}
	return nil
}

// atlasURL leaves out the timezone parameter the pool DSN carries; the
// migration files don't depend on the session zone.
func atlasURL(c config.DBConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}
