// Command backup drives pg_dump and pg_restore for the office database.
// Credentials travel through the child's environment and argument vector
// only; no command line is ever handed to a shell.
package main

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"insurance-office/internal/config"
	"insurance-office/internal/infrastructure/logging"

	"github.com/urfave/cli/v2"
)

const timestampLayout = "20060102T150405"

func main() {
	app := &cli.App{
		Name:  "insurance-backup",
		Usage: "back up and restore the insurance office database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: ".",
				Usage: "directory containing config.yml",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "write a timestamped pg_dump archive to the backup directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Usage: "override the configured backup directory",
					},
				},
				Action: runCreate,
			},
			{
				Name:      "restore",
				Usage:     "restore a pg_dump archive into the configured database",
				ArgsUsage: "<archive>",
				Action:    runRestore,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadEnvironment(c *cli.Context) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := logging.NewLogger(cfg.Logger).With(slog.String("component", "backup"))
	return cfg, logger, nil
}

// connectionArgs splits a postgres URL into pg_dump/pg_restore arguments plus
// a child environment carrying the password.
func connectionArgs(databaseURL string) (args []string, env []string, dbName string, err error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return nil, nil, "", fmt.Errorf("database URL is not parseable: %w", err)
	}
	dbName = filepath.Base(u.Path)
	if dbName == "." || dbName == "/" || dbName == "" {
		return nil, nil, "", fmt.Errorf("database URL carries no database name")
	}

	args = []string{"--host", u.Hostname(), "--dbname", dbName}
	if port := u.Port(); port != "" {
		args = append(args, "--port", port)
	}

	env = os.Environ()
	if u.User != nil {
		if username := u.User.Username(); username != "" {
			args = append(args, "--username", username)
		}
		if password, ok := u.User.Password(); ok {
			env = append(env, "PGPASSWORD="+password)
		}
	}
	return args, env, dbName, nil
}

func runCreate(c *cli.Context) error {
	cfg, logger, err := loadEnvironment(c)
	if err != nil {
		return err
	}

	dir := c.String("dir")
	if dir == "" {
		dir = cfg.Backup.Directory
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create backup directory %s: %w", dir, err)
	}

	connArgs, env, dbName, err := connectionArgs(cfg.Database.URL)
	if err != nil {
		return err
	}

	target := filepath.Join(dir, fmt.Sprintf("%s_%s.dump", dbName, time.Now().Format(timestampLayout)))

	args := append([]string{"--format=custom", "--file", target}, connArgs...)
	cmd := exec.CommandContext(c.Context, "pg_dump", args...)
	cmd.Env = env
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Info("Starting backup", slog.String("database", dbName), slog.String("target", target))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pg_dump failed: %w", err)
	}
	logger.Info("Backup complete", slog.String("target", target))
	return nil
}

func runRestore(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("restore takes exactly one archive path")
	}
	archive := c.Args().First()
	if _, err := os.Stat(archive); err != nil {
		return fmt.Errorf("archive is not readable: %w", err)
	}

	cfg, logger, err := loadEnvironment(c)
	if err != nil {
		return err
	}

	connArgs, env, dbName, err := connectionArgs(cfg.Database.URL)
	if err != nil {
		return err
	}

	args := append([]string{"--clean", "--if-exists"}, connArgs...)
	args = append(args, archive)
	cmd := exec.CommandContext(c.Context, "pg_restore", args...)
	cmd.Env = env
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Info("Starting restore", slog.String("database", dbName), slog.String("archive", archive))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pg_restore failed: %w", err)
	}
	logger.Info("Restore complete", slog.String("database", dbName))
	return nil
}
