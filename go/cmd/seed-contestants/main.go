// seed-contestants loads a season roster YAML file into the roster database.
//
// Usage: seed-contestants <season-file.yaml>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/castdraft/castdraft/go/internal/dbconfig"
	"github.com/jackc/pgx/v5/pgxpool"
	"gopkg.in/yaml.v3"
)

type seasonFile struct {
	ID           string `yaml:"id"`
	SeasonNumber int    `yaml:"season_number"`
	Name         string `yaml:"name"`
	Contestants  []struct {
		ID         int    `yaml:"id"`
		Name       string `yaml:"name"`
		Image      string `yaml:"image"`
		Eliminated bool   `yaml:"eliminated"`
	} `yaml:"contestants"`
}

func main() {
	ctx := context.Background()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: seed-contestants <season-file.yaml>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "read season file: %v\n", err)
		os.Exit(1)
	}
	var season seasonFile
	if err := yaml.Unmarshal(data, &season); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal season: %v\n", err)
		os.Exit(1)
	}

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, `
        INSERT INTO seasons (id, season_number, name)
        VALUES ($1,$2,$3)
        ON CONFLICT (id) DO NOTHING
    `, season.ID, season.SeasonNumber, season.Name); err != nil {
		fmt.Fprintf(os.Stderr, "insert season: %v\n", err)
		os.Exit(1)
	}

	total, inserted, skipped, errs := len(season.Contestants), 0, 0, 0
	for _, c := range season.Contestants {
		tag, err := pool.Exec(ctx, `
            INSERT INTO contestants (season_id, id, name, image, eliminated)
            VALUES ($1,$2,$3,$4,$5)
            ON CONFLICT (season_id, id) DO NOTHING
        `, season.ID, c.ID, c.Name, c.Image, c.Eliminated)
		if err != nil {
			errs++
			continue
		}
		if tag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}
	fmt.Printf(
		"Contestants seed: season=%s total=%d inserted=%d skipped=%d errors=%d\n",
		season.ID, total, inserted, skipped, errs,
	)
}
