package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cribinfo/internal/config"
	"cribinfo/internal/model"
	"cribinfo/internal/observability/logging"
	"cribinfo/internal/provider"
	"cribinfo/internal/repository"
	"cribinfo/internal/service"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "seeder",
		Usage: "load property listings and backfill embeddings",
		Commands: []*cli.Command{
			{
				Name:  "setup",
				Usage: "apply the database schema",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "schema", Usage: "schema SQL file", Value: "migrations/schema.sql"},
				},
				Action: runSetup,
			},
			{
				Name:  "load",
				Usage: "load properties from a CSV file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "CSV file path", Required: true},
					&cli.StringFlag{Name: "city", Usage: "city the listings belong to", Required: true},
				},
				Action: runLoad,
			},
			{
				Name:  "embed",
				Usage: "compute embeddings for properties that lack one",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "city", Usage: "city to backfill", Required: true},
				},
				Action: runEmbed,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRepo(cfg *config.Config) (*repository.PostgresRepository, error) {
	return repository.NewPostgresRepository(
		cfg.PostgresDSN(),
		cfg.Postgres.MaxConnections,
		cfg.Postgres.MaxIdleConnections,
	)
}

func runSetup(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewJSONLogger("seeder", cfg.Logging.Level)

	repo, err := newRepo(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	schema, err := os.ReadFile(c.String("schema"))
	if err != nil {
		return err
	}
	if err := repo.ApplySchema(c.Context, string(schema)); err != nil {
		return err
	}

	logger.Info("schema applied", "file", c.String("schema"))
	return nil
}

// CSV columns: title, area, bhk, sqft, bathrooms, price_lakhs, amenities,
// latitude, longitude. Amenities are |-separated. Empty cells mean unknown.
func runLoad(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewJSONLogger("seeder", cfg.Logging.Level)

	repo, err := newRepo(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	f, err := os.Open(c.String("file"))
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}

	city := strings.ToLower(c.String("city"))
	loaded := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}

		p := recordToProperty(record, col, city)
		if err := repo.Create(c.Context, &p); err != nil {
			return err
		}
		loaded++
		if loaded%100 == 0 {
			logger.Info("loading", "count", loaded)
		}
	}

	logger.Info("load complete", "city", city, "count", loaded)
	return nil
}

func recordToProperty(record []string, col map[string]int, city string) model.Property {
	cell := func(name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	p := model.Property{
		ID:   uuid.New(),
		City: city,
	}
	if v := cell("title"); v != "" {
		p.Title = &v
	}
	if v := cell("area"); v != "" {
		p.Area = &v
	}
	p.BHK = parseIntPtr(cell("bhk"))
	p.Sqft = parseIntPtr(cell("sqft"))
	p.Bathrooms = parseIntPtr(cell("bathrooms"))
	p.PriceLakhs = parseFloatPtr(cell("price_lakhs"))
	p.Latitude = parseFloatPtr(cell("latitude"))
	p.Longitude = parseFloatPtr(cell("longitude"))

	if v := cell("amenities"); v != "" {
		amenities := pq.StringArray{}
		for _, a := range strings.Split(v, "|") {
			if a = strings.TrimSpace(a); a != "" {
				amenities = append(amenities, a)
			}
		}
		p.Amenities = amenities
	}
	return p
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func runEmbed(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.NewJSONLogger("seeder", cfg.Logging.Level)

	repo, err := newRepo(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	registry := provider.NewRegistry(cfg, logger)
	embedder := registry.Embedder()

	city := strings.ToLower(c.String("city"))
	properties, err := repo.MissingEmbeddings(c.Context, city)
	if err != nil {
		return err
	}
	logger.Info("backfill starting", "city", city, "pending", len(properties))

	done := 0
	for _, p := range properties {
		if err := embedOne(c.Context, repo, embedder, p); err != nil {
			return err
		}
		done++
		if done%50 == 0 {
			logger.Info("backfill progress", "done", done, "total", len(properties))
		}
	}

	logger.Info("backfill complete", "city", city, "count", done)
	return nil
}

func embedOne(ctx context.Context, repo *repository.PostgresRepository,
	embedder provider.Embedder, p model.Property) error {
	vec, err := embedder.Embed(ctx, service.PropertyText(p))
	if err != nil {
		return err
	}
	return repo.UpdateEmbedding(ctx, p.ID, vec)
}
