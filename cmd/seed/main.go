package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Initialize and seed the panela database",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Create the database schema",
				Flags:  []cli.Flag{newDBURLFlag()},
				Action: runInit,
			},
			{
				Name:   "master",
				Usage:  "Seed master data (users, suppliers, supplies, purchases)",
				Flags:  []cli.Flag{newDBURLFlag()},
				Action: runMaster,
			},
			{
				Name:  "demo",
				Usage: "Seed demo lots and sales spread over recent months",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.IntFlag{
						Name:  "months",
						Usage: "How many months back to spread demo data over",
						Value: 6,
					},
				},
				Action: runDemo,
			},
			{
				Name:  "all",
				Usage: "Run init, master and demo in order",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.IntFlag{Name: "months", Value: 6},
				},
				Action: func(c *cli.Context) error {
					if err := runInit(c); err != nil {
						return err
					}
					if err := runMaster(c); err != nil {
						return err
					}
					return runDemo(c)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDB(c *cli.Context) (*sql.DB, error) {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func runInit(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	log.Println("Creating schema...")
	if _, err := db.ExecContext(context.Background(), schemaDDL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	log.Println("Schema created")
	return nil
}

func runMaster(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	log.Println("Seeding master data...")
	if err := seedMasterData(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Println("Master data seeded")
	return nil
}

func runDemo(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	log.Println("Seeding demo lots and sales...")
	if err := seedDemoData(ctx, tx, c.Int("months")); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Println("Demo data seeded")
	return nil
}
