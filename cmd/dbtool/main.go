// Command dbtool prepares the database and issues development tokens.
//
//	dbtool migrate
//	dbtool token -role DELIVERY_PERSON -delivery-person <uuid> -ttl 24h
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"parceltracker/cmd"
	httpin "parceltracker/internal/adapters/in/http"
	"parceltracker/internal/adapters/out/postgres"
	"parceltracker/internal/core/domain/model/kernel"

	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// duplicateDatabase is the SQLSTATE of CREATE DATABASE on an existing name.
const duplicateDatabase = "42P04"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: dbtool migrate | token [flags]")
		os.Exit(2)
	}

	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: configs.SlogLevel()}))

	switch os.Args[1] {
	case "migrate":
		err = migrate(context.Background(), configs, logger)
	case "token":
		err = issueToken(configs, os.Args[2:])
	default:
		err = fmt.Errorf("unknown command %q", os.Args[1])
	}
	if err != nil {
		log.Fatal(err)
	}
}

func migrate(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	created, err := createDatabase(ctx, configs)
	if err != nil {
		return err
	}
	if created {
		logger.Info("Database created", "name", configs.DBName)
	}

	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = postgres.Migrate(ctx, gormDB); err != nil {
		return err
	}
	logger.Info("Schema migrated", "name", configs.DBName)
	return nil
}

// createDatabase connects to the maintenance database and creates DBName.
// It reports false when the database already exists.
func createDatabase(ctx context.Context, configs cmd.Config) (bool, error) {
	db, err := sql.Open("postgres", configs.ServerDSN())
	if err != nil {
		return false, err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, "CREATE DATABASE "+pq.QuoteIdentifier(configs.DBName))
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == duplicateDatabase {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create database %s: %w", configs.DBName, err)
	}
	return true, nil
}

func issueToken(configs cmd.Config, args []string) error {
	flags := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := flags.String("sub", "dev", "token subject")
	role := flags.String("role", string(httpin.RoleAdmin), "ADMIN, MANAGER or DELIVERY_PERSON")
	deliveryPerson := flags.String("delivery-person", "", "delivery person id for DELIVERY_PERSON tokens")
	ttl := flags.Duration("ttl", time.Hour, "token lifetime")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var deliveryPersonID *kernel.UUID
	if *deliveryPerson != "" {
		id, err := kernel.UUIDFromString(*deliveryPerson)
		if err != nil {
			return err
		}
		deliveryPersonID = &id
	}

	token, err := httpin.NewAuthenticator(configs.JWTSecret).Issue(*subject, httpin.Role(*role), deliveryPersonID, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
