//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"appointment-booking/cmd/bootstrap"
	"appointment-booking/cmd/bootstrap/components"
	"appointment-booking/internal/infra/db"
	"appointment-booking/internal/pkg/config"
	"appointment-booking/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	mongoContainerOnce sync.Once
	mongoTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// Environment per store driver
// ------------------------------------------------------------
func setupPostgresEnvironment(t *testing.T) (*pgxpool.Pool, config.Config) {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	info, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to read PostgreSQL container address")

	dbConfig := createDatabase(t, info)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, cleanup, err := db.Connect(ctx, dbConfig)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(cleanup)

	cfg := config.NewTestConfig()
	cfg.Store.Driver = config.StoreDriverPostgres
	cfg.DB = dbConfig
	return pool, cfg
}

func setupMongoEnvironment(t *testing.T) (*mongo.Database, config.Config) {
	gin.SetMode(gin.TestMode)
	startMongoContainerOnce(t)

	info, err := getContainerHostPort(mongoTestContainer, "27017/tcp")
	require.NoError(t, err, "failed to read MongoDB container address")

	cfg := config.NewTestConfig()
	cfg.Store.Driver = config.StoreDriverMongo
	cfg.Mongo = config.MongoConfig{
		URI:      fmt.Sprintf("mongodb://%s:%s", info.Host, info.Port.Port()),
		Database: "booking_" + strings.ReplaceAll(uuid.New().String(), "-", ""),
		Timeout:  10 * time.Second,
	}

	database, cleanup, err := db.ConnectMongo(context.Background(), cfg.Mongo)
	require.NoError(t, err, "failed to connect to MongoDB")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := database.Drop(ctx); err != nil {
			slog.Warn("failed to drop test database", "database", cfg.Mongo.Database, "error", err.Error())
		}
		cleanup()
	})
	return database, cfg
}

// createDatabase gives each suite its own database on the shared container.
func createDatabase(t *testing.T, info ContainerInfo) config.DBConfig {
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, info.Host, info.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to open admin connection")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			time.Sleep(min(time.Duration(500+attempts*500)*time.Millisecond, 3*time.Second))
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempts+1, "error", createErr.Error())
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to connect for cleanup", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     info.Host,
		Port:     info.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}

// ------------------------------------------------------------
// Application
// ------------------------------------------------------------

// buildE2EApp wires the production modules against cfg. The store module
// ensures the schema or indexes itself, so no migration step runs here.
func buildE2EApp(t *testing.T, cfg config.Config) *gin.Engine {
	var router *gin.Engine

	app := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		bootstrap.NotifyModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "router was not built")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router
}

// ------------------------------------------------------------
// Containers
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start PostgreSQL container")
	})
	require.NotNil(t, postgresTestContainer, "PostgreSQL container is not running")
}

func startMongoContainerOnce(t *testing.T) {
	mongoContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			Tmpfs: map[string]string{
				"/data/db": "rw,size=256m",
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("Waiting for connections"),
				wait.ForListeningPort("27017/tcp"),
			).WithDeadline(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		mongoTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start MongoDB container")
	})
	require.NotNil(t, mongoTestContainer, "MongoDB container is not running")
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Suites
// ------------------------------------------------------------

// SharedSuite runs the same HTTP scenarios against whichever store Driver
// names. Exactly one of DB and Mongo is set after SetupSuite.
type SharedSuite struct {
	suite.Suite
	Driver string
	Router *gin.Engine
	DB     *pgxpool.Pool
	Mongo  *mongo.Database
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()

	switch s.Driver {
	case config.StoreDriverPostgres:
		s.DB, s.Config = setupPostgresEnvironment(t)
	case config.StoreDriverMongo:
		s.Mongo, s.Config = setupMongoEnvironment(t)
	default:
		t.Fatalf("unsupported driver %q", s.Driver)
	}

	s.Router = buildE2EApp(t, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	s.resetStore()
}

func (s *SharedSuite) SetupTest() {
	s.resetStore()
}

func (s *SharedSuite) resetStore() {
	var err error
	switch {
	case s.DB != nil:
		err = dbtest.ResetDB(s.DB)
	case s.Mongo != nil:
		err = dbtest.ResetMongo(s.Mongo)
	}
	require.NoError(s.T(), err, "failed to reset store state")
}

// CountBooked counts booked rows for a key straight from the backing store.
func (s *SharedSuite) CountBooked(date, slot string) int {
	if s.DB != nil {
		return dbtest.CountBookedRows(s.T(), s.DB, date, slot)
	}
	return dbtest.CountBookedDocs(s.T(), s.Mongo, date, slot)
}
