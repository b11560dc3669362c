// Package postgres keeps the capture journal in PostgreSQL. Queries are built
// with goqu on top of a database/sql view of a pgx pool, which is also what
// goose needs to run the embedded migrations.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strconv"
	"time"

	"codescanner/pkg/logger"
	"codescanner/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

const dialect = "postgres"

// DefaultApplicationName is reported to the server when Options leaves it empty.
const DefaultApplicationName = "codescanner"

// Options configures the journal connection pool.
type Options struct {
	Username string
	Password string
	Host     string
	Port     int
	Database string
	// SslMode is passed as the sslmode connection parameter.
	SslMode string
	// ApplicationName shows up in pg_stat_activity.
	ApplicationName string

	// MaxConns and MinConns bound the pool size. Zero keeps the pgxpool default.
	MaxConns        int
	MinConns        int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// connString renders the options as a postgres:// URL so credentials with
// special characters survive.
func (o Options) connString() string {
	q := url.Values{}
	if o.SslMode != "" {
		q.Set("sslmode", o.SslMode)
	}
	name := o.ApplicationName
	if name == "" {
		name = DefaultApplicationName
	}
	q.Set("application_name", name)

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(o.Username, o.Password),
		Host:     net.JoinHostPort(o.Host, strconv.Itoa(o.Port)),
		Path:     "/" + o.Database,
		RawQuery: q.Encode(),
	}

	return u.String()
}

func (o Options) poolConfig() (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(o.connString())
	if err != nil {
		return nil, fmt.Errorf("could not parse pool config: %w", err)
	}
	if o.MaxConns > 0 {
		cfg.MaxConns = int32(o.MaxConns) //nolint: gosec
	}
	if o.MinConns > 0 {
		cfg.MinConns = int32(o.MinConns) //nolint: gosec
	}
	if o.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = o.ConnMaxLifetime
	}
	if o.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = o.ConnMaxIdleTime
	}

	return cfg, nil
}

// builder is the part of goqu shared by *goqu.Database and *goqu.TxDatabase.
type builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// PgSQL is the journal store. The handle returned by New owns the pool; a
// handle returned by Begin is bound to one transaction and only supports the
// capture queries, Commit and Rollback.
type PgSQL struct {
	pool *pgxpool.Pool
	db   *sql.DB
	tx   *sql.Tx
	q    builder
}

// New connects to the database and checks that it is reachable.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := options.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not reach journal database %s:%d: %w", options.Host, options.Port, err)
	}
	logger.Debug(ctx, "connected to journal database",
		zap.String("host", options.Host),
		zap.String("database", options.Database))

	db := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		pool: pool,
		db:   db,
		q:    goqu.Dialect(dialect).DB(db),
	}, nil
}

// InTx reports whether the handle is bound to a transaction.
func (p *PgSQL) InTx() bool {
	return p.tx != nil
}

// Close releases the pool. Closing a transaction handle is a no-op.
func (p *PgSQL) Close() error {
	if p.InTx() {
		return nil
	}
	err := p.db.Close()
	p.pool.Close()
	if err != nil {
		return fmt.Errorf("could not close journal database: %w", err)
	}

	return nil
}

// Begin starts a transaction. Transactions do not nest.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	if p.InTx() {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{tx: tx, q: goqu.NewTx(dialect, tx)}, nil
}

func (p *PgSQL) Commit() error {
	if !p.InTx() {
		return storage.ErrNotInTx
	}
	if err := p.tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

func (p *PgSQL) Rollback() error {
	if !p.InTx() {
		return storage.ErrNotInTx
	}
	if err := p.tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// WithTx runs cb in a transaction that is committed when cb returns nil and
// rolled back otherwise.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Warn(ctx, "could not roll back journal tx", zap.Error(rbErr))
		}

		return err
	}

	return tx.Commit()
}

// Migrate applies every pending goose migration found under dir in fsys and
// returns the versions it applied.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS, dir string) ([]int64, error) {
	if p.InTx() {
		return nil, fmt.Errorf("could not migrate: %w", storage.ErrAlreadyInTx)
	}

	migrations, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not open migrations dir: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, p.db, migrations)
	if err != nil {
		return nil, fmt.Errorf("could not create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
		logger.Info(ctx, "applied migration",
			zap.Int64("version", r.Source.Version),
			zap.Duration("duration", r.Duration))
	}

	return applied, nil
}
