// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package resultdb records the results of training runs in a MySQL database,
one row per run.  Connection settings come from the DB_USER, DB_PASSWORD,
DB_HOST, DB_PORT and DB_NAME environment variables.
*/
package resultdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/emer/edla/train"
	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

// DefTable is the default table name
const DefTable = "ed_runs"

// ErrNoDB is returned when the database settings are missing
var ErrNoDB = errors.New("resultdb: DB_HOST and DB_NAME must be set")

// DSNFromEnv returns the MySQL data source name from the environment.
// DB_PORT defaults to 3306.
func DSNFromEnv() (string, error) {
	host := os.Getenv("DB_HOST")
	name := os.Getenv("DB_NAME")
	if host == "" || name == "" {
		return "", ErrNoDB
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "3306"
	}
	cfg := mysql.NewConfig()
	cfg.User = os.Getenv("DB_USER")
	cfg.Passwd = os.Getenv("DB_PASSWORD")
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(host, port)
	cfg.DBName = name
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// Run is one row of the results table
type Run struct {
	ID         string
	Host       string
	GoVersion  string
	Name       string
	Seed       int64
	NInputs    int
	NOutputs   int
	NHidden1   int
	NHidden2   int
	NPats      int
	Flags      string
	Epochs     int
	Converged  bool
	StopReason string
	ErrTotal   float32
	ErrCount   int
	DataSize   int
	StartTime  time.Time
	EndTime    time.Time
}

// NewRun returns the Run for a training summary.  dataSize is the
// size of the network state in bytes.
func NewRun(sum *train.Summary, start, end time.Time, dataSize int) (*Run, error) {
	fl, err := json.Marshal(sum.Flags)
	if err != nil {
		return nil, err
	}
	host, err := os.Hostname()
	if err != nil {
		host = os.Getenv("HOSTNAME")
	}
	rn := &Run{
		ID:         sum.RunID,
		Host:       host,
		GoVersion:  runtime.Version(),
		Name:       sum.Name,
		Seed:       sum.Seed,
		NInputs:    sum.Topology.NInputs,
		NOutputs:   sum.Topology.NOutputs,
		NHidden1:   sum.Topology.NHidden1,
		NHidden2:   sum.Topology.NHidden2,
		NPats:      sum.NPats,
		Flags:      string(fl),
		Epochs:     sum.Epochs,
		Converged:  sum.Converged,
		StopReason: sum.StopReason,
		ErrTotal:   sum.Final.ErrTotal,
		ErrCount:   sum.Final.ErrCount,
		DataSize:   dataSize,
		StartTime:  start,
		EndTime:    end,
	}
	return rn, nil
}

// runCols are the table columns, in the order of Run.fields
var runCols = []string{"id", "host", "go_version", "name", "seed", "n_inputs", "n_outputs",
	"n_hidden1", "n_hidden2", "n_pats", "flags", "epochs", "converged", "stop_reason",
	"err_total", "err_count", "data_size", "start_time", "end_time"}

// fields returns pointers to the fields of rn in column order
func (rn *Run) fields() []any {
	return []any{&rn.ID, &rn.Host, &rn.GoVersion, &rn.Name, &rn.Seed, &rn.NInputs, &rn.NOutputs,
		&rn.NHidden1, &rn.NHidden2, &rn.NPats, &rn.Flags, &rn.Epochs, &rn.Converged, &rn.StopReason,
		&rn.ErrTotal, &rn.ErrCount, &rn.DataSize, &rn.StartTime, &rn.EndTime}
}

// values returns the field values of rn in column order
func (rn *Run) values() []any {
	return []any{rn.ID, rn.Host, rn.GoVersion, rn.Name, rn.Seed, rn.NInputs, rn.NOutputs,
		rn.NHidden1, rn.NHidden2, rn.NPats, rn.Flags, rn.Epochs, rn.Converged, rn.StopReason,
		rn.ErrTotal, rn.ErrCount, rn.DataSize, rn.StartTime, rn.EndTime}
}

// Store saves Runs in a table
type Store struct {
	DB    *sql.DB
	Table string
}

// Open opens the database at dsn.  No connection is made until first use.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("resultdb: open: %w", err)
	}
	return &Store{DB: db, Table: DefTable}, nil
}

// OpenEnv opens the database given by DSNFromEnv
func OpenEnv() (*Store, error) {
	dsn, err := DSNFromEnv()
	if err != nil {
		return nil, err
	}
	return Open(dsn)
}

func (st *Store) Close() error { return st.DB.Close() }

func (st *Store) createSQL() string {
	return "CREATE TABLE IF NOT EXISTS " + st.Table + ` (
	id CHAR(36) PRIMARY KEY,
	host VARCHAR(255),
	go_version VARCHAR(64),
	name VARCHAR(255),
	seed BIGINT,
	n_inputs INT,
	n_outputs INT,
	n_hidden1 INT,
	n_hidden2 INT,
	n_pats INT,
	flags TEXT,
	epochs INT,
	converged BOOLEAN,
	stop_reason VARCHAR(32),
	err_total FLOAT,
	err_count INT,
	data_size INT,
	start_time DATETIME(3),
	end_time DATETIME(3)
)`
}

func (st *Store) insertSQL() string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", st.Table, strings.Join(runCols, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(runCols)), ", "))
}

func (st *Store) selectSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY start_time", strings.Join(runCols, ", "), st.Table)
}

// CreateTable creates the runs table if it does not exist
func (st *Store) CreateTable(ctx context.Context) error {
	_, err := st.DB.ExecContext(ctx, st.createSQL())
	if err != nil {
		return fmt.Errorf("resultdb: create table %s: %w", st.Table, err)
	}
	return nil
}

// InsertRun adds a row for rn, giving it a new ID if it has none
func (st *Store) InsertRun(ctx context.Context, rn *Run) error {
	if rn.ID == "" {
		rn.ID = uuid.New().String()
	}
	_, err := st.DB.ExecContext(ctx, st.insertSQL(), rn.values()...)
	if err != nil {
		return fmt.Errorf("resultdb: insert run %s: %w", rn.ID, err)
	}
	return nil
}

// Runs returns all runs in order of start time
func (st *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := st.DB.QueryContext(ctx, st.selectSQL())
	if err != nil {
		return nil, fmt.Errorf("resultdb: query runs: %w", err)
	}
	defer rows.Close()
	var runs []Run
	for rows.Next() {
		var rn Run
		if err := rows.Scan(rn.fields()...); err != nil {
			return nil, err
		}
		runs = append(runs, rn)
	}
	return runs, rows.Err()
}
