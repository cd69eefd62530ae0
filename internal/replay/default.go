package replay

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"git.lost.host/meutraa/fretwork/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultStore struct {
	Path string
	db   *sql.DB
}

func (s *DefaultStore) Init() error {
	path := s.Path
	if path == "" {
		path = "./replays.db"
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists replays
	  (
		  id integer not null primary key,
		  session text not null unique,
		  sum text,
		  ticks bytearray
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return fmt.Errorf("unable to create replay table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultStore) Save(run *Run) error {
	data, err := json.Marshal(compactTicks(run.Ticks))
	if nil != err {
		return fmt.Errorf("unable to marshal ticks: %w", err)
	}
	_, err = s.db.Exec("insert into replays(session, sum, ticks) values(?, ?, ?)", run.Session, run.Sum, data)
	if nil != err {
		return fmt.Errorf("unable to save replay: %w", err)
	}
	return nil
}

func scanRun(scan func(dest ...any) error) (*Run, error) {
	var run Run
	var data []byte
	if err := scan(&run.Session, &run.Sum, &data); nil != err {
		return nil, err
	}
	var compact []compactTick
	if err := json.Unmarshal(data, &compact); nil != err {
		return nil, fmt.Errorf("unable to unmarshal ticks: %w", err)
	}
	run.Ticks = uncompactTicks(compact)
	return &run, nil
}

func (s *DefaultStore) Load(chart *game.Chart) ([]Run, error) {
	runs := []Run{}
	rows, err := s.db.Query("select session, sum, ticks from replays where sum = ? order by id", Sum(chart))
	if nil != err {
		return runs, fmt.Errorf("unable to load replays: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if nil != err {
			log.Println("unable to read replay", err)
			continue
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

func (s *DefaultStore) Get(session string) (*Run, error) {
	row := s.db.QueryRow("select session, sum, ticks from replays where session = ?", session)
	run, err := scanRun(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no replay %v: %w", session, err)
	}
	return run, err
}
