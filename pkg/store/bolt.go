package store

import (
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

const bucketRun = "run"

type dbStore struct {
	db *bolt.DB
}

// NewStore opens a Store at the given file path, creating the file and the
// schema as needed.
func NewStore(dbname string) (Store, error) {
	db, err := bolt.Open(dbname, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRun))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &dbStore{db}, nil
}

func (s *dbStore) Close() error {
	return s.db.Close()
}

// NextRunSeq returns the next sequence number of the run log.
func (s *dbStore) NextRunSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRun))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddRun appends a new record to the run log.
func (s *dbStore) AddRun(n, m int, result float64) (int, error) {
	var (
		seq uint64
		err error
	)
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRun))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), marshalRun(n, m, result))
	})
	return int(seq), err
}

// Run queries the run log record with the specified sequence number.
func (s *dbStore) Run(seq int) (Run, error) {
	var run Run
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRun))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoSuchRun
		}
		var err error
		run, err = unmarshalRun(seq, v)
		return err
	})
	return run, err
}

// Runs returns all runs with sequence numbers within the specified range.
func (s *dbStore) Runs(from, upto int) ([]Run, error) {
	var runs []Run
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketRun))
		c := b.Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			run, err := unmarshalRun(int(unmarshalSeq(k)), v)
			if err != nil {
				return err
			}
			runs = append(runs, run)
		}
		return nil
	})
	return runs, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

func marshalRun(n, m int, result float64) []byte {
	return []byte(fmt.Sprintf("n=%d m=%d result=%g", n, m, result))
}

func unmarshalRun(seq int, data []byte) (Run, error) {
	run := Run{Seq: seq}
	_, err := fmt.Sscanf(string(data), "n=%d m=%d result=%g", &run.N, &run.M, &run.Result)
	return run, err
}
