// Package store keeps the history of workouts in a BoltDB file
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/exerun/exerun/internal/apperr"
	"github.com/exerun/exerun/internal/models"
	"github.com/exerun/exerun/internal/osutil"
	"github.com/exerun/exerun/internal/timeutil"
)

const (
	workoutBucket = "workouts"
	metaBucket    = "meta"
)

// ErrAlreadyRunning is returned when another process holds the database.
var ErrAlreadyRunning = &apperr.Error{
	Message: "is exerun already running? Only one workout can be active at a time",
}

// Client is a BoltDB database client.
type Client struct {
	db *bolt.DB
}

// NewClient opens the database at dbPath, creating it and its buckets if
// needed.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(workoutBucket)); err != nil {
			return err
		}

		if _, err := tx.CreateBucketIfNotExists([]byte(metaBucket)); err != nil {
			return err
		}

		return migrate(tx)
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{db: db}, nil
}

// openDB creates or opens a database and locks it.
func openDB(dbPath string) (*bolt.DB, error) {
	db, err := bolt.Open(
		dbPath,
		osutil.FilePermission,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrAlreadyRunning
		}

		return nil, err
	}

	return db, nil
}

func (c *Client) SaveWorkout(w *models.Workout) error {
	value, err := json.Marshal(w)
	if err != nil {
		return err
	}

	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(workoutBucket)).Put(timeutil.ToKey(w.StartTime), value)
	})
}

func (c *Client) Workouts(f Filter) ([]models.Workout, error) {
	var workouts []models.Workout

	err := c.db.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket([]byte(workoutBucket)).Cursor()

		var k, v []byte
		if f.Since.IsZero() {
			k, v = cur.First()
		} else {
			k, v = cur.Seek(timeutil.ToKey(f.Since))

			// include a workout that started earlier but ended within
			// the range
			pk, pv := cur.Prev()
			if pk == nil {
				k, v = cur.Seek(timeutil.ToKey(f.Since))
			} else {
				var w models.Workout
				if err := json.Unmarshal(pv, &w); err != nil {
					return err
				}

				if w.EndTime.After(f.Since) {
					k, v = pk, pv
				} else {
					k, v = cur.Next()
				}
			}
		}

		var upper []byte
		if !f.Until.IsZero() {
			upper = timeutil.ToKey(f.Until)
		}

		for ; k != nil; k, v = cur.Next() {
			if upper != nil && bytes.Compare(k, upper) > 0 {
				break
			}

			var w models.Workout
			if err := json.Unmarshal(v, &w); err != nil {
				return err
			}

			if len(f.Kinds) != 0 && !slices.Contains(f.Kinds, w.Kind) {
				continue
			}

			workouts = append(workouts, w)
		}

		return nil
	})

	return workouts, err
}

func (c *Client) DeleteWorkouts(ws []models.Workout) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(workoutBucket))

		for i := range ws {
			if err := b.Delete(timeutil.ToKey(ws[i].StartTime)); err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *Client) Close() error {
	return c.db.Close()
}
