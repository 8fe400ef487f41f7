package store

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/exerun/exerun/internal/timeutil"
)

const schemaVersion = 2

var versionKey = []byte("version")

// migrate brings the database to schemaVersion. Version 1 keyed workouts by
// their local start time in RFC3339Nano, which does not sort in time order
// across time zones or fractional seconds.
func migrate(tx *bolt.Tx) error {
	meta := tx.Bucket([]byte(metaBucket))

	version := 1
	if v := meta.Get(versionKey); v != nil {
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return err
		}

		version = n
	}

	if version < 2 {
		if err := rekeyWorkouts(tx); err != nil {
			return err
		}
	}

	return meta.Put(versionKey, []byte(strconv.Itoa(schemaVersion)))
}

func rekeyWorkouts(tx *bolt.Tx) error {
	bucket := tx.Bucket([]byte(workoutBucket))

	type entry struct {
		key, value []byte
	}

	var stale []entry

	err := bucket.ForEach(func(k, v []byte) error {
		var w struct {
			StartTime time.Time `json:"start_time"`
		}

		if err := json.Unmarshal(v, &w); err != nil {
			return err
		}

		if !bytes.Equal(k, timeutil.ToKey(w.StartTime)) {
			stale = append(stale, entry{key: k, value: v})
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, e := range stale {
		if err := bucket.Delete(e.key); err != nil {
			return err
		}

		var w struct {
			StartTime time.Time `json:"start_time"`
		}

		if err := json.Unmarshal(e.value, &w); err != nil {
			return err
		}

		if err := bucket.Put(timeutil.ToKey(w.StartTime), e.value); err != nil {
			return err
		}
	}

	return nil
}
