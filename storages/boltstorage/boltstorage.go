// Package boltstorage persists named comparator descriptions in a local bolt database.
package boltstorage

import (
	"bytes"
	"context"
	"encoding/gob"
	"time"

	"github.com/adamluzsi/checked/pkg/compare"
	"github.com/boltdb/bolt"
	uuid "github.com/satori/go.uuid"
	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrNotFound        errorkit.Error = "ordering not found"
	ErrDuplicateName   errorkit.Error = "ordering name is already taken"
	ErrInvalidOrdering errorkit.Error = "invalid ordering"
)

var (
	orderingsBucket = []byte("orderings")
	namesBucket     = []byte("orderings.names")
)

// Ordering is a saved comparator description.
type Ordering struct {
	ID         string
	Name       string
	Descriptor compare.Descriptor
}

// New opens, or creates, the database at path.
func New(path string) (*Storage, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	s := &Storage{DB: db}
	if err := db.Update(s.ensureBuckets); err != nil {
		return nil, errorkit.Merge(err, db.Close())
	}
	return s, nil
}

type Storage struct {
	DB *bolt.DB
}

// Close the database and release the file lock
func (s *Storage) Close() error {
	return s.DB.Close()
}

// Create stores o and sets its ID when it was empty.
func (s *Storage) Create(ctx context.Context, o *Ordering) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate(*o); err != nil {
		return err
	}
	if o.ID == "" {
		o.ID = uuid.NewV4().String()
	}
	return s.DB.Update(func(tx *bolt.Tx) error {
		orderings, names := tx.Bucket(orderingsBucket), tx.Bucket(namesBucket)
		if orderings.Get([]byte(o.ID)) != nil {
			return ErrInvalidOrdering.F("id %q is already in use", o.ID)
		}
		if names.Get([]byte(o.Name)) != nil {
			return ErrDuplicateName.F("%q", o.Name)
		}
		value, err := encode(*o)
		if err != nil {
			return err
		}
		if err := orderings.Put([]byte(o.ID), value); err != nil {
			return err
		}
		return names.Put([]byte(o.Name), []byte(o.ID))
	})
}

// Update replaces the stored ordering that has the ID of o.
func (s *Storage) Update(ctx context.Context, o Ordering) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validate(o); err != nil {
		return err
	}
	return s.DB.Update(func(tx *bolt.Tx) error {
		orderings, names := tx.Bucket(orderingsBucket), tx.Bucket(namesBucket)
		data := orderings.Get([]byte(o.ID))
		if data == nil {
			return ErrNotFound.F("id: %s", o.ID)
		}
		var prev Ordering
		if err := decode(data, &prev); err != nil {
			return err
		}
		if prev.Name != o.Name {
			if names.Get([]byte(o.Name)) != nil {
				return ErrDuplicateName.F("%q", o.Name)
			}
			if err := names.Delete([]byte(prev.Name)); err != nil {
				return err
			}
			if err := names.Put([]byte(o.Name), []byte(o.ID)); err != nil {
				return err
			}
		}
		value, err := encode(o)
		if err != nil {
			return err
		}
		return orderings.Put([]byte(o.ID), value)
	})
}

func (s *Storage) FindByID(ctx context.Context, id string) (Ordering, bool, error) {
	if err := ctx.Err(); err != nil {
		return Ordering{}, false, err
	}
	var (
		o     Ordering
		found bool
	)
	err := s.DB.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(orderingsBucket).Get([]byte(id))
		if data == nil {
			return nil
		}
		found = true
		return decode(data, &o)
	})
	return o, found, err
}

func (s *Storage) FindByName(ctx context.Context, name string) (Ordering, bool, error) {
	if err := ctx.Err(); err != nil {
		return Ordering{}, false, err
	}
	var (
		o     Ordering
		found bool
	)
	err := s.DB.View(func(tx *bolt.Tx) error {
		id := tx.Bucket(namesBucket).Get([]byte(name))
		if id == nil {
			return nil
		}
		data := tx.Bucket(orderingsBucket).Get(id)
		if data == nil {
			return ErrNotFound.F("name %q points to missing id %s", name, id)
		}
		found = true
		return decode(data, &o)
	})
	return o, found, err
}

// FindAll returns every stored ordering, ordered by name.
func (s *Storage) FindAll(ctx context.Context) ([]Ordering, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []Ordering
	err := s.DB.View(func(tx *bolt.Tx) error {
		return tx.Bucket(orderingsBucket).ForEach(func(_, data []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var o Ordering
			if err := decode(data, &o); err != nil {
				return err
			}
			out = append(out, o)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, compare.SortStable(out, byName)
}

func (s *Storage) DeleteByID(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.DB.Update(func(tx *bolt.Tx) error {
		orderings := tx.Bucket(orderingsBucket)
		data := orderings.Get([]byte(id))
		if data == nil {
			return ErrNotFound.F("id: %s", id)
		}
		var o Ordering
		if err := decode(data, &o); err != nil {
			return err
		}
		if err := tx.Bucket(namesBucket).Delete([]byte(o.Name)); err != nil {
			return err
		}
		return orderings.Delete([]byte(id))
	})
}

var byName = compare.By(func(o Ordering) (string, error) { return o.Name, nil })

func validate(o Ordering) error {
	if o.Name == "" {
		return ErrInvalidOrdering.F("name is empty")
	}
	if err := o.Descriptor.Validate(); err != nil {
		return ErrInvalidOrdering.Wrap(err)
	}
	return nil
}

func (s *Storage) ensureBuckets(tx *bolt.Tx) error {
	for _, name := range [][]byte{orderingsBucket, namesBucket} {
		if _, err := tx.CreateBucketIfNotExists(name); err != nil {
			return err
		}
	}
	return nil
}

func encode(o Ordering) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := gob.NewEncoder(buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(data []byte, ptr *Ordering) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(ptr)
}
