// Package storage provides durable access to the posting collection and
// click counters, with two interchangeable backends selected at startup.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/tariquek-git/CommonJobs/internal/model"
)

// ErrStorage marks backend read/write failures so the API layer can map
// them to an internal error without leaking backend details.
var ErrStorage = errors.New("storage failure")

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}

// JobStore is the capability interface over the posting collection.
//
// Mutate hands the mutator a working copy of the full collection; whatever
// the slice holds when the mutator returns nil becomes the new persisted
// state. Mutate calls against the same store instance are serialized in
// call order and never interleave, even when the mutator itself blocks. A
// failed mutate releases the queue for the next caller.
type JobStore interface {
	List(ctx context.Context) ([]model.JobPosting, error)
	Mutate(ctx context.Context, fn func(jobs *[]model.JobPosting) error) error
}

// ClickStore tracks per-posting click counters, decoupled from the posting
// records so high-frequency click writes never rewrite the collection.
type ClickStore interface {
	Get(ctx context.Context, jobID string) (int64, error)
	GetMany(ctx context.Context, jobIDs []string) (map[string]int64, error)
	Increment(ctx context.Context, jobID string) (int64, error)
}
