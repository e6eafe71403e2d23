package dataset

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/nutridex"
	"github.com/hupe1980/nutridex/blobstore"
	"github.com/hupe1980/nutridex/codec"
	"github.com/hupe1980/nutridex/model"
)

// Report summarizes a Load.
type Report struct {
	// Files is the number of files read.
	Files int
	// Read is the number of entries examined across all files.
	Read int
	// Loaded is the number of records added to the store.
	Loaded int
	// Skipped counts malformed entries and records the store rejected.
	Skipped int
	// Duplicates counts records whose ID was already present.
	Duplicates int
}

type decoded struct {
	recs  []*model.Record
	stats codec.DecodeStats
}

// Load reads names from bs into store and sorts the store by name.
//
// Files are fetched and decoded concurrently; any fetch or decode failure
// aborts the load before the store is touched, with the error prefixed by
// the file name. Malformed lines are skipped and counted.
func Load(ctx context.Context, bs blobstore.BlobStore, store *nutridex.Store, names []string, optFns ...Option) (Report, error) {
	o := applyOptions(optFns)
	logger := store.Logger()
	source := strings.Join(names, ",")

	attrs := store.Attributes()
	files := make([]decoded, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, name := range names {
		g.Go(func() error {
			recs, stats, err := readFile(gctx, bs, name, attrs)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			files[i] = decoded{recs: recs, stats: stats}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.LogLoad(ctx, source, 0, 0, err)
		return Report{}, err
	}

	report := Report{Files: len(names)}
	seen := make(map[string]struct{})

	var batch []*model.Record
	for _, f := range files {
		report.Read += f.stats.Read
		report.Skipped += f.stats.Skipped

		for _, rec := range f.recs {
			if _, dup := seen[rec.ID]; dup || store.Contains(rec.ID) {
				report.Duplicates++
				continue
			}
			seen[rec.ID] = struct{}{}
			batch = append(batch, rec)
		}
	}

	before := store.Len()
	if err := store.AddRecords(batch); err != nil {
		logger.WithSource(source).WarnContext(ctx, "records rejected", "error", err)
	}
	report.Loaded = store.Len() - before
	report.Skipped += len(batch) - report.Loaded

	logger.LogLoad(ctx, source, report.Loaded, report.Skipped, nil)
	return report, nil
}

func readFile(ctx context.Context, bs blobstore.BlobStore, name string, attrs []string) ([]*model.Record, codec.DecodeStats, error) {
	c, comp, err := codec.ForName(name, attrs)
	if err != nil {
		return nil, codec.DecodeStats{}, err
	}

	rc, err := bs.Get(ctx, name)
	if err != nil {
		return nil, codec.DecodeStats{}, err
	}
	defer func() { _ = rc.Close() }()

	r, err := codec.NewReader(rc, comp)
	if err != nil {
		return nil, codec.DecodeStats{}, err
	}
	defer func() { _ = r.Close() }()

	return c.Decode(r)
}

// Save writes every record of store, in sequence order, to name.
func Save(ctx context.Context, bs blobstore.BlobStore, store *nutridex.Store, name string) error {
	recs := store.All()

	err := save(ctx, bs, recs, store.Attributes(), name)
	store.Logger().LogSave(ctx, name, len(recs), err)
	return err
}

func save(ctx context.Context, bs blobstore.BlobStore, recs []*model.Record, attrs []string, name string) error {
	c, comp, err := codec.ForName(name, attrs)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w, err := codec.NewWriter(&buf, comp)
	if err != nil {
		return err
	}
	if err := c.Encode(w, recs); err != nil {
		_ = w.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return bs.Put(ctx, name, buf.Bytes())
}

// IDLength is the length of identifiers returned by NewID.
const IDLength = 24

// NewID returns a random 24-character lowercase hex identifier.
func NewID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:IDLength/2])
}
