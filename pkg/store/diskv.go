package store

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/moodlog/pkg/entry"
)

const layoutISO = "2006-01-02"

// NewLocal creates a Persistence backed by diskv, one JSON document per
// entry, keyed by civil date and a content-derived id.
func NewLocal(cfg Config) (Persistence, error) {
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, fmt.Errorf("store: base path required for local backend")
	}
	return &localStore{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type localStore struct {
	d        *diskv.Diskv
	basePath string
}

func (p *localStore) Append(ctx context.Context, e *entry.Entry) error {
	key := toKey(e)
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func (p *localStore) ReadAll(ctx context.Context) ([]*entry.Entry, error) {
	all := make([]*entry.Entry, 0)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: skipping %s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortEntries(all)
	return all, nil
}

func (p *localStore) read(key string) (*entry.Entry, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := entry.Entry{}
	if err := json.Unmarshal(val, &e); err != nil {
		return nil, err
	}
	pk := keyToPathTransform(key)
	e.ID = pk.FileName
	return &e, nil
}

func sortEntries(entries []*entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		lt := entries[i].Created.Time
		rt := entries[j].Created.Time
		if lt.Equal(rt) {
			return entries[i].ID < entries[j].ID
		}
		return lt.Before(rt)
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `date-id`
func toKey(e *entry.Entry) string {
	then := e.Created.In(entry.Civil()).Format(layoutISO)

	if e.ID == "" {
		// The wire form truncates to seconds; hash the nanosecond clock too so
		// back-to-back identical submissions still land as separate rows.
		b, _ := json.Marshal(e)
		b = append(b, []byte(fmt.Sprint(e.Created.UnixNano()))...)
		id := md5.Sum(b)
		e.ID = fmt.Sprintf("%x", id[:8])
	}

	return fmt.Sprintf("%s-%s", then, e.ID)
}
