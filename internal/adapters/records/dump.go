// Package records provides content record stores backed by SQLite or memory.
package records

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/scorg-tools/Blender-Tools-sub000/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// dump is one decoded record dump file.
type dump struct {
	path    string
	digest  string
	records []domain.Record
}

// readDumps reads and decodes paths concurrently, preserving their order.
func readDumps(ctx context.Context, paths []string) ([]dump, error) {
	dumps := make([]dump, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		g.Go(func() error {
			d, err := readDump(ctx, p)
			if err != nil {
				return err
			}
			dumps[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dumps, nil
}

func readDump(ctx context.Context, path string) (dump, error) {
	if err := ctx.Err(); err != nil {
		return dump{}, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	//nolint:gosec // Path is provided by the user on the command line
	data, err := os.ReadFile(abs)
	if err != nil {
		return dump{}, zerr.With(zerr.Wrap(err, domain.ErrDumpReadFailed.Error()), "path", path)
	}
	recs, err := decodeDump(data)
	if err != nil {
		return dump{}, zerr.With(err, "path", path)
	}
	return dump{
		path:    abs,
		digest:  strconv.FormatUint(xxhash.Sum64(data), 16),
		records: recs,
	}, nil
}

// decodeDump parses a JSON array of records and canonicalises their identifiers.
func decodeDump(data []byte) ([]domain.Record, error) {
	var recs []domain.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDumpParseFailed.Error())
	}
	for i := range recs {
		id, err := domain.ParseIdentifier(recs[i].ID.String())
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDumpParseFailed.Error()), "index", i)
		}
		recs[i].ID = id
		recs[i].Filename = strings.ReplaceAll(recs[i].Filename, `\`, "/")
		if recs[i].Type == "" {
			recs[i].Type = domain.RecordTypeEntity
		}
	}
	return recs, nil
}

// globPattern compiles a SQLite GLOB pattern, where '*' also matches '/',
// into a case-insensitive regular expression.
func globPattern(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("(?i)^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}
