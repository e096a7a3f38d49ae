package backup

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/smartstock/internal/model"
	"github.com/roach88/smartstock/internal/store"
)

//go:embed schema.cue
var schemaCUE string

// ErrInvalidDocument is returned when an import document cannot be parsed or
// does not match the backup schema. Nothing is written in that case.
var ErrInvalidDocument = errors.New("invalid backup document")

// exportedAtLayout is ISO 8601 in UTC with milliseconds.
const exportedAtLayout = "2006-01-02T15:04:05.000Z"

// Document is the backup file layout.
type Document struct {
	Categories []model.Category   `json:"categories"`
	Products   []model.Product    `json:"products"`
	Entries    []model.StockEntry `json:"entries"`
	Debts      []model.DebtEntry  `json:"debts"`
	ExportedAt string             `json:"exportedAt,omitempty"`
}

// Collections returns the collections carried by the document. Keys that
// were absent or null are nil.
func (d Document) Collections() store.Collections {
	return store.Collections{
		Categories: d.Categories,
		Products:   d.Products,
		Entries:    d.Entries,
		Debts:      d.Debts,
	}
}

// Source provides the state to export.
type Source interface {
	Snapshot(ctx context.Context) store.Collections
}

// Target receives imported collections.
type Target interface {
	ReplaceCollections(ctx context.Context, c store.Collections) error
}

// Export captures the current state of src, stamped with now.
func Export(ctx context.Context, src Source, now time.Time) Document {
	snap := src.Snapshot(ctx)
	return Document{
		Categories: nonNil(snap.Categories),
		Products:   nonNil(snap.Products),
		Entries:    nonNil(snap.Entries),
		Debts:      nonNil(snap.Debts),
		ExportedAt: now.UTC().Format(exportedAtLayout),
	}
}

// Encode writes doc as pretty-printed JSON (two-space indent) or YAML.
func Encode(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		// Go through a JSON tree so decimals and millisecond timestamps are
		// written as plain YAML numbers.
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode backup: %w", err)
		}
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var tree any
		if err := dec.Decode(&tree); err != nil {
			return fmt.Errorf("encode backup: %w", err)
		}
		tree, err = plainNumbers(tree)
		if err != nil {
			return fmt.Errorf("encode backup: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("encode backup: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown backup format %q", format)
	}
}

// Decode parses and validates a backup document without applying it.
func Decode(data []byte, format Format) (Document, error) {
	raw, err := toJSON(data, format)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if err := validate(raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc, nil
}

// Import decodes data and replaces every collection it carries in dst.
// It returns the collections that were written.
func Import(ctx context.Context, dst Target, data []byte, format Format) (store.Collections, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return store.Collections{}, err
	}

	c := doc.Collections()
	if err := dst.ReplaceCollections(ctx, c); err != nil {
		return store.Collections{}, fmt.Errorf("import backup: %w", err)
	}
	return c, nil
}

// toJSON normalises the input to JSON bytes.
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		if !json.Valid(data) {
			// Unmarshal again for a positioned error message.
			var v any
			if err := json.Unmarshal(data, &v); err != nil {
				return nil, err
			}
			return nil, errors.New("malformed JSON")
		}
		return data, nil
	case FormatYAML:
		var tree any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
		return json.Marshal(tree)
	default:
		return nil, fmt.Errorf("unknown backup format %q", format)
	}
}

// validate checks raw JSON against the #Backup definition.
func validate(raw []byte) error {
	cctx := cuecontext.New()

	schema := cctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	doc := cctx.CompileBytes(raw)
	if err := doc.Err(); err != nil {
		return err
	}

	v := schema.LookupPath(cue.ParsePath("#Backup")).Unify(doc)
	return v.Validate(cue.Concrete(true))
}

// plainNumbers replaces every json.Number in tree with an int64, or a
// float64 when it has a fraction or exponent, so YAML emits unquoted numbers.
func plainNumbers(tree any) (any, error) {
	switch v := tree.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		return v.Float64()
	case map[string]any:
		for k, item := range v {
			n, err := plainNumbers(item)
			if err != nil {
				return nil, err
			}
			v[k] = n
		}
		return v, nil
	case []any:
		for i, item := range v {
			n, err := plainNumbers(item)
			if err != nil {
				return nil, err
			}
			v[i] = n
		}
		return v, nil
	default:
		return v, nil
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
