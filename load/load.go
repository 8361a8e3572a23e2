// Package load reads and writes formal contexts as YAML documents or
// tab-separated records.
//
// YAML:
//
//	attributes: [a, b, c]
//	objects:
//	  - id: s1
//	    attributes: [a, b]
//	  - attributes: [c]      # id assigned on read
//
// TSV: one object per line, the id followed by its attributes, all separated
// by tabs. Blank lines and lines starting with '#' are skipped. A leading
// "#attributes" line fixes the attribute universe and its order.
//
// Records without an id receive a random UUID. When no attribute universe is
// given it is the attributes of all records in order of first appearance.
package load

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/galois/formal"
)

var (
	// ErrUnknownFormat is returned for a format name or file extension that is not supported.
	ErrUnknownFormat = errors.New("load: unknown format")

	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("load: duplicate object id")
)

// Format selects the encoding of a context document.
type Format int

const (
	// YAML is the structured document encoding.
	YAML Format = iota
	// TSV is the line-oriented encoding.
	TSV
)

// String returns the canonical format name.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TSV:
		return "tsv"
	}

	return "unknown"
}

// ParseFormat maps "yaml"/"yml"/"tsv" (any case) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "tsv", "tab":
		return TSV, nil
	}

	return 0, errors.Wrapf(ErrUnknownFormat, "%q", name)
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Record is one object and its attributes.
type Record struct {
	ID         string   `yaml:"id,omitempty"`
	Attributes []string `yaml:"attributes,flow"`
}

// Document is an ordered attribute universe plus object records.
type Document struct {
	Attributes []string `yaml:"attributes,flow,omitempty"`
	Objects    []Record `yaml:"objects"`
}

// Read decodes a Document from r, fills in missing ids and the attribute
// universe, and rejects repeated ids.
func Read(r io.Reader, f Format) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch f {
	case YAML:
		doc, err = readYAML(r)
	case TSV:
		doc, err = readTSV(r)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "format %d", int(f))
	}
	if err != nil {
		return nil, err
	}
	if err = doc.normalize(); err != nil {
		return nil, err
	}

	return doc, nil
}

// ReadFile opens path and reads it in the format implied by its extension.
func ReadFile(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer fh.Close()

	doc, err := Read(fh, f)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return doc, nil
}

func readYAML(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := yaml.NewDecoder(r).Decode(doc); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "couldn't decode YAML context")
	}

	return doc, nil
}

func readTSV(r io.Reader) (*Document, error) {
	doc := &Document{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if fields[0] == "#attributes" {
			if doc.Attributes != nil || len(doc.Objects) > 0 {
				return nil, errors.Errorf("line %d: #attributes must be the first record", line)
			}
			doc.Attributes = nonEmpty(fields[1:])
			continue
		}
		if strings.HasPrefix(fields[0], "#") {
			continue // comment
		}
		doc.Objects = append(doc.Objects, Record{
			ID:         strings.TrimSpace(fields[0]),
			Attributes: nonEmpty(fields[1:]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read TSV context")
	}

	return doc, nil
}

// nonEmpty trims fields and drops empty ones.
func nonEmpty(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}

	return out
}

// normalize assigns ids, checks uniqueness and derives the universe.
func (d *Document) normalize() error {
	seen := make(map[string]int, len(d.Objects))
	derive := len(d.Attributes) == 0
	known := make(map[string]struct{})
	for i := range d.Objects {
		rec := &d.Objects[i]
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if j, dup := seen[rec.ID]; dup {
			return errors.Wrapf(ErrDuplicateID, "%q at records %d and %d", rec.ID, j, i)
		}
		seen[rec.ID] = i
		if !derive {
			continue
		}
		for _, a := range rec.Attributes {
			if _, ok := known[a]; !ok {
				known[a] = struct{}{}
				d.Attributes = append(d.Attributes, a)
			}
		}
	}

	return nil
}

// Context builds a formal.Context over the document.
func (d *Document) Context() (*formal.Context, error) {
	incidence := make(map[string][]string, len(d.Objects))
	ids := make([]string, 0, len(d.Objects))
	for _, rec := range d.Objects {
		incidence[rec.ID] = rec.Attributes
		ids = append(ids, rec.ID)
	}
	ctx, err := formal.NewBuilder().
		WithObjects(ids...).
		WithAttributes(d.Attributes...).
		WithRelation(formal.IncidenceRelation(incidence)).
		Build()
	if err != nil {
		return nil, errors.Wrap(err, "build context")
	}

	return ctx, nil
}

// Write encodes d to w in format f.
func Write(w io.Writer, d *Document, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return errors.Wrap(err, "couldn't encode YAML context")
		}
		return errors.Wrap(enc.Close(), "couldn't flush YAML context")
	case TSV:
		bw := bufio.NewWriter(w)
		if len(d.Attributes) > 0 {
			bw.WriteString(strings.Join(append([]string{"#attributes"}, d.Attributes...), "\t"))
			bw.WriteByte('\n')
		}
		for _, rec := range d.Objects {
			bw.WriteString(strings.Join(append([]string{rec.ID}, rec.Attributes...), "\t"))
			bw.WriteByte('\n')
		}
		return errors.Wrap(bw.Flush(), "couldn't write TSV context")
	}

	return errors.Wrapf(ErrUnknownFormat, "format %d", int(f))
}
