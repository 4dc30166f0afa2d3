// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package appearance

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/appearance/internal/base"
	"github.com/cockroachdb/appearance/internal/intervals"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Record keys.
const (
	keyID     = "id"
	keyLesson = "lesson"
	keyPupil  = "pupil"
	keyTutor  = "tutor"
)

// Record is the presence record of one lesson. Each list is a flat sequence of
// timestamps where the pair (list[2i], list[2i+1]) is one interval.
type Record struct {
	// ID optionally labels the record in batch output.
	ID string
	// Lesson is the lesson window: exactly one start,end pair.
	Lesson []Timestamp
	// Pupil and Tutor are the presence intervals of each party. Pairs need not
	// be sorted and may overlap.
	Pupil []Timestamp
	Tutor []Timestamp
}

// String implements fmt.Stringer.
func (r Record) String() string {
	var buf strings.Builder
	if r.ID != "" {
		fmt.Fprintf(&buf, "%s: ", r.ID)
	}
	fmt.Fprintf(&buf, "lesson=%v pupil=%v tutor=%v", r.Lesson, r.Pupil, r.Tutor)
	return buf.String()
}

// parsedRecord is a validated Record, with its lists paired into intervals.
type parsedRecord struct {
	lesson base.Interval
	pupil  []base.Interval
	tutor  []base.Interval
}

// Validate returns nil if the record is well formed, and a ValidationError
// marked with ErrInvalidRecord otherwise.
func (r Record) Validate() error {
	_, err := r.parse()
	return err
}

func (r Record) parse() (parsedRecord, error) {
	var p parsedRecord
	if len(r.Lesson) != 2 {
		return p, invalidf(keyLesson, "expected exactly 2 timestamps, got %d", len(r.Lesson))
	}
	lesson, err := intervals.Parse(r.Lesson)
	if err != nil {
		return p, validationError(keyLesson, err)
	}
	p.lesson = lesson[0]
	if p.pupil, err = intervals.Parse(r.Pupil); err != nil {
		return p, validationError(keyPupil, err)
	}
	if p.tutor, err = intervals.Parse(r.Tutor); err != nil {
		return p, validationError(keyTutor, err)
	}
	return p, nil
}

// DecodeRecord decodes a single record from a JSON or YAML document of the
// form:
//
//	{"lesson": [100, 200], "pupil": [100, 150, 160, 200], "tutor": [120, 180]}
//
// The lesson, pupil and tutor keys are required; id is optional. Values must
// be integers: floats, strings, nulls and nested structures are rejected, as
// are unknown or duplicate keys. All such failures are reported as a
// ValidationError marked with ErrInvalidRecord. DecodeRecord does not check
// the lengths of the lists; use Record.Validate or ComputeOverlap for that.
func DecodeRecord(r io.Reader) (Record, error) {
	dec := yaml.NewDecoder(r)
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, invalidf("", "empty input")
		}
		return Record{}, validationError("", errors.Wrap(err, "malformed document"))
	}
	return recordFromNode(documentRoot(&doc))
}

// DecodeRecords decodes a stream of records. The stream may be a JSON array of
// records, or a sequence of YAML documents (separated by "---") each holding a
// record or a list of records.
//
// Decoding stops at the first malformed record; the returned error names the
// index of the offending record.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var recs []Record
	dec := yaml.NewDecoder(r)
	for {
		var doc yaml.Node
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return recs, nil
			}
			return nil, validationError("", errors.Wrapf(err, "malformed document after record %d", len(recs)))
		}
		root := documentRoot(&doc)
		nodes := []*yaml.Node{root}
		if root.Kind == yaml.SequenceNode {
			nodes = root.Content
		}
		for _, n := range nodes {
			rec, err := recordFromNode(n)
			if err != nil {
				return nil, errors.Wrapf(err, "record %d", len(recs))
			}
			recs = append(recs, rec)
		}
	}
}

func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		return doc.Content[0]
	}
	return doc
}

func recordFromNode(n *yaml.Node) (Record, error) {
	var rec Record
	if n.Kind != yaml.MappingNode {
		return rec, invalidf("", "line %d: expected a mapping with lesson, pupil and tutor keys", n.Line)
	}
	seen := make(map[string]bool, 4)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return rec, invalidf("", "line %d: expected a string key", k.Line)
		}
		key := k.Value
		if seen[key] {
			return rec, invalidf(key, "line %d: duplicate key", k.Line)
		}
		seen[key] = true

		var err error
		switch key {
		case keyID:
			if v.Kind != yaml.ScalarNode || v.ShortTag() == "!!null" {
				return rec, invalidf(key, "line %d: expected a scalar", v.Line)
			}
			rec.ID = v.Value
		case keyLesson:
			rec.Lesson, err = timestampsFromNode(key, v)
		case keyPupil:
			rec.Pupil, err = timestampsFromNode(key, v)
		case keyTutor:
			rec.Tutor, err = timestampsFromNode(key, v)
		default:
			return rec, invalidf(key, "line %d: unknown key", k.Line)
		}
		if err != nil {
			return rec, err
		}
	}
	for _, key := range []string{keyLesson, keyPupil, keyTutor} {
		if !seen[key] {
			return rec, invalidf(key, "line %d: missing required key", n.Line)
		}
	}
	return rec, nil
}

func timestampsFromNode(key string, n *yaml.Node) ([]Timestamp, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, invalidf(key, "line %d: expected a list of integers", n.Line)
	}
	flat := make([]Timestamp, 0, len(n.Content))
	for i, e := range n.Content {
		if e.Kind != yaml.ScalarNode || e.ShortTag() != "!!int" {
			return nil, invalidf(key, "line %d: element %d: expected an integer, got %s", e.Line, i, describeNode(e))
		}
		var v Timestamp
		if err := e.Decode(&v); err != nil {
			return nil, validationError(key, errors.Wrapf(err, "line %d: element %d", e.Line, i))
		}
		flat = append(flat, v)
	}
	return flat, nil
}

func describeNode(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!float":
			return fmt.Sprintf("float %s", n.Value)
		case "!!str":
			return fmt.Sprintf("string %q", n.Value)
		case "!!null":
			return "null"
		case "!!bool":
			return fmt.Sprintf("bool %s", n.Value)
		}
		return fmt.Sprintf("%s %s", n.ShortTag(), n.Value)
	case yaml.SequenceNode:
		return "a list"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.AliasNode:
		return "an alias"
	}
	return "an unexpected value"
}
