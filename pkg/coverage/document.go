// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package coverage

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/cicd-ai-toolkit/diff-cover/pkg/errors"
	"github.com/cicd-ai-toolkit/diff-cover/pkg/violations"
)

// classElement is a Cobertura <class>. Only the direct <lines> child is read;
// <methods>/<method>/<lines> repeat the same lines and are ignored.
type classElement struct {
	Filename string        `xml:"filename,attr"`
	Lines    []lineElement `xml:"lines>line"`
}

type lineElement struct {
	Number string `xml:"number,attr"`
	Hits   string `xml:"hits,attr"`
}

// fileLines is what one document recorded for one source file.
type fileLines struct {
	measured  violations.LineSet
	uncovered violations.Set
}

// Document is one parsed coverage run.
type Document struct {
	// Source names where the document came from, for logging.
	Source string

	files   map[string]*fileLines
	skipped int
}

// ParseDocument reads a Cobertura-style coverage XML document.
//
// Every <class> element carrying a filename attribute is a source file
// declaration, wherever it is nested. Lines with hits="0" are uncovered;
// every recorded line is measured. Line records whose number or hits are not
// integers are skipped.
func ParseDocument(r io.Reader) (*Document, error) {
	doc := &Document{files: make(map[string]*fileLines)}
	dec := xml.NewDecoder(r)
	sawRoot := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.ReportError("failed to parse coverage XML", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true
		if start.Name.Local != "class" {
			continue
		}

		var class classElement
		if err := dec.DecodeElement(&class, &start); err != nil {
			return nil, errors.ReportError("failed to parse coverage XML class element", err)
		}
		if class.Filename == "" {
			continue
		}
		doc.addClass(class)
	}

	if !sawRoot {
		return nil, errors.ReportError("coverage XML has no root element", nil)
	}
	return doc, nil
}

func (d *Document) addClass(class classElement) {
	f, ok := d.files[class.Filename]
	if !ok {
		f = &fileLines{
			measured:  violations.NewLineSet(),
			uncovered: violations.NewSet(),
		}
		d.files[class.Filename] = f
	}

	for _, line := range class.Lines {
		number, err := strconv.Atoi(strings.TrimSpace(line.Number))
		if err != nil {
			d.skipped++
			continue
		}
		hits, err := strconv.Atoi(strings.TrimSpace(line.Hits))
		if err != nil {
			d.skipped++
			continue
		}

		f.measured.Add(number)
		if hits == 0 {
			f.uncovered.Add(violations.New(number, ""))
		}
	}
}

// ParseFile parses the coverage document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.ReportError(fmt.Sprintf("failed to open coverage report: %s", path), err)
	}
	defer f.Close()

	doc, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// LoadFiles parses the coverage documents at paths concurrently.
// The result keeps the order of paths.
func LoadFiles(ctx context.Context, paths []string) ([]*Document, error) {
	docs := make([]*Document, len(paths))
	g, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := ParseFile(path)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Files returns the source files the document mentions, sorted.
func (d *Document) Files() []string {
	out := make([]string, 0, len(d.files))
	for name := range d.files {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Skipped returns how many line records were dropped as malformed.
func (d *Document) Skipped() int {
	return d.skipped
}
