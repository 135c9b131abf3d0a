// Package manifest classifies an image directory into size buckets and
// writes the result as manifest.json, smallest files first so that a viewer
// can show something quickly.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// FileName is the default output name inside the scanned directory.
const FileName = "manifest.json"

// Bucket limits in bytes. A file exactly at a limit goes to the next bucket.
const (
	SmallLimit  = 750 * 1024
	MediumLimit = 1500 * 1024
)

var ErrNotDir = errors.New("not a directory")

type Bucket int

const (
	Small Bucket = iota
	Medium
	Large
)

func (b Bucket) String() string {
	switch b {
	case Small:
		return "small"
	case Medium:
		return "medium"
	}
	return "large"
}

func Classify(size int64) Bucket {
	switch {
	case size < SmallLimit:
		return Small
	case size < MediumLimit:
		return Medium
	default:
		return Large
	}
}

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsImage matches on the extension only, case-insensitively.
func IsImage(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

type Stats struct {
	Small  int `json:"small"`
	Medium int `json:"medium"`
	Large  int `json:"large"`
	Total  int `json:"total"`
}

type Groups struct {
	Small  []string `json:"small"`
	Medium []string `json:"medium"`
	Large  []string `json:"large"`
}

type Manifest struct {
	Generated time.Time `json:"generated"`
	Stats     Stats     `json:"stats"`
	Groups    Groups    `json:"groups"`

	// Bytes per bucket, for summaries only.
	Bytes [3]int64 `json:"-"`
}

// Entry is one image file found by Scan.
type Entry struct {
	Name string
	Size int64
}

// Build buckets entries and sorts every bucket by ascending size. Equal sizes
// keep their input order.
func Build(entries []Entry, generated time.Time) *Manifest {
	var buckets [3][]Entry
	m := &Manifest{Generated: generated.UTC()}
	for _, e := range entries {
		b := Classify(e.Size)
		buckets[b] = append(buckets[b], e)
		m.Bytes[b] += e.Size
	}

	names := func(es []Entry) []string {
		sort.SliceStable(es, func(i, j int) bool { return es[i].Size < es[j].Size })
		out := make([]string, len(es))
		for i, e := range es {
			out[i] = e.Name
		}
		return out
	}
	m.Groups = Groups{
		Small:  names(buckets[Small]),
		Medium: names(buckets[Medium]),
		Large:  names(buckets[Large]),
	}
	m.Stats = Stats{
		Small:  len(m.Groups.Small),
		Medium: len(m.Groups.Medium),
		Large:  len(m.Groups.Large),
		Total:  len(entries),
	}
	return m
}

// Scan lists the image files directly inside dir. Subdirectories are not
// descended into.
func Scan(fsys afero.Fs, dir string) ([]Entry, error) {
	info, err := fsys.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan %s: %w", dir, ErrNotDir)
	}

	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	var entries []Entry
	for _, fi := range infos {
		if fi.IsDir() || !IsImage(fi.Name()) {
			continue
		}
		entries = append(entries, Entry{Name: fi.Name(), Size: fi.Size()})
	}
	return entries, nil
}

// Generate scans dir and writes the manifest to out, or to dir/manifest.json
// when out is empty.
func Generate(fsys afero.Fs, dir, out string, now time.Time) (*Manifest, string, error) {
	entries, err := Scan(fsys, dir)
	if err != nil {
		return nil, "", err
	}
	m := Build(entries, now)
	if out == "" {
		out = filepath.Join(dir, FileName)
	}
	if err := Write(fsys, out, m); err != nil {
		return nil, "", err
	}
	return m, out, nil
}

// Write stores m as two-space indented JSON.
func Write(fsys afero.Fs, name string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := afero.WriteFile(fsys, name, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func Load(fsys afero.Fs, name string) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", name, err)
	}
	return &m, nil
}

// Images lists every file small bucket first, resolved against dir.
func (m *Manifest) Images(dir string) []string {
	out := make([]string, 0, m.Stats.Total)
	for _, group := range [][]string{m.Groups.Small, m.Groups.Medium, m.Groups.Large} {
		for _, name := range group {
			if dir != "" && !filepath.IsAbs(name) {
				name = filepath.Join(dir, name)
			}
			out = append(out, name)
		}
	}
	return out
}

// Summary is the one-line bucket count report.
func (m *Manifest) Summary() string {
	return fmt.Sprintf("Small: %d, Medium: %d, Large: %d", m.Stats.Small, m.Stats.Medium, m.Stats.Large)
}
