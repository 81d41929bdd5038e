package yamldictionary

import (
	"context"
	"errors"
	"fmt"
	"github.com/gissleh/nerdify"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultFileName = "dictionary.yaml"

type Storage struct {
	mu       sync.Mutex
	path     string
	dir      bool
	readOnly bool
	entries  []storedEntry
}

type storedEntry struct {
	nerdify.DictionaryEntry
	file string
}

type fileData struct {
	Entries []nerdify.DictionaryEntry `yaml:"entries"`
}

// Open loads a dictionary file, or every .yaml file of a directory in name
// order. A path that does not exist yet gives an empty dictionary that will be
// created on the first save.
func Open(path string, readOnly bool) (*Storage, error) {
	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return &Storage{path: path, readOnly: readOnly}, nil
	} else if err != nil {
		return nil, err
	}

	s := &Storage{path: path, dir: stat.IsDir(), readOnly: readOnly}

	files := []string{path}
	if s.dir {
		dirEntries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}

		files = files[:0]
		for _, dirEntry := range dirEntries {
			if dirEntry.IsDir() || !strings.HasSuffix(dirEntry.Name(), ".yaml") {
				continue
			}

			files = append(files, filepath.Join(path, dirEntry.Name()))
		}
	}

	for _, file := range files {
		entries, err := readFile(file)
		if err != nil {
			return nil, fmt.Errorf("could not load dictionary %s: %w", file, err)
		}

		for _, entry := range entries {
			s.entries = append(s.entries, storedEntry{DictionaryEntry: entry, file: file})
		}
	}

	return s, nil
}

// FromData creates a storage for a single file without reading it. The
// entries are checked the same way as those read from a file.
func FromData(path string, readOnly bool, dictionary nerdify.Dictionary) (*Storage, error) {
	s := &Storage{path: path, readOnly: readOnly}
	for _, entry := range dictionary {
		s.entries = append(s.entries, storedEntry{DictionaryEntry: normalizeEntry(entry), file: path})
	}

	if err := s.dictionary().Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Storage) Dictionary(ctx context.Context) (nerdify.Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.dictionary(), nil
}

func (s *Storage) SaveEntry(ctx context.Context, entry nerdify.DictionaryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.readOnly {
		return nerdify.ErrReadOnly
	}

	entry = normalizeEntry(entry)
	if err := (nerdify.Dictionary{entry}).Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A source may be listed in more than one file. All of them are updated,
	// or the last one would still win when the dictionary is read.
	var files []string
	for i, existing := range s.entries {
		if existing.Source == entry.Source {
			s.entries[i].DictionaryEntry = entry
			files = appendFile(files, existing.file)
		}
	}
	if len(files) > 0 {
		return s.saveAll(files)
	}

	file := s.path
	if s.dir {
		file = filepath.Join(s.path, defaultFileName)
	}
	s.entries = append(s.entries, storedEntry{DictionaryEntry: entry, file: file})

	return s.save(file)
}

func (s *Storage) DeleteEntry(ctx context.Context, source string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.readOnly {
		return nerdify.ErrReadOnly
	}

	source = normalizeText(source)

	s.mu.Lock()
	defer s.mu.Unlock()

	var files []string
	kept := s.entries[:0]
	for _, existing := range s.entries {
		if existing.Source == source {
			files = appendFile(files, existing.file)
			continue
		}

		kept = append(kept, existing)
	}
	s.entries = kept

	if len(files) == 0 {
		return nerdify.ErrDictionaryEntryNotFound
	}

	return s.saveAll(files)
}

func (s *Storage) EntryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func (s *Storage) dictionary() nerdify.Dictionary {
	res := make(nerdify.Dictionary, 0, len(s.entries))
	for _, entry := range s.entries {
		res = append(res, entry.DictionaryEntry)
	}

	return res
}

func (s *Storage) saveAll(files []string) error {
	for _, file := range files {
		if err := s.save(file); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) save(file string) error {
	dictionary := make(nerdify.Dictionary, 0, len(s.entries))
	for _, entry := range s.entries {
		if entry.file == file {
			dictionary = append(dictionary, entry.DictionaryEntry)
		}
	}

	return Save(file, dictionary)
}

// Save writes a dictionary to a single file.
func Save(path string, dictionary nerdify.Dictionary) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(fileData{Entries: dictionary}); err != nil {
		return err
	}

	return enc.Close()
}

func appendFile(files []string, file string) []string {
	for _, existing := range files {
		if existing == file {
			return files
		}
	}

	return append(files, file)
}

func readFile(path string) (nerdify.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data := new(fileData)
	if err := yaml.NewDecoder(f).Decode(data); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	dictionary := make(nerdify.Dictionary, 0, len(data.Entries))
	for _, entry := range data.Entries {
		dictionary = append(dictionary, normalizeEntry(entry))
	}
	if err := dictionary.Validate(); err != nil {
		return nil, err
	}

	return dictionary, nil
}

func normalizeEntry(entry nerdify.DictionaryEntry) nerdify.DictionaryEntry {
	entry.Source = normalizeText(entry.Source)
	entry.Target = normalizeText(entry.Target)

	return entry
}

func normalizeText(s string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
}
