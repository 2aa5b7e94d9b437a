package moderation

import (
	"bufio"
	"bytes"
	chaterrors "chat-hub/errors"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Dictionary is the merged word list of every language file found in a directory.
type Dictionary struct {
	Words     []string
	Languages []string
}

// LoadDictionary reads every .txt file under dir, one word per line.
// The file name gives the language ("fr.txt" -> "fr"). Words are deduplicated.
func LoadDictionary(fsys fs.FS, dir string) (Dictionary, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return Dictionary{}, err
	}

	var languages []string
	unique := make(map[string]struct{})
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".txt" {
			continue
		}
		languages = append(languages, strings.TrimSuffix(entry.Name(), ".txt"))

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return Dictionary{}, err
		}
		// Scanner copes with \r\n line endings
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			if word := strings.TrimSpace(scanner.Text()); word != "" {
				unique[word] = struct{}{}
			}
		}
		if err = scanner.Err(); err != nil {
			return Dictionary{}, err
		}
	}

	if len(unique) == 0 {
		return Dictionary{}, chaterrors.ErrEmptyWords
	}
	words := make([]string, 0, len(unique))
	for w := range unique {
		words = append(words, w)
	}
	sort.Strings(words)
	return Dictionary{Words: words, Languages: languages}, nil
}
