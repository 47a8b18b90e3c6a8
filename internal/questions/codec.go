package questions

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Decode reads a JSON array of source-format records.
func Decode(r io.Reader) ([]*InputQuestion, error) {
	dec := json.NewDecoder(r)

	var records []*InputQuestion
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if records == nil {
		return nil, errors.New("decode questions: top-level value is not an array")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("decode questions: unexpected data after array")
	}
	return records, nil
}

// Load reads and decodes the source-format file at path.
func Load(path string) ([]*InputQuestion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open questions: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes qs as a JSON array indented with four spaces. HTML
// characters and non-ASCII text are written as-is, except U+2028 and
// U+2029 which encoding/json always escapes as \u2028 and \u2029.
// There is no trailing newline.
func Encode(w io.Writer, qs []Question) error {
	if qs == nil {
		qs = []Question{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(qs); err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}

	if _, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))); err != nil {
		return fmt.Errorf("write questions: %w", err)
	}
	return nil
}

// Save replaces the file at path with the encoded questions. The data is
// written to a temporary file in the same directory and renamed over
// path, so readers never see a partial file. A symlinked path is
// resolved first so the link's target is replaced, not the link. An
// existing file's permissions are kept.
func Save(path string, qs []Question) error {
	var buf bytes.Buffer
	if err := Encode(&buf, qs); err != nil {
		return err
	}

	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("resolve path: %w", err)
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".qbank-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// RewriteFile loads the source-format file at path, converts every
// record and overwrites path with the result. Nothing is written unless
// every record converts.
func RewriteFile(path string) (*Result, error) {
	records, err := Load(path)
	if err != nil {
		return nil, err
	}

	qs, err := Rewrite(records)
	if err != nil {
		return nil, fmt.Errorf("rewrite %s: %w", path, err)
	}

	if err := Save(path, qs); err != nil {
		return nil, fmt.Errorf("save %s: %w", path, err)
	}

	res := &Result{Path: path, Count: len(qs)}
	for _, q := range qs {
		if q.CorrectAnswer == nil {
			res.Unresolved = append(res.Unresolved, q.ID)
		}
	}
	return res, nil
}
