package generate

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/blake2b"
)

// digestPrefix identifies the digest algorithm in stored digests, so the
// scheme can evolve without ambiguity in old history rows.
const digestPrefix = "blake2b-256:"

// digestArtifact computes the digest and total size of an artifact.
// For a file the digest covers its content. For a directory it covers every
// regular file in walk order, each prefixed by its slash-separated relative
// path and a NUL, so renames change the digest even when content does not.
//
// Design decision: We use BLAKE2b-256 rather than SHA-256 because report
// directories can contain large generated assets and BLAKE2b hashes them
// measurably faster at the same digest size.
func digestArtifact(path string) (digest string, size int64, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to stat artifact: %w", err)
	}

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", 0, fmt.Errorf("failed to init digest: %w", err)
	}

	if !info.IsDir() {
		size, err = hashFileInto(h, path)
		if err != nil {
			return "", 0, err
		}
		return digestPrefix + hex.EncodeToString(h.Sum(nil)), size, nil
	}

	// WalkDir visits entries in lexical order, which makes the directory
	// digest deterministic.
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		h.Write([]byte(filepath.ToSlash(rel)))
		h.Write([]byte{0})

		n, err := hashFileInto(h, p)
		if err != nil {
			return err
		}
		size += n
		return nil
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to digest directory: %w", err)
	}

	return digestPrefix + hex.EncodeToString(h.Sum(nil)), size, nil
}

// hashFileInto streams one file into the hash and returns its byte count.
func hashFileInto(h io.Writer, path string) (int64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from report configuration
	if err != nil {
		return 0, fmt.Errorf("failed to open artifact: %w", err)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	n, err := io.Copy(h, f)
	if err != nil {
		return 0, fmt.Errorf("failed to hash artifact: %w", err)
	}
	return n, nil
}
