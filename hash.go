package main

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

func hashFile(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// hashSources digests every regular file under paths, keyed by its path, so
// renames as well as edits produce a new value. Paths may be files or
// directories; missing paths are skipped and _test.go files never count.
// WalkDir visits in lexical order.
func hashSources(paths ...string) (string, error) {
	hash := sha256.New()
	for _, root := range paths {
		if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() || strings.HasSuffix(path, "_test.go") {
				return nil
			}
			fileHash, err := hashFile(path)
			if err != nil {
				return err
			}
			hash.Write([]byte(filepath.ToSlash(path)))
			hash.Write([]byte{0})
			hash.Write([]byte(fileHash))
			return nil
		})
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// sourceTag is a short image tag derived from the function sources.
func sourceTag(paths ...string) (string, error) {
	sum, err := hashSources(paths...)
	if err != nil {
		return "", err
	}
	return sum[:12], nil
}
