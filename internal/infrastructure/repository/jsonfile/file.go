// Package jsonfile implements flat-file JSON persistence for the user and
// override stores. Writes go through a temp file plus rename so a crash
// mid-write never truncates the store.
package jsonfile

import (
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

func readJSONFile(path string, out any) (exists bool, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, crerr.Wrapf(err, "read %s", path)
	}

	if err := sonic.Unmarshal(raw, out); err != nil {
		return true, crerr.Wrapf(err, "decode %s", path)
	}

	return true, nil
}

func writeJSONFile(path string, payload any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	// Stores stay indented so admins can hand-edit them.
	enc := sonic.ConfigDefault.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return crerr.Wrap(err, "encode store payload")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return crerr.Wrapf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return crerr.Wrap(err, "create temp store file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return crerr.Wrapf(err, "write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return crerr.Wrapf(err, "close %s", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return crerr.Wrapf(err, "replace %s", path)
	}

	return nil
}
