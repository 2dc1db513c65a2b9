package finalize

import (
	"fmt"
	"os"
	"path/filepath"

	"declaration-corrector/internal/emit"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Write finalizes outputs and writes them to dir. Nothing is written when two
// outputs map to the same file name.
func (f *Finalizer) Write(outputs []emit.Output, dir string) ([]File, error) {
	files, err := f.Files(outputs)
	if err != nil {
		return nil, err
	}

	if err := WriteFiles(files, dir); err != nil {
		return nil, err
	}

	return files, nil
}

// WriteFiles writes finalized files to dir, creating it when missing. Each
// file goes to a temporary name in dir first and is renamed into place, so a
// file from an earlier run is either kept whole or replaced whole.
func WriteFiles(files []File, dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	for _, file := range files {
		if err := replaceFile(filepath.Join(dir, file.Filename), file.Content); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Filename, err)
		}
	}

	return nil
}

func replaceFile(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	name := tmp.Name()

	_, err = tmp.Write(content)
	if err == nil {
		err = tmp.Chmod(filePerm)
	}

	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}

	if err == nil {
		err = os.Rename(name, path)
	}

	if err != nil {
		_ = os.Remove(name)
	}

	return err
}
