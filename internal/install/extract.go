package install

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractArchive unpacks a .tar.gz archive into destDir. A corrupt or
// unreadable archive fails with *ExtractionError.
func ExtractArchive(archivePath, destDir string) error {
	archiveFile, err := os.Open(archivePath)
	if err != nil {
		return &ExtractionError{Archive: filepath.Base(archivePath), Err: err}
	}
	defer archiveFile.Close()

	gzipReader, err := gzip.NewReader(archiveFile)
	if err != nil {
		return &ExtractionError{Archive: filepath.Base(archivePath), Err: err}
	}
	defer gzipReader.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return &ExtractionError{Archive: filepath.Base(archivePath), Err: err}
	}

	tarReader := tar.NewReader(gzipReader)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &ExtractionError{Archive: filepath.Base(archivePath), Err: err}
		}

		target := filepath.Join(destDir, header.Name)

		// Reject path traversal
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return &ExtractionError{
				Archive: filepath.Base(archivePath),
				Err:     fmt.Errorf("illegal entry path: %s", header.Name),
			}
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return &ExtractionError{Archive: filepath.Base(archivePath), Err: err}
			}

		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return &ExtractionError{Archive: filepath.Base(archivePath), Err: err}
			}
			if err := writeEntry(target, tarReader, os.FileMode(header.Mode)); err != nil {
				return &ExtractionError{Archive: filepath.Base(archivePath), Err: err}
			}

		case tar.TypeSymlink:
			if err := os.Symlink(header.Linkname, target); err != nil {
				return &ExtractionError{Archive: filepath.Base(archivePath), Err: err}
			}

		default:
			// Skip char devices, block devices, etc.
			continue
		}
	}
}

func writeEntry(target string, r io.Reader, mode os.FileMode) error {
	outFile, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	if _, err := io.Copy(outFile, r); err != nil {
		outFile.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}
	return outFile.Close()
}

// FindBinary locates the top-level entry of an unpacked archive whose name
// exactly matches name. The entry must be a regular file with an execute
// bit set; anything else fails with *MissingBinaryError.
func FindBinary(destDir, name string) (string, error) {
	path := filepath.Join(destDir, name)

	info, err := os.Lstat(path)
	if err != nil {
		return "", &MissingBinaryError{Name: name}
	}
	if !info.Mode().IsRegular() || info.Mode().Perm()&0111 == 0 {
		return "", &MissingBinaryError{Name: name}
	}
	return path, nil
}
