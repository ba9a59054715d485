package scanner

import "os"

// DirectoryEntry describes one immediate child of a directory.
type DirectoryEntry struct {
	Name        string
	IsDirectory bool
}

// DirectoryReader yields the immediate children of a directory.
type DirectoryReader interface {
	ReadDirectory(directoryPath string) ([]DirectoryEntry, error)
}

// FileSystemDirectoryReader reads directories from the operating system filesystem.
type FileSystemDirectoryReader struct{}

// ReadDirectory returns the immediate children of directoryPath in enumeration order.
func (FileSystemDirectoryReader) ReadDirectory(directoryPath string) ([]DirectoryEntry, error) {
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return nil, readDirectoryError
	}
	entries := make([]DirectoryEntry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		entries = append(entries, DirectoryEntry{
			Name:        directoryEntry.Name(),
			IsDirectory: directoryEntry.IsDir(),
		})
	}
	return entries, nil
}

var _ DirectoryReader = FileSystemDirectoryReader{}
