// Package output assembles and delivers the rendered tree document.
package output

import (
	"fmt"
	"os"
	"strings"
)

const (
	lineSeparator         = "\n"
	outputFilePermissions = 0o644

	// errorWriteOutputFormat is used when the output file cannot be written.
	errorWriteOutputFormat = "writing output file %s: %w"
)

// AssembleDocument joins rendered tree lines into the final document, prefixing
// the root label as a synthetic first line when one is provided.
func AssembleDocument(renderedLines []string, rootLabel string) string {
	document := strings.Join(renderedLines, lineSeparator)
	if rootLabel == "" {
		return document
	}
	if document == "" {
		return rootLabel
	}
	return rootLabel + lineSeparator + document
}

// WriteDocumentFile writes the document to the provided file path.
func WriteDocumentFile(outputFilePath string, document string) error {
	if writeError := os.WriteFile(outputFilePath, []byte(document), outputFilePermissions); writeError != nil {
		return fmt.Errorf(errorWriteOutputFormat, outputFilePath, writeError)
	}
	return nil
}
