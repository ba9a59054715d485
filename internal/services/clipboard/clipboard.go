// Package clipboard delivers the rendered tree document to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// errorCopyFormat is used when the clipboard rejects the document.
const errorCopyFormat = "copying rendered tree to clipboard: %w"

// Copier copies a rendered tree document to the system clipboard.
type Copier interface {
	Copy(document string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard service implementation.
func NewService() *Service {
	return &Service{}
}

// Copy writes the document to the system clipboard.
func (service *Service) Copy(document string) error {
	if copyError := clipboard.WriteAll(document); copyError != nil {
		return fmt.Errorf(errorCopyFormat, copyError)
	}
	return nil
}

var _ Copier = (*Service)(nil)
