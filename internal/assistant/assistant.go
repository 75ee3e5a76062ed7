// Package assistant wraps the free-text "ask the librarian" feature as a
// capability interface. The feature answers questions over a catalog
// snapshot and never mutates it; when the backing provider is unreachable
// the HTTP layer degrades to FallbackMessage instead of failing.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smartlib/library/internal/entities"
)

// FallbackMessage is shown whenever the answering provider cannot be reached.
const FallbackMessage = "I am currently having trouble connecting to the knowledge base."

// ErrUnavailable is returned when the answering provider cannot produce a
// response (missing key, network failure, bad upstream reply).
var ErrUnavailable = errors.New("assistant is unavailable")

// Answerer answers a free-text question against a catalog snapshot.
type Answerer interface {
	Answer(ctx context.Context, question string, snapshot []entities.Book) (string, error)
}

// buildInstruction renders the catalog snapshot into the system instruction,
// one line per book.
func buildInstruction(snapshot []entities.Book) string {
	var sb strings.Builder
	for _, b := range snapshot {
		fmt.Fprintf(&sb, "- [%s] %q by %s (%s, %d). Status: %s\n",
			b.BookID, b.Title, b.Author, b.Category, b.PublishYear, b.Status)
	}

	return fmt.Sprintf(`You are a helpful and intelligent Smart Library Assistant.
You have access to the current library catalog provided below.
Answer user queries based ONLY on this catalog.
If a user asks for a recommendation, suggest books from the list.
If a user asks about a book's status, check if it is Available or Borrowed.
Keep answers concise and professional.

Current Catalog:
%s`, sb.String())
}
