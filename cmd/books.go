package cmd

import (
	"fmt"

	"github.com/lepinkainen/verses/internal/session"
)

// BooksCmd lists the books of the corpus
type BooksCmd struct{}

func (b *BooksCmd) Run() error {
	return withSession(func(s *session.Session) error {
		for _, book := range s.Books() {
			if _, err := fmt.Fprintln(stdout, book); err != nil {
				return err
			}
		}
		return nil
	})
}
