package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mmcdole/bookcart/internal/domain"
)

// renderTable writes books as a plain bordered table
func renderTable(w io.Writer, books []domain.Book, currencySuffix string) error {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{b.Title, b.Author, b.Category, b.FormattedPrice(currencySuffix)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if col == 3 {
				s = s.Align(lipgloss.Right)
			}
			return s
		}).
		Headers("TITLE", "AUTHOR", "CATEGORY", "PRICE").
		Rows(rows...)

	_, err := fmt.Fprintf(w, "%s\n%d books\n", t.String(), len(books))
	return err
}
