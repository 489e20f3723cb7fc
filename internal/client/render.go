// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package client

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/taibuivan/feedback/internal/feedback"
)

// HappinessEmojis maps happiness levels 1 to 5.
var HappinessEmojis = [feedback.MaxScore]string{"🥲", "😐", "🙂", "😊", "🤩"}

// Emoji returns the face for a happiness level. Unknown levels render as neutral.
func Emoji(level int) string {
	if level < feedback.MinScore || level > feedback.MaxScore {
		level = 3
	}
	return HappinessEmojis[level-1]
}

// Stars renders a rating as five filled or empty stars.
func Stars(rating int) string {
	rating = min(max(rating, 0), feedback.MaxScore)
	return strings.Repeat("★", rating) + strings.Repeat("☆", feedback.MaxScore-rating)
}

// Render writes a text view of state to w.
func Render(w io.Writer, state State) error {
	if state.Error != "" {
		_, err := fmt.Fprintln(w, state.Error)
		return err
	}

	if len(state.FieldErrors) > 0 {
		return renderFieldErrors(w, state.FieldErrors)
	}

	if len(state.Records) == 0 {
		_, err := fmt.Fprintln(w, "No feedbacks found")
		return err
	}

	if _, err := fmt.Fprintf(w, "Displaying %d out of %d feedbacks\n\n", len(state.Records), state.Total); err != nil {
		return err
	}

	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(table, "ID\tMOOD\tCUSTOMER\tRATING\tDATE\tMESSAGE")
	for _, record := range state.Records {
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\t%s\n",
			record.ID,
			Emoji(record.HappinessLevel),
			record.CustomerName,
			Stars(record.Rating),
			record.CreatedAt.Format("Jan 02, 2006"),
			record.Message,
		)
	}
	if err := table.Flush(); err != nil {
		return err
	}

	if pager := state.Pager(); pager != nil {
		_, err := fmt.Fprintln(w, "\n"+pager.String())
		return err
	}
	return nil
}

// String renders the pager on one line, the current page in brackets.
func (pager *Pager) String() string {
	parts := []string{
		control("«", pager.First),
		control("‹", pager.Previous),
	}
	for _, page := range pager.Pages {
		if page == pager.Current {
			parts = append(parts, fmt.Sprintf("[%d]", page))
			continue
		}
		parts = append(parts, fmt.Sprint(page))
	}
	parts = append(parts, control("›", pager.Next), control("»", pager.Last))
	return strings.Join(parts, " ")
}

func control(label string, c Control) string {
	if c.Disabled {
		return strings.Repeat(" ", len([]rune(label)))
	}
	return label
}

func renderFieldErrors(w io.Writer, fieldErrors map[string][]string) error {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	for _, field := range fields {
		for _, message := range fieldErrors[field] {
			if _, err := fmt.Fprintf(w, "%s: %s\n", field, message); err != nil {
				return err
			}
		}
	}
	return nil
}
