package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"text2phenotype.com/absa/types"
)

const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

var ErrFormat = errors.New("unknown output format")

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2a3850"))
	positiveStyle = cellStyle.Foreground(lipgloss.Color("#8BC34A"))
	negativeStyle = cellStyle.Foreground(lipgloss.Color("#e53935"))
)

// tabular is a rendered view of response values. label is the column
// colored by polarity, -1 for none.
type tabular struct {
	headers []string
	rows    [][]string
	label   int
}

func CheckFormat(format string) error {
	switch format {
	case FormatTable, FormatCSV, FormatJSON:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrFormat, format)
}

func (tab tabular) write(w io.Writer, format string, value interface{}) error {
	switch format {
	case FormatTable:
		_, err := fmt.Fprintln(w, tab.render())
		return err
	case FormatCSV:
		writer := csv.NewWriter(w)
		if err := writer.Write(tab.headers); err != nil {
			return err
		}
		if err := writer.WriteAll(tab.rows); err != nil {
			return err
		}
		return writer.Error()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(value)
	}
	return fmt.Errorf("%w: %q", ErrFormat, format)
}

func (tab tabular) render() string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(tab.headers...).
		Rows(tab.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == tab.label && row >= 0 && row < len(tab.rows):
				switch tab.rows[row][col] {
				case types.PolarityPositive.Name():
					return positiveStyle
				case types.PolarityNegative.Name():
					return negativeStyle
				}
			}
			return cellStyle
		}).
		String()
}

func WriteTokens(w io.Writer, rows []types.TokenRow, format string) error {
	tab := tabular{
		headers: []string{"TEXT", "LEMMA", "POS", "TAG", "DEP", "HEAD", "SHAPE", "ALPHA", "STOP"},
		label:   -1,
	}
	for _, row := range rows {
		tab.rows = append(tab.rows, []string{
			printable(row.Text),
			row.Lemma,
			row.Pos,
			row.Tag,
			row.Dep,
			strconv.Itoa(row.Head),
			printable(row.Shape),
			strconv.FormatBool(row.IsAlpha),
			strconv.FormatBool(row.IsStop),
		})
	}
	return tab.write(w, format, types.TokenAttributesResponse{Tokens: rows})
}

func WriteMentions(w io.Writer, sections []types.MentionSection, format string) error {
	tab := tabular{
		headers: []string{"ASPECT", "KEYWORD", "CLAUSE", "NEG", "NEU", "POS", "COMPOUND", "LABEL", "NEGATED"},
		label:   7,
	}
	for _, section := range sections {
		clause := ""
		if len(section.Clause) > 0 {
			clause, _ = section.Clause[0].(string)
		}
		negated := ""
		if section.Negated != nil {
			negated = strconv.FormatBool(*section.Negated)
		}
		tab.rows = append(tab.rows, []string{
			section.Aspect,
			section.Keyword,
			printable(clause),
			formatFloat(section.Sentiment.Neg),
			formatFloat(section.Sentiment.Neu),
			formatFloat(section.Sentiment.Pos),
			formatFloat(section.Sentiment.Compound),
			section.Label,
			negated,
		})
	}
	return tab.write(w, format, sections)
}

func WriteSummary(w io.Writer, summaries []types.AspectSummary, format string) error {
	tab := tabular{
		headers: []string{"ASPECT", "MENTIONS", "NEG", "NEU", "POS", "COMPOUND", "STD", "POSITIVE", "NEGATIVE", "NEUTRAL", "LABEL"},
		label:   10,
	}
	for _, summary := range summaries {
		tab.rows = append(tab.rows, []string{
			summary.Aspect,
			strconv.Itoa(summary.Mentions),
			formatFloat(summary.Neg),
			formatFloat(summary.Neu),
			formatFloat(summary.Pos),
			formatFloat(summary.Compound),
			formatFloat(summary.CompoundStdDev),
			formatFloat(summary.PositiveShare),
			formatFloat(summary.NegativeShare),
			formatFloat(summary.NeutralShare),
			summary.Label,
		})
	}
	return tab.write(w, format, summaries)
}

func WriteSentences(w io.Writer, scores []types.SentenceScore, format string) error {
	tab := tabular{
		headers: []string{"SENTENCE", "NEG", "NEU", "POS", "COMPOUND", "LABEL"},
		label:   5,
	}
	for _, score := range scores {
		tab.rows = append(tab.rows, []string{
			printable(score.Text),
			formatFloat(score.Sentiment.Neg),
			formatFloat(score.Sentiment.Neu),
			formatFloat(score.Sentiment.Pos),
			formatFloat(score.Sentiment.Compound),
			score.Label,
		})
	}
	return tab.write(w, format, scores)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// printable keeps table cells on one line.
func printable(text string) string {
	return strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\r`, "\t", `\t`).Replace(text)
}

// TextMentions are the mention sections of one input. File is empty for
// text given on the command line or stdin.
type TextMentions struct {
	File     string                 `json:"file,omitempty"`
	Mentions []types.MentionSection `json:"mentions"`
}

type AspectsReport struct {
	Texts   []TextMentions        `json:"texts"`
	Summary []types.AspectSummary `json:"summary"`
}

// WriteAspects writes a mentions table per input and the summary table. In
// JSON the whole report is a single document.
func WriteAspects(w io.Writer, rep AspectsReport, format string) error {
	if format == FormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rep)
	}
	for _, text := range rep.Texts {
		if len(rep.Texts) > 1 {
			if _, err := fmt.Fprintln(w, text.File); err != nil {
				return err
			}
		}
		if err := WriteMentions(w, text.Mentions, format); err != nil {
			return err
		}
	}
	return WriteSummary(w, rep.Summary, format)
}

type TextSentences struct {
	File      string                `json:"file,omitempty"`
	Sentences []types.SentenceScore `json:"sentences"`
}

// WriteTextSentences writes the sentence scores of every input. In JSON the
// inputs form a single array.
func WriteTextSentences(w io.Writer, texts []TextSentences, format string) error {
	if format == FormatJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(texts)
	}
	for _, text := range texts {
		if len(texts) > 1 {
			if _, err := fmt.Fprintln(w, text.File); err != nil {
				return err
			}
		}
		if err := WriteSentences(w, text.Sentences, format); err != nil {
			return err
		}
	}
	return nil
}
