package dependency

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	conlluFieldSeparator = "\t"
	conlluNumFields      = 10
	conlluEmpty          = "_"
)

type conlluRow struct {
	ID     int
	Form   string
	Lemma  string
	UPos   string
	XPos   string
	Head   int
	DepRel string
	Misc   string
}

// ReadCoNLLU reads CoNLL-U sentences. Comments, multiword rows ("1-2") and
// empty nodes ("1.1") are skipped. Offsets are taken from a TokenRange
// value in MISC when present.
func ReadCoNLLU(r io.Reader) (*Parse, error) {
	parse := &Parse{}
	var sentence []conlluRow

	flush := func() {
		base := len(parse.Tokens)
		for _, row := range sentence {
			head := base + row.ID - 1
			dep := NormalizeLabel(row.DepRel)
			if row.Head > 0 && row.Head <= len(sentence) {
				head = base + row.Head - 1
			} else {
				dep = Root
			}
			parse.Tokens = append(parse.Tokens, ParsedToken{
				Text:   row.Form,
				Lemma:  row.Lemma,
				Pos:    row.UPos,
				Tag:    row.XPos,
				Dep:    dep,
				Head:   head,
				Offset: tokenRange(row.Misc),
			})
		}
		sentence = sentence[:0]
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(strings.TrimSpace(line)) == 0 {
			flush()
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, conlluFieldSeparator)
		if len(fields) != conlluNumFields {
			return nil, fmt.Errorf("conllu line %d: expected %d fields, got %d", lineNum, conlluNumFields, len(fields))
		}
		if strings.ContainsAny(fields[0], "-.") {
			continue
		}
		row, err := parseConlluRow(fields)
		if err != nil {
			return nil, fmt.Errorf("conllu line %d: %w", lineNum, err)
		}
		if row.ID != len(sentence)+1 {
			return nil, fmt.Errorf("conllu line %d: unexpected token id %d", lineNum, row.ID)
		}
		sentence = append(sentence, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	if len(parse.Tokens) == 0 {
		return nil, ErrEmptyParse
	}
	return parse, nil
}

func parseConlluRow(fields []string) (conlluRow, error) {
	var row conlluRow
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return row, fmt.Errorf("error parsing ID field (%s): %w", fields[0], err)
	}
	row.ID = id
	row.Form = fields[1]
	row.Lemma = conlluString(fields[2])
	row.UPos = conlluString(fields[3])
	row.XPos = conlluString(fields[4])
	if head := conlluString(fields[6]); head != "" {
		row.Head, err = strconv.Atoi(head)
		if err != nil {
			return row, fmt.Errorf("error parsing HEAD field (%s): %w", fields[6], err)
		}
	}
	row.DepRel = conlluString(fields[7])
	row.Misc = conlluString(fields[9])
	return row, nil
}

func conlluString(value string) string {
	if value == conlluEmpty {
		return ""
	}
	return value
}

// tokenRange extracts the begin of "TokenRange=begin:end", -1 when absent.
func tokenRange(misc string) int {
	for _, item := range strings.Split(misc, "|") {
		if !strings.HasPrefix(item, "TokenRange=") {
			continue
		}
		bounds := strings.SplitN(strings.TrimPrefix(item, "TokenRange="), ":", 2)
		begin, err := strconv.Atoi(bounds[0])
		if err == nil {
			return begin
		}
	}
	return -1
}
