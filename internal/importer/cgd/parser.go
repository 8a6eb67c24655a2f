package cgd

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/encoding"
	"github.com/MrJamesThe3rd/tally/internal/matching"
)

const dateLayout = "02-01-2006"

var ErrUnknownLayout = errors.New("no CGD layout matched: expected conta, extrato or cartão columns")

// Parser reads Caixa Geral de Depósitos CSV exports into bank-feed rows.
// The export flavour is recognised from its header row; preamble lines above
// the header and footer lines below the data are ignored.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]matching.FeedRow, error) {
	utf8r, charset, err := encoding.Decode(r)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	l, cols, headerIdx := detectLayout(records)
	if l == nil {
		return nil, ErrUnknownLayout
	}

	slog.Debug("parsing bank export", "layout", l.name, "charset", charset, "header_row", headerIdx+1)

	return parseRecords(l, cols, records[headerIdx+1:], headerIdx)
}

type colIndex map[string]int

func detectLayout(records [][]string) (*layout, colIndex, int) {
	for rowIdx, record := range records {
		cols := make(colIndex, len(record))

		for i, cell := range record {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range layouts {
			if hasColumns(cols, layouts[i].columns()) {
				return &layouts[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func hasColumns(cols colIndex, names []string) bool {
	for _, name := range names {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRecords skips rows without a parseable date or a non-zero amount.
// headerIdx is the 0-based header position, used for error messages.
func parseRecords(l *layout, cols colIndex, records [][]string, headerIdx int) ([]matching.FeedRow, error) {
	var rows []matching.FeedRow

	for i, record := range records {
		rowNum := headerIdx + i + 2

		date, ok := parseDate(cell(record, cols[l.dateCol]))
		if !ok {
			continue
		}

		desc := cell(record, cols[l.descCol])
		if desc == "" {
			return nil, fmt.Errorf("row %d: missing description", rowNum)
		}

		amount, typ, ok := l.amount(cols, record)
		if !ok {
			continue
		}

		rows = append(rows, matching.FeedRow{
			Date:        date,
			Amount:      amount,
			Type:        typ,
			Description: desc,
		})
	}

	return rows, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// amount returns the positive amount and the bank direction of a record.
func (l *layout) amount(cols colIndex, record []string) (decimal.Decimal, matching.Type, bool) {
	if l.amountMode == amountSplit {
		if d, ok := nonZero(cell(record, cols[l.debitCol])); ok {
			return d.Abs(), matching.TypeDebit, true
		}

		if d, ok := nonZero(cell(record, cols[l.creditCol])); ok {
			return d.Abs(), matching.TypeCredit, true
		}

		return decimal.Zero, "", false
	}

	d, ok := nonZero(cell(record, cols[l.amountCol]))
	if !ok {
		return decimal.Zero, "", false
	}

	if d.IsNegative() {
		return d.Neg(), matching.TypeDebit, true
	}

	return d, matching.TypeCredit, true
}

func nonZero(s string) (decimal.Decimal, bool) {
	if s == "" {
		return decimal.Zero, false
	}

	d, err := parseAmount(s)
	if err != nil || d.IsZero() {
		return decimal.Zero, false
	}

	return d, true
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}

	return strings.TrimSpace(record[idx])
}
