package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	// headerScanWindow bounds how deep into the sheet the header row is searched for.
	headerScanWindow = 10

	// dateSerialThreshold separates Excel date serials from plain month numbers.
	// Serial 20000 corresponds to late 1954, far below any payroll month here.
	dateSerialThreshold = 20000

	// defaultMonthKey is applied when a row carries no month cell at all.
	defaultMonthKey = "2025-01"
)

var (
	yearMonthRe = regexp.MustCompile(`(\d{4})[-./](\d{1,2})`)
	bareDigitRe = regexp.MustCompile(`^\d{1,2}$`)
)

// normalizeMonth coerces a raw month cell into the YYYY-MM key used across the
// store. The second return reports whether the value was recognized; an
// unrecognized non-empty value is passed through unchanged so the row is not
// lost, and the caller decides how loudly to complain.
func normalizeMonth(raw string, defaultYear int) (string, bool) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return defaultMonthKey, true
	}

	if serial, err := strconv.ParseFloat(v, 64); err == nil && serial > dateSerialThreshold {
		if t, convErr := excelize.ExcelDateToTime(serial, false); convErr == nil {
			return t.Format("2006-01"), true
		}
	}

	if m := yearMonthRe.FindStringSubmatch(v); m != nil {
		month, _ := strconv.Atoi(m[2])
		return fmt.Sprintf("%s-%02d", m[1], month), true
	}

	if bareDigitRe.MatchString(v) {
		if n, _ := strconv.Atoi(v); n >= 1 && n <= 12 {
			return fmt.Sprintf("%04d-%02d", defaultYear, n), true
		}
	}

	return v, false
}

// parseAmount reads a numeric cell, tolerating thousands separators. Anything
// that still fails to parse counts as zero rather than failing the row.
func parseAmount(raw string) float64 {
	v := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
