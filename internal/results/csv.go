package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

var runHeader = []string{"model", "run_id", "step", "entropy_bits"}

var summaryHeader = []string{
	"model", "step", "entropy_bits_mean", "entropy_bits_std",
	"entropy_bits_lo", "entropy_bits_hi",
}

// WriteRunCSV writes per-run rows with the canonical header.
func WriteRunCSV(w io.Writer, rows []RunRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(runHeader); err != nil {
		return fmt.Errorf("write run header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Model,
			row.RunID,
			strconv.Itoa(row.Step),
			formatBits(row.Bits),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write run row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadRunCSV parses per-run rows, validating the header.
func ReadRunCSV(r io.Reader) ([]RunRow, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read run header: %w", err)
	}
	if err := matchHeader(header, runHeader); err != nil {
		return nil, err
	}
	var rows []RunRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read run row: %w", err)
		}
		step, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("parse step %q: %w", record[2], err)
		}
		bits, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("parse entropy_bits %q: %w", record[3], err)
		}
		rows = append(rows, RunRow{
			Model: record[0],
			RunID: record[1],
			Step:  step,
			Bits:  bits,
		})
	}
	return rows, nil
}

// WriteSummaryCSV writes summary rows with the canonical header.
func WriteSummaryCSV(w io.Writer, rows []SummaryRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(summaryHeader); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Model,
			strconv.Itoa(row.Step),
			formatBits(row.Mean),
			formatBits(row.Std),
			formatBits(row.Lo),
			formatBits(row.Hi),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadSummaryCSV parses summary rows, validating the header.
func ReadSummaryCSV(r io.Reader) ([]SummaryRow, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read summary header: %w", err)
	}
	if err := matchHeader(header, summaryHeader); err != nil {
		return nil, err
	}
	var rows []SummaryRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read summary row: %w", err)
		}
		step, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("parse step %q: %w", record[1], err)
		}
		values := make([]float64, 4)
		for i, column := range record[2:6] {
			value, err := strconv.ParseFloat(column, 64)
			if err != nil {
				return nil, fmt.Errorf("parse %s %q: %w", summaryHeader[i+2], column, err)
			}
			values[i] = value
		}
		rows = append(rows, SummaryRow{
			Model: record[0],
			Step:  step,
			Mean:  values[0],
			Std:   values[1],
			Lo:    values[2],
			Hi:    values[3],
		})
	}
	return rows, nil
}

// ReadRunCSVFile loads per-run rows from a file path.
func ReadRunCSVFile(path string) ([]RunRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open runs csv: %w", err)
	}
	defer f.Close()
	return ReadRunCSV(f)
}

// ReadSummaryCSVFile loads summary rows from a file path.
func ReadSummaryCSVFile(path string) ([]SummaryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open summary csv: %w", err)
	}
	defer f.Close()
	return ReadSummaryCSV(f)
}

func matchHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("unexpected header %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("unexpected header column %q, want %q", got[i], want[i])
		}
	}
	return nil
}

func formatBits(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}
