package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/shopspring/decimal"
)

// CSVBandsFormatter emits one row per simulated year
type CSVBandsFormatter struct{}

func (CSVBandsFormatter) Name() string { return "csv" }

func (CSVBandsFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "P10", "P50", "P90"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, b := range report.Result.PercentileBands {
		row := []string{
			strconv.Itoa(b.Age),
			decimal.NewFromFloat(b.P10).StringFixed(2),
			decimal.NewFromFloat(b.P50).StringFixed(2),
			decimal.NewFromFloat(b.P90).StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
