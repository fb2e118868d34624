package sheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"

	// serial of 9999-12-31 in the 1900 date system
	maxExcelSerial = 2958465
)

// NormalizeDate renders an Excel serial date (1900 date system) as 2006-01-02, or
// 2006-01-02 15:04:05 when it carries a time. Text cells are returned trimmed and otherwise as written.
func NormalizeDate(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	if serial, err := strconv.ParseFloat(v, 64); err == nil {
		if serial < 1 || serial > maxExcelSerial {
			return v
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return v
		}
		return formatDate(t)
	}
	return v
}

func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format(dateLayout)
	}
	return t.Format(dateTimeLayout)
}
