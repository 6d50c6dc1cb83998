// Package export renders the order list as CSV. The same rendering backs
// the HTTP download and the nightly export job, so both produce identical
// files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/application/usecases/queries"
)

// ordersHeader is the fixed column set of the export file. The header is
// written even for an empty order list, so a consumer always sees the
// schema.
var ordersHeader = []string{"Order ID", "Date", "Customer", "Salesman", "Role", "Total", "Status"}

// Filename returns the dated export file name, orders_export_YYYY-MM-DD.csv.
func Filename(now time.Time) string {
	return fmt.Sprintf("orders_export_%s.csv", now.Format("2006-01-02"))
}

// OrdersCSV writes the export rows to w in CSV format. Free-text fields
// (names) are quoted by the encoder as needed, so commas and quotes in
// customer names survive the round trip.
func OrdersCSV(w io.Writer, rows []queries.GetOrdersExportQueryResponse) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ordersHeader); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.ID.String(),
			row.OrderDate.Format("2006-01-02"),
			row.CustomerName,
			row.SalesmanName,
			row.Role,
			row.Total.StringFixed(2),
			row.Status,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
