package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/application/usecases/queries"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/export"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	now := time.Date(2025, time.March, 7, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "orders_export_2025-03-07.csv", export.Filename(now))
}

func TestOrdersCSVEmptyListWritesHeaderOnly(t *testing.T) {
	var buf strings.Builder

	err := export.OrdersCSV(&buf, nil)
	require.NoError(t, err)

	assert.Equal(t, "Order ID,Date,Customer,Salesman,Role,Total,Status\n", buf.String())
}

func TestOrdersCSVRendersRows(t *testing.T) {
	id := kernel.NewUUID()
	rows := []queries.GetOrdersExportQueryResponse{
		{
			ID:           id,
			OrderDate:    time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC),
			CustomerName: "John Smith",
			SalesmanName: "jane",
			Role:         "sales_man",
			Total:        decimal.RequireFromString("156.93"),
			Status:       "Pending",
		},
	}

	var buf strings.Builder
	err := export.OrdersCSV(&buf, rows)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Order ID,Date,Customer,Salesman,Role,Total,Status", lines[0])
	assert.Equal(t, id.String()+",2025-03-07,John Smith,jane,sales_man,156.93,Pending", lines[1])
}

func TestOrdersCSVQuotesFreeTextFields(t *testing.T) {
	rows := []queries.GetOrdersExportQueryResponse{
		{
			ID:           kernel.NewUUID(),
			OrderDate:    time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC),
			CustomerName: `Smith, John "JJ"`,
			SalesmanName: "jane",
			Role:         "owner",
			Total:        decimal.RequireFromString("12.00"),
			Status:       "Completed",
		},
	}

	var buf strings.Builder
	err := export.OrdersCSV(&buf, rows)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"Smith, John ""JJ"""`)
}
