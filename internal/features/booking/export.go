package booking

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// BookingExporter renders bookings into an xlsx workbook.
type BookingExporter struct{}

func NewBookingExporter() *BookingExporter {
	return &BookingExporter{}
}

var exportHeaders = []string{"Name", "Email", "Phone", "Service", "Program", "Message", "Status", "Created At"}

func (e *BookingExporter) Export(bookings []BookingView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, b := range bookings {
		serviceName := ""
		if b.ServiceType != nil {
			serviceName = b.ServiceType.Name
		}
		programName := ""
		if b.ProgramType != nil {
			programName = b.ProgramType.Name
		}

		values := []interface{}{
			b.Name,
			b.Email,
			b.Phone,
			serviceName,
			programName,
			b.Message,
			b.Status,
			b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	// Freeze the header row.
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
