package booking

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExportBookingsWorkbook(t *testing.T) {
	exporter := NewBookingExporter()

	views := []BookingView{
		{
			ID:          primitive.NewObjectID(),
			Name:        "Jane Doe",
			Email:       "jane@example.com",
			Phone:       "5551234",
			ServiceType: &ResourceRef{Name: "Counselling", Status: true},
			ProgramType: &ResourceRef{Name: "Toddler Care", Status: true},
			Message:     "Please call back",
			Status:      "pending",
			CreatedAt:   time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:      primitive.NewObjectID(),
			Name:    "No Refs",
			Email:   "norefs@example.com",
			Phone:   "5550000",
			Message: "dangling",
			Status:  "confirmed",
		},
	}

	data, err := exporter.Export(views)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "Jane Doe", rows[1][0])
	assert.Equal(t, "Counselling", rows[1][3])
	assert.Equal(t, "Toddler Care", rows[1][4])

	// Missing references render as blanks, not errors.
	assert.Equal(t, "No Refs", rows[2][0])
}

func TestExportEmptySet(t *testing.T) {
	exporter := NewBookingExporter()

	data, err := exporter.Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, exportHeaders, rows[0])
}
