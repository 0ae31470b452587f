package leads

import (
	"bytes"
	"testing"
	"time"

	"goldencitizen-backend/internal/api"
	"goldencitizen-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	leads := []models.Lead{
		{Reference: "ref-2", Name: "Mehmet", Email: "mehmet@example.com", Phone: "0533", Subject: api.SubjectPricing, IsRead: true, CreatedAt: created},
		{Reference: "ref-1", Name: "Ayşe", Email: "ayse@example.com", Phone: "0532", Subject: models.DefaultLeadSubject, Message: "Merhaba", CreatedAt: created},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, leads))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ExportSheet}, f.GetSheetList())
	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Referans", "Tarih", "İsim", "E-posta", "Telefon", "Konu", "Mesaj", "Okundu"}, rows[0])
	assert.Equal(t, []string{"ref-2", "2024-05-01 10:30", "Mehmet", "mehmet@example.com", "0533", api.SubjectPricing, "", "Evet"}, rows[1])
	assert.Equal(t, "Merhaba", rows[2][6])
	assert.Equal(t, "Hayır", rows[2][7])
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
