package leads

import (
	"fmt"
	"io"

	"goldencitizen-backend/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	ExportSheet       = "Başvurular"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportHeaders = []interface{}{"Referans", "Tarih", "İsim", "E-posta", "Telefon", "Konu", "Mesaj", "Okundu"}

// WriteXLSX satış ekibinin takip listesi için başvuruları tek sayfalık
// bir Excel dosyası olarak yazar. İlk satır başlıktır.
func WriteXLSX(w io.Writer, leads []models.Lead) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return fmt.Errorf("sayfa adı verilemedi: %w", err)
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &exportHeaders); err != nil {
		return fmt.Errorf("başlık yazılamadı: %w", err)
	}

	for i, l := range leads {
		read := "Hayır"
		if l.IsRead {
			read = "Evet"
		}
		row := []interface{}{
			l.Reference,
			l.CreatedAt.Format("2006-01-02 15:04"),
			l.Name,
			l.Email,
			l.Phone,
			string(l.Subject),
			l.Message,
			read,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return fmt.Errorf("%d. satır yazılamadı: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("excel dosyası yazılamadı: %w", err)
	}
	return nil
}
