package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"repouso-data/internal/domain"
	"repouso-data/internal/repository"
	"repouso-data/internal/schema"

	"github.com/xuri/excelize/v2"
)

// ExportService XLSX exports for the console's download buttons.
type ExportService interface {
	EvolutionsXLSX(ctx context.Context, filters repository.EvolutionFilters) ([]byte, error)
	ResidentsXLSX(ctx context.Context) ([]byte, error)
}

type exportService struct {
	evolutions EvolutionService
	residents  repository.ResidentsRepository
	catalog    *schema.Catalog
}

func NewExportService(evolutions EvolutionService, residents repository.ResidentsRepository, catalog *schema.Catalog) ExportService {
	return &exportService{
		evolutions: evolutions,
		residents:  residents,
		catalog:    catalog,
	}
}

var evolutionExportHeader = []string{
	"Data",
	"Horário",
	"Residente",
	"Registrado por",
	"Campo",
	"Valor",
}

// EvolutionsXLSX one row per filled field of each matching record,
// newest record first, fields in catalog order.
func (s *exportService) EvolutionsXLSX(ctx context.Context, filters repository.EvolutionFilters) ([]byte, error) {
	items, err := s.evolutions.ListEvolutions(ctx, filters)
	if err != nil {
		return nil, err
	}

	var rows [][]any
	for _, item := range items {
		for _, cat := range s.catalog.ListAll() {
			value, ok := item.Values[cat.ID]
			if !ok {
				continue
			}
			rows = append(rows, []any{
				item.Date,
				item.Time,
				item.ResidentName,
				item.AuthorName,
				cat.Title,
				displayValue(value),
			})
		}
	}
	return buildSheet("Evoluções", evolutionExportHeader, rows)
}

var residentExportHeader = []string{
	"Nome",
	"Data de nascimento",
	"Data de admissão",
	"Quarto",
	"Situação",
}

func (s *exportService) ResidentsXLSX(ctx context.Context) ([]byte, error) {
	residents, err := s.residents.ListResidents(ctx, repository.ResidentFilters{})
	if err != nil {
		return nil, err
	}

	var rows [][]any
	for _, res := range residents {
		birth, admission := "", ""
		if res.BirthDate != nil {
			birth = res.BirthDate.Format("2006-01-02")
		}
		if res.AdmissionDate != nil {
			admission = res.AdmissionDate.Format("2006-01-02")
		}
		rows = append(rows, []any{res.FullName, birth, admission, res.Room, res.Status})
	}
	return buildSheet("Residentes", residentExportHeader, rows)
}

// displayValue human-readable cell text per value kind.
func displayValue(v domain.FieldValue) string {
	switch v.Kind {
	case domain.KindBool:
		if v.Bool {
			return "Sim"
		}
		return "Não"
	case domain.KindRating:
		return fmt.Sprintf("%d/5", v.Rating)
	case domain.KindMultiOption:
		return strings.Join(v.Multi, ", ")
	default:
		return v.Str
	}
}

func buildSheet(sheetName string, headers []string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so Close only on the error paths

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	_ = f.Close()
	return buf.Bytes(), nil
}
