package services

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	catalogdomain "github.com/ghuser/porcelarte/services/catalog/domain"
	"github.com/ghuser/porcelarte/services/catalog/domain/models"
)

const floorCSVFields = 11

// FloorCSVRecord is one decoded data row together with its physical line number.
type FloorCSVRecord struct {
	Line  int
	Input models.FloorProductInput
}

// DecodeFloorCSV parses a floor product document. The first line must equal
// FloorCSVHeader exactly, otherwise ErrImportHeaderMismatch is returned and
// nothing is decoded. Rows that fail validation are reported as RowErrors and
// do not stop the remaining rows. Blank lines are skipped.
func DecodeFloorCSV(text string) ([]FloorCSVRecord, []*catalogdomain.RowError, error) {
	text = strings.TrimSpace(text)
	header, body, _ := strings.Cut(text, "\n")
	if strings.TrimRight(header, "\r") != catalogdomain.FloorCSVHeader {
		return nil, nil, catalogdomain.ErrImportHeaderMismatch
	}

	r := csv.NewReader(strings.NewReader(body))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var (
		records []FloorCSVRecord
		rowErrs []*catalogdomain.RowError
	)
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				rowErrs = append(rowErrs, &catalogdomain.RowError{
					Line:   pe.StartLine + 1,
					Reason: "Erro ao processar - " + pe.Err.Error(),
				})
				continue
			}
			return nil, nil, err
		}

		line, _ := r.FieldPos(0)
		line++ // the header occupies line 1

		input, reason := decodeFloorRow(fields)
		if reason != "" {
			rowErrs = append(rowErrs, &catalogdomain.RowError{Line: line, Reason: reason})
			continue
		}
		records = append(records, FloorCSVRecord{Line: line, Input: input})
	}
	return records, rowErrs, nil
}

func decodeFloorRow(fields []string) (models.FloorProductInput, string) {
	if len(fields) != floorCSVFields {
		return models.FloorProductInput{}, "Número incorreto de campos"
	}

	sku := stripQuotes(fields[0])
	name := stripQuotes(fields[1])
	if sku == "" || name == "" {
		return models.FloorProductInput{}, "SKU e nome são obrigatórios"
	}

	finishRaw := strings.TrimSpace(fields[6])
	if finishRaw != "fosco" && finishRaw != "polido" {
		return models.FloorProductInput{}, "Acabamento deve ser 'fosco' ou 'polido'"
	}
	finish, _ := models.ParseFinish(finishRaw)

	sideA, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return models.FloorProductInput{}, "Valor numérico inválido em dimensao_cm_ladoA"
	}
	sideB, err := decimal.NewFromString(strings.TrimSpace(fields[3]))
	if err != nil {
		return models.FloorProductInput{}, "Valor numérico inválido em dimensao_cm_ladoB"
	}
	pieces, err := strconv.Atoi(strings.TrimSpace(fields[4]))
	if err != nil {
		return models.FloorProductInput{}, "Valor numérico inválido em pecas_por_caixa"
	}
	price, err := decimal.NewFromString(strings.TrimSpace(fields[5]))
	if err != nil {
		return models.FloorProductInput{}, "Valor numérico inválido em preco_m2"
	}
	stock, err := strconv.Atoi(strings.TrimSpace(fields[8]))
	if err != nil {
		return models.FloorProductInput{}, "Valor numérico inválido em estoque_caixas"
	}
	minStock, err := strconv.Atoi(strings.TrimSpace(fields[9]))
	if err != nil {
		return models.FloorProductInput{}, "Valor numérico inválido em estoque_min_caixas"
	}

	return models.FloorProductInput{
		SKU:             sku,
		Name:            name,
		SideACm:         sideA,
		SideBCm:         sideB,
		PiecesPerBox:    pieces,
		PricePerM2:      price,
		Finish:          finish,
		CollectionColor: stripQuotes(fields[7]),
		StockBoxes:      stock,
		MinStockBoxes:   minStock,
		Active:          strings.ToLower(strings.TrimSpace(fields[10])) == "true",
	}, ""
}

func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

// EncodeFloorCSV writes the header plus one row per product in the given
// order. Name and collection are always quoted.
func EncodeFloorCSV(products []*models.FloorProduct) string {
	var b strings.Builder
	b.WriteString(catalogdomain.FloorCSVHeader)
	for _, p := range products {
		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			p.SKU,
			quoteField(p.Name),
			p.SideACm.String(),
			p.SideBCm.String(),
			strconv.Itoa(p.PiecesPerBox),
			p.PricePerM2.String(),
			p.Finish.CSV(),
			quoteField(p.CollectionColor),
			strconv.Itoa(p.StockBoxes),
			strconv.Itoa(p.MinStockBoxes),
			strconv.FormatBool(p.Active),
		}, ","))
	}
	return b.String()
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportFileName is the download name for an export taken at t.
func ExportFileName(t time.Time, ext string) string {
	return "pisos_" + t.UTC().Format(time.DateOnly) + "." + ext
}
