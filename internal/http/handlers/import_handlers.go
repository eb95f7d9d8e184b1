package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/muhammaduss/Warehold/internal/models"
	repo "github.com/muhammaduss/Warehold/internal/repo"
)

type csvRow struct {
	Title       string
	Description string
	Price       int
	Count       int
}

// requiredColumns must all be present in the CSV header. The description
// column is optional.
var requiredColumns = []string{"title", "price", "count"}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	column := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}
		rows = append(rows, csvRow{
			Title:       column(record, "title"),
			Description: column(record, "description"),
			Price:       parseInt(column(record, "price")),
			Count:       parseInt(column(record, "count")),
		})
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("missing title")
	}
	if r.Price <= 0 {
		return errors.New("invalid price")
	}
	if r.Count < 0 {
		return errors.New("invalid count")
	}
	return nil
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// importRow creates or updates one product and returns whether it counted as
// imported. Stock changes go through the movement log like manual adjustments.
func importRow(rec csvRow, mode string, rowNum int) (bool, *ProductValidationError) {
	existing, err := productRepo.GetByTitle(rec.Title)
	switch {
	case err == nil:
		if mode == "skip" {
			return false, &ProductValidationError{Description: fmt.Sprintf("row %d: product '%s' already exists", rowNum, rec.Title)}
		}
		delta := rec.Count - existing.Count
		existing.Description = rec.Description
		existing.Price = rec.Price
		existing.Count = rec.Count
		existing.UpdatedAt = nowRFC3339()
		if _, err := productRepo.Update(existing); err != nil {
			return false, &ProductValidationError{Description: fmt.Sprintf("row %d: failed to update '%s'", rowNum, rec.Title)}
		}
		if delta != 0 && movementRepo != nil {
			_ = movementRepo.Log(existing.ID, delta)
		}
		return true, nil

	case errors.Is(err, repo.ErrProductNotFound):
		created, err := productRepo.Create(models.Product{
			Title:       rec.Title,
			Description: rec.Description,
			Price:       rec.Price,
			Count:       rec.Count,
			CreatedAt:   nowRFC3339(),
			UpdatedAt:   nowRFC3339(),
		})
		if err != nil {
			return false, &ProductValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)}
		}
		if created.Count != 0 && movementRepo != nil {
			_ = movementRepo.Log(created.ID, created.Count)
		}
		return true, nil

	default:
		return false, &ProductValidationError{Description: fmt.Sprintf("row %d: lookup failed for '%s'", rowNum, rec.Title)}
	}
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Expects columns title, price, count and optionally description.
// @Description Mode "skip" leaves existing titles untouched, "update" overwrites them.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /products/import [post]
// @Security BearerAuth
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var imported int
	var errorsList []ProductValidationError

	for i, rec := range records {
		rowNum := i + 2 // header is row 1

		if err := validateRow(rec); err != nil {
			errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}

		ok, rowErr := importRow(rec, mode, rowNum)
		if rowErr != nil {
			errorsList = append(errorsList, *rowErr)
			continue
		}
		if ok {
			imported++
		}
	}

	err = writeJSON(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})

	if err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}
