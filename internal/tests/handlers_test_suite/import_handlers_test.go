package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/muhammaduss/Warehold/internal/http"
	handler "github.com/muhammaduss/Warehold/internal/http/handlers"
	"github.com/muhammaduss/Warehold/internal/repo"
)

func importCSV(r http.Handler, csvContent string) *httptest.ResponseRecorder {
	buf, contentType := multipartCSV(csvContent, "products.csv")
	req := httptest.NewRequest(http.MethodPost, "/products/import", buf)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportProductsHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllMovements)
	r := api.NewRouter()

	csv := "title,description,price,count\napples,some tasty apples,40,34\nbananas,ripe bananas,25,12\n"
	w := importCSV(r, csv)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedProductsCount != 2 {
		t.Errorf("expected 2 imported products, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %+v", result.Errors)
	}

	// initial stock intake shows up in the movement log
	apples, err := productRepo.GetByTitle("apples")
	if err != nil {
		t.Fatalf("imported product missing: %v", err)
	}
	logged, total, err := movementRepo.GetByProductID(apples.ID, repo.MovementFilter{})
	if err != nil {
		t.Fatalf("movement lookup failed: %v", err)
	}
	if total != 1 || logged[0].Delta != 34 {
		t.Errorf("expected one +34 intake movement, got %+v", logged)
	}
}

func TestImportProductsHandler_PartialErrors(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllMovements)
	r := api.NewRouter()

	csv := "title,description,price,count\napples,fruit,40,34\n,missing title,10,5\npears,fruit,0,3\n"
	w := importCSV(r, csv)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedProductsCount != 1 {
		t.Errorf("expected 1 imported product, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 row errors, got %+v", result.Errors)
	}
}

func TestImportProductsHandler_SkipExisting(t *testing.T) {
	t.Cleanup(clearAllProducts)
	t.Cleanup(clearAllMovements)
	r := api.NewRouter()

	createProduct(r, handler.ProductRequest{Title: "apples", Description: "fruit", Price: 40, Count: 34})

	csv := "title,description,price,count\napples,duplicate,45,10\n"
	w := importCSV(r, csv)

	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.ImportedProductsCount != 0 {
		t.Errorf("expected 0 imported products in skip mode, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error for the existing product, got %+v", result.Errors)
	}
}
