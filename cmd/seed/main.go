package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yasminebk/beautyuniverse-backend/config"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/model"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/repository"
	"github.com/yasminebk/beautyuniverse-backend/internal/db"
)

// Imports the product catalog from an xlsx workbook. Expected columns:
// name, name_ar, description, description_ar, price, original_price,
// category, category_ar, image_url, is_new, is_sale, stock
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	productRepo := repository.NewProductRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, skipped, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Products to import: %d (skipped rows: %d)\n", len(products), skipped)

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	imported := 0
	for i := range products {
		if err := productRepo.Create(&products[i]); err != nil {
			fmt.Printf("Failed to import %q: %v\n", products[i].Name, err)
			continue
		}
		imported++
	}

	fmt.Printf("Import completed: %d/%d products\n", imported, len(products))
}

func readProductsFromXLSX(filePath string) ([]model.Product, int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("no data found in XLSX file")
	}

	var products []model.Product
	seen := make(map[string]bool)
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			// Header row
			continue
		}
		if len(row) < 7 {
			skipped++
			continue
		}

		name := strings.TrimSpace(cell(row, 0))
		nameAr := strings.TrimSpace(cell(row, 1))
		category := model.ProductCategory(strings.TrimSpace(cell(row, 6)))

		if name == "" || !model.ValidCategory(category) {
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(cell(row, 4)), 64)
		if err != nil || price <= 0 {
			skipped++
			continue
		}

		var originalPrice *float64
		if raw := strings.TrimSpace(cell(row, 5)); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil && v > price {
				originalPrice = &v
			}
		}

		// Deduplicate on the French name
		if seen[name] {
			skipped++
			continue
		}
		seen[name] = true

		stock, _ := strconv.Atoi(strings.TrimSpace(cell(row, 11)))

		products = append(products, model.Product{
			Name:          name,
			NameAr:        nameAr,
			Description:   strings.TrimSpace(cell(row, 2)),
			DescriptionAr: strings.TrimSpace(cell(row, 3)),
			Price:         price,
			OriginalPrice: originalPrice,
			Category:      category,
			CategoryAr:    strings.TrimSpace(cell(row, 7)),
			ImageURL:      strings.TrimSpace(cell(row, 8)),
			IsNew:         parseBool(cell(row, 9)),
			IsSale:        originalPrice != nil || parseBool(cell(row, 10)),
			IsActive:      true,
			Stock:         stock,
		})
	}

	return products, skipped, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "oui":
		return true
	}
	return false
}
