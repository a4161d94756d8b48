package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"bokasafn/internal/bootstrap"
	"bokasafn/internal/model"
	"bokasafn/internal/repository"
)

func main() {
	ctx := context.Background()

	app, err := bootstrap.New(ctx)
	if err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("close resources failed: %v", err)
		}
	}()

	if err := seed(app); err != nil {
		app.Logger.Fatal("seed failed", zap.Error(err))
	}
}

// seed loads the catalog CSV. Each category is inserted the first time it
// appears; rows that fail (duplicate title, bad isbn13) are logged and
// skipped so a re-run completes the missing part of the catalog.
func seed(app *bootstrap.App) error {
	file, err := os.Open(app.Config.Seed.CSVPath)
	if err != nil {
		return fmt.Errorf("open csv failed: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read csv header failed: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"title", "isbn13", "author", "description", "category"} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("csv is missing the %q column", required)
		}
	}

	books := repository.NewBookRepository(app.Postgres)
	categories := repository.NewCategoryRepository(app.Postgres)
	seen := make(map[string]bool)

	var inserted, skipped int
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			app.Logger.Warn("bad csv row", zap.Int("line", line), zap.Error(err))
			skipped++
			continue
		}

		categoryName := record[columns["category"]]
		if !seen[categoryName] {
			seen[categoryName] = true
			existing, err := categories.FindByName(categoryName)
			if err != nil {
				return fmt.Errorf("look up category failed: %w", err)
			}
			if len(existing) == 0 {
				if _, err := categories.Create(categoryName); err != nil {
					app.Logger.Warn("insert category failed",
						zap.String("category", categoryName), zap.Error(err))
				}
			}
		}

		book := &model.Book{
			Title:       record[columns["title"]],
			ISBN13:      record[columns["isbn13"]],
			Author:      record[columns["author"]],
			Description: record[columns["description"]],
			Category:    categoryName,
		}
		if err := books.Create(book); err != nil {
			app.Logger.Warn("insert book failed",
				zap.Int("line", line), zap.String("title", book.Title), zap.Error(err))
			skipped++
			continue
		}
		inserted++
	}

	app.Logger.Info("seed finished", zap.Int("inserted", inserted), zap.Int("skipped", skipped))
	return nil
}
