package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/noah-isme/vegshop/internal/money"
)

// FileRepository loads products from a CSV file with a "Product,Price"
// header row. The parsed catalog is cached per path so repeated lookups in
// one run do not re-read the file.
type FileRepository struct {
	mu       sync.Mutex
	path     string
	loaded   []Product
	loadedAt string
}

// NewFileRepository creates a repository reading from the given path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// SetPath points the repository at a different file, invalidating the cache
// when the path changes.
func (r *FileRepository) SetPath(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = path
}

// All returns every product in file order.
func (r *FileRepository) All(ctx context.Context) ([]Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loaded != nil && r.loadedAt == r.path {
		return r.loaded, nil
	}
	products, err := parseProductsFile(r.path)
	if err != nil {
		return nil, err
	}
	r.loaded = products
	r.loadedAt = r.path
	return products, nil
}

// FindByName resolves a product case-insensitively.
func (r *FileRepository) FindByName(ctx context.Context, name string) (Product, error) {
	products, err := r.All(ctx)
	if err != nil {
		return Product{}, err
	}
	if p, ok := FindByName(products, name); ok {
		return p, nil
	}
	return Product{}, &NotFoundError{Name: name}
}

// Ping reports whether the catalog file is readable. Used by readiness probes.
func (r *FileRepository) Ping(ctx context.Context) error {
	r.mu.Lock()
	path := r.path
	r.mu.Unlock()
	_, err := os.Stat(path)
	return err
}

func parseProductsFile(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open products file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var products []Product
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read products file: %w", err)
		}
		if header {
			header = false
			continue
		}
		if len(record) < 2 {
			continue
		}
		name := strings.TrimSpace(record[0])
		raw := strings.TrimSpace(record[1])
		if name == "" {
			continue
		}
		price, err := money.Parse(raw)
		if err != nil || price < 0 {
			return nil, &InvalidPriceError{Name: name, Raw: raw}
		}
		product, err := NewProduct(name, price)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}
