// Package purchase loads the purchased-quantity list a checkout starts from.
package purchase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Item is one purchased product name and its desired quantity. Names are not
// yet resolved against the catalog at this stage.
type Item struct {
	Product  string
	Quantity int
}

// InvalidRowError is returned when a purchase row carries a non-positive or
// unparseable quantity.
type InvalidRowError struct {
	Product string
	Raw     string
}

func (e *InvalidRowError) Error() string {
	return fmt.Sprintf("invalid quantity %q for product %q", e.Raw, e.Product)
}

// Source yields the purchase list for a checkout.
type Source interface {
	Items(ctx context.Context) ([]Item, error)
}

// FileSource reads purchases from a headerless CSV file of
// "Product,Quantity" rows. Duplicate product names merge case-insensitively
// into one entry, keeping first-seen order.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading from the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Items parses the purchase file.
func (s *FileSource) Items(ctx context.Context) ([]Item, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open purchase file: %w", err)
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) ([]Item, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var items []Item
	index := make(map[string]int)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read purchase file: %w", err)
		}
		if len(record) < 2 {
			continue
		}
		name := strings.TrimSpace(record[0])
		raw := strings.TrimSpace(record[1])
		if name == "" {
			continue
		}
		qty, err := strconv.Atoi(raw)
		if err != nil || qty <= 0 {
			return nil, &InvalidRowError{Product: name, Raw: raw}
		}
		key := strings.ToLower(name)
		if i, ok := index[key]; ok {
			items[i].Quantity += qty
			continue
		}
		index[key] = len(items)
		items = append(items, Item{Product: name, Quantity: qty})
	}
	return items, nil
}
