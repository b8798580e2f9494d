package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// カタログYAMLの形
type File struct {
	// 型番名→画像パス
	Images     map[string]string `yaml:"images"`
	Categories []Category        `yaml:"categories"`
}

type Category struct {
	Name   string   `yaml:"name"`
	Series []Series `yaml:"series"`
}

type Series struct {
	Name   string  `yaml:"name"`
	Models []Model `yaml:"models"`
}

type Model struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"` // "999.99"
	Stock int64  `yaml:"stock"`
}

func (m Model) price() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(m.Price))
	if err != nil {
		return decimal.Zero, fmt.Errorf("price of %q must be decimal: %w", m.Name, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("price of %q must be >= 0", m.Name)
	}
	return d, nil
}

// 投入件数
type Result struct {
	Categories int
	Series     int
	Models     int
}

func Load(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return File{}, fmt.Errorf("parse catalog file: %w", err)
	}
	if err := f.validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

func (f File) validate() error {
	seen := map[string]struct{}{}
	for _, c := range f.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("category name is required")
		}
		for _, s := range c.Series {
			if strings.TrimSpace(s.Name) == "" {
				return fmt.Errorf("series name is required (category %q)", c.Name)
			}
			for _, m := range s.Models {
				if strings.TrimSpace(m.Name) == "" {
					return fmt.Errorf("model name is required (series %q)", s.Name)
				}
				if _, dup := seen[m.Name]; dup {
					return fmt.Errorf("duplicate model %q", m.Name)
				}
				seen[m.Name] = struct{}{}
				if _, err := m.price(); err != nil {
					return err
				}
				if m.Stock < 0 {
					return fmt.Errorf("stock of %q must be >= 0", m.Name)
				}
			}
		}
	}
	return nil
}

// ImageMap は初期値にYAMLのimagesを上書きしたものを返す
func (f File) ImageMap(defaults map[string]string) map[string]string {
	out := make(map[string]string, len(defaults)+len(f.Images))
	for k, v := range defaults {
		out[k] = v
	}
	for k, v := range f.Images {
		out[k] = v
	}
	return out
}

// Apply はカタログと在庫を投入する。何度流しても同じ状態になる
func Apply(ctx context.Context, products repo.ProductRepository, f File) (Result, error) {
	var res Result
	for _, c := range f.Categories {
		cat, err := products.UpsertCategory(ctx, c.Name)
		if err != nil {
			return res, fmt.Errorf("category %q: %w", c.Name, err)
		}
		res.Categories++

		for _, s := range c.Series {
			series, err := products.UpsertSeries(ctx, cat.ID, s.Name)
			if err != nil {
				return res, fmt.Errorf("series %q: %w", s.Name, err)
			}
			res.Series++

			for _, m := range s.Models {
				price, err := m.price()
				if err != nil {
					return res, err
				}
				pm, err := products.UpsertModel(ctx, model.ProductModel{
					SeriesID: series.ID,
					Name:     m.Name,
					Price:    price,
				})
				if err != nil {
					return res, fmt.Errorf("model %q: %w", m.Name, err)
				}
				if err := products.SetStockWithAdjustment(ctx, pm.ID, m.Stock, model.AdjustmentReasonSeed); err != nil {
					return res, fmt.Errorf("stock of %q: %w", m.Name, err)
				}
				res.Models++
			}
		}
	}
	return res, nil
}
