package usecase

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// 画像が登録されていない型番に使う
const PlaceholderImage = "/static/images/placeholder.jpg"

// 型番名→画像パスの初期値
func DefaultImageMap() map[string]string {
	return map[string]string{
		"Galaxy S24 Ultra":         "/static/images/s24_ultra.jpg",
		"Galaxy Z Fold 5":          "/static/images/zfold5.jpg",
		"Galaxy A54":               "/static/images/a54.jpg",
		"Galaxy Buds Pro 2":        "/static/images/buds_pro2.jpg",
		"45W USB-C Travel Adapter": "/static/images/charger_45w.jpg",
		"S24 Ultra Silicone Case":  "/static/images/silicone_case.jpg",
	}
}


type CatalogItem struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	InventoryCount int64           `json:"inventory_count"`
	ImageURL       string          `json:"image_url"`
}

type SeriesGroup struct {
	Name  string        `json:"series_name"`
	Items []CatalogItem `json:"items"`
}

type CategoryGroup struct {
	Name   string        `json:"category_name"`
	Series []SeriesGroup `json:"series"`
}

// カテゴリ→シリーズ→型番の2段グループ
type Catalog struct {
	Categories []CategoryGroup `json:"categories"`
}

type CatalogUsecase struct {
	catalog repo.CatalogRepository
	images  map[string]string
}

// imagesがnilなら初期値を使う
func NewCatalogUsecase(catalog repo.CatalogRepository, images map[string]string) *CatalogUsecase {
	if images == nil {
		images = DefaultImageMap()
	}
	return &CatalogUsecase{
		catalog: catalog,
		images:  images,
	}
}

// Browse は在庫のある型番をカテゴリ・シリーズごとにまとめて返す。
// 並びはカテゴリ名→シリーズ名→型番名の昇順
func (u *CatalogUsecase) Browse(ctx context.Context) (Catalog, error) {
	rows, err := u.catalog.ListInStock(ctx)
	if err != nil {
		return Catalog{Categories: []CategoryGroup{}}, WrapHTTPError(http.StatusServiceUnavailable, MsgStorageUnavailable, fmt.Errorf("%w: %w", ErrStorageUnavailable, err))
	}
	return groupCatalog(rows, u.ImageURL), nil
}

// 型番名から画像パス
func (u *CatalogUsecase) ImageURL(modelName string) string {
	if p, ok := u.images[modelName]; ok && p != "" {
		return p
	}
	return PlaceholderImage
}

func groupCatalog(rows []model.CatalogRow, imageURL func(string) string) Catalog {
	inStock := make([]model.CatalogRow, 0, len(rows))
	for _, r := range rows {
		if r.InventoryCount > 0 {
			inStock = append(inStock, r)
		}
	}
	sort.SliceStable(inStock, func(i, j int) bool {
		a, b := inStock[i], inStock[j]
		if a.CategoryName != b.CategoryName {
			return a.CategoryName < b.CategoryName
		}
		if a.SeriesName != b.SeriesName {
			return a.SeriesName < b.SeriesName
		}
		return a.ModelName < b.ModelName
	})

	out := Catalog{Categories: []CategoryGroup{}}
	for _, r := range inStock {
		n := len(out.Categories)
		if n == 0 || out.Categories[n-1].Name != r.CategoryName {
			out.Categories = append(out.Categories, CategoryGroup{Name: r.CategoryName})
			n++
		}
		cat := &out.Categories[n-1]

		m := len(cat.Series)
		if m == 0 || cat.Series[m-1].Name != r.SeriesName {
			cat.Series = append(cat.Series, SeriesGroup{Name: r.SeriesName})
			m++
		}
		series := &cat.Series[m-1]

		series.Items = append(series.Items, CatalogItem{
			ID:             r.ModelID,
			Name:           r.ModelName,
			Price:          r.Price,
			InventoryCount: r.InventoryCount,
			ImageURL:       imageURL(r.ModelName),
		})
	}
	return out
}
