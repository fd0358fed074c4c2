package db

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

// 開発用のサンプル商品
func SampleProducts() []model.Product {
	return []model.Product{
		{Name: "Wireless Headphone", Category: "Headphone", Price: 120, Description: "Noise cancelling over-ear headphone", Image: "/images/headphone.jpg", IsActive: true},
		{Name: "Smart Watch", Category: "Watch", Price: 250, Description: "Fitness tracking smart watch", Image: "/images/watch.jpg", IsActive: true},
		{Name: "Mirrorless Camera", Category: "Camera", Price: 980, Description: "24MP mirrorless camera", Image: "/images/camera.jpg", IsActive: true},
		{Name: "Bonsai Tree", Category: "Nature", Price: 45, Description: "Small juniper bonsai", Image: "/images/nature.jpg", IsActive: true},
		{Name: "Laptop 14", Category: "Computer", Price: 1300, Description: "14 inch ultrabook", Image: "/images/computer.jpg", IsActive: true},
		{Name: "Go in Practice", Category: "Book", Price: 35, Description: "Paperback", Image: "/images/book.jpg", IsActive: true},
		{Name: "Body Lotion", Category: "Lotion", Price: 12, Description: "Unscented, 250ml", Image: "/images/lotion.jpg", IsActive: true},
		{Name: "Reading Glasses", Category: "Eyeglass", Price: 28, Description: "+1.5 blue light filter", Image: "/images/eyeglass.jpg", IsActive: true},
	}
}

// 商品を登録する。同名の商品があればスキップ。作成件数を返す。
func Seed(ctx context.Context, products repo.ProductRepository, items []model.Product) (int, error) {
	created := 0
	for _, p := range items {
		_, err := products.Create(ctx, p)
		if errors.Is(err, repo.ErrConflict) {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
