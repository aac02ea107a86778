package repository

import (
	"shop-portal/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	Session       SessionRepository
	Profile       ProfileRepository
	Product       ProductRepository
	Order         OrderRepository
	Article       ArticleRepository
	Author        AuthorRepository
	Category      CategoryRepository
	Tag           TagRepository
	News          NewsRepository
	Housing       HousingRepository
	HousingType   HousingTypeRepository
	NumberOfRooms NumberOfRoomsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		Session:       NewSessionRepository(db, log),
		Profile:       NewProfileRepository(db, log),
		Product:       NewProductRepository(db, log),
		Order:         NewOrderRepository(db, log),
		Article:       NewArticleRepository(db, log),
		Author:        NewAuthorRepository(db, log),
		Category:      NewCategoryRepository(db, log),
		Tag:           NewTagRepository(db, log),
		News:          NewNewsRepository(db, log),
		Housing:       NewHousingRepository(db, log),
		HousingType:   NewHousingTypeRepository(db, log),
		NumberOfRooms: NewNumberOfRoomsRepository(db, log),
	}
}
