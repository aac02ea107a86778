package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"shop-portal/internal/data/entity"
	"shop-portal/internal/data/repository"
	"shop-portal/pkg/cache"
)

// In-memory stand-ins for the repositories and the cache store, so service
// behavior can be exercised without postgres or redis.

type memStore struct {
	values map[string][]byte
	ttls   map[string]time.Duration
	sets   int
	gets   int
}

func newMemStore() *memStore {
	return &memStore{
		values: map[string][]byte{},
		ttls:   map[string]time.Duration{},
	}
}

func (m *memStore) Get(_ context.Context, key string, dest any) (bool, error) {
	m.gets++
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	m.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	m.ttls[key] = ttl
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

var _ cache.Store = (*memStore)(nil)

type fakeUserRepo struct {
	users  map[int64]*entity.User
	perms  map[int64][]string
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}, perms: map[int64][]string{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeUserRepo) GetPermissions(_ context.Context, userID int64) ([]string, error) {
	return f.perms[userID], nil
}

func (f *fakeUserRepo) GrantPermission(_ context.Context, userID int64, codename string) error {
	f.perms[userID] = append(f.perms[userID], codename)
	return nil
}

func (f *fakeUserRepo) addUser(id int64, username string, staff, superuser bool) *entity.User {
	user := &entity.User{
		BaseSimple: entity.BaseSimple{ID: id, CreatedAt: time.Now()},
		Username:   username,
		Staff:      staff,
		Superuser:  superuser,
	}
	f.users[id] = user
	if id > f.nextID {
		f.nextID = id
	}
	return user
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeProductRepo struct {
	products map[int64]*entity.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	f.nextID++
	product.ID = f.nextID
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) sorted(includeArchived bool) []*entity.Product {
	products := make([]*entity.Product, 0, len(f.products))
	for _, product := range f.products {
		if !includeArchived && product.Archived {
			continue
		}
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool {
		if products[i].Name != products[j].Name {
			return products[i].Name < products[j].Name
		}
		return products[i].Price < products[j].Price
	})
	return products
}

func (f *fakeProductRepo) FindAll(_ context.Context, includeArchived bool, limit, offset int) ([]*entity.Product, error) {
	products := f.sorted(includeArchived)
	if offset >= len(products) {
		return nil, nil
	}
	end := offset + limit
	if end > len(products) {
		end = len(products)
	}
	return products[offset:end], nil
}

func (f *fakeProductRepo) CountAll(_ context.Context, includeArchived bool) (int64, error) {
	return int64(len(f.sorted(includeArchived))), nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Archive(_ context.Context, id int64) error {
	if product, ok := f.products[id]; ok {
		product.Archived = true
	}
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, opts repository.ListOptions) ([]*entity.Product, int64, error) {
	all := f.sorted(true)
	flag, filtered := opts.Filters["archived"]
	var products []*entity.Product
	for _, product := range all {
		if filtered && strconv.FormatBool(product.Archived) != flag {
			continue
		}
		products = append(products, product)
	}
	return products, int64(len(products)), nil
}

func (f *fakeProductRepo) addProduct(id int64, name string, price float64, createdBy int64, archived bool) *entity.Product {
	product := &entity.Product{
		BaseSimple:  entity.BaseSimple{ID: id, CreatedAt: time.Now()},
		Name:        name,
		Price:       price,
		CreatedByID: createdBy,
		Archived:    archived,
	}
	f.products[id] = product
	if id > f.nextID {
		f.nextID = id
	}
	return product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

type fakeOrderRepo struct {
	orders map[int64]*entity.Order
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	f.nextID++
	order.ID = f.nextID
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id int64) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) byPK() []*entity.Order {
	orders := make([]*entity.Order, 0, len(f.orders))
	for _, order := range f.orders {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders
}

func (f *fakeOrderRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	orders := f.byPK()
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].UserID < orders[j].UserID })
	if offset >= len(orders) {
		return nil, nil
	}
	end := offset + limit
	if end > len(orders) {
		end = len(orders)
	}
	return orders[offset:end], nil
}

func (f *fakeOrderRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) FindByUserID(_ context.Context, userID int64) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range f.byPK() {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) FindAllByPK(_ context.Context) ([]*entity.Order, error) {
	return f.byPK(), nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context, _ repository.ListOptions) ([]*entity.Order, int64, error) {
	orders := f.byPK()
	return orders, int64(len(orders)), nil
}

func (f *fakeOrderRepo) addOrder(id, userID int64, promocode string, productIDs []int64) *entity.Order {
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{ID: id, CreatedAt: time.Now()},
		Promocode:  promocode,
		UserID:     userID,
		ProductIDs: productIDs,
	}
	f.orders[id] = order
	if id > f.nextID {
		f.nextID = id
	}
	return order
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

type fakeHousingRepo struct {
	housings map[int64]*entity.Housing
	byType   map[int64]int64
	byRooms  map[int64]int64
	nextID   int64
}

func newFakeHousingRepo() *fakeHousingRepo {
	return &fakeHousingRepo{
		housings: map[int64]*entity.Housing{},
		byType:   map[int64]int64{},
		byRooms:  map[int64]int64{},
	}
}

func (f *fakeHousingRepo) Create(_ context.Context, housing *entity.Housing) error {
	f.nextID++
	housing.ID = f.nextID
	f.housings[housing.ID] = housing
	f.byType[housing.HousingTypeID]++
	f.byRooms[housing.NumberOfRoomsID]++
	return nil
}

func (f *fakeHousingRepo) FindByID(_ context.Context, id int64) (*entity.Housing, error) {
	return f.housings[id], nil
}

func (f *fakeHousingRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Housing, error) {
	housings := make([]*entity.Housing, 0, len(f.housings))
	for _, housing := range f.housings {
		housings = append(housings, housing)
	}
	sort.Slice(housings, func(i, j int) bool { return housings[i].ID < housings[j].ID })
	return housings, nil
}

func (f *fakeHousingRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.housings)), nil
}

func (f *fakeHousingRepo) Update(_ context.Context, housing *entity.Housing) error {
	f.housings[housing.ID] = housing
	return nil
}

func (f *fakeHousingRepo) Delete(_ context.Context, id int64) error {
	if housing, ok := f.housings[id]; ok {
		f.byType[housing.HousingTypeID]--
		f.byRooms[housing.NumberOfRoomsID]--
		delete(f.housings, id)
	}
	return nil
}

func (f *fakeHousingRepo) CountByHousingType(_ context.Context, housingTypeID int64) (int64, error) {
	return f.byType[housingTypeID], nil
}

func (f *fakeHousingRepo) CountByRooms(_ context.Context, numberOfRoomsID int64) (int64, error) {
	return f.byRooms[numberOfRoomsID], nil
}

var _ repository.HousingRepository = (*fakeHousingRepo)(nil)

type fakeHousingTypeRepo struct {
	housingTypes map[int64]*entity.HousingType
	nextID       int64
}

func newFakeHousingTypeRepo() *fakeHousingTypeRepo {
	return &fakeHousingTypeRepo{housingTypes: map[int64]*entity.HousingType{}}
}

func (f *fakeHousingTypeRepo) Create(_ context.Context, housingType *entity.HousingType) error {
	f.nextID++
	housingType.ID = f.nextID
	f.housingTypes[housingType.ID] = housingType
	return nil
}

func (f *fakeHousingTypeRepo) FindByID(_ context.Context, id int64) (*entity.HousingType, error) {
	return f.housingTypes[id], nil
}

func (f *fakeHousingTypeRepo) FindAll(_ context.Context) ([]*entity.HousingType, error) {
	housingTypes := make([]*entity.HousingType, 0, len(f.housingTypes))
	for _, housingType := range f.housingTypes {
		housingTypes = append(housingTypes, housingType)
	}
	return housingTypes, nil
}

func (f *fakeHousingTypeRepo) Update(_ context.Context, housingType *entity.HousingType) error {
	f.housingTypes[housingType.ID] = housingType
	return nil
}

func (f *fakeHousingTypeRepo) Delete(_ context.Context, id int64) error {
	delete(f.housingTypes, id)
	return nil
}

var _ repository.HousingTypeRepository = (*fakeHousingTypeRepo)(nil)

type fakeNumberOfRoomsRepo struct {
	roomsByID map[int64]*entity.NumberOfRooms
	nextID    int64
}

func newFakeNumberOfRoomsRepo() *fakeNumberOfRoomsRepo {
	return &fakeNumberOfRoomsRepo{roomsByID: map[int64]*entity.NumberOfRooms{}}
}

func (f *fakeNumberOfRoomsRepo) Create(_ context.Context, rooms *entity.NumberOfRooms) error {
	f.nextID++
	rooms.ID = f.nextID
	f.roomsByID[rooms.ID] = rooms
	return nil
}

func (f *fakeNumberOfRoomsRepo) FindByID(_ context.Context, id int64) (*entity.NumberOfRooms, error) {
	return f.roomsByID[id], nil
}

func (f *fakeNumberOfRoomsRepo) FindAll(_ context.Context) ([]*entity.NumberOfRooms, error) {
	roomsList := make([]*entity.NumberOfRooms, 0, len(f.roomsByID))
	for _, rooms := range f.roomsByID {
		roomsList = append(roomsList, rooms)
	}
	return roomsList, nil
}

func (f *fakeNumberOfRoomsRepo) Update(_ context.Context, rooms *entity.NumberOfRooms) error {
	f.roomsByID[rooms.ID] = rooms
	return nil
}

func (f *fakeNumberOfRoomsRepo) Delete(_ context.Context, id int64) error {
	delete(f.roomsByID, id)
	return nil
}

var _ repository.NumberOfRoomsRepository = (*fakeNumberOfRoomsRepo)(nil)
