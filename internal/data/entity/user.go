package entity

type User struct {
	BaseSimple
	Username     string `db:"username"`
	PasswordHash string `db:"password"`
	Staff        bool   `db:"is_staff"`
	Superuser    bool   `db:"is_superuser"`
}
