package entity

type Author struct {
	BaseSimple
	Name string `db:"name"`
	Bio  string `db:"bio"`
}
