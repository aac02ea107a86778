package entity

type HousingType struct {
	BaseSimple
	Title *string `db:"title"`
	Info  *string `db:"info"`
}
