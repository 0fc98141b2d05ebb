package entity

type Category struct {
	BaseSimple
	Name string  `db:"name"`
	Icon *string `db:"icon"`
}
