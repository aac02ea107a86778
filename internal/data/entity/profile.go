package entity

type Profile struct {
	BaseSimple
	UserID            int64   `db:"user_id"`
	Bio               string  `db:"bio"`
	AgreementAccepted bool    `db:"agreement_accepted"`
	Avatar            *string `db:"avatar"`
}
