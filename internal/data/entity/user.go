package entity

type User struct {
	Base
	FullName      string  `db:"full_name"`
	Email         string  `db:"email"`
	PasswordHash  string  `db:"password"`
	Phone         *string `db:"phone"`
	Whatsapp      *string `db:"whatsapp"`
	AvatarURL     *string `db:"avatar_url"`
	EmailVerified bool    `db:"email_verified"`
	IsActive      bool    `db:"is_active"`
}
