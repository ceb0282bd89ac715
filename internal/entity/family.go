package entity

import "time"

type Family struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	HeadID     string    `db:"head_id"`
	InviteCode string    `db:"invite_code"`
	CreatedAt  time.Time `db:"created_at"`
}
