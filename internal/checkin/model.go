package checkin

import "time"

type CheckIn struct {
	ID          int       `db:"id" json:"id"`
	MemberID    int       `db:"member_id" json:"member_id"`
	CheckInTime time.Time `db:"check_in_time" json:"check_in_time"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CheckInWithMember struct {
	CheckIn
	MemberName  string `db:"member_name" json:"member_name"`
	MemberPhone string `db:"member_phone" json:"member_phone"`
}

type Response struct {
	CheckIn    *CheckIn `json:"check_in"`
	MemberName string   `json:"member_name"`
	Status     string   `json:"status"`
}
