package model

import "time"

type Parent struct {
	UserCommon

	LastConfirmedJobAt *time.Time `json:"last_confirmed_job_at"`
}

func (Parent) TableName() string { return "parents" }

type Student struct {
	UserCommon
}

func (Student) TableName() string { return "students" }
